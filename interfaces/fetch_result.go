package interfaces

import "fmt"

// FetchError describes a failed CoinGecko round trip. Message is safe to show
// to the user; Err and StatusCode carry the details for logs.
type FetchError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.Message, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is either a Value or a non-nil Err
type Result[T any] struct {
	Value T
	Err   *FetchError
}

// Ok wraps a successful value
func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Fail wraps a failure
func Fail[T any](err *FetchError) Result[T] {
	return Result[T]{Err: err}
}

// IsOk reports whether the fetch succeeded
func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// Unwrap converts the result into the conventional value, error pair
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}
