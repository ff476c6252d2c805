package interfaces

// IFavoritesStore maintains the persisted set of favorite coin ids.
// None of its methods fail: storage errors are logged and absorbed.
type IFavoritesStore interface {
	GetFavorites() []string
	AddFavorite(id string)
	RemoveFavorite(id string)
	IsFavorite(id string) bool
	// ToggleFavorite flips membership and returns the new state
	ToggleFavorite(id string) bool
	ClearFavorites()

	// Subscribe registers a callback run synchronously after every change,
	// including changes written by other processes. It returns the unsubscribe function.
	Subscribe(cb func()) func()
}
