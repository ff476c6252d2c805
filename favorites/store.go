package favorites

import (
	"context"
	"encoding/json"
	"log"
	"slices"
	"sync"

	"github.com/status-im/market-dashboard/events"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
	"github.com/status-im/market-dashboard/storage"
)

// Store keeps the favorite coin ids as a JSON array under a single storage key.
// Every read goes to storage, so there is no cached copy to invalidate.
type Store struct {
	storage storage.Storage
	key     string
	watcher *storage.Watcher

	// serializes read-modify-write cycles within this process
	mu sync.Mutex

	listeners events.Listeners
	watchSub  events.ISubscription
}

var _ interfaces.IFavoritesStore = (*Store)(nil)

// NewStore creates a favorites store. watcher may be nil, in which case changes
// written by other processes are not observed.
func NewStore(s storage.Storage, key string, watcher *storage.Watcher) *Store {
	return &Store{
		storage: s,
		key:     key,
		watcher: watcher,
	}
}

// Start forwards external changes reported by the watcher to subscribers
func (s *Store) Start(ctx context.Context) error {
	metrics.RecordFavoritesCount(len(s.GetFavorites()))
	if s.watcher == nil {
		return nil
	}

	s.watchSub = s.watcher.Subscribe().Watch(ctx, func() {
		log.Printf("Favorites: Storage changed outside this process")
		s.notify()
	}, false)
	return nil
}

// Stop detaches from the watcher
func (s *Store) Stop() {
	if s.watchSub != nil {
		s.watchSub.Cancel()
	}
}

// GetFavorites returns the stored ids in insertion order. Missing, unreadable or
// malformed data yields an empty slice.
func (s *Store) GetFavorites() []string {
	return s.read()
}

// AddFavorite inserts id. Adding an id that is already present changes nothing.
func (s *Store) AddFavorite(id string) {
	s.mutate(func(ids []string) ([]string, bool) {
		if slices.Contains(ids, id) {
			return ids, false
		}
		return append(ids, id), true
	})
}

// RemoveFavorite removes id. Removing an absent id changes nothing.
func (s *Store) RemoveFavorite(id string) {
	s.mutate(func(ids []string) ([]string, bool) {
		idx := slices.Index(ids, id)
		if idx < 0 {
			return ids, false
		}
		return slices.Delete(ids, idx, idx+1), true
	})
}

// IsFavorite reports whether id is in the stored set
func (s *Store) IsFavorite(id string) bool {
	return slices.Contains(s.GetFavorites(), id)
}

// ToggleFavorite adds or removes id and returns the new membership
func (s *Store) ToggleFavorite(id string) bool {
	var favorite bool
	s.mutate(func(ids []string) ([]string, bool) {
		idx := slices.Index(ids, id)
		if idx < 0 {
			favorite = true
			return append(ids, id), true
		}
		favorite = false
		return slices.Delete(ids, idx, idx+1), true
	})
	return favorite
}

// ClearFavorites removes the storage key
func (s *Store) ClearFavorites() {
	s.mu.Lock()
	hadFavorites := len(s.read()) > 0
	err := s.persist(func() (string, bool, error) {
		return "", false, s.storage.Remove(s.key)
	})
	s.mu.Unlock()
	if err != nil {
		log.Printf("Favorites: Failed to clear: %v", err)
		return
	}

	if hadFavorites {
		log.Printf("Favorites: Cleared")
		s.notify()
	}
}

// Subscribe registers cb to run synchronously after every change
func (s *Store) Subscribe(cb func()) func() {
	return s.listeners.Add(cb)
}

// mutate applies fn to the current set and persists the result when fn reports
// a change. Listeners run after the lock is released so they may read the store.
func (s *Store) mutate(fn func(ids []string) ([]string, bool)) {
	s.mu.Lock()
	ids, changed := fn(s.read())
	if !changed {
		s.mu.Unlock()
		return
	}

	err := s.persist(func() (string, bool, error) {
		written, err := s.write(ids)
		return written, true, err
	})
	s.mu.Unlock()
	if err != nil {
		log.Printf("Favorites: Failed to save: %v", err)
		return
	}

	log.Printf("Favorites: Saved %d favorites", len(ids))
	s.notify()
}

func (s *Store) notify() {
	metrics.RecordFavoritesCount(len(s.GetFavorites()))
	s.listeners.Notify()
}

// persist runs write through the watcher, if any, so the watcher never reports
// this process's own write as an external change
func (s *Store) persist(write func() (string, bool, error)) error {
	if s.watcher == nil {
		_, _, err := write()
		return err
	}
	return s.watcher.Apply(write)
}

func (s *Store) read() []string {
	raw, found, err := s.storage.Get(s.key)
	if err != nil {
		log.Printf("Favorites: Failed to read %q: %v", s.key, err)
		return []string{}
	}
	if !found || raw == "" {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("Favorites: Ignoring malformed value under %q: %v", s.key, err)
		return []string{}
	}
	return dedupe(ids)
}

func (s *Store) write(ids []string) (string, error) {
	data, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	value := string(data)
	if err := s.storage.Set(s.key, value); err != nil {
		return "", err
	}
	return value, nil
}

// dedupe drops repeated ids, keeping the first occurrence
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
