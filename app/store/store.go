package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/findora-hu/findora/app/feed"
)

// ErrStaleView is returned when a load finishes after the view it was
// started for has been superseded. The result is discarded, not merged.
var ErrStaleView = errors.New("view superseded")

// Key addresses one hydrated slice of the catalog.
type Key struct {
	Partner  string
	Category string
}

// Fetcher loads the items behind one key.
type Fetcher interface {
	Fetch(ctx context.Context, key Key) ([]feed.Item, error)
}

type call struct {
	done  chan struct{}
	items []feed.Item
	err   error
}

// Store hydrates catalog slices on demand. Concurrent loads of the same key
// share a single fetch; completed loads merge last-write-wins into the
// current view's data map. Results arriving for a superseded view are
// dropped.
type Store struct {
	fetcher Fetcher

	mu         sync.Mutex
	generation int
	data       map[Key][]feed.Item
	inflight   map[Key]*call
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher:  fetcher,
		data:     make(map[Key][]feed.Item),
		inflight: make(map[Key]*call),
	}
}

// ActivateView starts a new view: hydrated data is cleared and the returned
// generation marks loads that belong to it.
func (s *Store) ActivateView() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.data = make(map[Key][]feed.Item)
	return s.generation
}

// View returns the current view generation.
func (s *Store) View() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Load returns the items behind key, fetching them at most once per key no
// matter how many callers arrive concurrently. view must be the value
// returned by the ActivateView call the caller is rendering for.
func (s *Store) Load(ctx context.Context, view int, key Key) ([]feed.Item, error) {
	s.mu.Lock()

	if view != s.generation {
		s.mu.Unlock()
		return nil, ErrStaleView
	}

	if items, ok := s.data[key]; ok {
		s.mu.Unlock()
		return items, nil
	}

	if c, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		return s.await(ctx, view, c)
	}

	c := &call{done: make(chan struct{})}
	s.inflight[key] = c
	s.mu.Unlock()

	c.items, c.err = s.fetcher.Fetch(ctx, key)
	close(c.done)

	s.mu.Lock()
	delete(s.inflight, key)
	if c.err == nil && view == s.generation {
		s.data[key] = c.items
	}
	stale := view != s.generation
	s.mu.Unlock()

	if c.err != nil {
		return nil, c.err
	}
	if stale {
		return nil, ErrStaleView
	}
	return c.items, nil
}

func (s *Store) await(ctx context.Context, view int, c *call) ([]feed.Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
	}

	if c.err != nil {
		return nil, c.err
	}

	s.mu.Lock()
	stale := view != s.generation
	s.mu.Unlock()
	if stale {
		return nil, ErrStaleView
	}
	return c.items, nil
}

// Merged returns the hydrated items of every partner for one category, with
// cross-partner near-duplicates collapsed. Partners are visited in ID order
// so the first occurrence kept by the merge is deterministic.
func (s *Store) Merged(category string) []feed.Item {
	s.mu.Lock()
	keys := make([]Key, 0, len(s.data))
	for key := range s.data {
		if key.Category == category {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Partner < keys[j].Partner })

	var all []feed.Item
	for _, key := range keys {
		all = append(all, s.data[key]...)
	}
	s.mu.Unlock()

	return MergePartnerResults(all)
}
