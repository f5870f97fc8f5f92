package highscore

import "sync"

// Store is a durable ordered list of integers.
//
// Load never fails: an absent or malformed record yields an empty list.
// Save overwrites the record with the given scores in their current order;
// callers keep the list sorted and bounded before saving.
type Store interface {
	Load() []int
	Save(scores []int) error
}

// Updater is implemented by stores that can read, modify and write the
// record as one step. Games sharing a store record through it so that no
// game overwrites scores saved by another since it loaded the list.
type Updater interface {
	// Update calls fn with the current record and saves what it returns.
	// fn is not called if the record cannot be locked or read.
	Update(fn func(scores []int) []int) error
}

// Record inserts score into the list persisted in s, keeping at most limit
// entries. The list is re-read from the store, so scores saved by other
// games sharing s are kept.
//
// It returns the score's 1-based rank (0 if it did not make the list) and
// the resulting list. scores is nil only if the update never ran; it is
// set even when saving failed.
func Record(s Store, limit, score int) (rank int, scores []int, err error) {
	apply := func(current []int) []int {
		l := NewList(limit, current)
		rank = l.Record(score)
		scores = l.Scores()
		return scores
	}

	if u, ok := s.(Updater); ok {
		err = u.Update(apply)
		return rank, scores, err
	}

	next := apply(s.Load())
	return rank, scores, s.Save(next)
}

// MemoryStore keeps scores in memory only. It is used when no durable
// backend is available and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	scores []int
	saves  int
}

// NewMemoryStore creates a store pre-populated with scores.
func NewMemoryStore(scores ...int) *MemoryStore {
	return &MemoryStore{scores: append([]int(nil), scores...)}
}

// Load implements Store.
func (m *MemoryStore) Load() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int{}, m.scores...)
}

// Save implements Store.
func (m *MemoryStore) Save(scores []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append([]int(nil), scores...)
	m.saves++
	return nil
}

// Update implements Updater.
func (m *MemoryStore) Update(fn func(scores []int) []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append([]int(nil), fn(append([]int{}, m.scores...))...)
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var (
	_ Updater = (*MemoryStore)(nil)
	_ Updater = (*FileStore)(nil)
	_ Updater = (*GdataStore)(nil)
)
