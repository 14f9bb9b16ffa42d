package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
)

// Record is a generated maze and how it was made.
type Record struct {
	ID        uuid.UUID
	Algorithm generate.Algorithm
	Seed      int64
	Grid      *maze.Grid
	CreatedAt time.Time
}

// Store keeps at most capacity records and evicts the oldest first.
// It is safe for concurrent use. Stored grids must not be mutated.
type Store struct {
	mu       sync.RWMutex
	capacity int
	order    []uuid.UUID
	records  map[uuid.UUID]Record
}

// NewStore returns an empty store. It panics if capacity is not positive.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		panic(fmt.Sprintf("server: NewStore(%d): capacity must be positive", capacity))
	}
	return &Store{
		capacity: capacity,
		order:    make([]uuid.UUID, 0, capacity),
		records:  make(map[uuid.UUID]Record, capacity),
	}
}

// Put inserts r and returns the IDs it evicted to make room.
func (s *Store) Put(r Record) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[r.ID]; ok {
		s.records[r.ID] = r
		return nil
	}
	var evicted []uuid.UUID
	for len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.records, oldest)
		evicted = append(evicted, oldest)
	}
	s.order = append(s.order, r.ID)
	s.records[r.ID] = r
	return evicted
}

// Get returns the record for id.
func (s *Store) Get(id uuid.UUID) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	return r, ok
}

// Delete removes id and reports whether it was present.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
