package usecase

import (
	"sync"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
)

// WordStore holds the ordered words of one vocabulary set. It is empty until
// Load completes and read-only afterwards.
type WordStore struct {
	mu      sync.RWMutex
	records []entity.WordRecord
	byID    map[int]int
	loaded  bool
}

func NewWordStore() *WordStore {
	return &WordStore{byID: make(map[int]int)}
}

// Load replaces the contents with a copy of records. Later records reusing an
// earlier id are dropped; the number dropped is returned.
func (s *WordStore) Load(records []entity.WordRecord) int {
	copied := make([]entity.WordRecord, 0, len(records))
	byID := make(map[int]int, len(records))
	dropped := 0
	for _, r := range records {
		if _, dup := byID[r.ID]; dup {
			dropped++
			continue
		}
		byID[r.ID] = len(copied)
		copied = append(copied, r)
	}

	s.mu.Lock()
	s.records = copied
	s.byID = byID
	s.loaded = true
	s.mu.Unlock()

	return dropped
}

// All returns the words in file order. The slice is shared; callers must not
// modify it.
func (s *WordStore) All() []entity.WordRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *WordStore) Get(id int) (entity.WordRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return entity.WordRecord{}, false
	}
	return s.records[i], true
}

func (s *WordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *WordStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
