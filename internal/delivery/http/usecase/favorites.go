package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/repository"
	"github.com/evandrarf/wordbook-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
)

const favoritesKey = "favorites"

// FavoritesManager keeps the favorited words, keyed by id, and writes the
// whole set back to storage on every toggle.
type FavoritesManager struct {
	mu      sync.Mutex
	storage repository.KeyValueRepository
	log     *logrus.Logger
	// insertion order, mirrors what gets persisted
	records []entity.WordRecord
	index   map[int]int
}

// NewFavoritesManager loads the persisted set. Absent or unreadable storage
// yields an empty set; it never fails.
func NewFavoritesManager(ctx context.Context, storage repository.KeyValueRepository, log *logrus.Logger) *FavoritesManager {
	m := &FavoritesManager{
		storage: storage,
		log:     log,
		index:   make(map[int]int),
	}
	m.load(ctx)
	return m
}

func (m *FavoritesManager) load(ctx context.Context) {
	raw, found, err := m.storage.Get(ctx, favoritesKey)
	if err != nil {
		m.log.WithError(err).Warn("favorites storage unavailable, starting empty")
		return
	}
	if !found {
		return
	}

	records, dropped, err := mapper.DecodeFavorites(raw)
	if err != nil {
		m.log.WithError(err).Warn("favorites storage unreadable, starting empty")
		return
	}
	if dropped > 0 {
		m.log.WithField("dropped", dropped).Debug("dropped malformed favorites")
	}

	for _, r := range records {
		if _, dup := m.index[r.ID]; dup {
			continue
		}
		m.index[r.ID] = len(m.records)
		m.records = append(m.records, r)
	}
}

func (m *FavoritesManager) IsFavorite(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.index[id]
	return ok
}

// Toggle removes record if its id is a favorite and adds it otherwise. The
// new set is persisted before returning; on a failed write the change is
// undone and the error returned.
func (m *FavoritesManager) Toggle(ctx context.Context, record entity.WordRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.records
	var next []entity.WordRecord
	added := false
	if i, ok := m.index[record.ID]; ok {
		next = without(prev, i)
	} else {
		next = make([]entity.WordRecord, 0, len(prev)+1)
		next = append(next, prev...)
		next = append(next, record)
		added = true
	}

	if err := m.commit(ctx, next); err != nil {
		return false, err
	}
	return added, nil
}

// Remove drops id if it is a favorite. It never adds, so it is safe for ids
// that no longer exist in any set.
func (m *FavoritesManager) Remove(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[id]
	if !ok {
		return false, nil
	}
	if err := m.commit(ctx, without(m.records, i)); err != nil {
		return false, err
	}
	return true, nil
}

// commit persists next and then makes it current. Callers hold m.mu.
func (m *FavoritesManager) commit(ctx context.Context, next []entity.WordRecord) error {
	payload, err := mapper.EncodeFavorites(next)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := m.storage.Set(ctx, favoritesKey, payload); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}

	m.records = next
	m.reindex()
	return nil
}

func without(records []entity.WordRecord, i int) []entity.WordRecord {
	next := make([]entity.WordRecord, 0, len(records)-1)
	next = append(next, records[:i]...)
	return append(next, records[i+1:]...)
}

func (m *FavoritesManager) reindex() {
	m.index = make(map[int]int, len(m.records))
	for i, r := range m.records {
		m.index[r.ID] = i
	}
}

// ListSorted returns the favorites ordered by numeric id.
func (m *FavoritesManager) ListSorted() []entity.WordRecord {
	m.mu.Lock()
	out := make([]entity.WordRecord, len(m.records))
	copy(out, m.records)
	m.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *FavoritesManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
