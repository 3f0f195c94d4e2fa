package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/pkg/wordcsv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSetNotFound  = errors.New("vocabulary set not found")
	ErrWordNotFound = errors.New("word not found")
)

type VocabularyUsecase interface {
	LoadAll(ctx context.Context) error
	ListSets(ctx context.Context) []entity.VocabularySet
	ListWords(ctx context.Context, set string, query string) ([]entity.WordItem, error)
	ListFavorites(ctx context.Context, query string) []entity.WordRecord
	ToggleFavorite(ctx context.Context, req entity.ToggleFavoriteRequest) (*entity.ToggleFavoriteResponse, error)
	Pool(ctx context.Context, set string) ([]entity.WordRecord, error)
}

// SetSource - Satu set kosakata dari config
type SetSource struct {
	Name  string `mapstructure:"name"`
	Title string `mapstructure:"title"`
	Path  string `mapstructure:"path"`
}

type VocabularyConfig struct {
	Sets      []SetSource
	Columns   entity.WordColumns
	Favorites *FavoritesManager
	Log       *logrus.Logger
}

type vocabularySet struct {
	source SetSource
	store  *WordStore
}

type vocabularyUsecase struct {
	cfg   VocabularyConfig
	sets  []*vocabularySet
	byKey map[string]*vocabularySet
}

func NewVocabularyUsecase(cfg VocabularyConfig) VocabularyUsecase {
	u := &vocabularyUsecase{
		cfg:   cfg,
		byKey: make(map[string]*vocabularySet, len(cfg.Sets)),
	}
	for _, src := range cfg.Sets {
		if src.Title == "" {
			src.Title = src.Name
		}
		vs := &vocabularySet{source: src, store: NewWordStore()}
		u.sets = append(u.sets, vs)
		u.byKey[src.Name] = vs
	}
	return u
}

// LoadAll parses every configured set concurrently. A set whose file cannot be
// read ends up loaded but empty.
func (u *vocabularyUsecase) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, vs := range u.sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			u.loadSet(vs)
			return nil
		})
	}
	return g.Wait()
}

func (u *vocabularyUsecase) loadSet(vs *vocabularySet) {
	log := u.cfg.Log.WithField("set", vs.source.Name)

	res, err := wordcsv.LoadFile(vs.source.Path, u.cfg.Columns)
	if err != nil {
		log.WithError(err).Error("failed to load vocabulary set")
		vs.store.Load(nil)
		return
	}

	dropped := vs.store.Load(res.Records)
	log.WithFields(logrus.Fields{
		"words":      vs.store.Len(),
		"skipped":    res.Skipped,
		"duplicates": dropped,
	}).Info("vocabulary set loaded")
}

func (u *vocabularyUsecase) ListSets(_ context.Context) []entity.VocabularySet {
	out := make([]entity.VocabularySet, 0, len(u.sets))
	for _, vs := range u.sets {
		out = append(out, entity.VocabularySet{
			Name:      vs.source.Name,
			Title:     vs.source.Title,
			WordCount: vs.store.Len(),
			Loaded:    vs.store.Loaded(),
		})
	}
	return out
}

func (u *vocabularyUsecase) set(name string) (*vocabularySet, error) {
	vs, ok := u.byKey[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, name)
	}
	return vs, nil
}

func (u *vocabularyUsecase) ListWords(_ context.Context, set string, query string) ([]entity.WordItem, error) {
	vs, err := u.set(set)
	if err != nil {
		return nil, err
	}

	matched := FilterWords(vs.store.All(), query)
	items := make([]entity.WordItem, 0, len(matched))
	for _, w := range matched {
		items = append(items, entity.WordItem{
			WordRecord: w,
			Favorite:   u.cfg.Favorites.IsFavorite(w.ID),
		})
	}
	return items, nil
}

func (u *vocabularyUsecase) ListFavorites(_ context.Context, query string) []entity.WordRecord {
	return FilterWords(u.cfg.Favorites.ListSorted(), query)
}

func (u *vocabularyUsecase) ToggleFavorite(ctx context.Context, req entity.ToggleFavoriteRequest) (*entity.ToggleFavoriteResponse, error) {
	vs, err := u.set(req.Set)
	if err != nil {
		return nil, err
	}
	if req.ID == nil {
		return nil, fmt.Errorf("%w: missing id", ErrWordNotFound)
	}
	id := *req.ID

	var added bool
	if word, ok := vs.store.Get(id); ok {
		added, err = u.cfg.Favorites.Toggle(ctx, word)
	} else {
		// stale favorites can still be removed from the favorites list
		var removed bool
		removed, err = u.cfg.Favorites.Remove(ctx, id)
		if err == nil && !removed {
			err = fmt.Errorf("%w: %d", ErrWordNotFound, id)
		}
	}
	if err != nil {
		return nil, err
	}

	return &entity.ToggleFavoriteResponse{
		ID:       id,
		Favorite: added,
		Total:    u.cfg.Favorites.Len(),
	}, nil
}

// Pool returns the words a quiz over set draws from.
func (u *vocabularyUsecase) Pool(_ context.Context, set string) ([]entity.WordRecord, error) {
	vs, err := u.set(set)
	if err != nil {
		return nil, err
	}
	return vs.store.All(), nil
}
