package usecase

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func words(n int) []entity.WordRecord {
	out := make([]entity.WordRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, entity.WordRecord{
			ID:         i,
			Term:       "term" + string(rune('a'+i-1)),
			Definition: "definition " + string(rune('a'+i-1)),
		})
	}
	return out
}

var errStorageDown = errors.New("storage down")

// fakeKV is an in-memory key-value repository that can be told to fail.
type fakeKV struct {
	mu       sync.Mutex
	values   map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func randWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func toggleReq(set string, id int) entity.ToggleFavoriteRequest {
	return entity.ToggleFavoriteRequest{Set: set, ID: &id}
}
