package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/repository"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/evandrarf/wordbook-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newTestApp wires real usecases over temporary CSV files:
// set "1" has cat, dog, catalog; "solo" has only cat; "empty" has no rows;
// "z" has ids 0 and -3.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dir := t.TempDir()
	log := testLogger()
	ctx := context.Background()

	favorites := usecase.NewFavoritesManager(ctx, repository.NewMemoryKeyValueRepository(), log)
	vocabulary := usecase.NewVocabularyUsecase(usecase.VocabularyConfig{
		Sets: []usecase.SetSource{
			{Name: "1", Title: "1 세트", Path: writeCSV(t, dir, "one.csv", "no,단어,뜻\n1,cat,고양이\n2,dog,개\n10,catalog,목록\n")},
			{Name: "solo", Path: writeCSV(t, dir, "solo.csv", "no,단어,뜻\n1,cat,고양이\n")},
			{Name: "empty", Path: writeCSV(t, dir, "empty.csv", "no,단어,뜻\n")},
			{Name: "z", Path: writeCSV(t, dir, "z.csv", "no,단어,뜻\n0,zero,영\n-3,minus,마이너스\n")},
		},
		Columns:   entity.WordColumns{ID: "no", Term: "단어", Definition: "뜻"},
		Favorites: favorites,
		Log:       log,
	})
	require.NoError(t, vocabulary.LoadAll(ctx))

	quiz := usecase.NewQuizUsecase(usecase.QuizConfig{
		Vocabulary: vocabulary,
		Log:        log,
	})

	validator := validate.NewValidator()
	vh := NewVocabularyHandler(validator, log, vocabulary)
	qh := NewQuizHandler(validator, log, quiz)

	app := fiber.New()
	app.Get("/vocabulary/sets", vh.ListSets)
	app.Get("/vocabulary/sets/:set/words", vh.ListWords)
	app.Get("/favorites", vh.ListFavorites)
	app.Post("/favorites/toggle", vh.ToggleFavorite)

	app.Post("/quiz/sessions", qh.Start)
	app.Get("/quiz/sessions/:session_id", qh.Get)
	app.Delete("/quiz/sessions/:session_id", qh.Reset)
	app.Post("/quiz/sessions/:session_id/answer", qh.SubmitAnswer)
	app.Post("/quiz/sessions/:session_id/next", qh.Next)
	app.Post("/quiz/sessions/:session_id/keys", qh.PressKey)
	app.Get("/quiz/sessions/:session_id/hint", qh.Hint)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
