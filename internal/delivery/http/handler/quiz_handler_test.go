package handler

import (
	"testing"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/domain"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startQuiz(t *testing.T, app *fiber.App, set string) entity.QuizView {
	t.Helper()
	code, env := do(t, app, fiber.MethodPost, "/quiz/sessions", `{"set":"`+set+`"}`)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, domain.QUIZ_START_SUCCESS, env.Message)
	return decode[entity.QuizView](t, env.Data)
}

func TestQuizHandler_Start(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	view := startQuiz(t, app, "solo")
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, entity.QuizStateAwaitingInput, view.State)
	assert.Equal(t, "고양이", view.Definition)
	assert.Empty(t, view.CorrectAnswer)
	assert.Equal(t, 1, view.Served)
	assert.Equal(t, 1, view.Total)

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{name: "empty pool", body: `{"set":"empty"}`, code: fiber.StatusUnprocessableEntity, message: domain.QUIZ_NO_WORDS},
		{name: "unknown set", body: `{"set":"nope"}`, code: fiber.StatusNotFound, message: domain.QUIZ_START_FAILED},
		{name: "missing set", body: `{}`, code: fiber.StatusBadRequest, message: domain.QUIZ_START_FAILED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, app, fiber.MethodPost, "/quiz/sessions", tt.body)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}

func TestQuizHandler_WrongAnswerFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	view := startQuiz(t, app, "solo")
	base := "/quiz/sessions/" + view.SessionID

	code, env := do(t, app, fiber.MethodPost, base+"/answer", `{"answer":"dog"}`)
	require.Equal(t, fiber.StatusOK, code)
	res := decode[entity.QuizAnswerResponse](t, env.Data)
	assert.Equal(t, entity.QuizAnswerResult{Correct: false, CorrectAnswer: "cat"}, res.Result)
	assert.Equal(t, entity.QuizStateAwaitingAcknowledgement, res.Quiz.State)
	assert.Equal(t, "cat", res.Quiz.CorrectAnswer)

	// submitting twice is not a valid transition
	code, env = do(t, app, fiber.MethodPost, base+"/answer", `{"answer":"cat"}`)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, domain.QUIZ_ANSWER_FAILED, env.Message)

	code, env = do(t, app, fiber.MethodPost, base+"/keys", `{"key":"Space"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, entity.QuizStateAwaitingAcknowledgement, decode[entity.QuizView](t, env.Data).State)

	code, env = do(t, app, fiber.MethodPost, base+"/keys", `{"key":"Enter"}`)
	require.Equal(t, fiber.StatusOK, code)
	finished := decode[entity.QuizView](t, env.Data)
	assert.Equal(t, entity.QuizStateFinished, finished.State)
	assert.Equal(t, 0, finished.Score)
	require.Len(t, finished.IncorrectAnswers, 1)
	assert.Equal(t, "cat", finished.IncorrectAnswers[0].Term)

	code, _ = do(t, app, fiber.MethodPost, base+"/next", "")
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = do(t, app, fiber.MethodGet, base+"/hint", "")
	assert.Equal(t, fiber.StatusConflict, code)
}

func TestQuizHandler_CorrectAnswerFinishes(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	view := startQuiz(t, app, "solo")

	code, env := do(t, app, fiber.MethodPost, "/quiz/sessions/"+view.SessionID+"/answer", `{"answer":"CAT"}`)
	require.Equal(t, fiber.StatusOK, code)
	res := decode[entity.QuizAnswerResponse](t, env.Data)
	assert.True(t, res.Result.Correct)
	assert.Equal(t, entity.QuizStateFinished, res.Quiz.State)
	assert.Equal(t, 1, res.Quiz.Score)
	assert.Empty(t, res.Quiz.IncorrectAnswers)
}

func TestQuizHandler_Next(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	view := startQuiz(t, app, "1")
	base := "/quiz/sessions/" + view.SessionID

	code, _ := do(t, app, fiber.MethodPost, base+"/next", "")
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = do(t, app, fiber.MethodPost, base+"/answer", `{"answer":"wrong"}`)
	require.Equal(t, fiber.StatusOK, code)

	code, env := do(t, app, fiber.MethodPost, base+"/next", "")
	require.Equal(t, fiber.StatusOK, code)
	next := decode[entity.QuizView](t, env.Data)
	assert.Equal(t, entity.QuizStateAwaitingInput, next.State)
	assert.Equal(t, 2, next.Served)
}

func TestQuizHandler_FallbackHint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	view := startQuiz(t, app, "solo")

	code, env := do(t, app, fiber.MethodGet, "/quiz/sessions/"+view.SessionID+"/hint", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, entity.QuizHintResponse{
		SessionID: view.SessionID,
		Hint:      "c__ (3 letters)",
		Source:    usecase.HintSourceFallback,
	}, decode[entity.QuizHintResponse](t, env.Data))
}

func TestQuizHandler_Reset(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	view := startQuiz(t, app, "solo")
	base := "/quiz/sessions/" + view.SessionID

	code, env := do(t, app, fiber.MethodDelete, base, "")
	require.Equal(t, fiber.StatusOK, code)
	reset := decode[entity.QuizView](t, env.Data)
	assert.Equal(t, entity.QuizStateNotStarted, reset.State)
	assert.Zero(t, reset.Served)

	code, env = do(t, app, fiber.MethodGet, base, "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, domain.QUIZ_GET_FAILED, env.Message)
}

func TestQuizHandler_UnknownSession(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	code, env := do(t, app, fiber.MethodPost, "/quiz/sessions/nope/keys", `{"key":"Enter"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, domain.QUIZ_KEY_FAILED, env.Message)

	code, _ = do(t, app, fiber.MethodPost, "/quiz/sessions/nope/keys", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
