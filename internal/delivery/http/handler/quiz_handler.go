package handler

import (
	"errors"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/domain"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/evandrarf/wordbook-be/internal/pkg/response"
	"github.com/evandrarf/wordbook-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	QuizHandler interface {
		Start(ctx *fiber.Ctx) error
		Get(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Next(ctx *fiber.Ctx) error
		PressKey(ctx *fiber.Ctx) error
		Hint(ctx *fiber.Ctx) error
		Reset(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /quiz/sessions
func (h *quizHandler) Start(ctx *fiber.Ctx) error {
	var req entity.StartQuizRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_START_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.StartQuiz(ctx.UserContext(), req.Set)
	if errors.Is(err, usecase.ErrEmptyPool) {
		return response.NewFailed(domain.QUIZ_NO_WORDS, fiber.NewError(fiber.StatusUnprocessableEntity, err.Error()), h.logger).Send(ctx)
	}
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_START_FAILED, err, h.logger)
	}

	return response.NewCreated(domain.QUIZ_START_SUCCESS, view).Send(ctx)
}

// GET /quiz/sessions/:session_id
func (h *quizHandler) Get(ctx *fiber.Ctx) error {
	view, err := h.usecase.GetQuiz(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_GET_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_GET_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/answer
func (h *quizHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	var req entity.QuizAnswerRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.SubmitAnswer(ctx.UserContext(), ctx.Params("session_id"), req.Answer)
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_ANSWER_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUCCESS, result, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/next
func (h *quizHandler) Next(ctx *fiber.Ctx) error {
	view, err := h.usecase.Advance(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_ADVANCE_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_ADVANCE_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/keys
func (h *quizHandler) PressKey(ctx *fiber.Ctx) error {
	var req entity.QuizKeyRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_KEY_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.PressKey(ctx.UserContext(), ctx.Params("session_id"), req.Key)
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_KEY_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_KEY_SUCCESS, view, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id/hint
func (h *quizHandler) Hint(ctx *fiber.Ctx) error {
	hint, err := h.usecase.Hint(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_HINT_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_HINT_SUCCESS, hint, nil).Send(ctx)
}

// DELETE /quiz/sessions/:session_id
func (h *quizHandler) Reset(ctx *fiber.Ctx) error {
	view, err := h.usecase.ResetQuiz(ctx.UserContext(), ctx.Params("session_id"))
	if err != nil {
		return sendUsecaseError(ctx, domain.QUIZ_RESET_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.QUIZ_RESET_SUCCESS, view, nil).Send(ctx)
}
