package handler

import (
	"github.com/evandrarf/wordbook-be/internal/delivery/http/domain"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/entity"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/evandrarf/wordbook-be/internal/pkg/response"
	"github.com/evandrarf/wordbook-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	VocabularyHandler interface {
		ListSets(ctx *fiber.Ctx) error
		ListWords(ctx *fiber.Ctx) error
		ListFavorites(ctx *fiber.Ctx) error
		ToggleFavorite(ctx *fiber.Ctx) error
	}

	vocabularyHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.VocabularyUsecase
	}
)

func NewVocabularyHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.VocabularyUsecase) VocabularyHandler {
	return &vocabularyHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /vocabulary/sets
func (h *vocabularyHandler) ListSets(ctx *fiber.Ctx) error {
	sets := h.usecase.ListSets(ctx.UserContext())
	return response.NewList(domain.VOCABULARY_LIST_SETS_SUCCESS, sets, len(sets)).Send(ctx)
}

// GET /vocabulary/sets/:set/words?q=
func (h *vocabularyHandler) ListWords(ctx *fiber.Ctx) error {
	set := ctx.Params("set")
	if set == "" {
		return response.NewFailed(domain.VOCABULARY_LIST_WORDS_FAILED, fiber.NewError(fiber.StatusBadRequest, "set is required"), h.logger).Send(ctx)
	}

	// query is used as typed, including surrounding spaces
	words, err := h.usecase.ListWords(ctx.UserContext(), set, ctx.Query("q"))
	if err != nil {
		return sendUsecaseError(ctx, domain.VOCABULARY_LIST_WORDS_FAILED, err, h.logger)
	}

	return response.NewList(domain.VOCABULARY_LIST_WORDS_SUCCESS, words, len(words)).Send(ctx)
}

// GET /favorites?q=
func (h *vocabularyHandler) ListFavorites(ctx *fiber.Ctx) error {
	favorites := h.usecase.ListFavorites(ctx.UserContext(), ctx.Query("q"))
	return response.NewList(domain.FAVORITE_LIST_SUCCESS, favorites, len(favorites)).Send(ctx)
}

// POST /favorites/toggle
func (h *vocabularyHandler) ToggleFavorite(ctx *fiber.Ctx) error {
	var req entity.ToggleFavoriteRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.FAVORITE_TOGGLE_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.ToggleFavorite(ctx.UserContext(), req)
	if err != nil {
		return sendUsecaseError(ctx, domain.FAVORITE_TOGGLE_FAILED, err, h.logger)
	}

	return response.NewSuccess(domain.FAVORITE_TOGGLE_SUCCESS, result, nil).Send(ctx)
}
