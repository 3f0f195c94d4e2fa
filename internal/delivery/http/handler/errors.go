package handler

import (
	"errors"

	"github.com/evandrarf/wordbook-be/internal/delivery/http/usecase"
	"github.com/evandrarf/wordbook-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrSetNotFound),
		errors.Is(err, usecase.ErrWordNotFound),
		errors.Is(err, usecase.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, usecase.ErrEmptyPool):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// sendUsecaseError maps a usecase error to its status; 5xx details stay in the log.
func sendUsecaseError(ctx *fiber.Ctx, msg string, err error, logger *logrus.Logger) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		logger.WithError(err).WithField("path", ctx.Path()).Error(msg)
		return response.NewFailed(msg, fiber.NewError(code, ""), nil).Send(ctx)
	}
	return response.NewFailed(msg, fiber.NewError(code, err.Error()), logger).Send(ctx)
}
