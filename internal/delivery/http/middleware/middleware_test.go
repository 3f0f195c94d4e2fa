package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", NewMiddleware(nil).RequestID(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderXRequestID, "abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc", resp.Header.Get(fiber.HeaderXRequestID))
	})
}

func TestCorsMiddleware_Origins(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.Set("api.cors.origins", "https://wordbook.example")

	app := fiber.New()
	app.Use(NewMiddleware(&MiddlewareConfig{Config: v}).CorsMiddleware())
	app.Get("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://wordbook.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://wordbook.example", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
