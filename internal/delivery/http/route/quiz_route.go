package route

import (
	"github.com/evandrarf/wordbook-be/internal/delivery/http/handler"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoute(api *fiber.App, handler handler.QuizHandler, m *middleware.Middleware) {
	router := api.Group("/quiz/sessions", m.RequestID())
	{
		router.Post("/", handler.Start)
		router.Get("/:session_id", handler.Get)
		router.Delete("/:session_id", handler.Reset)
		router.Post("/:session_id/answer", handler.SubmitAnswer)
		router.Post("/:session_id/next", handler.Next)
		router.Post("/:session_id/keys", handler.PressKey)
		router.Get("/:session_id/hint", handler.Hint)
	}
}
