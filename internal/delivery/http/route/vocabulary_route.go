package route

import (
	"github.com/evandrarf/wordbook-be/internal/delivery/http/handler"
	"github.com/evandrarf/wordbook-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupVocabularyRoute(api *fiber.App, handler handler.VocabularyHandler, m *middleware.Middleware) {
	router := api.Group("/vocabulary")
	{
		router.Get("/sets", handler.ListSets)
		router.Get("/sets/:set/words", handler.ListWords)
	}

	favoriteRouter := api.Group("/favorites")
	{
		favoriteRouter.Get("/", handler.ListFavorites)
		favoriteRouter.Post("/toggle", handler.ToggleFavorite)
	}
}
