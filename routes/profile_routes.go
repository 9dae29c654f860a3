package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/handlers"
	"github.com/kikilearn/learning_hub/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
}
