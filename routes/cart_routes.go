package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/handlers"
	"github.com/kikilearn/learning_hub/middleware"
)

func CartRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	cart := api.Group("/cart", middleware.Protected())
	cart.Get("", handlers.GetMyCart)
	cart.Post("", handlers.AddToCart)
	cart.Delete("/:cartItemId", handlers.RemoveFromCart)
	cart.Post("/checkout", handlers.Checkout)
}
