package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/handlers"
	"github.com/kikilearn/learning_hub/middleware"
)

func EnrollmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	enrollments := api.Group("/enrollments", middleware.Protected())
	enrollments.Get("/me", handlers.GetMyEnrollments)

	api.Get("/career-test", middleware.Protected(), handlers.GetCareerTest)
}
