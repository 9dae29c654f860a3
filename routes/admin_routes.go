package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/handlers"
	"github.com/kikilearn/learning_hub/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.AdminProtected(), middleware.AdminRequired())

	courses := admin.Group("/courses")
	courses.Get("", handlers.AdminListCourses)
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)

	admin.Get("/users", handlers.GetAllUsers)
	admin.Get("/statistics", handlers.GetUserStatistics)
	admin.Get("/enrollments", handlers.GetCourseEnrollments)
	admin.Get("/payments", handlers.AdminGetPayments)

	admin.Get("/uploads/signature", handlers.GenerateUploadSignature)
}
