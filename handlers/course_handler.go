package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
)

// ListActiveCourses backs the public catalog. Only active courses are visible,
// newest first. A store failure degrades to an empty catalog rather than an
// error page; the caller shows its own empty state.
func ListActiveCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Where("status = ?", "active").Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return c.JSON([]models.Course{})
	}
	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}
