package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
)

// CourseRequest is shared by create and update. Optional numeric fields are
// pointers: a blank form field persists NULL, never 0.
type CourseRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"image_url"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	Duration      string   `json:"duration"`
	Category      string   `json:"category"`
	AgeRange      string   `json:"age_range"`
	Mode          string   `json:"mode" validate:"omitempty,oneof=Online Offline Hybrid"`
	Status        string   `json:"status" validate:"omitempty,oneof=active inactive archived"`
	TotalLessons  *int     `json:"total_lessons" validate:"omitempty,gte=0"`
}

// AdminListCourses is unfiltered: the back office sees inactive and archived
// courses too.
func AdminListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Order("created_at desc").Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}
	return c.JSON(courses)
}

func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	adminID, err := uuid.Parse(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user identity"})
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	course := models.Course{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Duration:      req.Duration,
		Category:      req.Category,
		AgeRange:      req.AgeRange,
		Mode:          req.Mode,
		Status:        status,
		TotalLessons:  req.TotalLessons,
		InstructorID:  &adminID,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.ImageURL = req.ImageURL
	course.Price = req.Price
	course.OriginalPrice = req.OriginalPrice
	course.Duration = req.Duration
	course.Category = req.Category
	course.AgeRange = req.AgeRange
	course.Mode = req.Mode
	if req.Status != "" {
		course.Status = req.Status
	}
	course.TotalLessons = req.TotalLessons

	// Full save so cleared optional fields write NULL back.
	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

// DeleteCourse is a hard delete. Cart and enrollment rows referencing the
// course are left to the store's foreign-key policy.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	result := database.DB.Delete(&models.Course{}, "id = ?", courseID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
