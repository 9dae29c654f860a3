package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
)

type EnrollmentResponse struct {
	ID               string        `json:"id"`
	Status           string        `json:"status"`
	DisplayStatus    string        `json:"display_status"`
	Progress         int           `json:"progress"`
	CompletedLessons int           `json:"completed_lessons"`
	EnrolledAt       time.Time     `json:"enrolled_at"`
	CompletedAt      *time.Time    `json:"completed_at"`
	NextClassAt      *time.Time    `json:"next_class_at"`
	Course           models.Course `json:"course"`
}

// DisplayStatus maps the stored enrollment status to its catalog-facing label.
// Only "enrolled" is renamed; everything else is shown as stored.
func DisplayStatus(status string) string {
	if status == "enrolled" {
		return "In Progress"
	}
	return status
}

func GetMyEnrollments(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var enrollments []models.Enrollment
	if err := database.DB.Preload("Course").
		Where("student_id = ?", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load enrollments"})
	}

	response := make([]EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		response = append(response, EnrollmentResponse{
			ID:               e.ID.String(),
			Status:           e.Status,
			DisplayStatus:    DisplayStatus(e.Status),
			Progress:         e.Progress,
			CompletedLessons: e.CompletedLessons,
			EnrolledAt:       e.EnrolledAt,
			CompletedAt:      e.CompletedAt,
			NextClassAt:      e.NextClassAt,
			Course:           e.Course,
		})
	}

	return c.JSON(response)
}
