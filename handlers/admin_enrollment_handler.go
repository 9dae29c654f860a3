package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
)

type RosterCourse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type RosterEnrollment struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Status     string    `json:"status"`
	Progress   int       `json:"progress"`
	UserEmail  string    `json:"user_email"`
	UserName   string    `json:"user_name"`
}

type CourseWithEnrollments struct {
	Course      RosterCourse       `json:"course"`
	Enrollments []RosterEnrollment `json:"enrollments"`
}

// GetCourseEnrollments builds the per-course roster: active courses, their
// enrollments, and the enrolled student's identity. A failed student lookup
// only downgrades that one row to placeholder text; the rest of the roster is
// unaffected.
func GetCourseEnrollments(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.DB.Select("id", "title", "status").Where("status = ?", "active").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses for roster: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load courses"})
	}

	roster := make([]CourseWithEnrollments, 0, len(courses))
	for _, course := range courses {
		var enrollments []models.Enrollment
		if err := database.DB.Where("course_id = ?", course.ID).Find(&enrollments).Error; err != nil {
			log.Printf("Error fetching enrollments for course %s: %v", course.ID, err)
			continue
		}

		enriched := make([]RosterEnrollment, 0, len(enrollments))
		for _, enrollment := range enrollments {
			row := RosterEnrollment{
				ID:         enrollment.ID.String(),
				StudentID:  enrollment.StudentID.String(),
				CourseID:   enrollment.CourseID.String(),
				EnrolledAt: enrollment.EnrolledAt,
				Status:     enrollment.Status,
				Progress:   enrollment.Progress,
				UserEmail:  "Unknown",
				UserName:   "Not provided",
			}

			var student models.User
			if err := database.DB.First(&student, "id = ?", enrollment.StudentID).Error; err != nil {
				log.Printf("Error fetching student %s: %v", enrollment.StudentID, err)
			} else {
				if student.Email != "" {
					row.UserEmail = student.Email
				}
				if student.FullName != "" {
					row.UserName = student.FullName
				}
			}

			enriched = append(enriched, row)
		}

		roster = append(roster, CourseWithEnrollments{
			Course: RosterCourse{
				ID:     course.ID.String(),
				Title:  course.Title,
				Status: course.Status,
			},
			Enrollments: enriched,
		})
	}

	return c.JSON(roster)
}
