package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kikilearn/learning_hub/models"
	"github.com/stretchr/testify/assert"
)

func adminCourseTestApp(adminID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Post("/admin/courses", asUser(adminID, "admin"), CreateCourse)
	app.Put("/admin/courses/:courseId", asUser(adminID, "admin"), UpdateCourse)
	return app
}

func TestCreateCourseBlankOptionalsStayNull(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com")
	app := adminCourseTestApp(admin.ID)

	payload := map[string]interface{}{
		"title": "Python Basics",
		"price": 799.00,
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/admin/courses", payload))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.Course
	assert.NoError(t, db.First(&saved, "title = ?", "Python Basics").Error)
	assert.Nil(t, saved.OriginalPrice)
	assert.Nil(t, saved.TotalLessons)
	assert.Equal(t, "active", saved.Status)
	if assert.NotNil(t, saved.InstructorID) {
		assert.Equal(t, admin.ID, *saved.InstructorID)
	}
}

func TestCreateCourseKeepsProvidedOptionals(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com")
	app := adminCourseTestApp(admin.ID)

	payload := map[string]interface{}{
		"title":          "Robotics Bootcamp",
		"price":          999.00,
		"original_price": 1499.00,
		"total_lessons":  24,
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/admin/courses", payload))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.Course
	assert.NoError(t, db.First(&saved, "title = ?", "Robotics Bootcamp").Error)
	if assert.NotNil(t, saved.OriginalPrice) {
		assert.InDelta(t, 1499.00, *saved.OriginalPrice, 0.001)
	}
	if assert.NotNil(t, saved.TotalLessons) {
		assert.Equal(t, 24, *saved.TotalLessons)
	}
}

func TestUpdateCourseClearedOptionalsWriteNullBack(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com")
	app := adminCourseTestApp(admin.ID)

	original := 1499.00
	lessons := 24
	course := models.Course{
		ID:            uuid.New(),
		Title:         "Robotics Bootcamp",
		Price:         999.00,
		OriginalPrice: &original,
		TotalLessons:  &lessons,
		Status:        "active",
	}
	assert.NoError(t, db.Create(&course).Error)

	payload := map[string]interface{}{
		"title": "Robotics Bootcamp",
		"price": 999.00,
	}

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/admin/courses/"+course.ID.String(), payload))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved models.Course
	assert.NoError(t, db.First(&saved, "id = ?", course.ID).Error)
	assert.Nil(t, saved.OriginalPrice)
	assert.Nil(t, saved.TotalLessons)
}
