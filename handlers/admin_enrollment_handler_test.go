package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCourseRosterFallsBackForMissingStudent(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "Robotics Bootcamp", 999.00, "active")
	seedCourse(t, db, "Archived Course", 499.00, "archived")

	student := seedUser(t, db, "Brian Otieno", "brian@example.com")
	seedEnrollment(t, db, student.ID, course.ID, time.Now())

	// An enrollment pointing at a student id with no matching user row.
	ghostID := uuid.New()
	seedEnrollment(t, db, ghostID, course.ID, time.Now())

	app := fiber.New()
	app.Get("/admin/enrollments", asUser(uuid.New(), "admin"), GetCourseEnrollments)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/enrollments", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var roster []CourseWithEnrollments
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&roster))

	// Only the active course makes the roster.
	if !assert.Len(t, roster, 1) {
		return
	}
	assert.Equal(t, course.ID.String(), roster[0].Course.ID)
	if !assert.Len(t, roster[0].Enrollments, 2) {
		return
	}

	rows := make(map[string]RosterEnrollment, len(roster[0].Enrollments))
	for _, row := range roster[0].Enrollments {
		rows[row.StudentID] = row
	}

	ghost, ok := rows[ghostID.String()]
	if assert.True(t, ok) {
		assert.Equal(t, "Unknown", ghost.UserEmail)
		assert.Equal(t, "Not provided", ghost.UserName)
	}

	known, ok := rows[student.ID.String()]
	if assert.True(t, ok) {
		assert.Equal(t, "brian@example.com", known.UserEmail)
		assert.Equal(t, "Brian Otieno", known.UserName)
	}
}
