package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// The schema is created by hand because the production column defaults are
// Postgres expressions; everything else matches the model tags.
var testSchema = []string{
	`CREATE TABLE users (
		id text PRIMARY KEY,
		full_name text NOT NULL,
		email text NOT NULL UNIQUE,
		password text NOT NULL,
		phone text,
		role text NOT NULL DEFAULT 'student',
		avatar_url text,
		email_confirmed_at datetime,
		last_sign_in_at datetime,
		verification_token text UNIQUE,
		reset_password_token text UNIQUE,
		reset_password_token_expires_at datetime,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE courses (
		id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		title text NOT NULL,
		description text,
		image_url text,
		price numeric NOT NULL,
		original_price numeric,
		duration text,
		category text,
		age_range text,
		mode text,
		status text NOT NULL DEFAULT 'active',
		total_lessons integer,
		instructor_id text,
		created_at datetime,
		updated_at datetime
	)`,
	`CREATE TABLE enrollments (
		id text PRIMARY KEY,
		student_id text NOT NULL,
		course_id text NOT NULL,
		status text NOT NULL DEFAULT 'enrolled',
		progress integer DEFAULT 0,
		completed_lessons integer DEFAULT 0,
		enrolled_at datetime,
		completed_at datetime,
		next_class_at datetime
	)`,
	`CREATE TABLE cart_items (
		id text PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
		user_id text NOT NULL,
		course_id text NOT NULL,
		created_at datetime,
		UNIQUE (user_id, course_id)
	)`,
}

// setupTestDB points the package-level database.DB at a per-test in-memory
// store with the production GORM settings, TranslateError included.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range testSchema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create test schema: %v", err)
		}
	}

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
		sqlDB.Close()
	})

	return db
}

// asUser plants the decoded token the way the JWT middleware would, so
// handlers can be exercised without signing anything.
func asUser(userID uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"user_id": userID.String(),
			"role":    role,
		}})
		return c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, fullName, email string) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		FullName: fullName,
		Email:    email,
		Password: "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, title string, price float64, status string) models.Course {
	t.Helper()
	course := models.Course{
		ID:     uuid.New(),
		Title:  title,
		Price:  price,
		Status: status,
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	return course
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uuid.UUID, enrolledAt time.Time) models.Enrollment {
	t.Helper()
	enrollment := models.Enrollment{
		ID:         uuid.New(),
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     "enrolled",
		EnrolledAt: enrolledAt,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("failed to seed enrollment: %v", err)
	}
	return enrollment
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	return body
}
