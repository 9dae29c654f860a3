package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID        uuid.UUID  `gorm:"not null;index" json:"student_id"`
	CourseID         uuid.UUID  `gorm:"not null;index" json:"course_id"`
	Status           string     `gorm:"size:20;not null;default:'enrolled'" json:"status"`
	Progress         int        `gorm:"default:0" json:"progress"`
	CompletedLessons int        `gorm:"default:0" json:"completed_lessons"`
	EnrolledAt       time.Time  `json:"enrolled_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	NextClassAt      *time.Time `json:"next_class_at"`

	Student User   `gorm:"foreignkey:StudentID" json:"-"`
	Course  Course `gorm:"foreignkey:CourseID" json:"course"`
}
