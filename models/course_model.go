package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	ImageURL      string     `gorm:"size:255" json:"image_url"`
	Price         float64    `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice *float64   `gorm:"type:numeric(10,2)" json:"original_price"`
	Duration      string     `gorm:"size:100" json:"duration"`
	Category      string     `gorm:"size:100" json:"category"`
	AgeRange      string     `gorm:"size:50" json:"age_range"`
	Mode          string     `gorm:"size:20" json:"mode"`
	Status        string     `gorm:"size:20;not null;default:'active'" json:"status"`
	TotalLessons  *int       `json:"total_lessons"`
	InstructorID  *uuid.UUID `json:"instructor_id"`

	Instructor *User `gorm:"foreignkey:InstructorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
