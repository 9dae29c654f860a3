package models

import (
	"time"

	"github.com/google/uuid"
)

// One row per (user, course); the composite unique index is what turns a
// repeated add-to-cart into a friendly "already in cart" instead of a second row.
type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;uniqueIndex:idx_cart_items_user_course" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null;uniqueIndex:idx_cart_items_user_course" json:"course_id"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
}
