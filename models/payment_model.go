package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment rows are migrated and listed for the back office but never created or
// transitioned by this service; checkout is not wired to a gateway yet.
type Payment struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID        *uuid.UUID `json:"student_id"`
	CourseID         *uuid.UUID `json:"course_id"`
	EnrollmentID     *uuid.UUID `json:"enrollment_id"`
	Amount           float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency         string     `gorm:"size:3;default:'INR'" json:"currency"`
	PaymentMethod    *string    `gorm:"size:50" json:"payment_method"`
	PaymentGateway   *string    `gorm:"size:50" json:"payment_gateway"`
	PaymentStatus    string     `gorm:"size:20;default:'pending'" json:"payment_status"`
	UpiTransactionID *string    `gorm:"size:255" json:"upi_transaction_id"`

	Enrollment *Enrollment `gorm:"foreignkey:EnrollmentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
