package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID `gorm:"not null" json:"booking_id"`
	StudentID     uuid.UUID `gorm:"not null" json:"student_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	TransactionID string    `gorm:"size:255;unique;not null" json:"transaction_id"`
	Status        string    `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
