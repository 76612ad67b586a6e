package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID `gorm:"not null" json:"student_id"`
	TutorID     uuid.UUID `gorm:"not null" json:"tutor_id"`
	Subject     string    `gorm:"size:255;not null" json:"subject"`
	BookingDate time.Time `gorm:"type:date;not null" json:"booking_date"`
	BookingTime string    `gorm:"size:10;not null" json:"booking_time"`
	Duration    int       `gorm:"not null" json:"duration"`
	Location    string    `gorm:"size:255;default:'Online'" json:"location"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`

	Student User  `gorm:"foreignkey:StudentID" json:"-"`
	Tutor   Tutor `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
