package models

import (
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID     uuid.UUID `gorm:"not null" json:"tutor_id"`
	Degree      string    `gorm:"size:255" json:"degree"`
	Institution string    `gorm:"size:255" json:"institution"`
	Year        *int      `json:"year,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
