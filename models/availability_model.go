package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot rows accumulate per tutor; repeated updates append,
// they never replace an existing slot.
type AvailabilitySlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID     uuid.UUID `gorm:"not null" json:"tutor_id"`
	DayOfWeek   string    `gorm:"size:20;not null" json:"day_of_week"`
	StartTime   string    `gorm:"size:10;not null" json:"start_time"`
	EndTime     string    `gorm:"size:10;not null" json:"end_time"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
}

func (AvailabilitySlot) TableName() string {
	return "availability"
}
