package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Tutor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"not null" json:"user_id"`
	Subject         string         `gorm:"size:255;not null" json:"subject"`
	Rate            float64        `gorm:"type:numeric(10,2);not null" json:"rate"`
	Experience      *int           `json:"experience,omitempty"`
	Rating          float64        `gorm:"type:numeric(3,2);default:0" json:"rating"`
	ReviewsCount    int            `gorm:"default:0" json:"reviews_count"`
	Languages       pq.StringArray `gorm:"type:text[]" json:"languages,omitempty"`
	Bio             *string        `gorm:"type:text" json:"bio,omitempty"`
	LocationAddress *string        `gorm:"size:255" json:"location_address,omitempty"`
	LocationLat     *float64       `json:"location_lat,omitempty"`
	LocationLng     *float64       `json:"location_lng,omitempty"`
	Verified        bool           `gorm:"default:false" json:"verified"`

	User         User               `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Education    []Education        `gorm:"foreignkey:TutorID" json:"education"`
	Availability []AvailabilitySlot `gorm:"foreignkey:TutorID" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
