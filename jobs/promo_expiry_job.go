package jobs

import (
	"log"
	"time"

	"github.com/educify/educify-backend/database"
	"github.com/educify/educify-backend/models"
)

// DeactivateExpiredPromoCodes flips is_active off on codes whose validity
// window has passed. The validate/apply lookups filter on the window
// themselves; this sweep keeps stale codes out of listings.
func DeactivateExpiredPromoCodes() {
	result := database.DB.Model(&models.PromoCode{}).
		Where("is_active = true AND valid_until < ?", time.Now()).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("🔥 Failed to deactivate expired promo codes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired promo code(s)", result.RowsAffected)
	}
}
