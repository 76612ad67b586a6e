package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/educify/educify-backend/database"
	"github.com/educify/educify-backend/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func activePromoByCode(code string) (models.PromoCode, error) {
	now := time.Now()

	var promo models.PromoCode
	err := database.DB.
		Where("code = ? AND is_active = true AND valid_from <= ? AND valid_until >= ?",
			strings.ToUpper(code), now, now).
		First(&promo).Error
	return promo, err
}

func computeDiscount(discountType string, discountValue, originalAmount float64) (discount, finalAmount float64) {
	switch discountType {
	case "percentage":
		discount = originalAmount * discountValue / 100
		finalAmount = originalAmount - discount
	case "fixed":
		discount = discountValue
		finalAmount = originalAmount - discount
		if finalAmount < 0 {
			finalAmount = 0
		}
	default:
		finalAmount = originalAmount
	}
	return discount, finalAmount
}

func discountMessage(discountType string, discountValue float64) string {
	if discountType == "percentage" {
		return fmt.Sprintf("%g%% discount applied!", discountValue)
	}
	return fmt.Sprintf("$%g discount applied!", discountValue)
}

type ValidatePromoRequest struct {
	Code string `json:"code"`
}

func ValidatePromo(c *fiber.Ctx) error {
	var req ValidatePromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Promo code required"})
	}

	promo, err := activePromoByCode(req.Code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid or expired promo code"})
	}

	if promo.MaxUses != nil && promo.UsedCount >= *promo.MaxUses {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Promo code has reached maximum usage"})
	}

	return c.JSON(fiber.Map{
		"valid":          true,
		"code":           promo.Code,
		"discount_type":  promo.DiscountType,
		"discount_value": promo.DiscountValue,
		"message":        discountMessage(promo.DiscountType, promo.DiscountValue),
	})
}

type ApplyPromoRequest struct {
	Code           string  `json:"code" validate:"required"`
	OriginalAmount float64 `json:"original_amount"`
}

// ApplyPromo does not re-check max_uses; the counter increments on every
// call, even past the cap.
func ApplyPromo(c *fiber.Ctx) error {
	var req ApplyPromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	promo, err := activePromoByCode(req.Code)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invalid promo code"})
	}

	discount, finalAmount := computeDiscount(promo.DiscountType, promo.DiscountValue, req.OriginalAmount)

	database.DB.Model(&models.PromoCode{}).
		Where("id = ?", promo.ID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	return c.JSON(fiber.Map{
		"original_amount": req.OriginalAmount,
		"discount":        discount,
		"final_amount":    finalAmount,
		"promo_code":      promo.Code,
	})
}

type CreatePromoRequest struct {
	Code          string  `json:"code" validate:"required"`
	DiscountType  string  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64 `json:"discount_value" validate:"required"`
	ValidFrom     string  `json:"valid_from" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ValidUntil    string  `json:"valid_until" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	MaxUses       *int    `json:"max_uses,omitempty"`
}

// CreatePromo is open to any authenticated caller; there is no admin
// check.
func CreatePromo(c *fiber.Ctx) error {
	var req CreatePromoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validFrom, _ := time.Parse(time.RFC3339, req.ValidFrom)
	validUntil, _ := time.Parse(time.RFC3339, req.ValidUntil)

	promo := models.PromoCode{
		Code:          strings.ToUpper(req.Code),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		ValidFrom:     validFrom,
		ValidUntil:    validUntil,
		MaxUses:       req.MaxUses,
	}
	if err := database.DB.Create(&promo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(promo)
}
