package handlers

import (
	"github.com/educify/educify-backend/database"
	"github.com/educify/educify-backend/models"
	"github.com/educify/educify-backend/notifications"
	"github.com/educify/educify-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// CreatePayment records the charge and confirms the booking in two
// independent statements. There is no gateway behind this; the record is
// the payment.
func CreatePayment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["id"].(string))

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bookingID, _ := uuid.Parse(req.BookingID)

	payment := models.Payment{
		BookingID:     bookingID,
		StudentID:     studentID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: utils.GenerateTransactionID(),
		Status:        "completed",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	database.DB.Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", "confirmed")

	var booking models.Booking
	if err := database.DB.Preload("Student").First(&booking, "id = ?", bookingID).Error; err == nil {
		go notifications.SendEmail(booking.Student.Name, booking.Student.Email, "Your Booking is Confirmed!", "<h1>Booking Confirmed</h1><p>Your payment was received and your session is confirmed.</p>")
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func GetPaymentByBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var payment models.Payment
	if err := database.DB.Where("booking_id = ?", bookingID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	return c.JSON(payment)
}
