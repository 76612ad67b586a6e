package handlers

import (
	"time"

	"github.com/educify/educify-backend/database"
	"github.com/educify/educify-backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID := claims["id"].(string)

	bookings := make([]models.Booking, 0)
	err := database.DB.
		Preload("Tutor").Preload("Tutor.User").
		Where("student_id = ?", studentID).
		Order("booking_date DESC, booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(bookings)
}

type CreateBookingRequest struct {
	TutorID  string  `json:"tutor_id" validate:"required,uuid"`
	Subject  string  `json:"subject" validate:"required"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string  `json:"time" validate:"required"`
	Duration int     `json:"duration" validate:"required"`
	Location string  `json:"location,omitempty"`
	Amount   float64 `json:"amount" validate:"required"`
}

// CreateBooking does not check the slot against tutor availability;
// overlapping bookings for the same tutor are possible.
func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	bookingDate, _ := time.Parse("2006-01-02", req.Date)

	location := req.Location
	if location == "" {
		location = "Online"
	}

	booking := models.Booking{
		StudentID:   studentID,
		TutorID:     tutorID,
		Subject:     req.Subject,
		BookingDate: bookingDate,
		BookingTime: req.Time,
		Duration:    req.Duration,
		Location:    location,
		Amount:      req.Amount,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBookingStatus overwrites the status unconditionally; no transition
// is rejected.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	booking.Status = req.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(booking)
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["id"].(string))

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	review := models.Review{
		TutorID:   booking.TutorID,
		StudentID: studentID,
		BookingID: booking.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	// The recompute runs as separate statements after the insert, so two
	// concurrent reviews for the same tutor can leave a stale aggregate.
	var agg struct {
		AvgRating float64
		Count     int64
	}
	database.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS count").
		Where("tutor_id = ?", booking.TutorID).
		Scan(&agg)

	database.DB.Model(&models.Tutor{}).
		Where("id = ?", booking.TutorID).
		Updates(map[string]interface{}{
			"rating":        agg.AvgRating,
			"reviews_count": agg.Count,
		})

	return c.Status(fiber.StatusCreated).JSON(review)
}
