package handlers

import (
	"sort"
	"strconv"

	"github.com/educify/educify-backend/database"
	"github.com/educify/educify-backend/models"
	"github.com/educify/educify-backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const defaultNearbyRadiusKm = 10

// ListTutors applies only the filters present on the query string; each
// one becomes a parameterized clause.
func ListTutors(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Preload("Education").Preload("Availability")

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject ILIKE ?", "%"+subject+"%")
	}
	if minRate := c.Query("minRate"); minRate != "" {
		if v, err := strconv.ParseFloat(minRate, 64); err == nil {
			query = query.Where("rate >= ?", v)
		}
	}
	if maxRate := c.Query("maxRate"); maxRate != "" {
		if v, err := strconv.ParseFloat(maxRate, 64); err == nil {
			query = query.Where("rate <= ?", v)
		}
	}

	tutors := make([]models.Tutor, 0)
	if err := query.Order("rating DESC").Find(&tutors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(tutors)
}

func GetTutor(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var tutor models.Tutor
	err = database.DB.
		Preload("User").Preload("Education").Preload("Availability").
		First(&tutor, "id = ?", tutorID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	reviews := make([]models.Review, 0)
	database.DB.Preload("Student").
		Where("tutor_id = ?", tutorID).
		Order("created_at DESC").
		Find(&reviews)

	return c.JSON(struct {
		models.Tutor
		Reviews []models.Review `json:"reviews"`
	}{tutor, reviews})
}

type CreateTutorRequest struct {
	Subject         string   `json:"subject" validate:"required"`
	Rate            float64  `json:"rate" validate:"required"`
	Experience      *int     `json:"experience,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Bio             *string  `json:"bio,omitempty"`
	LocationAddress *string  `json:"location_address,omitempty"`
	LocationLat     *float64 `json:"location_lat,omitempty"`
	LocationLng     *float64 `json:"location_lng,omitempty"`
}

func CreateTutor(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["id"].(string))

	var req CreateTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutor := models.Tutor{
		UserID:          userID,
		Subject:         req.Subject,
		Rate:            req.Rate,
		Experience:      req.Experience,
		Languages:       req.Languages,
		Bio:             req.Bio,
		LocationAddress: req.LocationAddress,
		LocationLat:     req.LocationLat,
		LocationLng:     req.LocationLng,
	}
	if err := database.DB.Create(&tutor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(tutor)
}

type AvailabilityRequest struct {
	DayOfWeek   string `json:"day_of_week" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	IsAvailable bool   `json:"is_available"`
}

// UpdateAvailability appends a slot; it never replaces one.
func UpdateAvailability(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slot := models.AvailabilitySlot{
		TutorID:     tutorID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}
	if err := database.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(slot)
}

type TutorDistance struct {
	models.Tutor
	Distance float64 `json:"distance"`
}

func NearbyTutors(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Latitude and longitude required"})
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Latitude and longitude required"})
	}

	radiusKm := float64(defaultNearbyRadiusKm)
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if v, err := strconv.ParseFloat(radiusStr, 64); err == nil {
			radiusKm = v
		}
	}

	var tutors []models.Tutor
	err := database.DB.Preload("User").
		Where("location_lat IS NOT NULL AND location_lng IS NOT NULL").
		Find(&tutors).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error"})
	}

	return c.JSON(fiber.Map{
		"tutors": nearbyTutors(tutors, lat, lng, radiusKm),
		"center": fiber.Map{"lat": lat, "lng": lng},
		"radius": radiusKm,
	})
}

func nearbyTutors(tutors []models.Tutor, lat, lng, radiusKm float64) []TutorDistance {
	results := make([]TutorDistance, 0)
	for _, tutor := range tutors {
		if tutor.LocationLat == nil || tutor.LocationLng == nil {
			continue
		}
		distance := utils.HaversineKm(lat, lng, *tutor.LocationLat, *tutor.LocationLng)
		if distance <= radiusKm {
			results = append(results, TutorDistance{Tutor: tutor, Distance: distance})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results
}
