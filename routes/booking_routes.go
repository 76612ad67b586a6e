package routes

import (
	"github.com/educify/educify-backend/handlers"
	"github.com/educify/educify-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("", handlers.GetMyBookings)
	bookings.Post("", handlers.CreateBooking)
	bookings.Patch("/:id", handlers.UpdateBookingStatus)
	bookings.Post("/:id/review", handlers.CreateReview)
}
