package routes

import (
	"github.com/educify/educify-backend/handlers"
	"github.com/educify/educify-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", handlers.CreatePayment)
	payments.Get("/booking/:bookingId", handlers.GetPaymentByBooking)
}
