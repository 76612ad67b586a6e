package routes

import (
	"github.com/educify/educify-backend/handlers"
	"github.com/educify/educify-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func PromoRoutes(app *fiber.App) {
	api := app.Group("/api")

	promo := api.Group("/promo", middleware.Protected())
	promo.Post("/validate", handlers.ValidatePromo)
	promo.Post("/apply", handlers.ApplyPromo)
	promo.Post("/create", handlers.CreatePromo)
}
