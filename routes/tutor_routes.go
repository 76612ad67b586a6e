package routes

import (
	"github.com/educify/educify-backend/handlers"
	"github.com/educify/educify-backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TutorRoutes(app *fiber.App) {
	api := app.Group("/api")

	tutors := api.Group("/tutors")
	tutors.Get("", handlers.ListTutors)
	// Registered ahead of /:id so it is not swallowed by the id match.
	tutors.Get("/nearby", handlers.NearbyTutors)
	tutors.Get("/:id", handlers.GetTutor)
	tutors.Post("", middleware.Protected(), handlers.CreateTutor)
	tutors.Put("/:id/availability", middleware.Protected(), handlers.UpdateAvailability)
}
