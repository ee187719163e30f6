package handlers

import (
	"match-prediction-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authService *services.AuthService, seedService *services.SeedService) {
	app.Post("/auth/login", authService.Login)

	// Reference-data seeding (idempotent)
	app.Post("/init/activities", seedService.InitActivities)
}
