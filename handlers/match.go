package handlers

import (
	"match-prediction-system/middleware"
	"match-prediction-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMatchRoutes(app *fiber.App, db *gorm.DB, matchService *services.MatchService) {
	// 🔓 Public routes
	app.Get("/matches", matchService.GetAllMatches)
	app.Get("/matches/current", matchService.GetCurrentMatch)

	// 🔒 Match administration (lifecycle transitions, results, logos).
	// Guards go per-route: a Use on the /matches prefix would also swallow
	// the public GETs above.
	userCtx := middleware.UserContextMiddleware(db)
	adminOnly := middleware.AdminOnlyMiddleware()

	app.Post("/matches", userCtx, adminOnly, matchService.CreateMatch)
	app.Post("/matches/:id/lock", userCtx, adminOnly, matchService.LockMatch)
	app.Post("/matches/:id/unlock", userCtx, adminOnly, matchService.UnlockMatch)
	app.Post("/matches/:id/cancel", userCtx, adminOnly, matchService.CancelMatch)
	app.Post("/matches/:id/result", userCtx, adminOnly, matchService.SetResult)
	app.Post("/matches/:id/logos", userCtx, adminOnly, matchService.UploadTeamLogos)
}
