package handlers

import (
	"match-prediction-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRankingRoutes(app *fiber.App, rankingService *services.RankingService) {
	app.Get("/rankings/individual", rankingService.GetIndividualRankings)
	app.Get("/rankings/activities", rankingService.GetActivityRankings)
}
