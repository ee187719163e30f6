package handlers

import (
	"match-prediction-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictionRoutes(app *fiber.App, predictionService *services.PredictionService) {
	app.Post("/predictions", predictionService.CreatePrediction)
	app.Get("/predictions/mine", predictionService.GetMyPredictions)
}
