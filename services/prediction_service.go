package services

import (
	"errors"
	"log"

	"match-prediction-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PredictionService struct {
	DB *gorm.DB
}

func NewPredictionService(db *gorm.DB) *PredictionService {
	return &PredictionService{DB: db}
}

// CreatePrediction records a forecast for a match, one per (user, match).
// Accepted only while the match is SCHEDULED; no update or delete exists.
func (s *PredictionService) CreatePrediction(c *fiber.Ctx) error {
	var req struct {
		UserID          string `json:"userId"`
		MatchID         string `json:"matchId"`
		PredictedScoreA *int   `json:"predictedScoreA"`
		PredictedScoreB *int   `json:"predictedScoreB"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}
	if req.UserID == "" || req.MatchID == "" || req.PredictedScoreA == nil || req.PredictedScoreB == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}
	if *req.PredictedScoreA < 0 || *req.PredictedScoreB < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Les scores doivent être positifs"})
	}

	var match models.Match
	if err := s.DB.First(&match, "id = ?", req.MatchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Match non trouvé"})
		}
		log.Printf("[PREDICTION] match lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la création du pronostic"})
	}

	if match.Status != models.MatchStatusScheduled {
		return c.Status(400).JSON(fiber.Map{"error": "Les pronostics sont fermés pour ce match"})
	}

	var count int64
	if err := s.DB.Model(&models.Prediction{}).
		Where("user_id = ? AND match_id = ?", req.UserID, req.MatchID).
		Count(&count).Error; err != nil {
		log.Printf("[PREDICTION] duplicate check failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la création du pronostic"})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Vous avez déjà fait un pronostic pour ce match"})
	}

	prediction := models.Prediction{
		ID:              uuid.NewString(),
		UserID:          req.UserID,
		MatchID:         req.MatchID,
		PredictedScoreA: *req.PredictedScoreA,
		PredictedScoreB: *req.PredictedScoreB,
	}
	if err := s.DB.Create(&prediction).Error; err != nil {
		// Two concurrent submissions can both pass the count check; the
		// unique index on (user_id, match_id) settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(400).JSON(fiber.Map{"error": "Vous avez déjà fait un pronostic pour ce match"})
		}
		log.Printf("[PREDICTION] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la création du pronostic"})
	}

	s.DB.Preload("Match").First(&prediction, "id = ?", prediction.ID)
	return c.JSON(fiber.Map{"prediction": prediction})
}

// GetMyPredictions lists the caller's predictions, newest first.
func (s *PredictionService) GetMyPredictions(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "User ID requis"})
	}

	var predictions []models.Prediction
	if err := s.DB.Preload("Match").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&predictions).Error; err != nil {
		log.Printf("[PREDICTION] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération des pronostics"})
	}

	return c.JSON(fiber.Map{"predictions": predictions})
}
