package services

import (
	"log"

	"match-prediction-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Activity codes the contest runs with. Reference data, inserted once.
var defaultActivities = []models.Activity{
	{Name: "VD", Description: "VD"},
	{Name: "PGV", Description: "PGV"},
	{Name: "AMC", Description: "AMC"},
	{Name: "EDITA", Description: "EDITA"},
}

type SeedService struct {
	DB *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db}
}

// SeedActivities upserts the default activity codes. Idempotent: existing
// rows are left untouched (ON CONFLICT name DO NOTHING).
func (s *SeedService) SeedActivities() error {
	for _, activity := range defaultActivities {
		activity.ID = uuid.NewString()
		err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&activity).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// InitActivities is the HTTP face of SeedActivities.
func (s *SeedService) InitActivities(c *fiber.Ctx) error {
	if err := s.SeedActivities(); err != nil {
		log.Printf("[SEED] activity seed failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de l'initialisation des activités"})
	}

	var activities []models.Activity
	if err := s.DB.Order("name asc").Find(&activities).Error; err != nil {
		log.Printf("[SEED] activity list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de l'initialisation des activités"})
	}

	return c.JSON(fiber.Map{
		"message":    "Activités initialisées avec succès",
		"activities": activities,
	})
}
