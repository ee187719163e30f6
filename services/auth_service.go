package services

import (
	"errors"
	"log"
	"strings"

	"match-prediction-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const emailDomain = "@company.com"

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// DeriveEmail builds the synthetic address for a display name: lower-cased,
// accents transliterated, whitespace runs collapsed to dots.
// "Jean  Dupont" → "jean.dupont@company.com"
func DeriveEmail(name string) string {
	local := strings.ReplaceAll(slug.Make(name), "-", ".")
	return local + emailDomain
}

// Login resolves a display name + activity code to a user, creating the user
// on first sight. No credential check exists — identity is name-based only.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req struct {
		Name       string `json:"name"`
		ActivityID string `json:"activityId"` // activity *code*, e.g. "VD"
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ActivityID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}

	var activity models.Activity
	if err := s.DB.Where("name = ?", strings.ToUpper(req.ActivityID)).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(400).JSON(fiber.Map{"error": "Activité non trouvée"})
		}
		log.Printf("[AUTH] activity lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la connexion"})
	}

	user, err := s.findOrCreateUser(req.Name, activity.ID)
	if err != nil {
		log.Printf("[AUTH] login failed for %q: %v", req.Name, err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la connexion"})
	}

	return c.JSON(fiber.Map{"user": fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"name":         user.Name,
		"activity_id":  user.ActivityID,
		"is_admin":     user.IsAdmin,
		"total_points": user.TotalPoints,
	}})
}

// findOrCreateUser is the idempotent upsert-by-name. Two concurrent first
// logins can both miss the read; the unique index on users.name rejects the
// second insert, and we fall back to re-reading the winner's row.
func (s *AuthService) findOrCreateUser(name, activityID string) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Activity").Where("name = ?", name).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      DeriveEmail(name),
		ActivityID: activityID,
		IsAdmin:    name == "admin",
	}
	if err := s.DB.Create(&user).Error; err != nil {
		// lost the insert race — return the existing row
		var existing models.User
		if readErr := s.DB.Preload("Activity").Where("name = ?", name).First(&existing).Error; readErr == nil {
			return &existing, nil
		}
		return nil, err
	}

	s.DB.Preload("Activity").First(&user, "id = ?", user.ID)
	log.Printf("[AUTH] created user %s (%s)", user.Name, user.ID)
	return &user, nil
}
