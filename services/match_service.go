package services

import (
	"errors"
	"log"
	"path/filepath"
	"time"

	"match-prediction-system/models"
	"match-prediction-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type MatchService struct {
	DB    *gorm.DB
	Clock clockwork.Clock
}

func NewMatchService(db *gorm.DB, clock clockwork.Clock) *MatchService {
	return &MatchService{DB: db, Clock: clock}
}

// CreateMatch inserts a new fixture in SCHEDULED status with no actual score.
func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	var req struct {
		TeamA         string `json:"teamA"`
		TeamB         string `json:"teamB"`
		MatchDateTime string `json:"matchDateTime"` // RFC3339
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}
	if req.TeamA == "" || req.TeamB == "" || req.MatchDateTime == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Tous les champs sont requis"})
	}

	kickoff, err := time.Parse(time.RFC3339, req.MatchDateTime)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid matchDateTime (use RFC3339)"})
	}

	match := models.Match{
		ID:            uuid.NewString(),
		TeamA:         req.TeamA,
		TeamB:         req.TeamB,
		MatchDateTime: kickoff,
		Status:        models.MatchStatusScheduled,
	}
	if err := s.DB.Create(&match).Error; err != nil {
		log.Printf("[MATCH] create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la création du match"})
	}

	return c.JSON(fiber.Map{"match": match})
}

// GetAllMatches lists every match, ascending kickoff.
func (s *MatchService) GetAllMatches(c *fiber.Ctx) error {
	var matches []models.Match
	if err := s.DB.Order("match_date_time asc").Find(&matches).Error; err != nil {
		log.Printf("[MATCH] list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération des matchs"})
	}
	return c.JSON(fiber.Map{"matches": matches})
}

// GetCurrentMatch selects the single match to predict on right now: the
// earliest kickoff among (future SCHEDULED/LOCKED) and (overdue LOCKED, i.e.
// in progress but not yet scored). COMPLETED and CANCELLED never qualify.
// No qualifying match is a normal state, returned as {"match": null}.
func (s *MatchService) GetCurrentMatch(c *fiber.Ctx) error {
	now := s.Clock.Now()

	var match models.Match
	err := s.DB.
		Where("(match_date_time >= ? AND status IN ?) OR (match_date_time < ? AND status = ?)",
			now, []string{models.MatchStatusScheduled, models.MatchStatusLocked},
			now, models.MatchStatusLocked).
		Order("match_date_time asc").
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"match": nil, "prediction": nil})
		}
		log.Printf("[MATCH] current lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération du match actuel"})
	}

	// Attach the caller's prediction for this match, if any
	var prediction *models.Prediction
	if userID := c.Query("userId"); userID != "" {
		var p models.Prediction
		err := s.DB.Preload("Match").
			Where("user_id = ? AND match_id = ?", userID, match.ID).
			First(&p).Error
		if err == nil {
			prediction = &p
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[MATCH] prediction lookup failed: %v", err)
		}
	}

	return c.JSON(fiber.Map{"match": match, "prediction": prediction})
}

// LockMatch closes predictions: SCHEDULED → LOCKED.
func (s *MatchService) LockMatch(c *fiber.Ctx) error {
	return s.transition(c, models.MatchStatusLocked, models.MatchStatusScheduled)
}

// UnlockMatch re-opens predictions: LOCKED → SCHEDULED.
func (s *MatchService) UnlockMatch(c *fiber.Ctx) error {
	return s.transition(c, models.MatchStatusScheduled, models.MatchStatusLocked)
}

// CancelMatch retires a fixture: SCHEDULED or LOCKED → CANCELLED.
func (s *MatchService) CancelMatch(c *fiber.Ctx) error {
	return s.transition(c, models.MatchStatusCancelled,
		models.MatchStatusScheduled, models.MatchStatusLocked)
}

func (s *MatchService) transition(c *fiber.Ctx, target string, from ...string) error {
	var match models.Match
	if err := s.DB.First(&match, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Match non trouvé"})
		}
		log.Printf("[MATCH] lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la mise à jour du match"})
	}

	allowed := false
	for _, f := range from {
		if match.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.Status(400).JSON(fiber.Map{"error": "Transition impossible depuis le statut " + match.Status})
	}

	match.Status = target
	if err := s.DB.Save(&match).Error; err != nil {
		log.Printf("[MATCH] transition to %s failed: %v", target, err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la mise à jour du match"})
	}

	log.Printf("[MATCH] %s vs %s → %s", match.TeamA, match.TeamB, target)
	return c.JSON(fiber.Map{"match": match})
}

// SetResult records the actual score, marks the match COMPLETED and fans out
// scoring over every prediction on it. Runs in one transaction: pass one
// rewrites each prediction's points_earned, pass two applies the *net* delta
// (new award minus any previously applied award) to each owner's total, so
// re-finalizing with corrected scores converges instead of double-counting.
func (s *MatchService) SetResult(c *fiber.Ctx) error {
	var req struct {
		ScoreA *int `json:"scoreA"`
		ScoreB *int `json:"scoreB"`
	}
	if err := c.BodyParser(&req); err != nil || req.ScoreA == nil || req.ScoreB == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Les scores sont requis"})
	}
	if *req.ScoreA < 0 || *req.ScoreB < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Les scores doivent être positifs"})
	}

	var match models.Match
	var predictionsUpdated int

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&match, "id = ?", c.Params("id")).Error; err != nil {
			return err
		}

		var predictions []models.Prediction
		if err := tx.Where("match_id = ?", match.ID).Find(&predictions).Error; err != nil {
			return err
		}

		match.ActualScoreA = req.ScoreA
		match.ActualScoreB = req.ScoreB
		match.Status = models.MatchStatusCompleted
		if err := tx.Save(&match).Error; err != nil {
			return err
		}

		// Pass 1: score every prediction
		deltas := make(map[string]int, len(predictions))
		for i := range predictions {
			p := &predictions[i]
			points := CalculatePoints(p.PredictedScoreA, p.PredictedScoreB, *req.ScoreA, *req.ScoreB)
			deltas[p.UserID] += points - p.PointsEarned
			if err := tx.Model(&models.Prediction{}).Where("id = ?", p.ID).
				Update("points_earned", points).Error; err != nil {
				return err
			}
		}

		// Pass 2: accrue totals on the owning users
		for userID, delta := range deltas {
			if delta == 0 {
				continue
			}
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("total_points", gorm.Expr("total_points + ?", delta)).Error; err != nil {
				return err
			}
		}

		predictionsUpdated = len(predictions)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Match non trouvé"})
		}
		log.Printf("[MATCH] finalize failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la mise à jour du résultat"})
	}

	log.Printf("[MATCH] finalized %s %d-%d %s, %d predictions scored",
		match.TeamA, *req.ScoreA, *req.ScoreB, match.TeamB, predictionsUpdated)
	return c.JSON(fiber.Map{"match": match, "predictionsUpdated": predictionsUpdated})
}

// UploadTeamLogos attaches logo images to a match (multipart fields
// team_a_logo / team_b_logo, both optional).
func (s *MatchService) UploadTeamLogos(c *fiber.Ctx) error {
	var match models.Match
	if err := s.DB.First(&match, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Match non trouvé"})
		}
		log.Printf("[MATCH] lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la mise à jour du match"})
	}

	uploaded := false
	for field, target := range map[string]*string{
		"team_a_logo": &match.TeamALogoURL,
		"team_b_logo": &match.TeamBLogoURL,
	} {
		file, err := c.FormFile(field)
		if err != nil || file.Size == 0 {
			continue
		}
		ext := filepath.Ext(file.Filename)
		if ext == "" {
			ext = ".png"
		}
		url, err := utils.StoreLogo(file, "logos/"+uuid.NewString()+ext)
		if err != nil {
			log.Printf("[MATCH] logo upload failed: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de l'envoi du logo"})
		}
		*target = url
		uploaded = true
	}

	if !uploaded {
		return c.Status(400).JSON(fiber.Map{"error": "Aucun logo fourni"})
	}

	if err := s.DB.Save(&match).Error; err != nil {
		log.Printf("[MATCH] logo save failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la mise à jour du match"})
	}
	return c.JSON(fiber.Map{"match": match})
}
