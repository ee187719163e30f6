package services

import (
	"log"
	"sort"

	"match-prediction-system/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type RankingService struct {
	DB *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{DB: db}
}

// RankingEntry is one leaderboard row.
type RankingEntry struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	UserActivity string `json:"userActivity"`
	TotalPoints  int    `json:"totalPoints"`
}

// ActivityRanking is one per-activity leaderboard group.
type ActivityRanking struct {
	ActivityName string         `json:"activityName"`
	Entries      []RankingEntry `json:"entries"`
}

// rankUsers assigns 1-based positions to users already sorted by the ranking
// order. Ties keep the deterministic read order (points desc, created_at asc,
// id asc) rather than sharing a rank.
func rankUsers(users []models.User) []RankingEntry {
	entries := make([]RankingEntry, len(users))
	for i, u := range users {
		entries[i] = RankingEntry{
			Rank:         i + 1,
			UserID:       u.ID,
			UserName:     u.Name,
			UserActivity: u.Activity.Name,
			TotalPoints:  u.TotalPoints,
		}
	}
	return entries
}

// GetIndividualRankings returns every user ordered by descending point total.
func (s *RankingService) GetIndividualRankings(c *fiber.Ctx) error {
	var users []models.User
	if err := s.DB.Preload("Activity").
		Order("total_points desc, created_at asc, id asc").
		Find(&users).Error; err != nil {
		log.Printf("[RANKING] individual query failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération du classement individuel"})
	}

	return c.JSON(fiber.Map{"rankings": rankUsers(users)})
}

// GetActivityRankings returns a leaderboard per activity, groups ordered by
// activity name under French collation.
func (s *RankingService) GetActivityRankings(c *fiber.Ctx) error {
	var activities []models.Activity
	err := s.DB.Preload("Users", func(db *gorm.DB) *gorm.DB {
		return db.Order("total_points desc, created_at asc, id asc")
	}).Find(&activities).Error
	if err != nil {
		log.Printf("[RANKING] activity query failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la récupération du classement par activité"})
	}

	coll := collate.New(language.French)
	sort.Slice(activities, func(i, j int) bool {
		return coll.CompareString(activities[i].Name, activities[j].Name) < 0
	})

	rankings := make([]ActivityRanking, len(activities))
	for i, activity := range activities {
		users := activity.Users
		for j := range users {
			users[j].Activity = models.Activity{Name: activity.Name}
		}
		rankings[i] = ActivityRanking{
			ActivityName: activity.Name,
			Entries:      rankUsers(users),
		}
	}

	return c.JSON(fiber.Map{"rankings": rankings})
}
