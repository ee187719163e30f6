// services/scheduler.go
package services

import (
	"log"
	"time"

	"match-prediction-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartAutoLockScheduler locks SCHEDULED matches once their kickoff has
// passed, so late predictions can't sneak in when no administrator is
// watching. Opt-in (AUTO_LOCK_MATCHES=true): by default lifecycle transitions
// stay administrator-driven.
func (s *MatchService) StartAutoLockScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: lock overdue scheduled matches
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var matches []models.Match
			now := s.Clock.Now()
			err := s.DB.Where("status = ? AND match_date_time <= ?", models.MatchStatusScheduled, now).
				Find(&matches).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, m := range matches {
				m.Status = models.MatchStatusLocked
				if err := s.DB.Save(&m).Error; err != nil {
					log.Printf("[Scheduler] Failed to lock match %s: %v", m.ID, err)
				} else {
					log.Printf("🔒 Auto-locked match: %s vs %s", m.TeamA, m.TeamB)
				}
			}
		}),
	)
}
