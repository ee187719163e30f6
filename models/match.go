package models

import (
	"time"
)

// Match lifecycle states. SCHEDULED → LOCKED → COMPLETED, with CANCELLED
// reachable from SCHEDULED or LOCKED. Only the administrator moves a match
// between states (plus the optional auto-lock scheduler).
const (
	MatchStatusScheduled = "SCHEDULED"
	MatchStatusLocked    = "LOCKED"
	MatchStatusCompleted = "COMPLETED"
	MatchStatusCancelled = "CANCELLED"
)

// Match is a single fixture users predict on. Actual scores are set only
// when the match is COMPLETED.
type Match struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	TeamA         string    `json:"team_a" gorm:"not null"`
	TeamB         string    `json:"team_b" gorm:"not null"`
	TeamALogoURL  string    `json:"team_a_logo_url,omitempty"`
	TeamBLogoURL  string    `json:"team_b_logo_url,omitempty"`
	MatchDateTime time.Time `json:"match_date_time" gorm:"not null;index"`
	Status        string    `json:"status" gorm:"type:varchar(16);default:'SCHEDULED'"`
	ActualScoreA  *int      `json:"actual_score_a,omitempty"`
	ActualScoreB  *int      `json:"actual_score_b,omitempty"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Predictions []Prediction `json:"predictions,omitempty" gorm:"foreignKey:MatchID"`
}
