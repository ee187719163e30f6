package models

import (
	"time"
)

// Prediction is a user's forecast for one match. The composite unique index
// on (user_id, match_id) is the real duplicate guard — the application-level
// "already predicted" check only exists for a friendly error message.
// Predictions are immutable once created; PointsEarned is written by match
// finalization.
type Prediction struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID          string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_match"`
	MatchID         string    `json:"match_id" gorm:"not null;uniqueIndex:idx_user_match"`
	PredictedScoreA int       `json:"predicted_score_a" gorm:"not null"`
	PredictedScoreB int       `json:"predicted_score_b" gorm:"not null"`
	PointsEarned    int       `json:"points_earned" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Match Match `json:"match,omitempty" gorm:"foreignKey:MatchID"`
}
