package models

import (
	"time"
)

// Activity is an organizational unit (department-style grouping).
// Static reference data, seeded once at startup — users attach to one
// activity and the per-activity leaderboard groups by it.
type Activity struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"` // upper-case code, e.g. "VD"
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:ActivityID"`
}

// User is created implicitly on first login by name. There is no credential:
// identity is the display name alone, acceptable only for an internal
// low-stakes contest.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Email       string    `json:"email"`
	ActivityID  string    `json:"activity_id" gorm:"not null;index"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	TotalPoints int       `json:"total_points" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Activity Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID"`
}
