package services_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"match-prediction-system/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens an isolated in-memory database with the production
// schema. Single connection so every query sees the same :memory: store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Activity{},
		&models.User{},
		&models.Match{},
		&models.Prediction{},
	))
	return db
}

func createActivity(t *testing.T, db *gorm.DB, name string) models.Activity {
	t.Helper()
	activity := models.Activity{ID: uuid.NewString(), Name: name, Description: name}
	require.NoError(t, db.Create(&activity).Error)
	return activity
}

func createUser(t *testing.T, db *gorm.DB, name, activityID string, admin bool) models.User {
	t.Helper()
	user := models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      name + "@company.com",
		ActivityID: activityID,
		IsAdmin:    admin,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createMatch(t *testing.T, db *gorm.DB, kickoff time.Time, status string) models.Match {
	t.Helper()
	match := models.Match{
		ID:            uuid.NewString(),
		TeamA:         "France",
		TeamB:         "Italie",
		MatchDateTime: kickoff,
		Status:        status,
	}
	require.NoError(t, db.Create(&match).Error)
	return match
}

func createPrediction(t *testing.T, db *gorm.DB, userID, matchID string, scoreA, scoreB int) models.Prediction {
	t.Helper()
	prediction := models.Prediction{
		ID:              uuid.NewString(),
		UserID:          userID,
		MatchID:         matchID,
		PredictedScoreA: scoreA,
		PredictedScoreB: scoreB,
	}
	require.NoError(t, db.Create(&prediction).Error)
	return prediction
}

// doJSON sends a JSON request through the fiber app and decodes the response
// body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func adminHeaders(user models.User) map[string]string {
	return map[string]string{"X-User-ID": user.ID}
}
