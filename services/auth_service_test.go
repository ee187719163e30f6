package services_test

import (
	"net/http"
	"testing"

	"match-prediction-system/handlers"
	"match-prediction-system/models"
	"match-prediction-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	app := fiber.New()
	handlers.SetupAuthRoutes(app, services.NewAuthService(db), services.NewSeedService(db))
	return app, db
}

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"admin", "admin@company.com"},
		{"Jean Dupont", "jean.dupont@company.com"},
		{"Jean  Dupont", "jean.dupont@company.com"},
		{"Éric Le Goff", "eric.le.goff@company.com"},
		{"MARIE", "marie@company.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.DeriveEmail(tt.name), "name %q", tt.name)
	}
}

func TestLoginCreatesUserOnFirstSight(t *testing.T) {
	app, db := newAuthApp(t)
	createActivity(t, db, "VD")

	status, body := doJSON(t, app, http.MethodPost, "/auth/login",
		fiber.Map{"name": "Jean Dupont", "activityId": "vd"}, nil)
	require.Equal(t, http.StatusOK, status)

	user := body["user"].(map[string]any)
	assert.Equal(t, "Jean Dupont", user["name"])
	assert.Equal(t, "jean.dupont@company.com", user["email"])
	assert.Equal(t, false, user["is_admin"])
	assert.Equal(t, float64(0), user["total_points"])

	// Repeat login resolves to the same record, creating nothing
	status, body2 := doJSON(t, app, http.MethodPost, "/auth/login",
		fiber.Map{"name": "Jean Dupont", "activityId": "VD"}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user["id"], body2["user"].(map[string]any)["id"])

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginAdminFlag(t *testing.T) {
	app, db := newAuthApp(t)
	createActivity(t, db, "PGV")

	status, body := doJSON(t, app, http.MethodPost, "/auth/login",
		fiber.Map{"name": "admin", "activityId": "PGV"}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["user"].(map[string]any)["is_admin"])
}

func TestLoginValidation(t *testing.T) {
	app, db := newAuthApp(t)
	createActivity(t, db, "VD")

	status, body := doJSON(t, app, http.MethodPost, "/auth/login",
		fiber.Map{"name": "", "activityId": "VD"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Tous les champs sont requis", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/auth/login",
		fiber.Map{"name": "Jean", "activityId": "NOPE"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Activité non trouvée", body["error"])
}

func TestSeedActivitiesIdempotent(t *testing.T) {
	app, db := newAuthApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/init/activities", nil, nil)
	require.Equal(t, http.StatusOK, status)
	status, body := doJSON(t, app, http.MethodPost, "/init/activities", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["activities"], 4)

	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}
