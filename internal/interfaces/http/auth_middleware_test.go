package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep-bau/ep-system/internal/domain/authz"
	"github.com/ep-bau/ep-system/pkg/jwt"
)

const testSecret = "test-secret"

func buildTestApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api", AuthMiddleware(testSecret))
	api.Get("/offen", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  GetUserID(c),
			"name":     GetName(c),
			"position": GetPosition(c),
		})
	})
	api.Get("/nur-admin", RequireRole(authz.PositionAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	api.Get("/waren-verwaltung", RequirePermission(authz.ActionManage, authz.ResWaren), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForPosition(t *testing.T, position string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u-1", "Anna Berger", position, "ep-system", 15)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	app := buildTestApp()

	t.Run("ohne token", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/api/offen", ""))
	})

	t.Run("kaputtes token", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/api/offen", "nicht.ein.jwt"))
	})

	t.Run("falsches secret", func(t *testing.T) {
		token, err := jwt.Generate("anderes-secret", "u-1", "Anna", authz.PositionAdmin, "ep-system", 15)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/api/offen", token))
	})

	t.Run("gueltiges token", func(t *testing.T) {
		assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/api/offen", tokenForPosition(t, authz.PositionWorker)))
	})
}

func TestRequireRole(t *testing.T) {
	app := buildTestApp()

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/api/nur-admin", tokenForPosition(t, authz.PositionAdmin)))
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/api/nur-admin", tokenForPosition(t, authz.PositionWorker)))
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/api/nur-admin", ""))
}

func TestRequirePermission(t *testing.T) {
	app := buildTestApp()

	// Warenverwaltung: Admin und Lager dürfen, Worker sieht nur lesend.
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/api/waren-verwaltung", tokenForPosition(t, authz.PositionAdmin)))
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/api/waren-verwaltung", tokenForPosition(t, authz.PositionLager)))
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/api/waren-verwaltung", tokenForPosition(t, authz.PositionWorker)))
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/api/waren-verwaltung", tokenForPosition(t, "Unbekannt")))
}

func TestClaimsInLocals(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest("GET", "/api/offen", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForPosition(t, authz.PositionBuero))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u-1", body["user_id"])
	assert.Equal(t, "Anna Berger", body["name"])
	assert.Equal(t, authz.PositionBuero, body["position"])
}
