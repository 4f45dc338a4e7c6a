package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-not-for-production"

func testApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/admin-panel", JWTProtected(cfg), AdminRequired(nil, cfg), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signedToken(t *testing.T, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAdminRequiredRejectsAnonymous(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/admin-panel", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRequiredAcceptsOpsToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, AdminToken: "ops-override"}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/admin-panel", nil)
	req.Header.Set("X-Admin-Token", "ops-override")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRequiredAcceptsAllowlistedEmail(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, AdminEmails: "root@healthtrack.plus, ops@healthtrack.plus"}
	app := testApp(cfg)

	req := httptest.NewRequest("GET", "/admin-panel", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "ops@healthtrack.plus"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRequiredRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, AdminEmails: "ops@healthtrack.plus"}
	app := testApp(cfg)

	claims := jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "ops@healthtrack.plus",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-panel", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, parseCSV(" a@x.com ,, b@x.com "))
}

func TestContainsIgnoresEmptyNeedle(t *testing.T) {
	assert.False(t, contains([]string{""}, ""))
	assert.True(t, contains([]string{"a"}, "a"))
}
