package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campus/config"
	"campus/models"
)

func testConfig() *config.Config {
	return &config.Config{JWTKey: "test-secret", SaltRound: 4, TokenTTLMin: 120}
}

func protectedApp(cfg *config.Config, role string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{Protected(cfg)}
	if role != "" {
		handlers = append(handlers, RequireRole(role))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/ping", handlers...)
	return app
}

func TestProtectedAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	user := &models.User{Model: gorm.Model{ID: 7}, Name: "Alice", Role: models.RoleInstructor}

	token, err := GenerateJWT(cfg, user)
	require.NoError(t, err)

	app := protectedApp(cfg, "")
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRejectsMissingHeader(t *testing.T) {
	app := protectedApp(testConfig(), "")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	app := protectedApp(testConfig(), "")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsTokenSignedWithOtherKey(t *testing.T) {
	other := &config.Config{JWTKey: "other-secret", TokenTTLMin: 120}
	user := &models.User{Model: gorm.Model{ID: 7}, Role: models.RoleInstructor}

	token, err := GenerateJWT(other, user)
	require.NoError(t, err)

	app := protectedApp(testConfig(), "")
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	cfg := testConfig()
	student := &models.User{Model: gorm.Model{ID: 3}, Role: models.RoleStudent}

	token, err := GenerateJWT(cfg, student)
	require.NoError(t, err)

	app := protectedApp(cfg, models.RoleInstructor)
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAllowsMatch(t *testing.T) {
	cfg := testConfig()
	instructor := &models.User{Model: gorm.Model{ID: 4}, Role: models.RoleInstructor}

	token, err := GenerateJWT(cfg, instructor)
	require.NoError(t, err)

	app := protectedApp(cfg, models.RoleInstructor)
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
