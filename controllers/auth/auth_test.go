package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/config"
	authController "campus/controllers/auth"
	"campus/database"
	"campus/models"
	"campus/routers/authRoutes"
)

var dbSeq int

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", dbSeq)
	db, err := database.Connect(dsn, &models.User{})
	require.NoError(t, err)

	cfg := &config.Config{JWTKey: "test-secret", SaltRound: 4, TokenTTLMin: 120}
	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, &authController.AuthController{DB: db, Cfg: cfg})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (map[string]interface{}, int) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded, resp.StatusCode
}

func TestRegisterReturnsProjection(t *testing.T) {
	app := newTestApp(t)

	body, status := postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Alice Smith", "userName": "alice", "password": "secret1", "role": "Instructor",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice Smith", body["name"])
	assert.Equal(t, "Instructor", body["roleName"])
	assert.Greater(t, body["userId"].(float64), float64(0))
	// the projection never echoes the password
	assert.NotContains(t, body, "password")
}

func TestRegisterDuplicateLoginIsCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	_, status := postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Alice", "userName": "alice", "password": "secret1", "role": "Instructor",
	})
	require.Equal(t, fiber.StatusOK, status)

	body, status := postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Another Alice", "userName": "ALICE", "password": "secret2", "role": "Student",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "User already exists.", body["detail"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app := newTestApp(t)

	body, status := postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Bob", "userName": "bob", "password": "secret1", "role": "Admin",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "role")
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Alice", "userName": "alice", "password": "secret1", "role": "Instructor",
	})

	body, status := postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"userName": "alice", "password": "secret1",
	})

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alice", body["userName"])
	assert.Equal(t, "Instructor", body["role"])

	token, err := jwt.Parse(body["token"].(string), func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "Instructor", claims["role"])
	assert.Equal(t, body["userId"], claims["userId"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	postJSON(t, app, "/api/v1/auth/register", map[string]string{
		"name": "Alice", "userName": "alice", "password": "secret1", "role": "Instructor",
	})

	body, status := postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"userName": "alice", "password": "wrong",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NotContains(t, body, "token")
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)

	_, status := postJSON(t, app, "/api/v1/auth/login", map[string]string{
		"userName": "ghost", "password": "whatever",
	})

	assert.Equal(t, fiber.StatusUnauthorized, status)
}
