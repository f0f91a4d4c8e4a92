package userController_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	userController "campus/controllers/user"
	"campus/database"
	"campus/models"
	"campus/routers/userRoutes"
)

var dbSeq int

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:usertest%d?mode=memory&cache=shared", dbSeq)
	db, err := database.Connect(dsn, &models.User{})
	require.NoError(t, err)

	app := fiber.New()
	userRoutes.SetupUserRoutes(app, &userController.UserController{DB: db})
	return app, db
}

func seedUsers(t *testing.T, db *gorm.DB) (models.User, models.User) {
	t.Helper()
	alice := models.User{Name: "Alice Smith", UserName: "alice", Password: "x", Role: models.RoleInstructor}
	bob := models.User{Name: "Bob Jones", UserName: "bob", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)
	return alice, bob
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestGetByID(t *testing.T) {
	app, db := newTestApp(t)
	alice, _ := seedUsers(t, db)

	var body map[string]interface{}
	status := getJSON(t, app, fmt.Sprintf("/api/v1/users/%d", alice.ID), &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Alice Smith", body["name"])
	assert.Equal(t, "Instructor", body["roleName"])
	assert.NotContains(t, body, "password")
}

func TestGetByIDNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status := getJSON(t, app, "/api/v1/users/999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestSearchByDisplayNameIsLowercased(t *testing.T) {
	app, db := newTestApp(t)
	alice, _ := seedUsers(t, db)

	var body map[string]interface{}
	status := getJSON(t, app, "/api/v1/users/search?name=ALICE+SMITH", &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(alice.ID), body["userId"])
}

func TestSearchDoesNotMatchLoginName(t *testing.T) {
	app, db := newTestApp(t)
	seedUsers(t, db)

	// "alice" is the login name; the display name is "Alice Smith"
	status := getJSON(t, app, "/api/v1/users/search?name=alice", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestListAll(t *testing.T) {
	app, db := newTestApp(t)
	seedUsers(t, db)

	var body []map[string]interface{}
	status := getJSON(t, app, "/api/v1/users/", &body)

	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, body, 2)
	for _, user := range body {
		assert.NotContains(t, user, "password")
	}
}
