package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userControllers "campus/controllers/user"
)

// SetupUserRoutes registers the directory lookups. These stay anonymous: the
// course catalog resolves instructors through them without presenting a
// credential of its own.
func SetupUserRoutes(app *fiber.App, users *userControllers.UserController) {
	group := app.Group("/api/v1/users")

	group.Get("/search", users.SearchByName)
	group.Get("/", users.ListAll)
	group.Get("/:userId", users.GetByID)
}
