package enrollRoutes

import (
	"github.com/gofiber/fiber/v2"

	"campus/config"
	enrollControllers "campus/controllers/enroll"
	"campus/middleware"
	"campus/models"
	enrollValidator "campus/validators/enroll"
)

func SetupEnrollRoutes(app *fiber.App, cfg *config.Config, enroll *enrollControllers.EnrollController) {
	group := app.Group("/api/v1/enroll")

	group.Post("/", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), enrollValidator.Request(), enroll.Enroll)
}
