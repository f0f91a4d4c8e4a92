package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "campus/controllers/auth"
	authValidator "campus/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, auth *authControllers.AuthController) {
	group := app.Group("/api/v1/auth")

	group.Post("/register", authValidator.Register(), auth.Register)
	group.Post("/login", authValidator.Login(), auth.Login)
}
