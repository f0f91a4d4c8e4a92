package authValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"campus/middleware"
	"campus/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if strings.TrimSpace(reqData.UserName) == "" {
			errors["userName"] = "User name is required!"
		}

		if len(reqData.Password) < 6 {
			errors["password"] = "Password must be at least 6 characters long!"
		}

		if reqData.Role != models.RoleInstructor && reqData.Role != models.RoleStudent {
			errors["role"] = "Role must be either Instructor or Student!"
		}

		if len(errors) > 0 {
			return middleware.ValidationProblem(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.UserName) == "" {
			errors["userName"] = "User name is required!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationProblem(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
