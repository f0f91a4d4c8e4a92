package userController

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campus/middleware"
	"campus/models"
)

type UserController struct {
	DB *gorm.DB
}

func projection(user *models.User) fiber.Map {
	return fiber.Map{
		"userId":   user.ID,
		"name":     user.Name,
		"roleName": user.Role,
	}
}

func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("userId"))
	if err != nil || id <= 0 {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid user ID!")
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "")
	}

	return c.Status(fiber.StatusOK).JSON(projection(&user))
}

// SearchByName looks a user up by display name, exact match after
// lowercasing. This is a different field than the login name used by auth.
func (uc *UserController) SearchByName(c *fiber.Ctx) error {
	name := c.Query("name")

	var user models.User
	if err := uc.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&user).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "")
	}

	return c.Status(fiber.StatusOK).JSON(projection(&user))
}

func (uc *UserController) ListAll(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to fetch users!")
	}

	projections := make([]fiber.Map, 0, len(users))
	for i := range users {
		projections = append(projections, projection(&users[i]))
	}

	return c.Status(fiber.StatusOK).JSON(projections)
}
