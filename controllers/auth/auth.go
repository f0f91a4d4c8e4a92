package authController

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus/config"
	"campus/middleware"
	"campus/models"
	authValidator "campus/validators/auth"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Register creates a user with a bcrypt-hashed password. The login name is
// unique case-insensitively; the plain password is never stored or logged.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	// Check if the login name is taken (case-insensitive)
	var existing models.User
	if err := ac.DB.Where("LOWER(user_name) = ?", strings.ToLower(reqData.UserName)).First(&existing).Error; err == nil {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "User already exists.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ac.Cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to process your request!")
	}

	newUser := models.User{
		Name:     reqData.Name,
		UserName: reqData.UserName,
		Password: string(hashedPassword),
		Role:     reqData.Role,
	}

	if err := ac.DB.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to register user!")
	}

	log.Printf("User %s registered successfully.", newUser.Name)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"userId":   newUser.ID,
		"name":     newUser.Name,
		"roleName": newUser.Role,
	})
}

// Login verifies credentials and issues the signed token the services work
// from. Unknown user and wrong password are indistinguishable to the caller.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	var user models.User
	if err := ac.DB.Where("LOWER(user_name) = ?", strings.ToLower(reqData.UserName)).First(&user).Error; err != nil {
		return middleware.Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid username or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid username or password.")
	}

	token, err := middleware.GenerateJWT(ac.Cfg, &user)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to generate token")
	}

	log.Printf("User %s login successful.", user.UserName)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":    token,
		"userId":   user.ID,
		"userName": user.UserName,
		"role":     user.Role,
	})
}
