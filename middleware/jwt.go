package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"campus/config"
	"campus/models"
)

// GenerateJWT issues the signed credential returned at login. The claims are
// what the authorization gate works from: userId, name and role.
func GenerateJWT(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(time.Duration(cfg.TokenTTLMin) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTKey))
}

// Protected checks for a valid Bearer token and stores the caller's identity
// in the request context. A missing or unparseable userId claim is rejected
// here; role mismatches are handled separately by RequireRole.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Missing Authorization header")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid Authorization header format")
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTKey), nil
		})
		if err != nil || !token.Valid {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid token payload")
		}

		// JWT numeric claims decode as float64
		id, ok := claims["userId"].(float64)
		if !ok || id <= 0 {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Invalid token payload")
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)

		c.Locals("userId", uint(id))
		c.Locals("role", role)
		c.Locals("name", name)

		return c.Next()
	}
}

// RequireRole gates a route on the role claim set by Protected.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerRole, ok := c.Locals("role").(string)
		if !ok {
			return Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Missing role claim")
		}
		if callerRole != role {
			return Problem(c, fiber.StatusForbidden, "Forbidden", "You do not have permission to access this resource!")
		}
		return c.Next()
	}
}
