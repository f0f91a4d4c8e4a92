package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration for both services. It is built once
// at startup and handed to the controllers and clients that need it; nothing
// reads configuration through a global.
type Config struct {
	CoursePort string
	UserPort   string

	CourseDBName string
	UserDBName   string

	JWTKey      string
	SaltRound   int
	TokenTTLMin int

	// Peer base URLs for cross-service calls.
	CourseServiceURL string
	UserServiceURL   string
}

// Load initializes configuration from environment variables or defaults.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		CoursePort: getEnv("COURSE_PORT", "8080"),
		UserPort:   getEnv("USER_PORT", "8081"),

		CourseDBName: getEnv("COURSE_DB_NAME", "file:coursedb?mode=memory&cache=shared"),
		UserDBName:   getEnv("USER_DB_NAME", "file:userdb?mode=memory&cache=shared"),

		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:   getEnvInt("SALT_ROUND", 10),
		TokenTTLMin: getEnvInt("TOKEN_TTL_MINUTES", 120),

		CourseServiceURL: getEnv("COURSE_SERVICE_URL", "http://localhost:8080"),
		UserServiceURL:   getEnv("USER_SERVICE_URL", "http://localhost:8081"),
	}

	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
