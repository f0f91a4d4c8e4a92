package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"campus/clients"
	"campus/config"
	authControllers "campus/controllers/auth"
	enrollControllers "campus/controllers/enroll"
	userControllers "campus/controllers/user"
	"campus/database"
	"campus/models"
	"campus/routers/authRoutes"
	"campus/routers/enrollRoutes"
	"campus/routers/userRoutes"
)

func main() {
	cfg := config.Load()
	db := database.MustConnect(cfg.UserDBName, &models.User{})

	app := fiber.New()

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courses := clients.NewCourseClient(cfg.CourseServiceURL)

	auth := &authControllers.AuthController{DB: db, Cfg: cfg}
	users := &userControllers.UserController{DB: db}
	enroll := &enrollControllers.EnrollController{Courses: courses}

	authRoutes.SetupAuthRoutes(app, auth)
	userRoutes.SetupUserRoutes(app, users)
	enrollRoutes.SetupEnrollRoutes(app, cfg, enroll)

	log.Printf("User service is running on port %s", cfg.UserPort)
	log.Fatal(app.Listen(":" + cfg.UserPort))
}
