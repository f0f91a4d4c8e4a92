package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"campus/clients"
	"campus/config"
	controllers "campus/controllers/course"
	"campus/database"
	"campus/models"
	"campus/routers/courseRoutes"
)

func main() {
	cfg := config.Load()
	db := database.MustConnect(cfg.CourseDBName, &models.Course{}, &models.CourseEnrollment{})

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

	users := clients.NewUserClient(cfg.UserServiceURL)

	course := &controllers.CourseController{DB: db, Users: users}
	enroll := &controllers.EnrollmentController{DB: db}

	courseRoutes.SetupCourseRoutes(app, cfg, course, enroll)

	log.Printf("Course service is running on port %s", cfg.CoursePort)
	log.Fatal(app.Listen(":" + cfg.CoursePort))
}
