package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	"campus/config"
	controllers "campus/controllers/course"
	"campus/middleware"
	"campus/models"
	courseValidator "campus/validators/course"
	enrollValidator "campus/validators/enroll"
)

// SetupCourseRoutes registers the course catalog surface. Fixed paths go in
// before the :id routes so /search and /enrolled are not captured as ids.
func SetupCourseRoutes(app *fiber.App, cfg *config.Config, course *controllers.CourseController, enroll *controllers.EnrollmentController) {
	group := app.Group("/api/v1/courses")

	group.Get("/search", courseValidator.SearchQuery(), course.Search)
	group.Get("/enrolled", middleware.Protected(cfg), middleware.RequireRole(models.RoleStudent), enroll.EnrolledCourses)

	group.Post("/", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), courseValidator.CourseBody(), course.Create)
	group.Get("/", middleware.Protected(cfg), course.ListAll)

	group.Get("/:id", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), courseValidator.CourseID(), course.Get)
	group.Put("/:id", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), courseValidator.CourseID(), courseValidator.CourseBody(), course.Update)
	group.Delete("/:id", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), courseValidator.CourseID(), course.Delete)

	group.Post("/:id/enroll", middleware.Protected(cfg), middleware.RequireRole(models.RoleInstructor), courseValidator.CourseID(), enrollValidator.Body(), enroll.Enroll)
}
