package courseController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campus/middleware"
	"campus/models"
	enrollValidator "campus/validators/enroll"
)

// EnrollmentController handles the catalog side of enrollment: registering a
// student against a course and listing a student's own enrollments.
type EnrollmentController struct {
	DB *gorm.DB
}

// Enroll registers a student in a course. Only the course's owning instructor
// may enroll students, and a student can hold at most one enrollment per
// course: a repeat request is rejected with a conflict instead of inserting a
// second row.
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	instructorID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Missing identity claim")
	}

	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedEnroll").(*enrollValidator.EnrollBody)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	var course models.Course
	if err := ec.DB.First(&course, courseID).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "Course not found.")
	}

	if course.InstructorUserID != instructorID {
		return middleware.Problem(c, fiber.StatusForbidden, "Forbidden", "Only the course owner (instructor) can enroll students.")
	}

	var existing models.CourseEnrollment
	if err := ec.DB.Where("course_id = ? AND user_id = ?", courseID, reqData.StudentID).First(&existing).Error; err == nil {
		return middleware.Problem(c, fiber.StatusConflict, "Conflict", "Student already enrolled.")
	}

	enrollment := models.CourseEnrollment{
		CourseID:   courseID,
		UserID:     reqData.StudentID,
		EnrollDate: time.Now().UTC(),
	}

	tx := ec.DB.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to enroll student!")
	}
	tx.Commit()

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

// EnrolledCourses lists the courses the calling student is enrolled in,
// ordered by start date.
func (ec *EnrollmentController) EnrolledCourses(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.Problem(c, fiber.StatusUnauthorized, "Unauthorized", "Missing identity claim")
	}

	var courses []models.Course
	err := ec.DB.
		Joins("JOIN course_enrollments ON course_enrollments.course_id = courses.id").
		Where("course_enrollments.user_id = ? AND course_enrollments.deleted_at IS NULL", studentID).
		Order("courses.start_date asc").
		Distinct().
		Find(&courses).Error
	if err != nil {
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to fetch enrollments!")
	}

	projections := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		projections = append(projections, fiber.Map{
			"courseName": course.CourseName,
			"startDate":  course.StartDate,
			"endDate":    course.EndDate,
		})
	}

	return c.Status(fiber.StatusOK).JSON(projections)
}
