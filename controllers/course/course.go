package courseController

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campus/clients"
	"campus/middleware"
	"campus/models"
	courseValidator "campus/validators/course"
)

type CourseController struct {
	DB    *gorm.DB
	Users *clients.UserClient
}

// isInstructor asks the user directory whether the given user id carries the
// Instructor role. A directory failure (including unknown user) surfaces as
// an upstream error for the handler to relay.
func (cc *CourseController) isInstructor(c *fiber.Ctx, userID uint) (bool, error) {
	user, err := cc.Users.GetUser(c.Context(), userID)
	if err != nil {
		return false, err
	}
	return user.RoleName == models.RoleInstructor, nil
}

func (cc *CourseController) relayUpstream(c *fiber.Ctx, err error) error {
	var upstreamErr *clients.UpstreamError
	if errors.As(err, &upstreamErr) {
		return middleware.UpstreamProblem(c, upstreamErr)
	}
	return middleware.Problem(c, fiber.StatusBadGateway, "Upstream API error", "User service is unreachable.")
}

func (cc *CourseController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	instructor, err := cc.isInstructor(c, reqData.InstructorID)
	if err != nil {
		return cc.relayUpstream(c, err)
	}
	if !instructor {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request",
			fmt.Sprintf("InstructorId %d is not an instructor.", reqData.InstructorID))
	}

	course := models.Course{
		CourseName:       reqData.CourseName,
		StartDate:        reqData.StartDate,
		EndDate:          reqData.EndDate,
		InstructorUserID: reqData.InstructorID,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to create course!")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": course.ID})
}

// Get returns a single course projected without its id or instructor; the
// list endpoint exposes those instead.
func (cc *CourseController) Get(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"courseName": course.CourseName,
		"startDate":  course.StartDate,
		"endDate":    course.EndDate,
	})
}

func (cc *CourseController) Update(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	// The new owner must be an instructor, checked before existence so an
	// invalid owner never touches the store.
	instructor, err := cc.isInstructor(c, reqData.InstructorID)
	if err != nil {
		return cc.relayUpstream(c, err)
	}
	if !instructor {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request",
			fmt.Sprintf("InstructorId %d is not an instructor.", reqData.InstructorID))
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "")
	}

	course.CourseName = reqData.CourseName
	course.StartDate = reqData.StartDate
	course.EndDate = reqData.EndDate
	course.InstructorUserID = reqData.InstructorID

	if err := cc.DB.Save(&course).Error; err != nil {
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to update course!")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Delete removes a course and cascades to its enrollments.
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return middleware.Problem(c, fiber.StatusNotFound, "Not Found", "")
	}

	tx := cc.DB.Begin()
	if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseEnrollment{}).Error; err != nil {
		tx.Rollback()
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to delete course!")
	}
	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to delete course!")
	}
	tx.Commit()

	return c.SendStatus(fiber.StatusNoContent)
}

// Search filters courses by date window and instructor. The filter only
// applies when fromDate, toDate and the resolved instructor are all present;
// a partial filter yields an empty page, never an unfiltered one.
func (cc *CourseController) Search(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSearch").(*courseValidator.SearchRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	pageNumber := reqData.PageNumber
	pageSize := reqData.PageSize
	if pageNumber <= 0 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	var instructorID *uint
	if reqData.InstructorName != "" {
		user, err := cc.Users.GetUserByName(c.Context(), reqData.InstructorName)
		if err != nil {
			return cc.relayUpstream(c, err)
		}
		instructorID = &user.UserID
	}

	items := make([]fiber.Map, 0)
	var total int64

	if reqData.FromDate != nil && reqData.ToDate != nil && instructorID != nil {
		query := cc.DB.Model(&models.Course{}).
			Where("start_date >= ? AND end_date <= ? AND instructor_user_id = ?",
				*reqData.FromDate, *reqData.ToDate, *instructorID)

		if err := query.Count(&total).Error; err != nil {
			return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to search courses!")
		}

		var courses []models.Course
		offset := (pageNumber - 1) * pageSize
		if err := query.Order("start_date asc").Offset(offset).Limit(pageSize).Find(&courses).Error; err != nil {
			return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to search courses!")
		}

		for _, course := range courses {
			items = append(items, fiber.Map{
				"courseName":     course.CourseName,
				"instructorName": reqData.InstructorName,
				"startDate":      course.StartDate,
				"endDate":        course.EndDate,
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items":      items,
		"totalCount": total,
		"pageNumber": pageNumber,
		"pageSize":   pageSize,
	})
}

func (cc *CourseController) ListAll(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Order("start_date asc").Find(&courses).Error; err != nil {
		return middleware.Problem(c, fiber.StatusInternalServerError, "Internal Server Error", "Failed to fetch courses!")
	}

	projections := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		projections = append(projections, fiber.Map{
			"courseId":         course.ID,
			"courseName":       course.CourseName,
			"instructorUserId": course.InstructorUserID,
		})
	}

	return c.Status(fiber.StatusOK).JSON(projections)
}
