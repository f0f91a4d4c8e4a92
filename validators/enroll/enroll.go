package enrollValidator

import (
	"github.com/gofiber/fiber/v2"

	"campus/middleware"
)

// EnrollBody is the course-side enroll payload.
type EnrollBody struct {
	StudentID uint `json:"studentId"`
}

// EnrollRequest is the user-side enrollment workflow payload.
type EnrollRequest struct {
	CourseID uint `json:"courseId"`
	UserID   uint `json:"userId"`
}

func Body() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollBody)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request body!")
		}

		if reqData.StudentID == 0 {
			return middleware.ValidationProblem(c, map[string]string{"studentId": "Student ID is required!"})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func Request() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationProblem(c, errors)
		}

		c.Locals("validatedEnrollRequest", reqData)
		return c.Next()
	}
}
