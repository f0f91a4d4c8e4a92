package courseValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"

	"campus/middleware"
)

// CourseRequest is the body for both create and update. Date bounds are
// checked here, in the validation layer, not on the entity.
type CourseRequest struct {
	CourseName   string    `json:"courseName"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	InstructorID uint      `json:"instructorId"`
}

// SearchRequest carries the parsed search query. Absent filters stay nil.
type SearchRequest struct {
	FromDate       *time.Time
	ToDate         *time.Time
	InstructorName string
	PageNumber     int
	PageSize       int
}

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request body!")
		}

		errors := make(map[string]string)

		name := strings.TrimSpace(reqData.CourseName)
		if name == "" {
			errors["courseName"] = "Course name is required."
		} else if len(name) > 100 {
			errors["courseName"] = "Course name cannot exceed 100 characters."
		}

		if reqData.StartDate.IsZero() {
			errors["startDate"] = "Start date is required."
		}

		if reqData.EndDate.IsZero() {
			errors["endDate"] = "End date is required."
		} else if !reqData.StartDate.IsZero() && !reqData.EndDate.After(reqData.StartDate) {
			errors["endDate"] = "End date must be after start date."
		}

		if reqData.InstructorID == 0 {
			errors["instructorId"] = "Instructor ID is required."
		}

		if len(errors) > 0 {
			return middleware.ValidationProblem(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid course ID!")
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// SearchQuery parses the search filters. Dates accept anything jinzhu/now
// understands (2006-01-02, RFC3339, ...); a present-but-unparseable date is a
// validation failure rather than a silently dropped filter.
func SearchQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &SearchRequest{
			InstructorName: strings.TrimSpace(c.Query("instructorName")),
			PageNumber:     c.QueryInt("pageNumber", 1),
			PageSize:       c.QueryInt("pageSize", 10),
		}

		errors := make(map[string]string)

		if raw := c.Query("fromDate"); raw != "" {
			parsed, err := now.Parse(raw)
			if err != nil {
				errors["fromDate"] = "Invalid from date!"
			} else {
				reqData.FromDate = &parsed
			}
		}

		if raw := c.Query("toDate"); raw != "" {
			parsed, err := now.Parse(raw)
			if err != nil {
				errors["toDate"] = "Invalid to date!"
			} else {
				reqData.ToDate = &parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationProblem(c, errors)
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
