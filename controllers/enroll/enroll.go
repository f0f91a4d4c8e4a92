package enrollController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"campus/clients"
	"campus/middleware"
	enrollValidator "campus/validators/enroll"
)

// EnrollController hosts the cross-service enrollment workflow: an instructor
// calls the directory side, which forwards the request to the course catalog.
type EnrollController struct {
	Courses *clients.CourseClient
}

// Enroll forwards the caller's credential unmodified to the catalog's enroll
// endpoint and relays the upstream response. One attempt, no retry, no
// compensation; upstream failures come back as upstream problem payloads with
// the remote status and body preserved.
func (ec *EnrollController) Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollRequest").(*enrollValidator.EnrollRequest)
	if !ok {
		return middleware.Problem(c, fiber.StatusBadRequest, "Bad Request", "Invalid request data!")
	}

	log.Printf("Course enrollment request. courseId:%d userId:%d", reqData.CourseID, reqData.UserID)

	body, err := ec.Courses.Enroll(c.Context(), reqData.CourseID, reqData.UserID, c.Get("Authorization"))
	if err != nil {
		var upstreamErr *clients.UpstreamError
		if errors.As(err, &upstreamErr) {
			return middleware.UpstreamProblem(c, upstreamErr)
		}
		log.Printf("Error calling course service: %v", err)
		return middleware.Problem(c, fiber.StatusBadGateway, "Upstream API error", "Course service is unreachable.")
	}

	log.Printf("Course enrolled successfully. courseId:%d userId:%d", reqData.CourseID, reqData.UserID)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}
