package middleware

import (
	"github.com/gofiber/fiber/v2"

	"campus/clients"
)

// Problem writes an RFC7807-style problem payload. Every failure response in
// both services goes through here so the shape stays uniform.
func Problem(c *fiber.Ctx, status int, title, detail string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":   status,
		"title":    title,
		"detail":   detail,
		"instance": c.Path(),
		"traceId":  traceID(c),
	})
}

// ValidationProblem reports per-field validation failures.
func ValidationProblem(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":   fiber.StatusBadRequest,
		"title":    "Validation failed",
		"detail":   "One or more fields are invalid.",
		"errors":   errors,
		"instance": c.Path(),
		"traceId":  traceID(c),
	})
}

// UpstreamProblem relays a failed peer-service call. The remote status code is
// preserved when it is a real HTTP error, otherwise the peer is reported as a
// bad gateway. The raw remote body rides along for debugging.
func UpstreamProblem(c *fiber.Ctx, err *clients.UpstreamError) error {
	status := err.StatusCode
	if status < 400 || status >= 600 {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{
		"status":     status,
		"title":      "Upstream API error",
		"detail":     err.Error(),
		"remoteBody": err.Body,
		"instance":   c.Path(),
		"traceId":    traceID(c),
	})
}

func traceID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
