package presenters

import (
	"Go-Pantry-Assistant/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Detail string `json:"detail"`
}

// SuccessResponse writes the payload as-is; clients of this API read bare
// objects and arrays rather than an envelope.
func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

// ErrorResponse writes {"detail": ...} with the status derived from the error kind.
func ErrorResponse(c *fiber.Ctx, err error) error {
	return c.Status(domain.StatusCode(err)).JSON(ErrorBody{Detail: domain.Detail(err)})
}

// ErrorHandler is installed as the fiber error handler so that errors returned
// by handlers or middleware, recovered panics and unknown routes share the
// same body shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorBody{Detail: fe.Message})
	}
	return ErrorResponse(c, err)
}
