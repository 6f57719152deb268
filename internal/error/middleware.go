package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tidewatch/backend/internal/constants"
	"github.com/tidewatch/backend/internal/service"
)

// ErrorHandler turns service errors into their mapped status and message.
// Anything unrecognized is masked as a 500 so internals never leak to
// clients.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := constants.ErrCodeInternalError

		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			if status := constants.GetHTTPStatus(serviceErr.Code); status != fiber.StatusInternalServerError {
				code = serviceErr.Code
			}
		}

		return c.Status(constants.GetHTTPStatus(code)).JSON(ErrorResponse{
			Code:    code,
			Message: constants.GetErrorMessage(code),
		})
	}
}
