package serverutils

import (
	"errors"
	"log"

	"contentcraft-be/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware is the single place handler errors become HTTP
// responses. Known AppErrors map to their status with their safe message;
// anything else is reported as a generic 500 so internals never leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), appErr)
			}
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Printf("[ERROR] %s %s: unhandled: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
