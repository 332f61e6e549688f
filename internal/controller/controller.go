package controller

import (
	"contentcraft-be/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the owner identity the JWT middleware resolved.
// A missing or malformed value means the route was reached without a
// valid session, which is an auth fault, not a crash.
func currentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, ok := ctx.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, apperrors.NewUnauthorized("Authentication required")
	}

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, apperrors.NewUnauthorized("Authentication required")
	}
	return userId, nil
}
