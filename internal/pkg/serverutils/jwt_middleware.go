package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware resolves the caller identity before any handler runs.
// Every failure mode answers a uniform 401 so protected routes never
// reach body parsing without a resolved owner.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Authentication required"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Authentication required"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Authentication required"))
	}

	userId, ok := claims["user_id"].(string)
	if !ok || userId == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Authentication required"))
	}

	ctx.Locals("user_id", userId)
	return ctx.Next()
}
