package middleware

import (
	"strings"

	"fiber-admin/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validasi bearer token dan taruh identitas user di
// locals: userID, username, roleIDs, sessionID.
func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token claims",
		})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid token claims",
		})
	}
	ctx.Locals("userID", uint(userID))
	if username, ok := claims["username"].(string); ok {
		ctx.Locals("username", username)
	}
	if sessionID, ok := claims["jti"].(string); ok {
		ctx.Locals("sessionID", sessionID)
	}
	if rawIDs, ok := claims["role_ids"].([]interface{}); ok {
		roleIDs := make([]uint, 0, len(rawIDs))
		for _, raw := range rawIDs {
			if id, ok := raw.(float64); ok {
				roleIDs = append(roleIDs, uint(id))
			}
		}
		ctx.Locals("roleIDs", roleIDs)
	}

	return ctx.Next()
}
