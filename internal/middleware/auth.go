// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"context"
	"strconv"
	"strings"

	"prayerhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid authorization header format",
		})
	}

	tokenString := parts[1]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		AuthFailures.WithLabelValues("invalid_token").Inc()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token claims",
		})
	}

	// User ID lives in the "sub" claim (RFC 7519).
	subClaim, ok := claims["sub"]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token structure - missing subject",
		})
	}

	subStr, ok := subClaim.(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token subject type",
		})
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID in token",
		})
	}

	c.Locals("userID", uint(userIDVal))
	// Sync to UserContext so the context-aware logger sees the user ID in
	// layers below the handler.
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, uint(userIDVal)))

	return c.Next()
}
