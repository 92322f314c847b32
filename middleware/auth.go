package middleware

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

// Protected validates the admin JWT and puts userID, username and the
// optional barberID scope into locals for the handlers.
func Protected() fiber.Handler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			userID, err := claimUint(claims, "userID")
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}
			c.Locals("userID", userID)

			if username, ok := claims["username"].(string); ok {
				c.Locals("username", username)
			}

			// barberID is optional: absent means an all-barber admin.
			if _, present := claims["barberID"]; present {
				barberID, err := claimUint(claims, "barberID")
				if err != nil {
					return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
						"error": "Invalid barber scope in token",
					})
				}
				c.Locals("barberID", barberID)
			}

			return c.Next()
		},
	})
}

func claimUint(claims jwt.MapClaims, key string) (uint, error) {
	switch v := claims[key].(type) {
	case float64:
		if v < 1 {
			return 0, fmt.Errorf("claim %s out of range", key)
		}
		return uint(v), nil
	default:
		return 0, fmt.Errorf("claim %s missing or not numeric", key)
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Invalid or expired token",
	})
}
