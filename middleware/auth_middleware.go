package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/kikilearn/learning_hub/configs"
)

// Protected guards student-facing routes. A missing or bad token answers 401
// with a login_url so clients send the visitor to the login page.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: loginRedirectError,
	})
}

func loginRedirectError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":    "error",
		"message":   "Authentication required",
		"login_url": "/login",
	})
}

// AdminProtected guards back-office routes. Unlike Protected it never points at
// the login page: clients render an inline admin-login prompt instead, and
// home_url is where dismissing that prompt lands.
func AdminProtected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: adminPromptError,
	})
}

func adminPromptError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":               "error",
		"message":              "Admin authentication required",
		"admin_login_required": true,
		"home_url":             "/",
	})
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)

		if role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":                "Forbidden: Admin access required",
				"admin_login_required": true,
				"home_url":             "/",
			})
		}
		return c.Next()
	}
}
