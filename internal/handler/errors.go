package handler

import (
	"errors"
	"log"

	"go-sales-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto status codes. Store and other
// unexpected failures are logged and reported without detail.
func respondError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(400).JSON(fiber.Map{"error": verr.Message})
	case errors.Is(err, service.ErrInvalidDate):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, service.ErrEmailNotRegistered):
		return c.Status(404).JSON(fiber.Map{"error": "Email not registered"})
	case errors.Is(err, service.ErrWrongPassword):
		return c.Status(401).JSON(fiber.Map{"error": "Wrong password"})
	case errors.Is(err, service.ErrEmailExists):
		return c.Status(409).JSON(fiber.Map{"error": "Email already exists"})
	default:
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
