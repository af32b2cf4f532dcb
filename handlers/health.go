package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

// HandleHealth reports liveness and database reachability.
func HandleHealth(c *fiber.Ctx) error {
	if err := db.Get().Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"db":     err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
