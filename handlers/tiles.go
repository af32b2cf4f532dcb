package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/tiles"
)

// HandleTile proxies a map tile through the provider chain. Tiles are
// immutable per coordinate so the browser may cache them aggressively.
func HandleTile(c *fiber.Ctx) error {
	z, err := strconv.Atoi(c.Params("z"))
	if err != nil || z < 0 || z > 22 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid zoom")
	}
	x, err := strconv.Atoi(c.Params("x"))
	if err != nil || x < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tile x")
	}
	y, err := strconv.Atoi(c.Params("y"))
	if err != nil || y < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tile y")
	}

	tile, err := tiles.Default().Fetch(c.Context(), z, x, y)
	if err != nil {
		if errors.Is(err, tiles.ErrAllProvidersFailed) {
			return fiber.NewError(fiber.StatusBadGateway, "no tile provider available")
		}
		return fiber.NewError(fiber.StatusBadGateway, "tile fetch failed")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=43200")
	c.Set("Expires", time.Now().Add(12*time.Hour).UTC().Format(time.RFC1123))
	return c.Send(tile)
}
