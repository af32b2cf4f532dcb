package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/mapassets"
)

// serveMapAsset loads the mirrored bundle (once per process) and serves
// one piece of it with the given content type.
func serveMapAsset(c *fiber.Ctx, contentType string, pick func(*mapassets.Assets) []byte) error {
	assets, err := mapassets.Default().Load(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "map assets unavailable")
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(pick(assets))
}

func HandleMapScript(c *fiber.Ctx) error {
	return serveMapAsset(c, "application/javascript", func(a *mapassets.Assets) []byte {
		return a.Script
	})
}

func HandleMapStylesheet(c *fiber.Ctx) error {
	return serveMapAsset(c, "text/css", func(a *mapassets.Assets) []byte {
		return a.Stylesheet
	})
}

func HandleMapMarkerIcon(c *fiber.Ctx) error {
	return serveMapAsset(c, "image/png", func(a *mapassets.Assets) []byte {
		return a.MarkerIcon
	})
}

func HandleMapMarkerShadow(c *fiber.Ctx) error {
	return serveMapAsset(c, "image/png", func(a *mapassets.Assets) []byte {
		return a.MarkerShadow
	})
}
