package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return component.Render(c.Response().BodyWriter())
}

// pageCtx collects the per-request state every page needs.
func pageCtx(c *fiber.Ctx) ui.Ctx {
	return ui.Ctx{
		Lang:     local.GetLang(c),
		UserID:   local.GetUserID(c),
		UserName: local.GetUserName(c),
		IsAdmin:  local.GetIsAdmin(c),
		Path:     c.Path(),
	}
}
