package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/cookie"
	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
)

// HandleSetLang switches the display language and returns to the referrer.
func HandleSetLang(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !i18n.Supported(lang) {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported language")
	}
	cookie.SetLang(c, lang)

	back := c.Get(fiber.HeaderReferer)
	if back == "" {
		back = "/"
	}
	return c.Redirect(back, fiber.StatusSeeOther)
}
