package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

// CustomErrorHandler handles application errors with user context
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	c.Status(code)
	return ui.ErrorPage(code, err.Error(), pageCtx(c)).Render(c.Response().BodyWriter())
}
