package local

import "github.com/gofiber/fiber/v2"

func GetUserID(c *fiber.Ctx) int {
	userID, _ := c.Locals("userID").(int)
	return userID
}

func SetUserID(c *fiber.Ctx, userID int) {
	c.Locals("userID", userID)
}

func GetUserName(c *fiber.Ctx) string {
	userName, _ := c.Locals("userName").(string)
	return userName
}

func SetUserName(c *fiber.Ctx, userName string) {
	c.Locals("userName", userName)
}

func GetIsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return isAdmin
}

func SetIsAdmin(c *fiber.Ctx, isAdmin bool) {
	c.Locals("isAdmin", isAdmin)
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

func SetLang(c *fiber.Ctx, lang string) {
	c.Locals("lang", lang)
}
