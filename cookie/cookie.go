package cookie

import "github.com/gofiber/fiber/v2"

const monthInSeconds = 30 * 24 * 60 * 60

// GetLang returns the user's selected language
func GetLang(c *fiber.Ctx) string {
	return c.Cookies("lang", "")
}

// SetLang stores the user's selected language
func SetLang(c *fiber.Ctx, lang string) {
	set(c, "lang", lang, monthInSeconds)
}

// GetDrawSession returns the map drawing session id, if any
func GetDrawSession(c *fiber.Ctx) string {
	return c.Cookies("draw_session")
}

// SetDrawSession stores the map drawing session id
func SetDrawSession(c *fiber.Ctx, id string) {
	set(c, "draw_session", id, 60*60)
}

// SetJWT stores the auth token
func SetJWT(c *fiber.Ctx, token string) {
	set(c, "auth_token", token, 24*60*60)
}

// ClearJWT removes the auth token
func ClearJWT(c *fiber.Ctx) {
	c.ClearCookie("auth_token")
}

// GetJWT returns the auth token
func GetJWT(c *fiber.Ctx) string {
	return c.Cookies("auth_token")
}

func set(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}
