package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/cookie"
	"github.com/GuilhermeTebaldi/templesale2-sub001/i18n"
	"github.com/GuilhermeTebaldi/templesale2-sub001/jwt"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
)

func clearUserLocals(c *fiber.Ctx) {
	local.SetUserID(c, 0)
	local.SetUserName(c, "")
	local.SetIsAdmin(c, false)
}

// JWTMiddleware validates the auth cookie and stashes the user identity
// in the request context. It also resolves the display language.
func JWTMiddleware(c *fiber.Ctx) error {
	lang := cookie.GetLang(c)
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLang
	}
	local.SetLang(c, lang)

	tokenString := cookie.GetJWT(c)
	if tokenString == "" {
		clearUserLocals(c)
		return c.Next()
	}

	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		// Invalid token, clear cookie
		cookie.ClearJWT(c)
		clearUserLocals(c)
		return c.Next()
	}

	local.SetUserID(c, claims.UserID)
	local.SetUserName(c, claims.UserName)
	local.SetIsAdmin(c, claims.IsAdmin)
	return c.Next()
}

// AuthRequired is a middleware that requires a user to be logged in.
func AuthRequired(c *fiber.Ctx) error {
	userID := local.GetUserID(c)
	if userID == 0 {
		return redirectToLogin(c)
	}

	// Verify that the user still exists and is not archived
	u, err := user.GetUser(userID)
	if err != nil || u.IsArchived() {
		cookie.ClearJWT(c)
		clearUserLocals(c)
		return redirectToLogin(c)
	}

	return c.Next()
}

// AdminRequired is a middleware that requires a user to be an admin.
func AdminRequired(c *fiber.Ctx) error {
	userID := local.GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	// Fetch current admin status from database
	u, err := user.GetUser(userID)
	if err != nil || u.IsArchived() {
		cookie.ClearJWT(c)
		clearUserLocals(c)
		return c.Status(fiber.StatusUnauthorized).SendString("User not found")
	}

	if !u.IsAdmin {
		return c.Status(fiber.StatusForbidden).SendString("Forbidden")
	}

	return c.Next()
}
