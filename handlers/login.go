package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/cookie"
	"github.com/GuilhermeTebaldi/templesale2-sub001/jwt"
	"github.com/GuilhermeTebaldi/templesale2-sub001/password"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
)

func logoutUser(c *fiber.Ctx) {
	cookie.ClearJWT(c)
}

// loginUser logs in a user by generating a JWT and setting it in the cookie
func loginUser(c *fiber.Ctx, u *user.User) error {
	token, err := jwt.GenerateToken(u)
	if err != nil {
		log.Printf("[AUTH] JWT generation error: %v", err)
		return fmt.Errorf("failed to generate JWT: %w", err)
	}

	cookie.SetJWT(c, token)
	return nil
}

func redirectToLogin(c *fiber.Ctx) error {
	// For HTMX requests, return a redirect response that HTMX can handle
	if c.Get("HX-Request") != "" {
		c.Set("HX-Redirect", "/login")
		return c.Status(fiber.StatusSeeOther).SendString("")
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func HandleLogin(c *fiber.Ctx) error {
	return render(c, ui.LoginPage(pageCtx(c)))
}

func HandleLogout(c *fiber.Ctx) error {
	logoutUser(c)
	return redirectToLogin(c)
}

func HandleLoginSubmission(c *fiber.Ctx) error {
	phone, err := NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return ValidationErrorResponse(c, "Invalid phone or password")
	}
	userPassword := c.FormValue("password")

	log.Printf("[AUTH] Login attempt: phone=%s", phone)

	u, err := user.GetUserByPhone(phone)
	if err != nil || u.IsArchived() {
		log.Printf("[AUTH] Login failed: user not found: %s", phone)
		return ValidationErrorResponse(c, "Invalid phone or password")
	}

	if !password.Verify(userPassword, u.PasswordHash, u.PasswordSalt) {
		log.Printf("[AUTH] Login failed: bad password for userID=%d", u.ID)
		return ValidationErrorResponse(c, "Invalid phone or password")
	}

	if err := loginUser(c, &u); err != nil {
		log.Printf("[AUTH] Login failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server error, unable to log you in.")
	}

	log.Printf("[AUTH] Login successful: userID=%d", u.ID)
	return render(c, ui.SuccessMessage("Login successful", "/"))
}
