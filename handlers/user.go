package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
	"github.com/GuilhermeTebaldi/templesale2-sub001/local"
	"github.com/GuilhermeTebaldi/templesale2-sub001/password"
	"github.com/GuilhermeTebaldi/templesale2-sub001/search"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
)

// HandleSettings renders the account settings page.
func HandleSettings(c *fiber.Ctx) error {
	return render(c, ui.SettingsPage(pageCtx(c)))
}

// HandleUserMenu returns the avatar popup menu.
func HandleUserMenu(c *fiber.Ctx) error {
	return render(c, ui.UserMenuPopup(pageCtx(c)))
}

// HandleChangePassword verifies the current password and stores a new one.
func HandleChangePassword(c *fiber.Ctx) error {
	userID := local.GetUserID(c)
	u, err := user.GetUser(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load user")
	}

	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")
	newPassword2 := c.FormValue("new_password2")

	if err := password.ValidateChange(current, newPassword, newPassword2); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	if !password.Verify(current, u.PasswordHash, u.PasswordSalt) {
		return ValidationErrorResponse(c, "Current password is incorrect")
	}

	hash, salt, err := password.Hash(newPassword)
	if err != nil {
		log.Printf("[Settings] Failed to hash password for userID=%d: %v", userID, err)
		return ValidationErrorResponse(c, "Server error, unable to change your password.")
	}

	if err := user.UpdatePassword(userID, hash, salt); err != nil {
		log.Printf("[Settings] Failed to update password for userID=%d: %v", userID, err)
		return ValidationErrorResponse(c, "Unable to change password. Please try again.")
	}

	log.Printf("[Settings] Password changed for userID=%d", userID)
	return render(c, ui.SuccessMessage("Password changed", ""))
}

// HandleDeleteAccount archives the user, their listings and search history.
func HandleDeleteAccount(c *fiber.Ctx) error {
	userID := local.GetUserID(c)

	if err := listing.ArchiveListingsByUserID(userID); err != nil {
		log.Printf("[Settings] Failed to archive listings for userID=%d: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete account")
	}
	if err := search.DeleteAllUserSearches(userID); err != nil {
		log.Printf("[Settings] Failed to delete searches for userID=%d: %v", userID, err)
	}
	if err := user.ArchiveUser(userID); err != nil {
		log.Printf("[Settings] Failed to archive userID=%d: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete account")
	}

	logoutUser(c)
	log.Printf("[Settings] Account deleted: userID=%d", userID)
	return render(c, ui.SuccessMessage("Account deleted", "/"))
}
