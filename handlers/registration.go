package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/password"
	"github.com/GuilhermeTebaldi/templesale2-sub001/sms"
	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
	"github.com/GuilhermeTebaldi/templesale2-sub001/user"
	"github.com/GuilhermeTebaldi/templesale2-sub001/verification"
)

// smsSender is swapped for a mock in tests and when Twilio is not configured.
var smsSender sms.Sender = sms.NewMockSMSService()

// SetSMSSender installs the SMS backend used for verification codes.
func SetSMSSender(s sms.Sender) {
	smsSender = s
}

// HandleRegister renders the first registration step.
func HandleRegister(c *fiber.Ctx) error {
	// Starting a new registration logs out any current user
	logoutUser(c)
	return render(c, ui.RegisterPage(pageCtx(c)))
}

// HandleRegisterSubmission validates step one and sends the SMS code.
func HandleRegisterSubmission(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if err := ValidateUsername(name); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	phone, err := NormalizePhone(c.FormValue("phone"))
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	// Do not reveal whether the phone is registered
	if _, err := user.GetUserByPhone(phone); err == nil {
		return ValidationErrorResponse(c,
			"Unable to complete registration with these credentials. Please try different information.")
	}

	code, err := verification.GenerateCode()
	if err != nil {
		log.Printf("[REGISTRATION] Failed to generate verification code: %v", err)
		return ValidationErrorResponse(c, "Unable to generate verification code. Please try again.")
	}

	if err := verification.CreateCode(phone, code); err != nil {
		log.Printf("[REGISTRATION] Failed to store verification code: %v", err)
		return ValidationErrorResponse(c, "Unable to create verification code. Please try again.")
	}

	if err := smsSender.SendVerificationCode(phone, code); err != nil {
		log.Printf("[REGISTRATION] Failed to send SMS: %v", err)
		return ValidationErrorResponse(c, "Unable to send verification code. Please try again.")
	}

	return render(c, ui.VerificationFormContent(name, phone, pageCtx(c)))
}

// HandleVerifySubmission checks the SMS code and creates the account.
func HandleVerifySubmission(c *fiber.Ctx) error {
	name := c.FormValue("reg_name")
	phone := c.FormValue("reg_phone")
	if name == "" || phone == "" {
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	code := c.FormValue("verification_code")
	if code == "" {
		return ValidationErrorResponse(c, "Please enter the verification code.")
	}

	valid, err := verification.VerifyCode(phone, code)
	if err != nil {
		log.Printf("[REGISTRATION] Code validation error: %v", err)
		return ValidationErrorResponse(c, "Verification code validation failed. Please try again.")
	}
	if !valid {
		return ValidationErrorResponse(c, "Invalid or expired verification code. Please check your code and try again.")
	}

	userPassword := c.FormValue("password")
	if err := password.ValidateConfirmation(userPassword, c.FormValue("password2")); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	if err := password.ValidateStrength(userPassword); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	hash, salt, err := password.Hash(userPassword)
	if err != nil {
		log.Printf("[REGISTRATION] Failed to hash password: %v", err)
		return ValidationErrorResponse(c, "Server error, unable to create your account.")
	}

	userID, err := user.CreateUser(name, phone, hash, salt)
	if err != nil {
		log.Printf("[REGISTRATION] Failed to create user: %v", err)
		return ValidationErrorResponse(c, "Unable to create account. Please try again.")
	}

	if err := user.MarkPhoneVerified(userID); err != nil {
		// Don't fail registration for this, but log it
		log.Printf("[REGISTRATION] Failed to mark phone verified: %v", err)
	}

	u, err := user.GetUser(userID)
	if err != nil {
		log.Printf("[REGISTRATION] Failed to get newly created user: %v", err)
		return ValidationErrorResponse(c, "Registration completed but unable to log you in. Please log in manually.")
	}

	if err := loginUser(c, &u); err != nil {
		log.Printf("[REGISTRATION] Failed to log in: %v", err)
		return ValidationErrorResponse(c, "Registration completed but unable to log you in. Please log in manually.")
	}

	log.Printf("[REGISTRATION] Registration successful: userID=%d", userID)
	return render(c, ui.SuccessMessage("Registration successful", "/"))
}
