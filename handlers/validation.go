package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeTebaldi/templesale2-sub001/ui"
)

// ValidationErrorResponse renders an inline error block for htmx forms.
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	c.Status(fiber.StatusUnprocessableEntity)
	return render(c, ui.ValidationError(message))
}

// ValidateUsername enforces the display-name rules.
func ValidateUsername(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 40 {
		return fmt.Errorf("name must be between 2 and 40 characters")
	}
	return nil
}

var e164Re = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone accepts international numbers and bare Brazilian ones,
// returning E.164 or an error.
func NormalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		compact := regexp.MustCompile(`[\s()-]`).ReplaceAllString(phone, "")
		if !e164Re.MatchString(compact) {
			return "", fmt.Errorf("phone must be in international format, e.g. +5511912345678")
		}
		return compact, nil
	}
	digits := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	// Brazilian numbers: area code + 8 or 9 digits
	if len(digits) == 10 || len(digits) == 11 {
		return "+55" + digits, nil
	}
	return "", fmt.Errorf("Brazilian numbers must have 10 or 11 digits")
}
