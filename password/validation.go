package password

import "unicode"

// ValidationError represents a password validation error
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidateConfirmation checks if password and confirmation match
func ValidateConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ValidationError{Message: "Passwords do not match"}
	}
	return nil
}

// ValidateStrength checks if a password meets minimum requirements:
// at least 8 characters with at least one letter and one number.
func ValidateStrength(password string) error {
	if len(password) < 8 {
		return ValidationError{Message: "Password must be at least 8 characters long"}
	}

	hasLetter := false
	hasNumber := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsNumber(char) {
			hasNumber = true
		}
	}

	if !hasLetter {
		return ValidationError{Message: "Password must contain at least one letter"}
	}
	if !hasNumber {
		return ValidationError{Message: "Password must contain at least one number"}
	}
	return nil
}

// ValidateChange validates a password change operation
func ValidateChange(currentPassword, newPassword, confirmPassword string) error {
	if currentPassword == "" {
		return ValidationError{Message: "Current password is required"}
	}
	if newPassword == "" {
		return ValidationError{Message: "New password is required"}
	}
	if currentPassword == newPassword {
		return ValidationError{Message: "New password must be different from current password"}
	}
	if err := ValidateConfirmation(newPassword, confirmPassword); err != nil {
		return err
	}
	return ValidateStrength(newPassword)
}
