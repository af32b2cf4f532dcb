package password

import (
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	password := "testpassword123"

	hash, salt, err := Hash(password)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "" {
		t.Error("Hash should not be empty")
	}
	if salt == "" {
		t.Error("Salt should not be empty")
	}

	if !Verify(password, hash, salt) {
		t.Error("Password verification failed")
	}
	if Verify("wrongpassword", hash, salt) {
		t.Error("Wrong password should not verify")
	}
}

func TestVerifyRejectsTamperedInputs(t *testing.T) {
	password := "testpassword123"
	hash, salt, _ := Hash(password)

	otherHash, otherSalt, _ := Hash("otherpassword1")

	if Verify(password, hash, otherSalt) {
		t.Error("Wrong salt should not verify")
	}
	if Verify(password, otherHash, salt) {
		t.Error("Wrong hash should not verify")
	}
	if Verify(password, hash, "not base64!!!") {
		t.Error("Invalid salt should not verify")
	}
}

func TestHashProducesUniqueSalts(t *testing.T) {
	_, salt1, err := Hash("samepassword1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	_, salt2, err := Hash("samepassword1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if salt1 == salt2 {
		t.Error("Two hashes of the same password should use different salts")
	}
}

func TestValidateConfirmation(t *testing.T) {
	if err := ValidateConfirmation("abc12345", "abc12345"); err != nil {
		t.Errorf("Matching passwords should not error: %v", err)
	}
	if err := ValidateConfirmation("abc12345", "different"); err == nil {
		t.Error("Non-matching passwords should error")
	}
}

func TestValidateStrength(t *testing.T) {
	if err := ValidateStrength("password123"); err != nil {
		t.Errorf("Valid password should not error: %v", err)
	}
	if err := ValidateStrength("pass1"); err == nil {
		t.Error("Short password should error")
	}
	if err := ValidateStrength("12345678"); err == nil {
		t.Error("Password without letters should error")
	}
	if err := ValidateStrength("password"); err == nil {
		t.Error("Password without numbers should error")
	}
}

func TestValidateChange(t *testing.T) {
	current := "oldpassword123"
	newPass := "newpassword456"

	if err := ValidateChange(current, newPass, newPass); err != nil {
		t.Errorf("Valid password change should not error: %v", err)
	}
	if err := ValidateChange(current, current, current); err == nil {
		t.Error("Same password should error")
	}
	if err := ValidateChange(current, newPass, "different"); err == nil {
		t.Error("Non-matching confirmation should error")
	}
	if err := ValidateChange(current, "weak", "weak"); err == nil {
		t.Error("Weak password should error")
	}
	if err := ValidateChange("", newPass, newPass); err == nil {
		t.Error("Missing current password should error")
	}
}
