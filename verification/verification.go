package verification

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

const (
	// CodeLength is the length of verification codes
	CodeLength = 6
	// CodeExpiry is how long codes are valid
	CodeExpiry = 10 * time.Minute
	// MaxAttempts is the maximum verification attempts allowed per code
	MaxAttempts = 3
)

// GenerateCode creates a new 6-digit verification code
func GenerateCode() (string, error) {
	code := ""
	for i := 0; i < CodeLength; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		code += fmt.Sprintf("%d", num.Int64())
	}
	return code, nil
}

// CreateCode stores a new verification code for a phone, replacing any
// earlier outstanding code.
func CreateCode(phone, code string) error {
	if _, err := db.Exec("DELETE FROM PhoneVerification WHERE phone = ?", phone); err != nil {
		return fmt.Errorf("failed to clear previous codes: %w", err)
	}

	expiresAt := time.Now().Add(CodeExpiry)
	_, err := db.Exec(`INSERT INTO PhoneVerification (phone, verification_code, expires_at, attempts)
		VALUES (?, ?, ?, 0)`, phone, code, expiresAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create verification code: %w", err)
	}
	return nil
}

// VerifyCode checks a submitted code. Wrong submissions count against
// MaxAttempts; expired or exhausted codes never verify.
func VerifyCode(phone, code string) (bool, error) {
	var id, attempts int
	var stored, expiresAt string
	err := db.QueryRow(`SELECT id, verification_code, expires_at, attempts
		FROM PhoneVerification WHERE phone = ?
		ORDER BY created_at DESC LIMIT 1`, phone).
		Scan(&id, &stored, &expiresAt, &attempts)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up verification code: %w", err)
	}

	expiry, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil || time.Now().After(expiry) {
		return false, nil
	}
	if attempts >= MaxAttempts {
		return false, nil
	}

	if stored != code {
		_, err = db.Exec("UPDATE PhoneVerification SET attempts = attempts + 1 WHERE id = ?", id)
		return false, err
	}

	_, err = db.Exec("DELETE FROM PhoneVerification WHERE id = ?", id)
	return true, err
}
