package user

import (
	"database/sql"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

// User is an account on the storefront
type User struct {
	ID            int
	Name          string
	Phone         string
	EmailAddress  *string
	PasswordHash  string
	PasswordSalt  string
	PhoneVerified bool
	IsAdmin       bool
	CreatedAt     time.Time
	DeletedAt     *time.Time
}

// IsArchived returns true if the user has been archived
func (u User) IsArchived() bool {
	return u.DeletedAt != nil
}

const userColumns = `id, name, phone, email_address, password_hash, password_salt,
	phone_verified, is_admin, created_at, deleted_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	var createdAt string
	var deletedAt sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.EmailAddress, &u.PasswordHash,
		&u.PasswordSalt, &u.PhoneVerified, &u.IsAdmin, &createdAt, &deletedAt)
	if err != nil {
		return User{}, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, deletedAt.String); err == nil {
			u.DeletedAt = &t
		}
	}
	return u, nil
}

// CreateUser inserts a new user and returns its ID. The phone stays
// unverified until the SMS code is confirmed.
func CreateUser(name, phone, passwordHash, passwordSalt string) (int, error) {
	res, err := db.Exec(`INSERT INTO User (name, phone, password_hash, password_salt, phone_verified, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		name, phone, passwordHash, passwordSalt, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// GetUser retrieves a user by ID, including archived ones
func GetUser(id int) (User, error) {
	return scanUser(db.QueryRow("SELECT "+userColumns+" FROM User WHERE id = ?", id))
}

// GetUserByPhone retrieves a user by phone number
func GetUserByPhone(phone string) (User, error) {
	return scanUser(db.QueryRow("SELECT "+userColumns+" FROM User WHERE phone = ?", phone))
}

// MarkPhoneVerified flags the user's phone as verified
func MarkPhoneVerified(id int) error {
	_, err := db.Exec("UPDATE User SET phone_verified = 1 WHERE id = ?", id)
	return err
}

// UpdatePassword replaces the user's password hash and salt
func UpdatePassword(id int, hash, salt string) error {
	_, err := db.Exec("UPDATE User SET password_hash = ?, password_salt = ? WHERE id = ?", hash, salt, id)
	return err
}

// ArchiveUser archives a user using soft delete
func ArchiveUser(id int) error {
	_, err := db.Exec("UPDATE User SET deleted_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), id)
	return err
}

// CountUsers returns the number of active users, for the admin dashboard
func CountUsers() (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM User WHERE deleted_at IS NULL").Scan(&n)
	return n, err
}

// GetAllUsers lists users for the admin panel, newest first
func GetAllUsers(limit int) ([]User, error) {
	rows, err := db.Query("SELECT "+userColumns+" FROM User ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var createdAt string
		var deletedAt sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.EmailAddress, &u.PasswordHash,
			&u.PasswordSalt, &u.PhoneVerified, &u.IsAdmin, &createdAt, &deletedAt); err != nil {
			return nil, err
		}
		u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if deletedAt.Valid {
			if t, err := time.Parse(time.RFC3339Nano, deletedAt.String); err == nil {
				u.DeletedAt = &t
			}
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
