package user

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db.SetForTesting(mockDB)
	return mock, func() {
		db.SetForTesting(nil)
		mockDB.Close()
	}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email_address", "password_hash", "password_salt",
		"phone_verified", "is_admin", "created_at", "deleted_at",
	})
}

func TestUser_IsArchived(t *testing.T) {
	now := time.Now()
	assert.False(t, User{ID: 1}.IsArchived())
	assert.True(t, User{ID: 2, DeletedAt: &now}.IsArchived())
}

func TestGetUserByPhone(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	created := time.Now().UTC().Format(time.RFC3339)
	mock.ExpectQuery("SELECT (.+) FROM User WHERE phone = \\?").
		WithArgs("+5511912345678").
		WillReturnRows(userRows().
			AddRow(3, "Ana", "+5511912345678", nil, "hash", "salt", true, false, created, nil))

	u, err := GetUserByPhone("+5511912345678")
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.True(t, u.PhoneVerified)
	assert.False(t, u.IsAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO User").
		WithArgs("Bruno", "+5511933334444", "hash", "salt", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := CreateUser("Bruno", "+5511933334444", "hash", "salt")
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPhoneVerified(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE User SET phone_verified = 1").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, MarkPhoneVerified(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE User SET deleted_at = \\?").
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ArchiveUser(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
