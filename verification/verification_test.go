package verification

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

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode()
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestCreateCodeReplacesPrevious(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM PhoneVerification WHERE phone = \\?").
		WithArgs("+5511912345678").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO PhoneVerification").
		WithArgs("+5511912345678", "123456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, CreateCode("+5511912345678", "123456"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func verificationRow(code string, expiresAt time.Time, attempts int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "verification_code", "expires_at", "attempts"}).
		AddRow(1, code, expiresAt.UTC().Format(time.RFC3339), attempts)
}

func TestVerifyCodeSuccess(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, verification_code, expires_at, attempts").
		WithArgs("+5511912345678").
		WillReturnRows(verificationRow("123456", time.Now().Add(time.Minute), 0))
	mock.ExpectExec("DELETE FROM PhoneVerification WHERE id = \\?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := VerifyCode("+5511912345678", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCodeWrongCodeCountsAttempt(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, verification_code, expires_at, attempts").
		WithArgs("+5511912345678").
		WillReturnRows(verificationRow("123456", time.Now().Add(time.Minute), 0))
	mock.ExpectExec("UPDATE PhoneVerification SET attempts = attempts \\+ 1").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := VerifyCode("+5511912345678", "000000")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCodeExpired(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, verification_code, expires_at, attempts").
		WithArgs("+5511912345678").
		WillReturnRows(verificationRow("123456", time.Now().Add(-time.Minute), 0))

	ok, err := VerifyCode("+5511912345678", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCodeTooManyAttempts(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, verification_code, expires_at, attempts").
		WithArgs("+5511912345678").
		WillReturnRows(verificationRow("123456", time.Now().Add(time.Minute), MaxAttempts))

	ok, err := VerifyCode("+5511912345678", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyCodeNoRecord(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, verification_code, expires_at, attempts").
		WithArgs("+5511900000000").
		WillReturnRows(sqlmock.NewRows([]string{"id", "verification_code", "expires_at", "attempts"}))

	ok, err := VerifyCode("+5511900000000", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
