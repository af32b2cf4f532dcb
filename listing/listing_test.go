package listing

import (
	"database/sql"
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

func listingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "category", "price", "currency",
		"image_count", "latitude", "longitude", "user_id", "click_count",
		"created_at", "deleted_at", "seller_name", "seller_phone", "liked",
	})
}

func TestListing_IsArchived(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		listing  Listing
		expected bool
	}{
		{
			name:     "active listing",
			listing:  Listing{ID: 1, Title: "Bicicleta aro 29", DeletedAt: nil},
			expected: false,
		},
		{
			name:     "archived listing",
			listing:  Listing{ID: 2, Title: "Sofá usado", DeletedAt: &now},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.listing.IsArchived())
		})
	}
}

func TestGetListingsByIDs_PreservesOrder(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	created := time.Now().UTC().Format(time.RFC3339)
	// Rows come back in table order; the function must reorder to match input
	rows := listingRows().
		AddRow(1, "Violão", "", "Instrumentos", 350.0, "BRL", 1, nil, nil, 7, 0, created, nil, "Ana", "+5511912345678", 0).
		AddRow(3, "Mesa", "", "Móveis", 120.0, "BRL", 0, nil, nil, 7, 0, created, nil, "Ana", "+5511912345678", 1)

	mock.ExpectQuery("SELECT (.+) FROM Listing l").
		WithArgs(42, 3, 1).
		WillReturnRows(rows)

	listings, err := GetListingsByIDs([]int{3, 1}, 42)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, 3, listings[0].ID)
	assert.Equal(t, 1, listings[1].ID)
	assert.True(t, listings[0].Liked)
	assert.False(t, listings[1].Liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetListingsByIDs_Empty(t *testing.T) {
	listings, err := GetListingsByIDs(nil, 1)
	assert.NoError(t, err)
	assert.Nil(t, listings)
}

func TestGetActiveListings(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	created := time.Now().UTC().Format(time.RFC3339)
	rows := listingRows().
		AddRow(5, "Notebook", "Pouco uso", "Eletrônicos", 2500.0, "BRL", 3,
			-23.55, -46.63, 2, 10, created, nil, "Bruno", "+5511933334444", 0)

	mock.ExpectQuery("SELECT (.+) FROM Listing l").
		WithArgs(0, 50).
		WillReturnRows(rows)

	listings, err := GetActiveListings(0, 50)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Notebook", listings[0].Title)
	assert.True(t, listings[0].Latitude.Valid)
	assert.InDelta(t, -23.55, listings[0].Latitude.Float64, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddListing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO Listing").
		WillReturnResult(sqlmock.NewResult(9, 1))

	id, err := AddListing(Listing{
		Title:     "Cadeira gamer",
		Category:  "Móveis",
		Price:     799.9,
		Currency:  "BRL",
		UserID:    3,
		Latitude:  sql.NullFloat64{Float64: -23.56, Valid: true},
		Longitude: sql.NullFloat64{Float64: -46.65, Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveAndRestoreListing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE Listing SET deleted_at = \\?").
		WithArgs(sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE Listing SET deleted_at = NULL").
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ArchiveListing(4))
	require.NoError(t, RestoreListing(4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementListingClick(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE Listing SET click_count = click_count \\+ 1").
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, IncrementListingClick(8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeAndUnlikeListing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT OR IGNORE INTO LikedListing").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM LikedListing").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, LikeListing(1, 2))
	require.NoError(t, UnlikeListing(1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsListingLikedByUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT 1 FROM LikedListing").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM LikedListing").
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	liked, err := IsListingLikedByUser(1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = IsListingLikedByUser(1, 3)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCart(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT OR IGNORE INTO CartItem").
		WithArgs(6, 11).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM CartItem").
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec("DELETE FROM CartItem").
		WithArgs(6, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, AddToCart(6, 11))

	n, err := CartCount(6)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, RemoveFromCart(6, 11))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddComment(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO Comment").
		WithArgs(2, 5, "Ainda está disponível?", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := AddComment(2, 5, "Ainda está disponível?")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
