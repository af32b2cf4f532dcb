package search

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

func TestFilterListings(t *testing.T) {
	listings := []listing.Listing{
		{ID: 1, Title: "Vintage Bicycle", Category: "Sports"},
		{ID: 2, Title: "Dining Table", Category: "Furniture"},
		{ID: 3, Title: "Mountain Bike", Category: "Sports"},
		{ID: 4, Title: "table lamp", Category: "Home"},
	}

	tests := []struct {
		name     string
		text     string
		expected []int
	}{
		{"empty text returns all", "", []int{1, 2, 3, 4}},
		{"whitespace only returns all", "   ", []int{1, 2, 3, 4}},
		{"title match", "bike", []int{3}},
		{"case insensitive title match", "TABLE", []int{2, 4}},
		{"category match", "sports", []int{1, 3}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterListings(listings, tt.text)
			var ids []int
			for _, l := range got {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterListingsOrderStable(t *testing.T) {
	listings := []listing.Listing{
		{ID: 9, Title: "chair a"},
		{ID: 1, Title: "chair b"},
		{ID: 5, Title: "chair c"},
	}

	got := FilterListings(listings, "chair")
	require.Len(t, got, 3)
	assert.Equal(t, 9, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, 5, got[2].ID)
}

func TestSaveUserSearch(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	mock.ExpectExec("INSERT INTO UserSearch \\(user_id, query_string\\) VALUES \\(\\?, \\?\\)").
		WithArgs(1, "bicycle").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = SaveUserSearch(1, "bicycle")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveUserSearchSkipsEmptyQuery(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	err = SaveUserSearch(1, "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopSearches(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	mock.ExpectQuery("SELECT query_string, COUNT\\(\\*\\) as count FROM UserSearch").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"query_string", "count"}).
			AddRow("bicycle", 12).
			AddRow("table", 7))

	top, err := GetTopSearches(5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bicycle", top[0].QueryString)
	assert.Equal(t, 12, top[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
