package search

import (
	"log"
	"strings"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
	"github.com/GuilhermeTebaldi/templesale2-sub001/listing"
)

// FilterListings applies the results panel's secondary filter: a
// case-insensitive substring match on title or category. The frozen result
// set is filtered on every keystroke; the spatial query is never re-run.
// Stable: output order matches input order.
func FilterListings(listings []listing.Listing, text string) []listing.Listing {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return listings
	}

	var filtered []listing.Listing
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), text) ||
			strings.Contains(strings.ToLower(l.Category), text) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// SearchActiveListings runs the primary text search over active listings
func SearchActiveListings(query string, userID int, limit int) ([]listing.Listing, error) {
	listings, err := listing.GetActiveListings(userID, limit)
	if err != nil {
		return nil, err
	}
	return FilterListings(listings, query), nil
}

// UserSearch represents a user's saved search query
type UserSearch struct {
	ID          int
	UserID      int
	QueryString string
	CreatedAt   time.Time
}

// TopSearch represents a popular search query with its count
type TopSearch struct {
	QueryString string
	Count       int
}

// SaveUserSearch saves a search query to the database. A userID of 0
// records an anonymous search.
func SaveUserSearch(userID int, queryString string) error {
	if queryString == "" {
		return nil
	}
	_, err := db.Exec("INSERT INTO UserSearch (user_id, query_string) VALUES (?, ?)", userID, queryString)
	if err != nil {
		log.Printf("Error saving user search: %v", err)
		return err
	}
	return nil
}

// GetRecentUserSearches returns a user's recent search queries
func GetRecentUserSearches(userID int, limit int) ([]UserSearch, error) {
	rows, err := db.Query("SELECT id, user_id, query_string, created_at FROM UserSearch WHERE user_id = ? ORDER BY created_at DESC LIMIT ?", userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []UserSearch
	for rows.Next() {
		var s UserSearch
		var createdAt string
		if err := rows.Scan(&s.ID, &s.UserID, &s.QueryString, &createdAt); err != nil {
			return nil, err
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

// DeleteAllUserSearches deletes all search entries for a user
func DeleteAllUserSearches(userID int) error {
	_, err := db.Exec("DELETE FROM UserSearch WHERE user_id = ?", userID)
	if err != nil {
		log.Printf("Error deleting all user searches: %v", err)
		return err
	}
	return nil
}

// GetTopSearches returns the most frequent search queries across all users
func GetTopSearches(limit int) ([]TopSearch, error) {
	rows, err := db.Query("SELECT query_string, COUNT(*) as count FROM UserSearch GROUP BY query_string ORDER BY count DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []TopSearch
	for rows.Next() {
		var s TopSearch
		if err := rows.Scan(&s.QueryString, &s.Count); err != nil {
			return nil, err
		}
		top = append(top, s)
	}
	return top, rows.Err()
}
