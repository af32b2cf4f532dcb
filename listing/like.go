package listing

import "github.com/GuilhermeTebaldi/templesale2-sub001/db"

// LikeListing records that a user liked a listing
func LikeListing(userID, listingID int) error {
	_, err := db.Exec("INSERT OR IGNORE INTO LikedListing (user_id, listing_id) VALUES (?, ?)", userID, listingID)
	return err
}

// UnlikeListing removes a user's like from a listing
func UnlikeListing(userID, listingID int) error {
	_, err := db.Exec("DELETE FROM LikedListing WHERE user_id = ? AND listing_id = ?", userID, listingID)
	return err
}

// IsListingLikedByUser reports whether the user has liked the listing
func IsListingLikedByUser(userID, listingID int) (bool, error) {
	rows, err := db.Query("SELECT 1 FROM LikedListing WHERE user_id = ? AND listing_id = ?", userID, listingID)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

// GetLikedListings returns the user's liked listings, newest like first
func GetLikedListings(userID int) ([]Listing, error) {
	query := `SELECT ` + listingColumns + `, 1 AS liked
		FROM LikedListing ll
		JOIN Listing l ON ll.listing_id = l.id
		JOIN User u ON l.user_id = u.id
		WHERE ll.user_id = ? AND l.deleted_at IS NULL
		ORDER BY ll.created_at DESC`
	return queryListings(query, userID)
}
