package listing

import "github.com/GuilhermeTebaldi/templesale2-sub001/db"

// AddToCart puts a listing in the user's cart
func AddToCart(userID, listingID int) error {
	_, err := db.Exec("INSERT OR IGNORE INTO CartItem (user_id, listing_id) VALUES (?, ?)", userID, listingID)
	return err
}

// RemoveFromCart takes a listing out of the user's cart
func RemoveFromCart(userID, listingID int) error {
	_, err := db.Exec("DELETE FROM CartItem WHERE user_id = ? AND listing_id = ?", userID, listingID)
	return err
}

// GetCartListings returns the user's cart contents, newest first
func GetCartListings(userID int) ([]Listing, error) {
	query := `SELECT ` + listingColumns + `, 0 AS liked
		FROM CartItem ci
		JOIN Listing l ON ci.listing_id = l.id
		JOIN User u ON l.user_id = u.id
		WHERE ci.user_id = ? AND l.deleted_at IS NULL
		ORDER BY ci.created_at DESC`
	return queryListings(query, userID)
}

// CartCount returns how many listings are in the user's cart
func CartCount(userID int) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM CartItem WHERE user_id = ?", userID).Scan(&n)
	return n, err
}
