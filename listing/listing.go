package listing

import (
	"database/sql"
	"strings"
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

// Listing represents a marketplace item in the system
type Listing struct {
	ID          int
	Title       string
	Description string
	Category    string
	Price       float64
	Currency    string
	ImageCount  int
	UserID      int
	ClickCount  int
	CreatedAt   time.Time
	DeletedAt   *time.Time

	// Raw coordinate fields as supplied by the seller. Listings without
	// valid coordinates still render in list views; geo.Normalize decides
	// which ones participate in the map.
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64

	// Joined seller fields
	SellerName  sql.NullString
	SellerPhone sql.NullString

	// User-specific computed field
	Liked bool
}

// IsArchived returns true if the listing has been archived
func (l Listing) IsArchived() bool {
	return l.DeletedAt != nil
}

const listingColumns = `l.id, l.title, l.description, l.category, l.price, l.currency,
	l.image_count, l.latitude, l.longitude, l.user_id, l.click_count,
	l.created_at, l.deleted_at, u.name AS seller_name, u.phone AS seller_phone`

func scanListing(scanner interface {
	Scan(dest ...interface{}) error
}, liked interface{}) (Listing, error) {
	var l Listing
	var createdAt string
	var deletedAt sql.NullString

	dest := []interface{}{
		&l.ID, &l.Title, &l.Description, &l.Category, &l.Price, &l.Currency,
		&l.ImageCount, &l.Latitude, &l.Longitude, &l.UserID, &l.ClickCount,
		&createdAt, &deletedAt, &l.SellerName, &l.SellerPhone,
	}
	if liked != nil {
		dest = append(dest, liked)
	}
	if err := scanner.Scan(dest...); err != nil {
		return Listing{}, err
	}

	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, deletedAt.String); err == nil {
			l.DeletedAt = &t
		}
	}
	return l, nil
}

// queryListings runs a query whose column list is listingColumns plus a
// trailing liked flag.
func queryListings(query string, args ...interface{}) ([]Listing, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var likedInt sql.NullInt64
		l, err := scanListing(rows, &likedInt)
		if err != nil {
			return nil, err
		}
		l.Liked = likedInt.Valid && likedInt.Int64 != 0
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetListing retrieves a listing by ID, including archived ones
func GetListing(id int, userID int) (Listing, bool) {
	listings, err := GetListingsByIDs([]int{id}, userID)
	if err != nil || len(listings) == 0 {
		return Listing{}, false
	}
	return listings[0], true
}

// GetListingsByIDs returns listings for a list of IDs, preserving input order
func GetListingsByIDs(ids []int, userID int) ([]Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := []interface{}{userID}
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}

	query := `SELECT ` + listingColumns + `,
		CASE WHEN ll.listing_id IS NOT NULL THEN 1 ELSE 0 END AS liked
		FROM Listing l
		JOIN User u ON l.user_id = u.id
		LEFT JOIN LikedListing ll ON l.id = ll.listing_id AND ll.user_id = ?
		WHERE l.id IN (` + strings.Join(placeholders, ",") + `)`

	listings, err := queryListings(query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	result := make([]Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			result = append(result, l)
		}
	}
	return result, nil
}

// GetActiveListings returns all active listings, newest first
func GetActiveListings(userID int, limit int) ([]Listing, error) {
	query := `SELECT ` + listingColumns + `,
		CASE WHEN ll.listing_id IS NOT NULL THEN 1 ELSE 0 END AS liked
		FROM Listing l
		JOIN User u ON l.user_id = u.id
		LEFT JOIN LikedListing ll ON l.id = ll.listing_id AND ll.user_id = ?
		WHERE l.deleted_at IS NULL
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT ?`
	return queryListings(query, userID, limit)
}

// GetListingsByUser returns a user's own listings, optionally archived ones
func GetListingsByUser(userID int, archived bool) ([]Listing, error) {
	cond := "l.deleted_at IS NULL"
	if archived {
		cond = "l.deleted_at IS NOT NULL"
	}
	query := `SELECT ` + listingColumns + `, 0 AS liked
		FROM Listing l
		JOIN User u ON l.user_id = u.id
		WHERE l.user_id = ? AND ` + cond + `
		ORDER BY l.created_at DESC`
	return queryListings(query, userID)
}

// AddListing inserts a new listing and returns its ID
func AddListing(l Listing) (int, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(`INSERT INTO Listing (title, description, category, price,
		currency, image_count, latitude, longitude, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Title, l.Description, l.Category, l.Price, l.Currency,
		l.ImageCount, l.Latitude, l.Longitude, l.UserID, createdAt)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// UpdateListing updates an existing listing
func UpdateListing(l Listing) error {
	_, err := db.Exec(`UPDATE Listing SET title = ?, description = ?, category = ?,
		price = ?, currency = ?, image_count = ?, latitude = ?, longitude = ?
		WHERE id = ?`,
		l.Title, l.Description, l.Category, l.Price, l.Currency,
		l.ImageCount, l.Latitude, l.Longitude, l.ID)
	return err
}

// ArchiveListing archives a listing using soft delete
func ArchiveListing(id int) error {
	_, err := db.Exec("UPDATE Listing SET deleted_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), id)
	return err
}

// RestoreListing restores an archived listing
func RestoreListing(id int) error {
	_, err := db.Exec("UPDATE Listing SET deleted_at = NULL WHERE id = ?", id)
	return err
}

// ArchiveListingsByUserID archives all listings for a specific user
func ArchiveListingsByUserID(userID int) error {
	_, err := db.Exec("UPDATE Listing SET deleted_at = ? WHERE user_id = ? AND deleted_at IS NULL",
		time.Now().UTC().Format(time.RFC3339Nano), userID)
	return err
}

// IncrementListingClick bumps the click counter for ranking popular listings
func IncrementListingClick(id int) error {
	_, err := db.Exec("UPDATE Listing SET click_count = click_count + 1 WHERE id = ?", id)
	return err
}

// GetMostPopularListings returns the top n active listings by clicks and likes
func GetMostPopularListings(n int) ([]Listing, error) {
	query := `SELECT ` + listingColumns + `, 0 AS liked
		FROM Listing l
		JOIN User u ON l.user_id = u.id
		WHERE l.deleted_at IS NULL
		ORDER BY (
			l.click_count * 2 +
			COALESCE((SELECT COUNT(*) FROM LikedListing ll WHERE ll.listing_id = l.id), 0) * 3
		) DESC, l.id DESC
		LIMIT ?`
	return queryListings(query, n)
}
