package listing

import (
	"time"

	"github.com/GuilhermeTebaldi/templesale2-sub001/db"
)

// Comment is a public comment on a listing
type Comment struct {
	ID         int
	ListingID  int
	UserID     int
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

// AddComment stores a comment and returns its ID
func AddComment(listingID, userID int, body string) (int, error) {
	res, err := db.Exec("INSERT INTO Comment (listing_id, user_id, body, created_at) VALUES (?, ?, ?, ?)",
		listingID, userID, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// DeleteComment removes a comment. Only the author may delete unless the
// caller is an admin.
func DeleteComment(commentID, userID int, isAdmin bool) error {
	if isAdmin {
		_, err := db.Exec("DELETE FROM Comment WHERE id = ?", commentID)
		return err
	}
	_, err := db.Exec("DELETE FROM Comment WHERE id = ? AND user_id = ?", commentID, userID)
	return err
}

// GetComments returns a listing's comments, oldest first
func GetComments(listingID int) ([]Comment, error) {
	rows, err := db.Query(`SELECT c.id, c.listing_id, c.user_id, u.name, c.body, c.created_at
		FROM Comment c
		JOIN User u ON c.user_id = u.id
		WHERE c.listing_id = ?
		ORDER BY c.created_at ASC, c.id ASC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.ListingID, &c.UserID, &c.AuthorName, &c.Body, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
