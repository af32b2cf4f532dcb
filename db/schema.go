package db

import "database/sql"

// ensureSchema creates the tables the storefront needs. SQLite keeps this a
// simple idempotent bootstrap; migrations beyond CREATE IF NOT EXISTS are
// handled out of band.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS User (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email_address TEXT,
			password_hash TEXT NOT NULL,
			password_salt TEXT NOT NULL,
			phone_verified INTEGER NOT NULL DEFAULT 0,
			is_admin INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			deleted_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS Listing (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'BRL',
			image_count INTEGER NOT NULL DEFAULT 0,
			latitude REAL,
			longitude REAL,
			user_id INTEGER NOT NULL REFERENCES User(id),
			click_count INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			deleted_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_listing_user ON Listing(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_listing_category ON Listing(category)`,
		`CREATE TABLE IF NOT EXISTS LikedListing (
			user_id INTEGER NOT NULL REFERENCES User(id),
			listing_id INTEGER NOT NULL REFERENCES Listing(id),
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (user_id, listing_id)
		)`,
		`CREATE TABLE IF NOT EXISTS CartItem (
			user_id INTEGER NOT NULL REFERENCES User(id),
			listing_id INTEGER NOT NULL REFERENCES Listing(id),
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (user_id, listing_id)
		)`,
		`CREATE TABLE IF NOT EXISTS Comment (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			listing_id INTEGER NOT NULL REFERENCES Listing(id),
			user_id INTEGER NOT NULL REFERENCES User(id),
			body TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comment_listing ON Comment(listing_id)`,
		`CREATE TABLE IF NOT EXISTS UserSearch (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL DEFAULT 0,
			query_string TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS PhoneVerification (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			phone TEXT NOT NULL,
			verification_code TEXT NOT NULL,
			expires_at TEXT NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
