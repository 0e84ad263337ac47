package rates

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS rates (
	quote TEXT PRIMARY KEY,
	rate REAL NOT NULL,
	fetched_at DATETIME NOT NULL
);
`

// Cache keeps the last successfully fetched rate per quote currency so a
// fresh run can fall back to "the previously held rate" when every source
// is down. Display plumbing only; it never stores trades.
type Cache struct {
	db *sql.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Put upserts the latest known rate for a quote currency.
func (c *Cache) Put(quote string, rate float64, fetchedAt time.Time) error {
	_, err := c.db.Exec(`
		INSERT INTO rates (quote, rate, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(quote) DO UPDATE SET rate = excluded.rate, fetched_at = excluded.fetched_at`,
		quote, rate, fetchedAt.UTC(),
	)
	return err
}

// Get returns the last known rate for a quote currency, or sql.ErrNoRows
// when none was ever stored.
func (c *Cache) Get(quote string) (float64, time.Time, error) {
	var rate float64
	var fetchedAt time.Time

	err := c.db.QueryRow(
		`SELECT rate, fetched_at FROM rates WHERE quote = ?`, quote,
	).Scan(&rate, &fetchedAt)
	if err != nil {
		return 0, time.Time{}, err
	}

	return rate, fetchedAt, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
