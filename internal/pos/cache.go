package pos

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Cache persists resolved POS labels in a SQLite database so repeated
// runs over the same word lists do not re-query the tagging API
type Cache struct {
	db *sql.DB
}

// OpenCache opens (or creates) a label cache at the given path
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS pos_labels (
		word     TEXT NOT NULL,
		sentence TEXT NOT NULL,
		label    TEXT NOT NULL,
		PRIMARY KEY (word, sentence)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get returns the cached label for a (word, sentence) pair
func (c *Cache) Get(word, sentence string) (string, bool) {
	var label string
	err := c.db.QueryRow(
		"SELECT label FROM pos_labels WHERE word = ? AND sentence = ?",
		word, sentence,
	).Scan(&label)
	if err != nil {
		return "", false
	}
	return label, true
}

// Put stores the label for a (word, sentence) pair, replacing any
// previous entry
func (c *Cache) Put(word, sentence, label string) error {
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO pos_labels (word, sentence, label) VALUES (?, ?, ?)",
		word, sentence, label,
	)
	return err
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}
