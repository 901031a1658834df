// internal/database/document.go
package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DocumentDB stores serialized application state as JSON documents in a
// SQLite key-value table. It satisfies the store's Persistence interface.
type DocumentDB struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path and ensures the schema exists.
func Open(path string) (*DocumentDB, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &DocumentDB{db: db}
	if err := d.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return d, nil
}

// NewDocumentDBFromDB wraps an existing connection.
func NewDocumentDBFromDB(db *sqlx.DB) *DocumentDB {
	return &DocumentDB{db: db}
}

func (d *DocumentDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		name TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := d.db.Exec(schema)
	return err
}

// Load returns the document saved under name, or nil when none exists.
func (d *DocumentDB) Load(name string) ([]byte, error) {
	var body string
	err := d.db.Get(&body, `SELECT body FROM documents WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// Save writes the document under name, replacing any previous version.
func (d *DocumentDB) Save(name string, data []byte) error {
	query := `
	INSERT INTO documents (name, body, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`

	_, err := d.db.Exec(query, name, string(data))
	return err
}

// Delete removes the document saved under name, if any.
func (d *DocumentDB) Delete(name string) error {
	_, err := d.db.Exec(`DELETE FROM documents WHERE name = ?`, name)
	return err
}

func (d *DocumentDB) Close() error {
	return d.db.Close()
}
