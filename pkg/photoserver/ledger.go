package photoserver

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Upload is one ledger row.
type Upload struct {
	ID        int64     `json:"id"`
	Filename  string    `json:"filename"`
	Mode      string    `json:"mode"`
	Item      string    `json:"item"`
	Target    string    `json:"target"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Ledger records every stored upload in a SQLite file so the phone page
// can show recent activity across server restarts.
type Ledger struct {
	conn *sql.DB
	mu   sync.Mutex
}

// OpenLedger opens (creating if needed) the ledger database at path.
func OpenLedger(path string) (*Ledger, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS uploads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		filename TEXT NOT NULL,
		mode TEXT NOT NULL,
		item TEXT NOT NULL DEFAULT '',
		target TEXT NOT NULL DEFAULT '',
		size INTEGER DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_uploads_created_at ON uploads(created_at);
	`
	_, err := l.conn.Exec(schema)
	return err
}

// Insert adds a row and returns its ID.
func (l *Ledger) Insert(u Upload) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result, err := l.conn.Exec(`
		INSERT INTO uploads (filename, mode, item, target, size, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Filename, u.Mode, u.Item, u.Target, u.Size, u.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert upload: %w", err)
	}
	return result.LastInsertId()
}

// Recent returns the newest rows, most recent first.
func (l *Ledger) Recent(limit int) ([]Upload, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.conn.Query(`
		SELECT id, filename, mode, item, target, size, created_at
		FROM uploads ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent uploads: %w", err)
	}
	defer rows.Close()

	uploads := make([]Upload, 0, limit)
	for rows.Next() {
		var u Upload
		if err := rows.Scan(&u.ID, &u.Filename, &u.Mode, &u.Item, &u.Target, &u.Size, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.conn.Close()
}
