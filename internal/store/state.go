package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StateDB records the last saved content of each managed document so
// unchanged saves can be skipped, and keeps the backup registry.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS saved_documents (
		path     TEXT PRIMARY KEY,
		size     INTEGER NOT NULL,
		hash     TEXT NOT NULL,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating saved_documents table: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS backups (
		id          TEXT PRIMARY KEY,
		path        TEXT NOT NULL,
		backup_path TEXT NOT NULL,
		created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating backups table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsCurrent checks whether the document at path was last saved with the
// same size and content hash.
func (s *StateDB) IsCurrent(path string, size int64, hash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM saved_documents WHERE path = ? AND size = ? AND hash = ?`,
		path, size, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkSaved records the content just written to path.
func (s *StateDB) MarkSaved(path string, size int64, hash string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO saved_documents (path, size, hash) VALUES (?, ?, ?)`,
		path, size, hash,
	)
	return err
}

// RecordBackup registers a backup copy of path written at backupPath.
func (s *StateDB) RecordBackup(id, path, backupPath string) error {
	_, err := s.db.Exec(
		`INSERT INTO backups (id, path, backup_path) VALUES (?, ?, ?)`,
		id, path, backupPath,
	)
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// hashContent computes the SHA-256 hash of document content.
func hashContent(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
