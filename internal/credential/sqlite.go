package credential

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore keeps the pair in a single-row sqlite table, so a save is an
// atomic overwrite and a reload after process restart sees the last write.
type SqliteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	username TEXT NOT NULL,
	password TEXT NOT NULL
);`

func OpenSqliteStore(path string) (*SqliteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating credential directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing credential store: %w", err)
	}

	// The file holds a plaintext password, same as the browser's local
	// storage did. Keep it readable by the owner only.
	if err := os.Chmod(path, 0o600); err != nil {
		db.Close()
		return nil, err
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Save(cred Credential) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (id, username, password) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET username = excluded.username, password = excluded.password`,
		cred.Username, cred.Password,
	)
	return err
}

func (s *SqliteStore) Load() (Credential, error) {
	var cred Credential
	err := s.db.QueryRow(`SELECT username, password FROM credentials WHERE id = 1`).
		Scan(&cred.Username, &cred.Password)
	if err == sql.ErrNoRows {
		return Credential{}, ErrNoCredentials
	}
	return cred, err
}

func (s *SqliteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE id = 1`)
	return err
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}
