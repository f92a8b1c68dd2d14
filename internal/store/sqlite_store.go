package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"abook/internal/domain"
)

// SQLiteStore persists the address book as a single JSON snapshot row,
// replaced in full on every save.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS address_book (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create address_book table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads the snapshot row; an empty table yields an empty book.
func (s *SQLiteStore) Load() (*domain.AddressBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM address_book WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	book, err := decodeBook(payload)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	return book, nil
}

// Save replaces the snapshot row with the full book contents.
func (s *SQLiteStore) Save(book *domain.AddressBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := encodeBook(book)
	if err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO address_book (id, payload) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload`,
		payload,
	); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Compile-time assertion that SQLiteStore implements domain.Storage.
var _ domain.Storage = (*SQLiteStore)(nil)
