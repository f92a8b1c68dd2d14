package store

import (
	"fmt"
	"sync"

	"abook/internal/domain"
)

// FileStore persists the address book as a single JSON snapshot on disk,
// overwritten in full on every save. With a passphrase set, the snapshot is
// sealed in a scrypt/chacha20poly1305 envelope.
type FileStore struct {
	path       string
	passphrase string
	mu         sync.Mutex
}

// NewFileStore returns a plaintext JSON store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewEncryptedFileStore returns a store that encrypts the snapshot at rest.
func NewEncryptedFileStore(path, passphrase string) *FileStore {
	return &FileStore{path: path, passphrase: passphrase}
}

// Load reads the snapshot; a missing file yields an empty book.
func (s *FileStore) Load() (*domain.AddressBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	if blob == nil {
		return domain.NewAddressBook(), nil
	}
	if s.passphrase != "" {
		blob, err = decrypt(s.passphrase, blob)
		if err != nil {
			return nil, fmt.Errorf("load address book: %w", err)
		}
	}
	book, err := decodeBook(blob)
	if err != nil {
		return nil, fmt.Errorf("load address book: %w", err)
	}
	return book, nil
}

// Save overwrites the snapshot with the full book contents.
func (s *FileStore) Save(book *domain.AddressBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := encodeBook(book)
	if err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	if s.passphrase != "" {
		blob, err = encrypt(s.passphrase, blob)
		if err != nil {
			return fmt.Errorf("save address book: %w", err)
		}
	}
	if err := writeFile(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	return nil
}

// Compile-time assertion that FileStore implements domain.Storage.
var _ domain.Storage = (*FileStore)(nil)
