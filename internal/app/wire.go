package app

import (
	"fmt"

	"go.uber.org/zap"

	"abook/internal/domain"
	"abook/internal/logic"
	"abook/internal/store"
)

// Wire bundles the storage backend and executor for the CLI.
type Wire struct {
	Storage domain.Storage
	Logic   *logic.Logic

	closer func() error
}

// NewWire constructs the dependency graph from cfg: it opens the configured
// storage backend, loads the persisted book, and builds the executor over it.
func NewWire(cfg Config) (*Wire, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		storage domain.Storage
		closer  func() error
	)
	switch cfg.Backend {
	case BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("wire storage: %w", err)
		}
		storage, closer = s, s.Close
	default:
		if cfg.Passphrase != "" {
			storage = store.NewEncryptedFileStore(cfg.Path, cfg.Passphrase)
		} else {
			storage = store.NewFileStore(cfg.Path)
		}
	}

	book, err := storage.Load()
	if err != nil {
		if closer != nil {
			_ = closer()
		}
		return nil, err
	}
	log.Debug("address book loaded",
		zap.String("backend", cfg.Backend),
		zap.String("path", cfg.Path),
		zap.Int("persons", book.Len()))

	return &Wire{
		Storage: storage,
		Logic:   logic.New(book, storage, log),
		closer:  closer,
	}, nil
}

// Close releases backend resources, if the backend holds any.
func (w *Wire) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer()
}
