// Package store provides the persistence backends for the address book.
//
// It contains concrete implementations of domain.Storage, each serialising
// the whole book as one JSON snapshot and overwriting it on every save:
//
//   - FileStore: a flat file, written atomically via temp-file + rename,
//     optionally sealed in a passphrase-derived encryption envelope.
//   - SQLiteStore: a single-row SQLite table holding the same snapshot.
//
// Stored values pass back through the domain constructors on load, so a
// snapshot that fails field validation is rejected rather than admitted.
package store
