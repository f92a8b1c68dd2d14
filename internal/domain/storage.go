package domain

// Storage persists the whole address book. Implementations overwrite the
// complete collection on every Save and must round-trip every field value
// and the book's insertion order exactly.
type Storage interface {
	Load() (*AddressBook, error)
	Save(*AddressBook) error
}
