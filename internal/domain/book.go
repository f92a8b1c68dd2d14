package domain

import "errors"

var (
	// ErrDuplicatePerson is returned when adding a person whose core fields
	// match an existing record.
	ErrDuplicatePerson = errors.New("person already exists in the address book")

	// ErrPersonNotFound is returned when removing a person who is not in the
	// address book.
	ErrPersonNotFound = errors.New("person not found in the address book")
)

// AddressBook is an insertion-ordered collection of persons with no two
// records in the same state (see Person.SameStateAs).
type AddressBook struct {
	persons []Person
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook { return &AddressBook{} }

// NewAddressBookWith builds a book from a stored person list, preserving
// order. It fails if the list carries a same-state duplicate.
func NewAddressBookWith(persons []Person) (*AddressBook, error) {
	b := NewAddressBook()
	for _, p := range persons {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Add appends a person; ErrDuplicatePerson if an equivalent record exists.
func (b *AddressBook) Add(p Person) error {
	if b.Contains(p) {
		return ErrDuplicatePerson
	}
	b.persons = append(b.persons, p)
	return nil
}

// Remove deletes the person matching p's state; ErrPersonNotFound if absent.
func (b *AddressBook) Remove(p Person) error {
	for i, existing := range b.persons {
		if existing.SameStateAs(p) {
			b.persons = append(b.persons[:i], b.persons[i+1:]...)
			return nil
		}
	}
	return ErrPersonNotFound
}

// Clear removes every person.
func (b *AddressBook) Clear() { b.persons = nil }

// Contains reports whether a same-state record is present.
func (b *AddressBook) Contains(p Person) bool {
	for _, existing := range b.persons {
		if existing.SameStateAs(p) {
			return true
		}
	}
	return false
}

// Persons returns the records in insertion order; the returned slice is a
// copy and may be held by callers across later mutations.
func (b *AddressBook) Persons() []Person {
	return append([]Person(nil), b.persons...)
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.persons) }

// Equal reports whether two books hold same-state records in the same order.
func (b *AddressBook) Equal(other *AddressBook) bool {
	if b.Len() != other.Len() {
		return false
	}
	for i := range b.persons {
		if !b.persons[i].SameStateAs(other.persons[i]) {
			return false
		}
	}
	return true
}
