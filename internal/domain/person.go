package domain

import (
	"sort"
	"strings"
)

// Person is a contact record: four validated fields plus a set of tags.
// Persons are immutable once constructed.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag // sorted, no duplicates
}

// NewPerson builds a person from validated field values. Duplicate tags are
// collapsed and the tag set is kept sorted so rendering is deterministic.
func NewPerson(name Name, phone Phone, email Email, address Address, tags []Tag) Person {
	seen := make(map[Tag]struct{}, len(tags))
	owned := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		owned = append(owned, t)
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i] < owned[j] })
	return Person{name: name, phone: phone, email: email, address: address, tags: owned}
}

// Name returns the person's name.
func (p Person) Name() Name { return p.name }

// Phone returns the person's phone number.
func (p Person) Phone() Phone { return p.phone }

// Email returns the person's email address.
func (p Person) Email() Email { return p.email }

// Address returns the person's postal address.
func (p Person) Address() Address { return p.address }

// Tags returns a copy of the person's tags; mutating the returned slice
// does not affect the person.
func (p Person) Tags() []Tag {
	return append([]Tag(nil), p.tags...)
}

// SameStateAs reports whether two persons hold the same name, phone, email
// and address. Tags are excluded from the comparison.
func (p Person) SameStateAs(other Person) bool {
	return p.name == other.name &&
		p.phone == other.phone &&
		p.email == other.email &&
		p.address == other.address
}

// Details renders the four core fields.
func (p Person) Details() string {
	var b strings.Builder
	b.WriteString(p.name.String())
	b.WriteString(" Phone: ")
	b.WriteString(p.phone.String())
	b.WriteString(" Email: ")
	b.WriteString(p.email.String())
	b.WriteString(" Address: ")
	b.WriteString(p.address.String())
	return b.String()
}

// String renders the person as text, tags included.
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Details())
	b.WriteString(" Tags: ")
	for _, t := range p.tags {
		b.WriteString(t.String())
	}
	return b.String()
}
