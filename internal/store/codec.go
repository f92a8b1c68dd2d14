package store

import (
	"encoding/json"
	"fmt"

	"abook/internal/domain"
)

// personRecord is the on-disk form of a domain.Person.
type personRecord struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags,omitempty"`
}

// bookSnapshot is the on-disk form of the whole address book, in insertion
// order.
type bookSnapshot struct {
	Persons []personRecord `json:"persons"`
}

func encodeBook(book *domain.AddressBook) ([]byte, error) {
	persons := book.Persons()
	snap := bookSnapshot{Persons: make([]personRecord, 0, len(persons))}
	for _, p := range persons {
		rec := personRecord{
			Name:    p.Name().String(),
			Phone:   p.Phone().String(),
			Email:   p.Email().String(),
			Address: p.Address().String(),
		}
		for _, t := range p.Tags() {
			rec.Tags = append(rec.Tags, t.Name())
		}
		snap.Persons = append(snap.Persons, rec)
	}
	return json.MarshalIndent(snap, "", "  ")
}

// decodeBook rebuilds the book through the domain constructors so stored
// values are re-validated on the way in.
func decodeBook(data []byte) (*domain.AddressBook, error) {
	var snap bookSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode address book: %w", err)
	}
	persons := make([]domain.Person, 0, len(snap.Persons))
	for _, rec := range snap.Persons {
		p, err := personFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode address book: %w", err)
		}
		persons = append(persons, p)
	}
	book, err := domain.NewAddressBookWith(persons)
	if err != nil {
		return nil, fmt.Errorf("decode address book: %w", err)
	}
	return book, nil
}

func personFromRecord(rec personRecord) (domain.Person, error) {
	name, err := domain.NewName(rec.Name)
	if err != nil {
		return domain.Person{}, err
	}
	phone, err := domain.NewPhone(rec.Phone)
	if err != nil {
		return domain.Person{}, err
	}
	email, err := domain.NewEmail(rec.Email)
	if err != nil {
		return domain.Person{}, err
	}
	address, err := domain.NewAddress(rec.Address)
	if err != nil {
		return domain.Person{}, err
	}
	tags := make([]domain.Tag, 0, len(rec.Tags))
	for _, raw := range rec.Tags {
		t, err := domain.NewTag(raw)
		if err != nil {
			return domain.Person{}, err
		}
		tags = append(tags, t)
	}
	return domain.NewPerson(name, phone, email, address, tags), nil
}
