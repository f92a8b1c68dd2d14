package domain

import (
	"regexp"
	"strings"
)

// Fixed constraint messages surfaced when a field value fails its format rule.
const (
	NameConstraints    = "Person names should only contain letters, digits, spaces and the characters . , ' -"
	PhoneConstraints   = "Person phones should only contain numbers"
	EmailConstraints   = "Person emails should be of the form local-part@domain.tld"
	AddressConstraints = "Person addresses must not be blank"
	TagConstraints     = "Tag names should be alphanumeric"
)

var (
	nameRegexp  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .,'-]*$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]+$`)
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)
	tagRegexp   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// ValidationError reports a field value that does not match its format rule.
// The message is the field's fixed constraint text.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Name is a person's name.
type Name string

// NewName validates and normalises a raw name.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if !nameRegexp.MatchString(trimmed) {
		return "", &ValidationError{Field: "name", Message: NameConstraints}
	}
	return Name(trimmed), nil
}

// String returns the string form of the name.
func (n Name) String() string { return string(n) }

// Words returns the whitespace-delimited tokens of the name.
func (n Name) Words() []string { return strings.Fields(string(n)) }

// Phone is a person's phone number.
type Phone string

// NewPhone validates and normalises a raw phone number.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if !phoneRegexp.MatchString(trimmed) {
		return "", &ValidationError{Field: "phone", Message: PhoneConstraints}
	}
	return Phone(trimmed), nil
}

// String returns the string form of the phone number.
func (p Phone) String() string { return string(p) }

// Email is a person's email address.
type Email string

// NewEmail validates and normalises a raw email address.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if !emailRegexp.MatchString(trimmed) {
		return "", &ValidationError{Field: "email", Message: EmailConstraints}
	}
	return Email(trimmed), nil
}

// String returns the string form of the email address.
func (e Email) String() string { return string(e) }

// Address is a person's postal address.
type Address string

// NewAddress validates and normalises a raw address.
func NewAddress(raw string) (Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ValidationError{Field: "address", Message: AddressConstraints}
	}
	return Address(trimmed), nil
}

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// Tag labels a person; a person carries zero or more tags.
type Tag string

// NewTag validates a raw tag name.
func NewTag(raw string) (Tag, error) {
	trimmed := strings.TrimSpace(raw)
	if !tagRegexp.MatchString(trimmed) {
		return "", &ValidationError{Field: "tag", Message: TagConstraints}
	}
	return Tag(trimmed), nil
}

// String returns the tag in its bracketed display form.
func (t Tag) String() string { return "[" + string(t) + "]" }

// Name returns the bare tag name.
func (t Tag) Name() string { return string(t) }
