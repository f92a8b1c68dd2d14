package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abook/internal/domain"
)

func TestNewName(t *testing.T) {
	valid := []string{"Adam Brown", "Person 1", "O'Neil-Smith Jr.", "bla bla KEY bla", "Tan, Wei Ming"}
	for _, raw := range valid {
		n, err := domain.NewName(raw)
		require.NoError(t, err, "name %q", raw)
		assert.Equal(t, raw, n.String())
	}

	invalid := []string{"", "   ", "[]\\[;]", "not/a/name", "@home"}
	for _, raw := range invalid {
		_, err := domain.NewName(raw)
		requireValidationError(t, err, domain.NameConstraints)
	}
}

func TestNewPhone(t *testing.T) {
	_, err := domain.NewPhone("98765432")
	require.NoError(t, err)

	for _, raw := range []string{"", "not_numbers", "9876 5432", "+6598765432"} {
		_, err := domain.NewPhone(raw)
		requireValidationError(t, err, domain.PhoneConstraints)
	}
}

func TestNewEmail(t *testing.T) {
	for _, raw := range []string{"adam@gmail.com", "valid@e.mail", "a.b+c@sub.domain.org"} {
		_, err := domain.NewEmail(raw)
		require.NoError(t, err, "email %q", raw)
	}

	for _, raw := range []string{"", "notAnEmail", "missing@tld", "@no.local", "two@@at.com"} {
		_, err := domain.NewEmail(raw)
		requireValidationError(t, err, domain.EmailConstraints)
	}
}

func TestNewAddress(t *testing.T) {
	a, err := domain.NewAddress("311, Clementi Ave 2, #02-25")
	require.NoError(t, err)
	assert.Equal(t, "311, Clementi Ave 2, #02-25", a.String())

	for _, raw := range []string{"", "   "} {
		_, err := domain.NewAddress(raw)
		requireValidationError(t, err, domain.AddressConstraints)
	}
}

func TestNewTag(t *testing.T) {
	tag, err := domain.NewTag("friend")
	require.NoError(t, err)
	assert.Equal(t, "[friend]", tag.String())
	assert.Equal(t, "friend", tag.Name())

	for _, raw := range []string{"", "invalid_-[.tag", "two words"} {
		_, err := domain.NewTag(raw)
		requireValidationError(t, err, domain.TagConstraints)
	}
}

// Revalidating a value's rendered form yields the same value.
func TestFieldConstruction_Idempotent(t *testing.T) {
	name, err := domain.NewName("Adam Brown")
	require.NoError(t, err)
	again, err := domain.NewName(name.String())
	require.NoError(t, err)
	assert.Equal(t, name, again)

	phone, err := domain.NewPhone("98765432")
	require.NoError(t, err)
	againPhone, err := domain.NewPhone(phone.String())
	require.NoError(t, err)
	assert.Equal(t, phone, againPhone)

	email, err := domain.NewEmail("adam@gmail.com")
	require.NoError(t, err)
	againEmail, err := domain.NewEmail(email.String())
	require.NoError(t, err)
	assert.Equal(t, email, againEmail)

	address, err := domain.NewAddress(" 111, alpha street ")
	require.NoError(t, err)
	againAddress, err := domain.NewAddress(address.String())
	require.NoError(t, err)
	assert.Equal(t, address, againAddress)

	tag, err := domain.NewTag("tag1")
	require.NoError(t, err)
	againTag, err := domain.NewTag(tag.Name())
	require.NoError(t, err)
	assert.Equal(t, tag, againTag)
}

func requireValidationError(t *testing.T, err error, want string) {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, want, verr.Message)
	require.Equal(t, want, err.Error())
}
