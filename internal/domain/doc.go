// Package domain holds the address book model: validated field value types,
// the immutable Person record, the insertion-ordered AddressBook and the
// Storage interface implemented by the persistence backends.
//
// Two persons are considered the same record when their name, phone, email
// and address are all equal; tags never participate in that comparison.
package domain
