// Package logic executes parsed commands against the address book model.
//
// The executor keeps two pieces of state beside the book itself: the storage
// backend, written in full after every successful mutation, and the "last
// shown list" produced by list and find. Index-taking commands (view,
// viewall, delete) resolve their 1-based index against that list, never
// against the book's own ordering, and detect when the list has gone stale
// because a referenced record has since left the book.
package logic
