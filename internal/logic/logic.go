package logic

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"abook/internal/domain"
	"abook/internal/parser"
)

// Feedback messages produced by the executor.
const (
	MsgAddSuccess     = "New person added: %s"
	MsgDuplicate      = "This person already exists in the address book"
	MsgDeleteSuccess  = "Deleted person: %s"
	MsgClearSuccess   = "Address book has been cleared!"
	MsgListSummary    = "%d persons listed!"
	MsgViewPerson     = "Viewing person: %s"
	MsgViewAllPerson  = "Viewing person details: %s"
	MsgInvalidIndex   = "The person index provided is invalid"
	MsgPersonNotFound = "Person could not be found in address book"
	MsgExit           = "Exiting address book as requested..."
	MsgStorageFailure = "Failed to save address book: %v"
)

// Logic executes parsed commands against the address book.
//
// It owns the book for the process lifetime, keeps the list last shown to
// the caller so later view/delete commands can reference records by display
// position, and writes the whole book to storage after every successful
// mutation.
type Logic struct {
	book    *domain.AddressBook
	storage domain.Storage
	shown   []domain.Person
	log     *zap.Logger
}

// New returns an executor over the given book and storage. A nil logger
// disables logging.
func New(book *domain.AddressBook, storage domain.Storage, log *zap.Logger) *Logic {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logic{book: book, storage: storage, log: log}
}

// Book exposes the executor's address book.
func (l *Logic) Book() *domain.AddressBook { return l.book }

// LastShown returns a copy of the list most recently shown to the caller.
func (l *Logic) LastShown() []domain.Person {
	return append([]domain.Person(nil), l.shown...)
}

// Execute parses and runs one command line. Every outcome, including parse
// and validation failures, is reported through the Result; only storage
// failures set Result.Err.
func (l *Logic) Execute(line string) Result {
	cmd, err := parser.Parse(line)
	if err != nil {
		return message(err.Error())
	}
	return l.run(cmd)
}

func (l *Logic) run(cmd parser.Command) Result {
	switch c := cmd.(type) {
	case parser.AddCommand:
		return l.add(c)
	case parser.DeleteCommand:
		return l.delete(c)
	case parser.ViewCommand:
		return l.view(c.Index, false)
	case parser.ViewAllCommand:
		return l.view(c.Index, true)
	case parser.ListCommand:
		return l.list()
	case parser.FindCommand:
		return l.find(c)
	case parser.ClearCommand:
		return l.clear()
	case parser.HelpCommand:
		return message(parser.UsageAll)
	case parser.ExitCommand:
		return Result{Feedback: MsgExit, Exit: true}
	default:
		// Parse never yields a command outside the set above.
		return message(parser.UsageAll)
	}
}

func (l *Logic) add(c parser.AddCommand) Result {
	if err := l.book.Add(c.Person); err != nil {
		if errors.Is(err, domain.ErrDuplicatePerson) {
			return message(MsgDuplicate)
		}
		return message(err.Error())
	}
	if err := l.persist(); err != nil {
		return storageFailure(err)
	}
	l.log.Debug("person added", zap.Stringer("name", c.Person.Name()))
	return message(fmt.Sprintf(MsgAddSuccess, c.Person))
}

func (l *Logic) delete(c parser.DeleteCommand) Result {
	target, ok := l.shownAt(c.Index)
	if !ok {
		return message(MsgInvalidIndex)
	}
	if err := l.book.Remove(target); err != nil {
		// The shown list is stale: the record left the book after the
		// listing was produced.
		return message(MsgPersonNotFound)
	}
	if err := l.persist(); err != nil {
		return storageFailure(err)
	}
	l.log.Debug("person deleted", zap.Stringer("name", target.Name()))
	return message(fmt.Sprintf(MsgDeleteSuccess, target))
}

func (l *Logic) view(index int, withTags bool) Result {
	target, ok := l.shownAt(index)
	if !ok {
		return message(MsgInvalidIndex)
	}
	if !l.book.Contains(target) {
		return message(MsgPersonNotFound)
	}
	if withTags {
		return message(fmt.Sprintf(MsgViewAllPerson, target))
	}
	return message(fmt.Sprintf(MsgViewPerson, target.Details()))
}

func (l *Logic) list() Result {
	persons := l.book.Persons()
	l.shown = persons
	return listing(fmt.Sprintf(MsgListSummary, len(persons)), persons)
}

func (l *Logic) find(c parser.FindCommand) Result {
	var matched []domain.Person
	for _, p := range l.book.Persons() {
		if nameContainsAnyKeyword(p.Name(), c.Keywords) {
			matched = append(matched, p)
		}
	}
	l.shown = matched
	return listing(fmt.Sprintf(MsgListSummary, len(matched)), matched)
}

func (l *Logic) clear() Result {
	l.book.Clear()
	if err := l.persist(); err != nil {
		return storageFailure(err)
	}
	return message(MsgClearSuccess)
}

// shownAt resolves a 1-based display index against the last shown list.
func (l *Logic) shownAt(index int) (domain.Person, bool) {
	if index < 1 || index > len(l.shown) {
		return domain.Person{}, false
	}
	return l.shown[index-1], true
}

// nameContainsAnyKeyword reports whether any keyword equals one of the
// name's whitespace-delimited tokens. Matching is exact and case-sensitive;
// a keyword buried inside a longer token does not count.
func nameContainsAnyKeyword(name domain.Name, keywords []string) bool {
	for _, word := range name.Words() {
		for _, kw := range keywords {
			if word == kw {
				return true
			}
		}
	}
	return false
}

func (l *Logic) persist() error {
	if err := l.storage.Save(l.book); err != nil {
		l.log.Error("save address book", zap.Error(err))
		return fmt.Errorf("save address book: %w", err)
	}
	return nil
}

// storageFailure reports a persist error. The in-memory mutation is kept,
// but the caller sees a failed command and must not assume durability.
func storageFailure(err error) Result {
	return Result{Feedback: fmt.Sprintf(MsgStorageFailure, err), Err: err}
}
