package parser

import (
	"regexp"
	"strconv"
	"strings"

	"abook/internal/domain"
)

// FormatError reports a malformed command line. Usage carries the usage text
// of the command the line was aimed at, or the full help text when the
// command word itself was unrecognisable.
type FormatError struct {
	Usage string
}

func (e *FormatError) Error() string { return "Invalid command format!\n" + e.Usage }

// Command is a parsed, validated command ready for execution.
type Command interface {
	command()
}

// AddCommand adds a fully validated person.
type AddCommand struct {
	Person domain.Person
}

// DeleteCommand removes the person at a 1-based index of the last shown list.
type DeleteCommand struct {
	Index int
}

// ViewCommand shows the core fields of the person at a 1-based index of the
// last shown list.
type ViewCommand struct {
	Index int
}

// ViewAllCommand shows all details, tags included, of the person at a
// 1-based index of the last shown list.
type ViewAllCommand struct {
	Index int
}

// ListCommand lists every person in the book.
type ListCommand struct{}

// FindCommand lists persons whose name contains any keyword as a whole word.
type FindCommand struct {
	Keywords []string
}

// ClearCommand empties the book.
type ClearCommand struct{}

// HelpCommand shows the usage text for all commands.
type HelpCommand struct{}

// ExitCommand acknowledges shutdown.
type ExitCommand struct{}

func (AddCommand) command()     {}
func (DeleteCommand) command()  {}
func (ViewCommand) command()    {}
func (ViewAllCommand) command() {}
func (ListCommand) command()    {}
func (FindCommand) command()    {}
func (ClearCommand) command()   {}
func (HelpCommand) command()    {}
func (ExitCommand) command()    {}

// addArgsRegexp splits the add arguments into name, the three required
// prefixed fields and the trailing tag block. Field values cannot contain
// '/', which is what keeps the prefixes unambiguous.
var addArgsRegexp = regexp.MustCompile(
	`^(?P<name>[^/]+) p/(?P<phone>[^/]+) e/(?P<email>[^/]+) a/(?P<address>[^/]+?)(?P<tags>(?: t/[^/]+)*)$`,
)

// Parse maps one raw input line to a Command.
//
// Malformed lines return a *FormatError carrying the relevant usage text.
// Lines whose shape is fine but whose field values fail validation return
// that field's *domain.ValidationError. Parse never touches any state.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, &FormatError{Usage: UsageHelp}
	}

	word, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)

	switch word {
	case "add":
		return parseAdd(rest)
	case "delete":
		return parseIndexed(rest, UsageDelete, func(i int) Command { return DeleteCommand{Index: i} })
	case "view":
		return parseIndexed(rest, UsageView, func(i int) Command { return ViewCommand{Index: i} })
	case "viewall":
		return parseIndexed(rest, UsageViewAll, func(i int) Command { return ViewAllCommand{Index: i} })
	case "list":
		return ListCommand{}, nil
	case "find":
		return parseFind(rest)
	case "clear":
		return ClearCommand{}, nil
	case "help":
		return HelpCommand{}, nil
	case "exit":
		return ExitCommand{}, nil
	default:
		return nil, &FormatError{Usage: UsageAll}
	}
}

func parseAdd(args string) (Command, error) {
	m := addArgsRegexp.FindStringSubmatch(args)
	if m == nil {
		return nil, &FormatError{Usage: UsageAdd}
	}
	name, phone, email, address, tagBlock := m[1], m[2], m[3], m[4], m[5]

	n, err := domain.NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := domain.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	e, err := domain.NewEmail(email)
	if err != nil {
		return nil, err
	}
	a, err := domain.NewAddress(address)
	if err != nil {
		return nil, err
	}

	var tags []domain.Tag
	for _, raw := range strings.Split(tagBlock, " t/") {
		if raw == "" {
			continue
		}
		t, err := domain.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return AddCommand{Person: domain.NewPerson(n, p, e, a, tags)}, nil
}

// parseIndexed handles the single-integer-argument commands. Range checking
// is the executor's job; the parser only rejects non-numeric shapes.
func parseIndexed(args, usage string, build func(int) Command) (Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, &FormatError{Usage: usage}
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, &FormatError{Usage: usage}
	}
	return build(idx), nil
}

func parseFind(args string) (Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, &FormatError{Usage: UsageFind}
	}
	return FindCommand{Keywords: keywords}, nil
}
