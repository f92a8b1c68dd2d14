package parser_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abook/internal/domain"
	"abook/internal/parser"
)

func requireFormatError(t *testing.T, err error, usage string) {
	t.Helper()
	var ferr *parser.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, usage, ferr.Usage)
	require.Equal(t, "Invalid command format!\n"+usage, err.Error())
}

func TestParse_BlankLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		_, err := parser.Parse(line)
		requireFormatError(t, err, parser.UsageHelp)
	}
}

func TestParse_UnknownCommandWord(t *testing.T) {
	_, err := parser.Parse("uicfhmowqewca")
	requireFormatError(t, err, parser.UsageAll)
}

func TestParse_Add_InvalidArgsFormat(t *testing.T) {
	for _, line := range []string{
		"add",
		"add wrong args wrong args",
		"add Valid Name 12345 e/valid@e.mail a/valid, address",
		"add Valid Name p/12345 valid@e.mail a/valid, address",
		"add Valid Name p/12345 e/valid@e.mail valid, address",
	} {
		_, err := parser.Parse(line)
		requireFormatError(t, err, parser.UsageAdd)
	}
}

func TestParse_Add_InvalidPersonData(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"add []\\[;] p/12345 e/valid@e.mail a/valid, address", domain.NameConstraints},
		{"add Valid Name p/not_numbers e/valid@e.mail a/valid, address", domain.PhoneConstraints},
		{"add Valid Name p/12345 e/notAnEmail a/valid, address", domain.EmailConstraints},
		{"add Valid Name p/12345 e/valid@e.mail a/valid, address t/invalid;tag", domain.TagConstraints},
	}
	for _, tc := range cases {
		_, err := parser.Parse(tc.line)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "line %q", tc.line)
		assert.Equal(t, tc.want, verr.Message, "line %q", tc.line)
	}
}

func TestParse_Add_Valid(t *testing.T) {
	cmd, err := parser.Parse("add Adam Brown p/111111 e/adam@gmail.com a/111, alpha street t/tag1 t/tag2")
	require.NoError(t, err)

	add, ok := cmd.(parser.AddCommand)
	require.True(t, ok)
	assert.Equal(t, "Adam Brown", add.Person.Name().String())
	assert.Equal(t, "111111", add.Person.Phone().String())
	assert.Equal(t, "adam@gmail.com", add.Person.Email().String())
	assert.Equal(t, "111, alpha street", add.Person.Address().String())
	assert.Equal(t, []domain.Tag{"tag1", "tag2"}, add.Person.Tags())
}

func TestParse_Add_NoTags(t *testing.T) {
	cmd, err := parser.Parse("add Adam Brown p/111111 e/adam@gmail.com a/111, alpha street")
	require.NoError(t, err)

	add, ok := cmd.(parser.AddCommand)
	require.True(t, ok)
	assert.Empty(t, add.Person.Tags())
}

func TestParse_IndexedCommands(t *testing.T) {
	cases := []struct {
		word  string
		usage string
	}{
		{"delete", parser.UsageDelete},
		{"view", parser.UsageView},
		{"viewall", parser.UsageViewAll},
	}
	for _, tc := range cases {
		_, err := parser.Parse(tc.word)
		requireFormatError(t, err, tc.usage)

		_, err = parser.Parse(tc.word + " ")
		requireFormatError(t, err, tc.usage)

		_, err = parser.Parse(tc.word + " arg not number")
		requireFormatError(t, err, tc.usage)

		_, err = parser.Parse(tc.word + " 1 2")
		requireFormatError(t, err, tc.usage)
	}

	cmd, err := parser.Parse("delete 2")
	require.NoError(t, err)
	assert.Equal(t, parser.DeleteCommand{Index: 2}, cmd)

	cmd, err = parser.Parse("view 1")
	require.NoError(t, err)
	assert.Equal(t, parser.ViewCommand{Index: 1}, cmd)

	cmd, err = parser.Parse("viewall 3")
	require.NoError(t, err)
	assert.Equal(t, parser.ViewAllCommand{Index: 3}, cmd)

	// Out-of-range values are numbers: a range problem, not a format one.
	cmd, err = parser.Parse("delete -1")
	require.NoError(t, err)
	assert.Equal(t, parser.DeleteCommand{Index: -1}, cmd)
}

func TestParse_Find(t *testing.T) {
	_, err := parser.Parse("find")
	requireFormatError(t, err, parser.UsageFind)
	_, err = parser.Parse("find   ")
	requireFormatError(t, err, parser.UsageFind)

	cmd, err := parser.Parse("find KEY rAnDoM")
	require.NoError(t, err)
	assert.Equal(t, parser.FindCommand{Keywords: []string{"KEY", "rAnDoM"}}, cmd)
}

func TestParse_BareCommands(t *testing.T) {
	cases := []struct {
		line string
		want parser.Command
	}{
		{"list", parser.ListCommand{}},
		{"clear", parser.ClearCommand{}},
		{"help", parser.HelpCommand{}},
		{"exit", parser.ExitCommand{}},
	}
	for _, tc := range cases {
		cmd, err := parser.Parse(tc.line)
		require.NoError(t, err, "line %q", tc.line)
		assert.Equal(t, tc.want, cmd)
	}
}

func TestParse_CommandWordIsCaseSensitive(t *testing.T) {
	_, err := parser.Parse("LIST")
	requireFormatError(t, err, parser.UsageAll)
}

func TestUsageAll_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "help", []byte(parser.UsageAll))
}
