package parser

import "strings"

// Per-command usage texts, shown on format errors and by the help command.
const (
	UsageAdd = "add: Adds a person to the address book.\n" +
		"\tParameters: NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"\tExample: add John Doe p/98765432 e/johnd@gmail.com a/311, Clementi Ave 2, #02-25 t/friend t/colleague"

	UsageDelete = "delete: Deletes the person identified by the index number used in the last shown listing.\n" +
		"\tParameters: INDEX\n" +
		"\tExample: delete 1"

	UsageClear = "clear: Clears the address book.\n" +
		"\tExample: clear"

	UsageFind = "find: Finds all persons whose names contain any of the specified keywords (case-sensitive) and displays them as a list.\n" +
		"\tParameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"\tExample: find alice bob charlie"

	UsageList = "list: Displays all persons in the address book as a list with index numbers.\n" +
		"\tExample: list"

	UsageView = "view: Views the person identified by the index number used in the last shown listing.\n" +
		"\tParameters: INDEX\n" +
		"\tExample: view 2"

	UsageViewAll = "viewall: Views all details of the person identified by the index number used in the last shown listing.\n" +
		"\tParameters: INDEX\n" +
		"\tExample: viewall 2"

	UsageHelp = "help: Shows program usage instructions.\n" +
		"\tExample: help"

	UsageExit = "exit: Exits the program.\n" +
		"\tExample: exit"
)

// UsageAll is the full help text covering every command.
var UsageAll = strings.Join([]string{
	UsageAdd,
	UsageDelete,
	UsageClear,
	UsageFind,
	UsageList,
	UsageView,
	UsageViewAll,
	UsageHelp,
	UsageExit,
}, "\n")
