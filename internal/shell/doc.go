// Package shell implements the interactive read-execute-print loop that
// feeds raw input lines to the executor. It owns no address book state.
package shell
