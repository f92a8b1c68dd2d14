// Package commands defines the abook CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (root)  Start the interactive shell
//   - exec    Run a single address book command non-interactively
//   - path    Print the storage file in use
//
// # Implementation
//
// The root command builds the dependency graph (config, storage backend,
// executor) before any subcommand runs, so handlers share one app context.
// The address book commands themselves (add, delete, find, ...) are not
// cobra subcommands: they are one grammar parsed by internal/parser, fed
// either from the shell loop or from 'exec'.
package commands
