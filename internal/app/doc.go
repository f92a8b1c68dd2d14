// Package app wires configuration, storage and the executor into a running
// application. The CLI builds a Wire once before any command runs.
package app
