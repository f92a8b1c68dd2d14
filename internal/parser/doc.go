// Package parser turns one raw input line into a typed Command.
//
// Parsing is strict and side-effect free: a line either yields a Command
// whose field values are already validated, or an error describing what was
// wrong with it. Argument-shape problems come back as *FormatError with the
// offending command's usage text; field values that fail their format rule
// come back as *domain.ValidationError with the field's constraint message.
package parser
