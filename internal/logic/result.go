package logic

import "abook/internal/domain"

// Result is the outcome of executing one command line.
//
// Shown distinguishes "this command produced a (possibly empty) listing"
// from "this command does not produce listings at all", so an empty search
// result is never mistaken for the absence of one.
type Result struct {
	// Feedback is the message presented to the caller, success or failure.
	Feedback string

	// Err is set only for storage failures; the command's durability
	// guarantee is broken and the caller should stop trusting the session.
	Err error

	// Exit is set by the exit command.
	Exit bool

	shown    []domain.Person
	hasShown bool
}

// Shown returns the listing produced by a list-producing command and whether
// one was produced at all.
func (r Result) Shown() ([]domain.Person, bool) {
	if !r.hasShown {
		return nil, false
	}
	return append([]domain.Person(nil), r.shown...), true
}

func message(feedback string) Result {
	return Result{Feedback: feedback}
}

func listing(feedback string, persons []domain.Person) Result {
	return Result{Feedback: feedback, shown: persons, hasShown: true}
}
