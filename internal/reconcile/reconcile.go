// Package reconcile decides what the client shows when it starts with
// persisted state on disk. The interesting case is an interrupted interview:
// the candidate should be offered a resume-or-discard choice, and that offer
// must appear at most once per process run.
package reconcile

import (
	"github.com/intervue-ai/intervue/internal/state"
)

// ShouldPrompt reports whether the loaded state describes an interrupted
// interview worth offering to resume. All five conditions must hold: a
// session exists, it is active, it is not completed, a candidate record is
// present, and at least one question has been asked.
func ShouldPrompt(app state.App) bool {
	s := app.Session
	return s.SessionID != "" &&
		s.Active &&
		!s.Completed &&
		app.Candidate.Current != nil &&
		s.QuestionNumber > 0
}

// Gate ensures the resume offer is made at most once per process run, even
// if the state is reloaded again later. Not safe for concurrent use; the UI
// loop owns it.
type Gate struct {
	prompted bool
}

// Check evaluates ShouldPrompt and latches. The first qualifying call
// returns true; every later call returns false regardless of state.
func (g *Gate) Check(app state.App) bool {
	if g.prompted {
		return false
	}
	if !ShouldPrompt(app) {
		return false
	}
	g.prompted = true
	return true
}
