package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intervue-ai/intervue/internal/state"
)

func interruptedApp() state.App {
	return state.App{
		Candidate: state.CandidateState{
			Current: &state.Candidate{ID: "c1", Name: "Ada", Status: state.StatusInProgress},
		},
		Session: state.SessionState{
			SessionID:      "s1",
			Active:         true,
			QuestionNumber: 3,
		},
	}
}

func TestShouldPromptOnInterruptedInterview(t *testing.T) {
	assert.True(t, ShouldPrompt(interruptedApp()))
}

func TestShouldPromptRequiresAllConditions(t *testing.T) {
	mutations := map[string]func(*state.App){
		"no session id":     func(a *state.App) { a.Session.SessionID = "" },
		"inactive":          func(a *state.App) { a.Session.Active = false },
		"completed":         func(a *state.App) { a.Session.Completed = true },
		"no candidate":      func(a *state.App) { a.Candidate.Current = nil },
		"no questions seen": func(a *state.App) { a.Session.QuestionNumber = 0 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			app := interruptedApp()
			mutate(&app)
			assert.False(t, ShouldPrompt(app))
		})
	}
}

func TestGatePromptsAtMostOnce(t *testing.T) {
	var g Gate
	app := interruptedApp()

	assert.True(t, g.Check(app))
	assert.False(t, g.Check(app))
	assert.False(t, g.Check(app))
}

func TestGateDoesNotLatchOnNonQualifyingState(t *testing.T) {
	var g Gate

	assert.False(t, g.Check(state.App{}))

	// A qualifying state arriving later still gets its one prompt.
	assert.True(t, g.Check(interruptedApp()))
	assert.False(t, g.Check(interruptedApp()))
}
