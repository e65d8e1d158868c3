package welcomeback

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervue-ai/intervue/internal/state"
)

type resumeChosen struct{}
type discardChosen struct{}

func testPrompt() *WelcomeBackScreen {
	d := state.NewDispatcher(state.App{
		Candidate: state.CandidateState{
			Current: &state.Candidate{ID: "c1", Name: "Ada", Status: state.StatusInProgress},
		},
		Session: state.SessionState{
			SessionID:      "s1",
			Active:         true,
			QuestionNumber: 4,
			TimeRemaining:  37,
		},
	})
	return New(d,
		func() tea.Msg { return resumeChosen{} },
		func() tea.Msg { return discardChosen{} },
	)
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func down() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyDown}
}

func TestResumeIsTheDefaultChoice(t *testing.T) {
	s := testPrompt()

	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, resumeChosen{}, cmd())
}

func TestDiscardChoice(t *testing.T) {
	s := testPrompt()

	s.Update(down())
	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, discardChosen{}, cmd())
}

func TestViewNamesCandidateAndProgress(t *testing.T) {
	s := testPrompt()
	v := s.View(80, 24)
	assert.Contains(t, v, "Ada")
	assert.Contains(t, v, "question 4 of 6")
	assert.Contains(t, v, "about 37s", "remaining time is an estimate, not a promise")
	assert.Contains(t, v, "recalculates your remaining time")
}
