package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervue-ai/intervue/internal/screens/upload"
	"github.com/intervue-ai/intervue/internal/screens/welcomeback"
	"github.com/intervue-ai/intervue/internal/state"
)

// brokenRecords implements store.RecordRepo with failing writes.
type brokenRecords struct{}

func (brokenRecords) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (brokenRecords) Load(context.Context, string) ([]byte, error) { return nil, nil }

func (brokenRecords) Delete(context.Context, string) error { return nil }

func interruptedApp() state.App {
	return state.App{
		Candidate: state.CandidateState{
			Current: &state.Candidate{ID: "c1", Name: "Ada", Status: state.StatusInProgress},
		},
		Session: state.SessionState{
			SessionID:      "s1",
			Active:         true,
			QuestionNumber: 3,
			TimeRemaining:  40,
		},
	}
}

func TestInterruptedSessionPromptsResumeOrDiscard(t *testing.T) {
	d := state.NewDispatcher(interruptedApp())
	m := newAppModel(Options{Dispatcher: d})

	assert.IsType(t, &welcomeback.WelcomeBackScreen{}, m.router.Active())
	assert.True(t, d.App().Session.Paused, "session is frozen while the prompt is up")
}

func TestDiscardResetsToIntake(t *testing.T) {
	d := state.NewDispatcher(interruptedApp())
	m := newAppModel(Options{Dispatcher: d})

	model, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	am := model.(AppModel)
	model, cmd := am.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	am = model.(AppModel)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, ResetAppMsg{}, msg)
	assert.Nil(t, d.App().Candidate.Current)
	assert.Equal(t, state.SessionState{}, d.App().Session)

	model, _ = am.Update(msg)
	am = model.(AppModel)
	assert.IsType(t, &upload.UploadScreen{}, am.router.Active())
	assert.Equal(t, 1, am.router.Depth())
}

func TestPersistFailureBecomesNotice(t *testing.T) {
	d := state.NewDispatcher(state.App{})
	p := state.NewPersistor(brokenRecords{})
	d.Subscribe(p.Subscriber())
	m := newAppModel(Options{Dispatcher: d, Persistor: p})

	d.Dispatch(state.SetCandidate{Candidate: state.Candidate{ID: "c1", Name: "Ada"}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	app := d.App()
	assert.True(t, app.UI.NoticeIsError)
	assert.Contains(t, app.UI.Notice, "Could not save progress")
}
