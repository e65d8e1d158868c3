package chat

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/timer"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	startResp *api.StartInterviewResponse
	startErr  error
	submits   []submitCall
	queue     []*api.SubmitAnswerResponse
	submitErr error
}

type submitCall struct {
	sessionID string
	answer    string
}

func (m *mockBackend) StartInterview(_ context.Context, _ string) (*api.StartInterviewResponse, error) {
	return m.startResp, m.startErr
}

func (m *mockBackend) SubmitAnswer(_ context.Context, sessionID, answer string) (*api.SubmitAnswerResponse, error) {
	m.submits = append(m.submits, submitCall{sessionID: sessionID, answer: answer})
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	resp := m.queue[0]
	if len(m.queue) > 1 {
		m.queue = m.queue[1:]
	}
	return resp, nil
}

func easyQuestion(id string) *api.Question {
	return &api.Question{
		ID:         id,
		Text:       "What does CSS stand for?",
		Difficulty: api.DifficultyEasy,
		TimeLimit:  20,
	}
}

func testChat(backend *mockBackend) (*ChatScreen, *state.Dispatcher) {
	d := state.NewDispatcher(state.App{
		Candidate: state.CandidateState{
			Current: &state.Candidate{ID: "c1", Name: "Ada", Status: state.StatusReady},
		},
	})
	s := New(d, backend, false, func() tea.Msg { return startOverMsg{} })
	return s, d
}

func startActive(t *testing.T, s *ChatScreen, backend *mockBackend) {
	t.Helper()
	next, _ := s.Update(startedMsg{Resp: backend.startResp})
	require.Same(t, s, next)
	require.Equal(t, phaseActive, s.phase)
}

func TestStartFreshInterview(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	app := d.App()
	assert.Equal(t, "s1", app.Session.SessionID)
	assert.Equal(t, 20, app.Session.TimeRemaining)
	assert.Equal(t, state.StatusInProgress, app.Candidate.Current.Status)
	assert.Equal(t, timer.Running, s.countdown.Phase())
	require.Len(t, s.transcript, 1)
	assert.Contains(t, s.transcript[0].text, "Question 1/6")
}

func TestResumeDerivesRemainingTime(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID: "s1",
			Question: &api.Question{
				ID:         "q3",
				Text:       "Explain closures.",
				Difficulty: api.DifficultyMedium,
				TimeLimit:  60,
			},
			QuestionNumber: 3,
			ElapsedTime:    45,
			Resuming:       true,
		},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	assert.Equal(t, 15, d.App().Session.TimeRemaining)
	assert.Equal(t, 15, s.countdown.Remaining())
	assert.Contains(t, s.transcript[0].text, "Welcome back")
}

func TestStartOnCompletedInterviewShowsResults(t *testing.T) {
	score := 16
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:          "s1",
			InterviewCompleted: true,
			FinalScore:         &score,
			Summary:            "Good breadth.",
		},
	}
	s, d := testChat(backend)

	next, cmd := s.Update(startedMsg{Resp: backend.startResp})
	require.Same(t, s, next)
	assert.Equal(t, phaseDone, s.phase)
	assert.NotNil(t, cmd)

	app := d.App()
	require.NotNil(t, app.Session.Results)
	assert.Equal(t, 16, app.Session.Results.FinalScore)
	assert.Equal(t, state.StatusCompleted, app.Candidate.Current.Status)
}

func TestSubmitAdvancesToNextQuestion(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
		queue: []*api.SubmitAnswerResponse{{
			Evaluation: &api.Evaluation{Score: 2, Feedback: "Correct."},
			NextQuestion: &api.Question{
				ID:         "q2",
				Text:       "Explain flexbox.",
				Difficulty: api.DifficultyEasy,
				TimeLimit:  20,
			},
			QuestionNumber: 2,
		}},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	_, cmd := s.submit("Cascading Style Sheets")
	require.NotNil(t, cmd)
	assert.True(t, s.submitting)

	msg := cmd()
	s.Update(msg)

	assert.False(t, s.submitting)
	require.Len(t, backend.submits, 1)
	assert.Equal(t, "s1", backend.submits[0].sessionID)

	app := d.App()
	assert.Equal(t, 2, app.Session.QuestionNumber)
	assert.Equal(t, 20, app.Session.TimeRemaining)
	assert.Equal(t, "q2", app.Session.CurrentQuestion.ID)

	// Transcript: Q1, answer, feedback, Q2.
	require.Len(t, s.transcript, 4)
	assert.Equal(t, roleUser, s.transcript[1].role)
	assert.Contains(t, s.transcript[2].text, "Score: 2")
}

func TestSubmitIsSingleFlight(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
		queue: []*api.SubmitAnswerResponse{{Completed: true}},
	}
	s, _ := testChat(backend)
	startActive(t, s, backend)

	_, cmd := s.submit("first")
	require.NotNil(t, cmd)

	_, second := s.submit("second")
	assert.Nil(t, second)

	cmd()
	assert.Len(t, backend.submits, 1)
}

func TestExpiryAutoSubmitsSentinel(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID: "s1",
			Question: &api.Question{
				ID:         "q1",
				Text:       "Quick one.",
				Difficulty: api.DifficultyEasy,
				TimeLimit:  2,
			},
			QuestionNumber: 1,
		},
		queue: []*api.SubmitAnswerResponse{{Completed: true}},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	s.handleTick()
	assert.Equal(t, 1, d.App().Session.TimeRemaining)

	_, cmd := s.handleTick()
	require.NotNil(t, cmd)
	assert.Equal(t, 0, d.App().Session.TimeRemaining)
	assert.True(t, s.submitting)

	// The expiry latch must not trigger a second submission.
	s.handleTick()
	assert.True(t, s.submitting)
}

func TestPauseFreezesCountdown(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	s.togglePause()
	assert.True(t, d.App().Session.Paused)

	s.handleTick()
	s.handleTick()
	assert.Equal(t, 20, d.App().Session.TimeRemaining)

	s.togglePause()
	assert.False(t, d.App().Session.Paused)
	s.handleTick()
	assert.Equal(t, 19, d.App().Session.TimeRemaining)
}

func TestTickDispatchesDecrement(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	var decrements int
	d.Subscribe(func(_ state.App, action state.Action) {
		if _, ok := action.(state.DecrementTime); ok {
			decrements++
		}
	})

	s.handleTick()
	s.handleTick()
	assert.Equal(t, 2, decrements)
	assert.Equal(t, 18, d.App().Session.TimeRemaining)

	s.togglePause()
	s.handleTick()
	assert.Equal(t, 2, decrements, "paused ticks do not decrement")
}

func TestCompletionMergesCandidateAndSchedulesReset(t *testing.T) {
	score := 18
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q6"),
			QuestionNumber: 6,
		},
		queue: []*api.SubmitAnswerResponse{{
			Completed:  true,
			FinalScore: &score,
			Summary:    "Strong finish.",
		}},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	_, cmd := s.submit("final answer")
	require.NotNil(t, cmd)
	_, delay := s.Update(cmd())

	assert.Equal(t, phaseDone, s.phase)
	assert.NotNil(t, delay, "expected the start-over delay to be scheduled")

	app := d.App()
	assert.True(t, app.Session.Completed)
	assert.False(t, app.Session.Active)
	assert.Equal(t, state.StatusCompleted, app.Candidate.Current.Status)
	require.NotNil(t, app.Candidate.Current.FinalScore)
	assert.Equal(t, 18, *app.Candidate.Current.FinalScore)
}

func TestSubmitErrorKeepsQuestion(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q1"),
			QuestionNumber: 1,
		},
		submitErr: assert.AnError,
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	_, cmd := s.submit("my answer")
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.False(t, s.submitting)
	assert.NotEmpty(t, s.errMsg)
	assert.Equal(t, "q1", d.App().Session.CurrentQuestion.ID)
	assert.Equal(t, 1, d.App().Session.QuestionNumber)
}

func TestAlreadyAnsweredAdvancesNumberOnly(t *testing.T) {
	backend := &mockBackend{
		startResp: &api.StartInterviewResponse{
			SessionID:      "s1",
			Question:       easyQuestion("q2"),
			QuestionNumber: 2,
		},
		queue: []*api.SubmitAnswerResponse{{
			AlreadyAnswered: true,
			QuestionNumber:  3,
		}},
	}
	s, d := testChat(backend)
	startActive(t, s, backend)

	_, cmd := s.submit("dup")
	require.NotNil(t, cmd)
	s.Update(cmd())

	assert.Equal(t, 3, d.App().Session.QuestionNumber)
	assert.Equal(t, phaseActive, s.phase)
}
