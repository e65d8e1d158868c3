// Package chat implements the interview itself: a transcript of questions,
// answers, and feedback, a per-question countdown, and a completion summary.
// The server decides question order, scoring, and when time has truly run
// out; this screen renders its decisions and enforces the countdown locally.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/screen"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/timer"
	"github.com/intervue-ai/intervue/internal/ui/components"
	"github.com/intervue-ai/intervue/internal/ui/layout"
)

// ExpiredAnswer is submitted verbatim when the countdown reaches zero with
// no answer typed. The server recognizes the sentinel and scores it as a
// timeout rather than an empty answer.
const ExpiredAnswer = "[No answer provided - Time expired]"

// startOverDelay is how long the completion summary stays up before the
// client returns to the intake flow for the next candidate.
const startOverDelay = 30 * time.Second

// Backend is the slice of the API client this screen needs.
type Backend interface {
	StartInterview(ctx context.Context, candidateID string) (*api.StartInterviewResponse, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*api.SubmitAnswerResponse, error)
}

type phase int

const (
	phaseIntro phase = iota
	phaseStarting
	phaseActive
	phaseDone
)

type entryRole int

const (
	roleBot entryRole = iota
	roleUser
)

type entry struct {
	role entryRole
	text string
}

// ChatScreen implements screen.Screen for the interview conversation.
type ChatScreen struct {
	dispatch  *state.Dispatcher
	backend   Backend
	startOver func() tea.Msg

	phase      phase
	resume     bool
	countdown  *timer.Countdown
	answer     components.TextArea
	transcript []entry
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the interview screen. When resume is true the session is
// rejoined immediately instead of showing the intro panel. startOver builds
// the message that returns the client to the intake flow.
func New(dispatch *state.Dispatcher, backend Backend, resume bool, startOver func() tea.Msg) *ChatScreen {
	return &ChatScreen{
		dispatch:  dispatch,
		backend:   backend,
		startOver: startOver,
		resume:    resume,
		countdown: timer.New(),
		answer:    components.NewTextArea("Type your answer here...", 70, 5),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	if s.resume {
		s.phase = phaseStarting
		return tea.Batch(s.startCmd(), s.answer.Init())
	}
	return s.answer.Init()
}

func (s *ChatScreen) Title() string {
	return "Interview"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseIntro:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start interview"},
		}
	case phaseActive:
		paused := s.dispatch.App().Session.Paused
		pauseHint := "Pause"
		if paused {
			pauseHint = "Resume"
		}
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit answer"},
			{Key: "Ctrl+P", Description: pauseHint},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New candidate"},
		}
	}
	return nil
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		return s.handleStarted(msg)

	case submittedMsg:
		return s.handleSubmitted(msg)

	case tickMsg:
		return s.handleTick()

	case startOverMsg:
		return s, func() tea.Msg { return s.startOver() }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseActive && !s.submitting {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseIntro:
		if key == "enter" {
			s.phase = phaseStarting
			s.errMsg = ""
			return s, s.startCmd()
		}
		return s, nil

	case phaseActive:
		switch key {
		case "ctrl+s":
			return s.submit(strings.TrimSpace(s.answer.Value()))
		case "ctrl+p":
			return s.togglePause()
		}
		if s.submitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd

	case phaseDone:
		if key == "enter" {
			return s, func() tea.Msg { return s.startOver() }
		}
	}

	return s, nil
}

func (s *ChatScreen) togglePause() (screen.Screen, tea.Cmd) {
	if s.dispatch.App().Session.Paused {
		s.dispatch.Dispatch(state.ResumeInterview{})
		s.countdown.Resume()
	} else {
		s.dispatch.Dispatch(state.PauseInterview{})
		s.countdown.Pause()
	}
	return s, nil
}

func (s *ChatScreen) startCmd() tea.Cmd {
	app := s.dispatch.App()
	if app.Candidate.Current == nil {
		return func() tea.Msg {
			return startedMsg{Err: fmt.Errorf("no candidate loaded")}
		}
	}
	id := app.Candidate.Current.ID
	return func() tea.Msg {
		resp, err := s.backend.StartInterview(context.Background(), id)
		return startedMsg{Resp: resp, Err: err}
	}
}

func (s *ChatScreen) handleStarted(msg startedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.phase = phaseIntro
		return s, nil
	}

	app := s.dispatch.Dispatch(state.ApplyInterviewStart{Resp: msg.Resp})

	if msg.Resp.InterviewCompleted {
		s.markCandidateCompleted(app)
		s.phase = phaseDone
		return s, s.startOverDelayCmd()
	}

	status := state.StatusInProgress
	s.dispatch.Dispatch(state.MergeCandidate{Patch: state.CandidatePatch{Status: &status}})

	if msg.Resp.Resuming {
		s.transcript = append(s.transcript, entry{
			role: roleBot,
			text: fmt.Sprintf("Welcome back! Resuming at question %d.", app.Session.QuestionNumber),
		})
	}
	if q := app.Session.CurrentQuestion; q != nil {
		s.transcript = append(s.transcript, questionEntry(app.Session.QuestionNumber, q))
	}

	s.phase = phaseActive
	s.countdown.Start(app.Session.TimeRemaining)
	return s, tickCmd()
}

func (s *ChatScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseActive {
		return s, nil
	}

	wasRunning := s.countdown.Phase() == timer.Running
	expired := s.countdown.Tick()
	if wasRunning {
		s.dispatch.Dispatch(state.DecrementTime{})
	}

	if expired && !s.submitting {
		answer := strings.TrimSpace(s.answer.Value())
		if answer == "" {
			answer = ExpiredAnswer
		}
		next, cmd := s.submit(answer)
		return next, tea.Batch(cmd, tickCmd())
	}

	return s, tickCmd()
}

// submit sends the answer for the current question. Exactly one submission
// may be in flight; a second attempt while waiting is dropped.
func (s *ChatScreen) submit(answer string) (screen.Screen, tea.Cmd) {
	if s.submitting || answer == "" {
		return s, nil
	}
	app := s.dispatch.App()
	if app.Session.SessionID == "" {
		return s, nil
	}

	s.submitting = true
	s.errMsg = ""
	sessionID := app.Session.SessionID
	return s, func() tea.Msg {
		resp, err := s.backend.SubmitAnswer(context.Background(), sessionID, answer)
		return submittedMsg{Resp: resp, Answer: answer, Err: err}
	}
}

func (s *ChatScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.dispatch.Dispatch(state.SetNotice{Message: "Could not submit answer. Press Ctrl+S to retry.", IsError: true})
		return s, nil
	}
	s.dispatch.Dispatch(state.ClearNotice{})

	s.transcript = append(s.transcript, entry{role: roleUser, text: msg.Answer})

	app := s.dispatch.Dispatch(state.ApplySubmitResult{Resp: msg.Resp})

	if ev := msg.Resp.Evaluation; ev != nil {
		s.transcript = append(s.transcript, entry{
			role: roleBot,
			text: fmt.Sprintf("Score: %d. %s", ev.Score, ev.Feedback),
		})
	}

	if msg.Resp.AlreadyAnswered {
		s.transcript = append(s.transcript, entry{
			role: roleBot,
			text: "That question was already answered. Moving on.",
		})
		return s, nil
	}

	if msg.Resp.Completed {
		s.markCandidateCompleted(app)
		s.phase = phaseDone
		s.countdown.Reset()
		s.answer.Reset()
		return s, s.startOverDelayCmd()
	}

	if q := app.Session.CurrentQuestion; q != nil {
		s.transcript = append(s.transcript, questionEntry(app.Session.QuestionNumber, q))
		s.answer.Reset()
		s.countdown.Start(app.Session.TimeRemaining)
	}
	return s, nil
}

func (s *ChatScreen) markCandidateCompleted(app state.App) {
	status := state.StatusCompleted
	patch := state.CandidatePatch{Status: &status}
	if app.Session.Results != nil {
		score := app.Session.Results.FinalScore
		patch.FinalScore = &score
		summary := app.Session.Results.Summary
		patch.Summary = &summary
	}
	s.dispatch.Dispatch(state.MergeCandidate{Patch: patch})
}

func (s *ChatScreen) startOverDelayCmd() tea.Cmd {
	return tea.Tick(startOverDelay, func(time.Time) tea.Msg {
		return startOverMsg{}
	})
}

func questionEntry(number int, q *api.Question) entry {
	return entry{
		role: roleBot,
		text: fmt.Sprintf("Question %d/%d (%s, %d points): %s",
			number, api.TotalQuestions, q.Difficulty, api.MaxScore(q.Difficulty), q.Text),
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
