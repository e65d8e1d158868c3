package state

import (
	"github.com/intervue-ai/intervue/internal/api"
)

// Action is a state mutation request. Every action has a pure, total reducer;
// Reduce never fails and never leaves App in a partial state.
type Action interface {
	isAction()
}

// Candidate slice actions.
type (
	// SetCandidate replaces the current candidate wholesale.
	SetCandidate struct{ Candidate Candidate }

	// MergeCandidate applies a partial update to the current candidate.
	// No-op when no candidate is present.
	MergeCandidate struct{ Patch CandidatePatch }

	// ClearCandidate logically deletes the current candidate and any
	// staged resume fields ("start over").
	ClearCandidate struct{}

	// StageParsedResume stores resume fields parsed by the backend,
	// prior to candidate creation.
	StageParsedResume struct{ Parsed api.ParsedResume }

	// MergeParsedResume merges user-supplied corrections into the staged
	// fields. Empty values are ignored.
	MergeParsedResume struct{ Name, Email, Phone string }
)

// Session slice actions.
type (
	// DecrementTime decrements the countdown by one, floored at zero.
	DecrementTime struct{}

	// PauseInterview freezes the countdown.
	PauseInterview struct{}

	// ResumeInterview continues the countdown from its frozen value.
	ResumeInterview struct{}

	// ApplyInterviewStart merges a start-interview response: either the
	// already-completed results, or a fresh/resumed session whose
	// countdown is derived as max(0, time_limit - elapsed_time). The
	// server is the authority on elapsed wall-clock time.
	ApplyInterviewStart struct{ Resp *api.StartInterviewResponse }

	// ApplySubmitResult merges a submit-answer response: completion,
	// a next question at its full time budget, or a soft
	// already-answered advance.
	ApplySubmitResult struct{ Resp *api.SubmitAnswerResponse }

	// ResetSession clears the session slice to its zero value.
	ResetSession struct{}
)

// UI slice actions.
type (
	// SetNotice shows a transient notification.
	SetNotice struct {
		Message string
		IsError bool
	}

	// ClearNotice removes the current notification.
	ClearNotice struct{}
)

func (SetCandidate) isAction()        {}
func (MergeCandidate) isAction()      {}
func (ClearCandidate) isAction()      {}
func (StageParsedResume) isAction()   {}
func (MergeParsedResume) isAction()   {}
func (DecrementTime) isAction()       {}
func (PauseInterview) isAction()      {}
func (ResumeInterview) isAction()     {}
func (ApplyInterviewStart) isAction() {}
func (ApplySubmitResult) isAction()   {}
func (ResetSession) isAction()        {}
func (SetNotice) isAction()           {}
func (ClearNotice) isAction()         {}

// Reduce applies action to app and returns the next state.
func Reduce(app App, action Action) App {
	switch a := action.(type) {
	case SetCandidate:
		c := a.Candidate
		app.Candidate.Current = &c

	case MergeCandidate:
		if app.Candidate.Current == nil {
			break
		}
		c := *app.Candidate.Current
		if a.Patch.Status != nil {
			c.Status = *a.Patch.Status
		}
		if a.Patch.FinalScore != nil {
			score := *a.Patch.FinalScore
			c.FinalScore = &score
		}
		if a.Patch.Summary != nil {
			c.Summary = *a.Patch.Summary
		}
		app.Candidate.Current = &c

	case ClearCandidate:
		app.Candidate = CandidateState{}

	case StageParsedResume:
		p := a.Parsed
		app.Candidate.Parsed = &p

	case MergeParsedResume:
		var p api.ParsedResume
		if app.Candidate.Parsed != nil {
			p = *app.Candidate.Parsed
		}
		if a.Name != "" {
			p.Name = a.Name
		}
		if a.Email != "" {
			p.Email = a.Email
		}
		if a.Phone != "" {
			p.Phone = a.Phone
		}
		app.Candidate.Parsed = &p

	case DecrementTime:
		if app.Session.TimeRemaining > 0 {
			app.Session.TimeRemaining--
		}

	case PauseInterview:
		app.Session.Paused = true

	case ResumeInterview:
		app.Session.Paused = false

	case ApplyInterviewStart:
		app.Session = reduceInterviewStart(app.Session, a.Resp)

	case ApplySubmitResult:
		app.Session = reduceSubmitResult(app.Session, a.Resp)

	case ResetSession:
		app.Session = SessionState{}

	case SetNotice:
		app.UI.Notice = a.Message
		app.UI.NoticeIsError = a.IsError

	case ClearNotice:
		app.UI = UIState{}
	}

	return app
}

func reduceInterviewStart(s SessionState, resp *api.StartInterviewResponse) SessionState {
	if resp == nil {
		return s
	}

	if resp.InterviewCompleted {
		var score int
		if resp.FinalScore != nil {
			score = *resp.FinalScore
		}
		s.Active = false
		s.Completed = true
		s.SessionID = resp.SessionID
		s.Results = &CompletedInterview{
			SessionID:   resp.SessionID,
			FinalScore:  score,
			Summary:     resp.Summary,
			Questions:   resp.Questions,
			CompletedAt: resp.CompletedAt,
		}
		return s
	}

	questionNumber := resp.QuestionNumber
	if questionNumber == 0 {
		questionNumber = 1
	}

	s.SessionID = resp.SessionID
	s.CurrentQuestion = resp.Question
	s.QuestionNumber = questionNumber
	s.Active = true
	s.Paused = false
	s.Completed = false
	s.Results = nil

	// The server's elapsed time is authoritative across a reload gap;
	// the locally persisted countdown is not trusted here.
	if resp.Question != nil {
		remaining := resp.Question.EffectiveTimeLimit() - resp.ElapsedTime
		if remaining < 0 {
			remaining = 0
		}
		s.TimeRemaining = remaining
	}

	return s
}

func reduceSubmitResult(s SessionState, resp *api.SubmitAnswerResponse) SessionState {
	if resp == nil {
		return s
	}

	if resp.AlreadyAnswered {
		if resp.QuestionNumber > 0 {
			s.QuestionNumber = resp.QuestionNumber
		}
		return s
	}

	if resp.Completed {
		s.Active = false
		s.Completed = true
		if resp.FinalScore != nil {
			s.Results = &CompletedInterview{
				SessionID:  s.SessionID,
				FinalScore: *resp.FinalScore,
				Summary:    resp.Summary,
			}
		}
		return s
	}

	if resp.NextQuestion != nil {
		s.CurrentQuestion = resp.NextQuestion
		if resp.QuestionNumber > 0 {
			s.QuestionNumber = resp.QuestionNumber
		} else {
			s.QuestionNumber++
		}
		// Submission always starts the next question at its full time
		// budget, never an elapsed-adjusted value.
		s.TimeRemaining = resp.NextQuestion.EffectiveTimeLimit()
	}

	return s
}
