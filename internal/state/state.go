// Package state holds the client's application state: a Candidate slice and
// a Session slice that are durably persisted on every mutation, and a
// volatile UI slice. All mutations go through pure, total reducer functions
// composed under a single serialized dispatcher; components never mutate the
// state directly. The persisted slices are the single source of truth across
// restarts.
package state

import (
	"github.com/intervue-ai/intervue/internal/api"
)

// Candidate lifecycle statuses. At most one holds at a time, and a completed
// candidate never re-enters in-progress through this client.
const (
	StatusCollectingInfo = "collecting-info"
	StatusReady          = "ready"
	StatusInProgress     = "in-progress"
	StatusCompleted      = "completed"
)

// Candidate is the client's view of the current candidate.
type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	FinalScore *int   `json:"final_score,omitempty"`
	Summary    string `json:"summary,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// CandidateState is the persisted candidate slice plus the staged resume
// fields held before a candidate record exists.
type CandidateState struct {
	Current *Candidate
	Parsed  *api.ParsedResume
}

// CompletedInterview captures the final results payload so the results view
// can render without a further round-trip.
type CompletedInterview struct {
	SessionID   string
	FinalScore  int
	Summary     string
	Questions   []api.Question
	CompletedAt string
}

// SessionState is the persisted session slice: active interview progress,
// current question, countdown value, and pause flag.
type SessionState struct {
	SessionID       string
	CurrentQuestion *api.Question
	QuestionNumber  int
	Active          bool
	TimeRemaining   int
	Paused          bool
	Completed       bool
	Results         *CompletedInterview
}

// UIState holds ephemeral flags. Never persisted.
type UIState struct {
	Notice        string
	NoticeIsError bool
}

// App is the whole application state. Values are copied through reducers;
// only the dispatcher holds the canonical instance.
type App struct {
	Candidate CandidateState
	Session   SessionState
	UI        UIState
}

// CandidatePatch carries a partial candidate update; nil fields are left
// untouched.
type CandidatePatch struct {
	Status     *string
	FinalScore *int
	Summary    *string
}
