package chat

import (
	"time"

	"github.com/intervue-ai/intervue/internal/api"
)

// startedMsg is sent when start-interview completes.
type startedMsg struct {
	Resp *api.StartInterviewResponse
	Err  error
}

// submittedMsg is sent when submit-answer completes.
type submittedMsg struct {
	Resp *api.SubmitAnswerResponse
	// Answer is the text that was submitted, echoed back for the transcript.
	Answer string
	Err    error
}

// tickMsg drives the one-second countdown.
type tickMsg time.Time

// startOverMsg fires after the post-completion delay to begin a fresh
// candidate flow.
type startOverMsg struct{}
