package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/store"
)

// persistedCandidate is the whitelisted durable projection of the candidate
// slice. Staged resume fields are included so a restart mid-profile-
// completion does not force a re-upload.
type persistedCandidate struct {
	Current *Candidate        `json:"current_candidate,omitempty"`
	Parsed  *api.ParsedResume `json:"parsed_resume,omitempty"`
}

// persistedSession is the whitelisted durable projection of the session
// slice. Completed-interview results are deliberately excluded; they are
// re-fetched from the server when needed.
type persistedSession struct {
	SessionID       string        `json:"session_id,omitempty"`
	CurrentQuestion *api.Question `json:"current_question,omitempty"`
	QuestionNumber  int           `json:"question_number,omitempty"`
	Active          bool          `json:"is_interview_active,omitempty"`
	TimeRemaining   int           `json:"time_remaining,omitempty"`
	Paused          bool          `json:"is_paused,omitempty"`
	Completed       bool          `json:"is_completed,omitempty"`
}

// Persistor writes the two durable slices to the record store after every
// mutation that changes them. It is an explicit dispatcher subscriber, not
// hidden middleware.
type Persistor struct {
	records store.RecordRepo

	lastCandidate string
	lastSession   string

	mu      sync.Mutex
	saveErr error
}

// NewPersistor creates a Persistor over records.
func NewPersistor(records store.RecordRepo) *Persistor {
	return &Persistor{records: records}
}

// Subscriber returns the dispatch subscriber. Writes are change-detected per
// slice so UI-only actions never touch the disk. A failed write keeps the
// slice dirty so the next action retries it, and the error is held for
// TakeError. The subscriber runs under the dispatcher lock, so it must not
// dispatch; the root model polls TakeError instead.
func (p *Persistor) Subscriber() Subscriber {
	return func(app App, _ Action) {
		ctx := context.Background()

		if data := marshalProjection(candidateProjection(app)); data != p.lastCandidate {
			if err := p.records.Save(ctx, store.RecordCandidate, []byte(data)); err != nil {
				p.setError(fmt.Errorf("persist candidate: %w", err))
			} else {
				p.lastCandidate = data
			}
		}

		if data := marshalProjection(sessionProjection(app)); data != p.lastSession {
			if err := p.records.Save(ctx, store.RecordSession, []byte(data)); err != nil {
				p.setError(fmt.Errorf("persist session: %w", err))
			} else {
				p.lastSession = data
			}
		}
	}
}

func (p *Persistor) setError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saveErr == nil {
		p.saveErr = err
	}
}

// TakeError returns the first write failure since the last call and clears
// it. Returns nil when every write since then succeeded.
func (p *Persistor) TakeError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.saveErr
	p.saveErr = nil
	return err
}

// Load rehydrates the persisted slices into a fresh App. Missing or corrupt
// records yield empty slices rather than an error; the user simply starts
// over. This runs to completion before any reconciliation logic.
func Load(ctx context.Context, records store.RecordRepo) (App, error) {
	var app App

	data, err := records.Load(ctx, store.RecordCandidate)
	if err != nil {
		return app, fmt.Errorf("load candidate record: %w", err)
	}
	if len(data) > 0 {
		var pc persistedCandidate
		if err := json.Unmarshal(data, &pc); err == nil {
			app.Candidate.Current = pc.Current
			app.Candidate.Parsed = pc.Parsed
		}
	}

	data, err = records.Load(ctx, store.RecordSession)
	if err != nil {
		return app, fmt.Errorf("load session record: %w", err)
	}
	if len(data) > 0 {
		var ps persistedSession
		if err := json.Unmarshal(data, &ps); err == nil {
			app.Session.SessionID = ps.SessionID
			app.Session.CurrentQuestion = ps.CurrentQuestion
			app.Session.QuestionNumber = ps.QuestionNumber
			app.Session.Active = ps.Active
			app.Session.TimeRemaining = ps.TimeRemaining
			app.Session.Paused = ps.Paused
			app.Session.Completed = ps.Completed
		}
	}

	return app, nil
}

// Clear removes both persisted slices ("start over"). The next load finds
// no candidate and no session.
func Clear(ctx context.Context, records store.RecordRepo) error {
	if err := records.Delete(ctx, store.RecordCandidate); err != nil {
		return err
	}
	return records.Delete(ctx, store.RecordSession)
}

func candidateProjection(app App) persistedCandidate {
	return persistedCandidate{
		Current: app.Candidate.Current,
		Parsed:  app.Candidate.Parsed,
	}
}

func sessionProjection(app App) persistedSession {
	return persistedSession{
		SessionID:       app.Session.SessionID,
		CurrentQuestion: app.Session.CurrentQuestion,
		QuestionNumber:  app.Session.QuestionNumber,
		Active:          app.Session.Active,
		TimeRemaining:   app.Session.TimeRemaining,
		Paused:          app.Session.Paused,
		Completed:       app.Session.Completed,
	}
}

func marshalProjection(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
