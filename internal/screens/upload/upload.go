// Package upload implements the resume intake flow: upload a resume file,
// review the parsed fields, fill in whatever the parser missed, and hand off
// to the interview once a complete candidate profile exists server-side.
package upload

import (
	"context"
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/router"
	"github.com/intervue-ai/intervue/internal/screen"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/ui/components"
	"github.com/intervue-ai/intervue/internal/ui/layout"
)

// Backend is the slice of the API client this screen needs.
type Backend interface {
	UploadResume(ctx context.Context, path string) (*api.UploadResumeResponse, error)
	CreateOrCheckCandidate(ctx context.Context, fields api.ParsedResume) (*api.CreateOrCheckResponse, error)
	UpdateCandidateInfo(ctx context.Context, candidateID string, fields map[string]string) error
}

type phase int

const (
	phasePath phase = iota
	phaseUploading
	phaseForm
	phaseChecking
	phaseCompleted
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether v looks like an email address.
func ValidEmail(v string) bool {
	return emailRe.MatchString(strings.TrimSpace(v))
}

// ValidPhone reports whether v contains at least ten digits.
func ValidPhone(v string) bool {
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10
}

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

// UploadScreen implements screen.Screen for the resume intake flow.
type UploadScreen struct {
	dispatch *state.Dispatcher
	backend  Backend
	openChat func() screen.Screen

	phase     phase
	pathInput components.TextInput
	fields    [fieldCount]components.TextInput
	focus     int
	missing   [fieldCount]bool
	errMsg    string

	// Completed-candidate summary shown instead of the interview hand-off.
	doneName  string
	doneScore *int
}

var _ screen.Screen = (*UploadScreen)(nil)
var _ screen.KeyHintProvider = (*UploadScreen)(nil)

// New creates the intake screen. openChat builds the interview screen that
// the router switches to once the candidate profile is complete.
func New(dispatch *state.Dispatcher, backend Backend, openChat func() screen.Screen) *UploadScreen {
	s := &UploadScreen{
		dispatch:  dispatch,
		backend:   backend,
		openChat:  openChat,
		pathInput: components.NewTextInput("Path to resume (PDF or DOCX)...", 256),
	}
	s.fields[fieldName] = components.NewTextInput("Full name", 80)
	s.fields[fieldEmail] = components.NewTextInput("Email address", 120)
	s.fields[fieldPhone] = components.NewTextInput("Phone number", 32)
	return s
}

func (s *UploadScreen) Init() tea.Cmd {
	return s.pathInput.Init()
}

func (s *UploadScreen) Title() string {
	return "Resume"
}

func (s *UploadScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Continue"},
		}
	case phaseCompleted:
		return nil
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Upload"},
		}
	}
}

func (s *UploadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadedMsg:
		return s.handleUploaded(msg)

	case candidateCheckedMsg:
		return s.handleChecked(msg)

	case infoSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseForm
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *UploadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePath:
		if key == "enter" {
			path := strings.TrimSpace(s.pathInput.Value())
			if path == "" {
				return s, nil
			}
			s.errMsg = ""
			s.phase = phaseUploading
			return s, s.uploadCmd(path)
		}

	case phaseForm:
		switch key {
		case "tab", "down":
			s.moveFocus(1)
			return s, s.fields[s.focus].Focus()
		case "shift+tab", "up":
			s.moveFocus(-1)
			return s, s.fields[s.focus].Focus()
		case "enter":
			if s.focus < s.lastMissing() {
				s.moveFocus(1)
				return s, s.fields[s.focus].Focus()
			}
			return s.submitForm()
		}

	case phaseCompleted:
		// Terminal state for this candidate.
		return s, nil
	}

	return s.forwardToInput(msg)
}

func (s *UploadScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phasePath:
		s.pathInput, cmd = s.pathInput.Update(msg)
	case phaseForm:
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	}
	return s, cmd
}

func (s *UploadScreen) moveFocus(delta int) {
	s.fields[s.focus].Blur()
	for i := 0; i < fieldCount; i++ {
		s.focus = (s.focus + delta + fieldCount) % fieldCount
		if s.missing[s.focus] {
			return
		}
	}
}

func (s *UploadScreen) lastMissing() int {
	last := 0
	for i := 0; i < fieldCount; i++ {
		if s.missing[i] {
			last = i
		}
	}
	return last
}

func (s *UploadScreen) uploadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		resp, err := s.backend.UploadResume(context.Background(), path)
		return uploadedMsg{Resp: resp, Err: err}
	}
}

func (s *UploadScreen) handleUploaded(msg uploadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.phase = phasePath
		return s, nil
	}

	parsed := msg.Resp.ParsedData
	s.dispatch.Dispatch(state.StageParsedResume{Parsed: parsed})

	// Trust local emptiness over the server's missing-fields list; a field
	// the parser filled is never re-asked.
	s.missing[fieldName] = strings.TrimSpace(parsed.Name) == ""
	s.missing[fieldEmail] = !ValidEmail(parsed.Email)
	s.missing[fieldPhone] = !ValidPhone(parsed.Phone)

	if !s.missing[fieldName] && !s.missing[fieldEmail] && !s.missing[fieldPhone] {
		s.phase = phaseChecking
		return s, s.checkCmd(parsed)
	}

	s.phase = phaseForm
	s.fields[fieldName].SetValue(parsed.Name)
	s.fields[fieldEmail].SetValue(parsed.Email)
	s.fields[fieldPhone].SetValue(parsed.Phone)

	s.focus = 0
	s.moveFocusToFirstMissing()
	return s, s.fields[s.focus].Focus()
}

func (s *UploadScreen) moveFocusToFirstMissing() {
	for i := 0; i < fieldCount; i++ {
		if s.missing[i] {
			s.focus = i
			return
		}
	}
}

func (s *UploadScreen) submitForm() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.fields[fieldName].Value())
	email := strings.TrimSpace(s.fields[fieldEmail].Value())
	phone := strings.TrimSpace(s.fields[fieldPhone].Value())

	ok := true
	if s.missing[fieldName] {
		valid := name != ""
		s.fields[fieldName].Submit(valid)
		ok = ok && valid
	}
	if s.missing[fieldEmail] {
		valid := ValidEmail(email)
		s.fields[fieldEmail].Submit(valid)
		ok = ok && valid
	}
	if s.missing[fieldPhone] {
		valid := ValidPhone(phone)
		s.fields[fieldPhone].Submit(valid)
		ok = ok && valid
	}
	if !ok {
		return s, nil
	}

	app := s.dispatch.Dispatch(state.MergeParsedResume{Name: name, Email: email, Phone: phone})

	parsed := api.ParsedResume{Name: name, Email: email, Phone: phone}
	if app.Candidate.Parsed != nil {
		parsed = *app.Candidate.Parsed
	}

	s.errMsg = ""
	s.phase = phaseChecking
	return s, s.checkCmd(parsed)
}

func (s *UploadScreen) checkCmd(parsed api.ParsedResume) tea.Cmd {
	return func() tea.Msg {
		resp, err := s.backend.CreateOrCheckCandidate(context.Background(), parsed)
		return candidateCheckedMsg{Resp: resp, Err: err}
	}
}

func (s *UploadScreen) handleChecked(msg candidateCheckedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		if s.missing[fieldName] || s.missing[fieldEmail] || s.missing[fieldPhone] {
			s.phase = phaseForm
		} else {
			s.phase = phasePath
		}
		return s, nil
	}

	resp := msg.Resp
	app := s.dispatch.App()

	cand := state.Candidate{
		ID:     resp.CandidateID,
		Status: resp.Status,
	}
	if p := app.Candidate.Parsed; p != nil {
		cand.Name = p.Name
		cand.Email = p.Email
		cand.Phone = p.Phone
		cand.ResumeURL = p.ResumeURL
	}
	if resp.CandidateData != nil {
		if resp.CandidateData.Name != "" {
			cand.Name = resp.CandidateData.Name
		}
		if resp.CandidateData.ResumeURL != "" {
			cand.ResumeURL = resp.CandidateData.ResumeURL
		}
		cand.FinalScore = resp.CandidateData.FinalScore
		cand.Summary = resp.CandidateData.Summary
	}
	if cand.Status == "" {
		cand.Status = state.StatusReady
	}
	s.dispatch.Dispatch(state.SetCandidate{Candidate: cand})

	if resp.IsCompleted {
		s.phase = phaseCompleted
		s.doneName = cand.Name
		s.doneScore = cand.FinalScore
		return s, nil
	}

	// An existing candidate whose stored profile had gaps gets the
	// corrected fields pushed back before the interview begins.
	var cmds []tea.Cmd
	if resp.Exists && (s.missing[fieldName] || s.missing[fieldEmail] || s.missing[fieldPhone]) {
		updates := map[string]string{}
		if s.missing[fieldName] {
			updates["name"] = cand.Name
		}
		if s.missing[fieldEmail] {
			updates["email"] = cand.Email
		}
		if s.missing[fieldPhone] {
			updates["phone"] = cand.Phone
		}
		id := resp.CandidateID
		cmds = append(cmds, func() tea.Msg {
			return infoSavedMsg{Err: s.backend.UpdateCandidateInfo(context.Background(), id, updates)}
		})
	}

	cmds = append(cmds, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s.openChat()}
	})
	return s, tea.Batch(cmds...)
}
