// Package dashboard implements the interviewer's view: a password gate, a
// searchable and sortable candidate list, and a per-candidate detail view
// with the full question-by-question transcript.
package dashboard

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/screen"
	"github.com/intervue-ai/intervue/internal/store"
	"github.com/intervue-ai/intervue/internal/ui/components"
	"github.com/intervue-ai/intervue/internal/ui/layout"
)

// Backend is the slice of the API client this screen needs.
type Backend interface {
	ListCandidates(ctx context.Context, status, sortBy string) ([]api.Candidate, error)
	CandidateDetails(ctx context.Context, candidateID string) (*api.Candidate, error)
}

type phase int

const (
	phaseAuth phase = iota
	phaseLoading
	phaseList
	phaseDetail
)

// DashboardScreen implements screen.Screen for the interviewer dashboard.
type DashboardScreen struct {
	backend  Backend
	records  store.RecordRepo
	password string

	phase     phase
	passInput components.TextInput
	authErr   bool

	all      []api.Candidate
	visible  []api.Candidate
	selected int
	sortBy   string
	statusIx int

	searching   bool
	searchInput components.TextInput

	detail *api.Candidate
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard. password is the gate credential; a prior grant
// stored in records skips the prompt.
func New(backend Backend, records store.RecordRepo, password string) *DashboardScreen {
	pi := components.NewTextInput("Access password", 64)
	pi.Model.EchoMode = textinput.EchoPassword
	return &DashboardScreen{
		backend:     backend,
		records:     records,
		password:    password,
		passInput:   pi,
		searchInput: components.NewTextInput("Search name or email...", 80),
		sortBy:      SortByScore,
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return tea.Batch(s.checkAuthCmd(), s.passInput.Init())
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAuth:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Unlock"},
		}
	case phaseList:
		if s.searching {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Apply"},
				{Key: "Esc", Description: "Clear search"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Details"},
			{Key: "/", Description: "Search"},
			{Key: "F", Description: "Filter"},
			{Key: "S", Description: "Sort"},
			{Key: "R", Description: "Refresh"},
		}
	case phaseDetail:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back to list"},
		}
	}
	return nil
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authCheckedMsg:
		if msg.Granted {
			s.phase = phaseLoading
			return s, s.loadCmd()
		}
		return s, nil

	case candidatesLoadedMsg:
		return s.handleLoaded(msg)

	case detailLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseList
			return s, nil
		}
		s.detail = msg.Candidate
		s.phase = phaseDetail
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *DashboardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseAuth:
		if key == "enter" {
			return s.tryUnlock()
		}

	case phaseList:
		if s.searching {
			switch key {
			case "enter":
				s.searching = false
				s.refreshVisible()
				return s, nil
			case "esc":
				s.searching = false
				s.searchInput.SetValue("")
				s.refreshVisible()
				return s, nil
			}
			break
		}

		switch key {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.visible)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.visible) {
				s.phase = phaseLoading
				return s, s.detailCmd(s.visible[s.selected].ID)
			}
			return s, nil
		case "/":
			s.searching = true
			return s, s.searchInput.Focus()
		case "f", "F":
			s.statusIx = (s.statusIx + 1) % len(statusFilters)
			s.refreshVisible()
			return s, nil
		case "s", "S":
			s.sortBy = nextSort(s.sortBy)
			s.refreshVisible()
			return s, nil
		case "r", "R":
			s.phase = phaseLoading
			return s, s.loadCmd()
		}

	case phaseDetail:
		if key == "esc" {
			s.detail = nil
			s.phase = phaseList
			return s, nil
		}
	}

	return s.forwardToInput(msg)
}

func (s *DashboardScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case s.phase == phaseAuth:
		s.passInput, cmd = s.passInput.Update(msg)
	case s.phase == phaseList && s.searching:
		s.searchInput, cmd = s.searchInput.Update(msg)
		s.refreshVisible()
	}
	return s, cmd
}

func (s *DashboardScreen) tryUnlock() (screen.Screen, tea.Cmd) {
	if s.passInput.Value() != s.password {
		s.authErr = true
		s.passInput.Submit(false)
		s.passInput.SetValue("")
		return s, nil
	}

	s.authErr = false
	s.phase = phaseLoading
	return s, tea.Batch(s.saveAuthCmd(), s.loadCmd())
}

func (s *DashboardScreen) handleLoaded(msg candidatesLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.phase = phaseList
		return s, nil
	}
	s.errMsg = ""
	s.all = msg.Candidates
	s.phase = phaseList
	s.refreshVisible()
	return s, nil
}

// refreshVisible re-derives the displayed list from the full set plus the
// current search, filter, and sort settings.
func (s *DashboardScreen) refreshVisible() {
	s.visible = filterCandidates(s.all, s.searchInput.Value(), statusFilters[s.statusIx])
	sortCandidates(s.visible, s.sortBy)
	if s.selected >= len(s.visible) {
		s.selected = len(s.visible) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func nextSort(current string) string {
	for i, o := range sortOrders {
		if o == current {
			return sortOrders[(i+1)%len(sortOrders)]
		}
	}
	return sortOrders[0]
}

func (s *DashboardScreen) checkAuthCmd() tea.Cmd {
	return func() tea.Msg {
		if s.records == nil {
			return authCheckedMsg{}
		}
		data, err := s.records.Load(context.Background(), store.RecordInterviewerAuth)
		granted := err == nil && string(data) == store.InterviewerAuthGranted
		return authCheckedMsg{Granted: granted}
	}
}

func (s *DashboardScreen) saveAuthCmd() tea.Cmd {
	return func() tea.Msg {
		if s.records != nil {
			_ = s.records.Save(context.Background(),
				store.RecordInterviewerAuth, []byte(store.InterviewerAuthGranted))
		}
		return nil
	}
}

func (s *DashboardScreen) loadCmd() tea.Cmd {
	status := statusFilters[s.statusIx]
	sortBy := s.sortBy
	return func() tea.Msg {
		list, err := s.backend.ListCandidates(context.Background(), status, sortBy)
		return candidatesLoadedMsg{Candidates: list, Err: err}
	}
}

func (s *DashboardScreen) detailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		c, err := s.backend.CandidateDetails(context.Background(), id)
		return detailLoadedMsg{Candidate: c, Err: err}
	}
}
