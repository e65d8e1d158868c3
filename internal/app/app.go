// Package app wires the screens, state dispatcher, and backend client into
// the root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/config"
	"github.com/intervue-ai/intervue/internal/reconcile"
	"github.com/intervue-ai/intervue/internal/router"
	"github.com/intervue-ai/intervue/internal/screen"
	"github.com/intervue-ai/intervue/internal/screens/chat"
	"github.com/intervue-ai/intervue/internal/screens/dashboard"
	"github.com/intervue-ai/intervue/internal/screens/upload"
	"github.com/intervue-ai/intervue/internal/screens/welcomeback"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/store"
	"github.com/intervue-ai/intervue/internal/ui/layout"
)

// ResetAppMsg requests the terminal equivalent of a full page reload: the
// screen stack is rebuilt from the current state as if the client had just
// started.
type ResetAppMsg struct{}

// Options carries the dependencies the root model needs.
type Options struct {
	Dispatcher *state.Dispatcher
	Backend    *api.Client
	Records    store.RecordRepo
	Persistor  *state.Persistor
	Config     config.Config

	// Dashboard starts directly in the interviewer view.
	Dashboard bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	gate   *reconcile.Gate
	width  int
	height int
}

// newAppModel decides the initial screen from the already-loaded state.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		opts: opts,
		gate: &reconcile.Gate{},
	}
	m.router = router.New(m.initialScreen())
	return m
}

// initialScreen reconciles persisted state into a starting screen: the
// resume-or-discard prompt for an interrupted interview, the interview
// itself for a candidate who has not finished, or the intake flow.
func (m AppModel) initialScreen() screen.Screen {
	if m.opts.Dashboard {
		return dashboard.New(m.opts.Backend, m.opts.Records, m.opts.Config.DashboardPassword)
	}

	app := m.opts.Dispatcher.App()

	if m.gate.Check(app) {
		// Frozen until the candidate explicitly resumes or discards.
		m.opts.Dispatcher.Dispatch(state.PauseInterview{})
		return welcomeback.New(m.opts.Dispatcher,
			func() tea.Msg {
				m.opts.Dispatcher.Dispatch(state.ResumeInterview{})
				return router.ResetStackMsg{Screen: m.chatScreen(true)}
			},
			func() tea.Msg {
				m.discardSession()
				return ResetAppMsg{}
			},
		)
	}

	if c := app.Candidate.Current; c != nil {
		// A completed candidate rejoins straight into the results view;
		// start-interview returns the completed summary.
		return m.chatScreen(c.Status == state.StatusCompleted)
	}

	return m.uploadScreen()
}

func (m AppModel) uploadScreen() screen.Screen {
	return upload.New(m.opts.Dispatcher, m.opts.Backend, func() screen.Screen {
		return m.chatScreen(false)
	})
}

func (m AppModel) chatScreen(resume bool) screen.Screen {
	return chat.New(m.opts.Dispatcher, m.opts.Backend, resume, func() tea.Msg {
		m.discardSession()
		return ResetAppMsg{}
	})
}

// discardSession forgets the current candidate and session, both in memory
// and on disk via the persistence subscriber.
func (m AppModel) discardSession() {
	m.opts.Dispatcher.Dispatch(state.ResetSession{})
	m.opts.Dispatcher.Dispatch(state.ClearCandidate{})
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResetAppMsg:
		return m, m.router.Reset(m.initialScreen())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	m.surfacePersistError()
	return m, cmd
}

// surfacePersistError turns a failed state write into a transient notice.
// The write is retried on the next action, so losing the notice to a newer
// one is fine.
func (m AppModel) surfacePersistError() {
	if m.opts.Persistor == nil {
		return
	}
	if err := m.opts.Persistor.TakeError(); err != nil {
		m.opts.Dispatcher.Dispatch(state.SetNotice{
			Message: "Could not save progress locally; will retry.",
			IsError: true,
		})
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	app := m.opts.Dispatcher.App()
	candidateName, candidateStatus := "", ""
	if c := app.Candidate.Current; c != nil && !m.opts.Dashboard {
		candidateName = c.Name
		candidateStatus = c.Status
	}

	header := layout.RenderHeader(title, candidateName, candidateStatus, m.width)

	var hints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(hints, app.UI.Notice, app.UI.NoticeIsError, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
