// Package welcomeback offers a resume-or-discard choice when the client
// starts with an interrupted interview on disk.
package welcomeback

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/screen"
	"github.com/intervue-ai/intervue/internal/state"
	"github.com/intervue-ai/intervue/internal/ui/components"
	"github.com/intervue-ai/intervue/internal/ui/layout"
	"github.com/intervue-ai/intervue/internal/ui/theme"
)

// WelcomeBackScreen implements screen.Screen for the interrupted-interview
// prompt.
type WelcomeBackScreen struct {
	dispatch *state.Dispatcher
	menu     components.Menu
}

var _ screen.Screen = (*WelcomeBackScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeBackScreen)(nil)

// New creates the prompt. onResume and onDiscard build the navigation
// messages for the two choices; side effects such as clearing persisted
// state belong to the caller, not this screen.
func New(dispatch *state.Dispatcher, onResume, onDiscard func() tea.Msg) *WelcomeBackScreen {
	return &WelcomeBackScreen{
		dispatch: dispatch,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Resume interview", Action: func() tea.Cmd { return onResume }},
			{Label: "Start over", Action: func() tea.Cmd { return onDiscard }},
		}),
	}
}

func (s *WelcomeBackScreen) Init() tea.Cmd {
	return nil
}

func (s *WelcomeBackScreen) Title() string {
	return "Welcome Back"
}

func (s *WelcomeBackScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
	}
}

func (s *WelcomeBackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *WelcomeBackScreen) View(width, height int) string {
	app := s.dispatch.App()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Welcome back!"))
	b.WriteString("\n\n")

	name := ""
	if app.Candidate.Current != nil {
		name = app.Candidate.Current.Name
	}
	b.WriteString(center.Render(fmt.Sprintf(
		"%s, your interview was interrupted at question %d of %d.",
		name, app.Session.QuestionNumber, api.TotalQuestions)))
	b.WriteString("\n")
	b.WriteString(center.Render(fmt.Sprintf(
		"You had about %ds left on that question.", app.Session.TimeRemaining)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render(
		"Resuming rejoins the session; the server recalculates your remaining time. Starting over discards it."))
	b.WriteString("\n\n")

	menu := s.menu.View()
	for _, line := range strings.Split(strings.TrimRight(menu, "\n"), "\n") {
		b.WriteString(center.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
