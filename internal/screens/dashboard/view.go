package dashboard

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/ui/theme"
)

func (s *DashboardScreen) View(width, height int) string {
	switch s.phase {
	case phaseAuth:
		return s.renderAuth(width)
	case phaseDetail:
		return s.renderDetail(width, height)
	default:
		return s.renderList(width, height)
	}
}

func (s *DashboardScreen) renderAuth(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Interviewer Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(center.Render("Enter the access password to continue"))
	b.WriteString("\n\n")
	b.WriteString(center.Render(s.passInput.View()))
	if s.authErr {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Error).Render("Incorrect password"))
	}
	return b.String()
}

func (s *DashboardScreen) renderList(width, height int) string {
	var b strings.Builder

	status := statusFilters[s.statusIx]
	if status == "" {
		status = "all"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %d candidates   filter: %s   sort: %s", len(s.visible), status, s.sortBy)))
	b.WriteString("\n")

	if s.searching || s.searchInput.Value() != "" {
		b.WriteString("  Search: " + s.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-24s %-28s %-16s %s", "NAME", "EMAIL", "STATUS", "SCORE")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	if s.phase == phaseLoading {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Loading..."))
		return b.String()
	}

	rows := height - 5
	if rows < 1 {
		rows = 1
	}
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	for i := start; i < len(s.visible) && i < start+rows; i++ {
		c := s.visible[i]
		score := "-"
		if c.FinalScore != nil {
			score = fmt.Sprintf("%d/%d", *c.FinalScore, api.TotalScore)
		}
		line := fmt.Sprintf("%-24s %-28s %-16s %s",
			truncate(c.Name, 23), truncate(c.Email, 27), c.Status, score)

		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(s.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  No candidates match."))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
	}
	return b.String()
}

func (s *DashboardScreen) renderDetail(width, height int) string {
	c := s.detail
	if c == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + c.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %s   %s   ", c.Email, c.Phone)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.StatusColor(c.Status)).Render(c.Status))
	b.WriteString("\n")

	if c.FinalScore != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(
			fmt.Sprintf("  Final score: %d/%d", *c.FinalScore, api.TotalScore)))
		b.WriteString("\n")
	}
	if c.Summary != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + c.Summary))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if c.Session == nil || len(c.Session.Questions) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  No interview transcript yet."))
		return b.String()
	}

	for i, q := range c.Session.Questions {
		score := "-"
		if q.Score != nil {
			score = fmt.Sprintf("%d/%d", *q.Score, api.MaxScore(q.Difficulty))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
			fmt.Sprintf("  Q%d (%s, %s)", i+1, q.Difficulty, score)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + q.Text))
		b.WriteString("\n")
		if q.Answer != nil {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  A: " + truncate(*q.Answer, width-8)))
			b.WriteString("\n")
		}
		if q.Feedback != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  " + truncate(q.Feedback, width-6)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	if n <= 3 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
