package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/intervue-ai/intervue/internal/api"
	"github.com/intervue-ai/intervue/internal/ui/components"
	"github.com/intervue-ai/intervue/internal/ui/theme"
)

func (s *ChatScreen) View(width, height int) string {
	switch s.phase {
	case phaseIntro, phaseStarting:
		return s.renderIntro(width)
	case phaseDone:
		return s.renderResults(width)
	default:
		return s.renderActive(width, height)
	}
}

func (s *ChatScreen) renderIntro(width int) string {
	app := s.dispatch.App()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")

	name := ""
	if app.Candidate.Current != nil {
		name = app.Candidate.Current.Name
	}
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Ready when you are, %s", name)))
	b.WriteString("\n\n")
	b.WriteString(center.Render("The interview has 6 questions: 2 easy, 2 medium, 2 hard."))
	b.WriteString("\n")
	b.WriteString(center.Render("Each question is timed: 20s easy, 60s medium, 120s hard."))
	b.WriteString("\n")
	b.WriteString(center.Render("Unanswered questions are submitted automatically when time runs out."))
	b.WriteString("\n\n")

	if s.phase == phaseStarting {
		b.WriteString(center.Foreground(theme.TextDim).Render("Starting interview..."))
	} else {
		start := components.NewButton("Start Interview", true, nil)
		b.WriteString(center.Render(start.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
	}
	return b.String()
}

func (s *ChatScreen) renderActive(width, height int) string {
	app := s.dispatch.App()

	var b strings.Builder

	b.WriteString(s.renderTimerLine(width, app.Session.TimeRemaining))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	// Transcript, newest at the bottom, trimmed to the space above the
	// answer box.
	inputHeight := 8
	transcriptHeight := height - inputHeight - 3
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}
	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")

	if app.Session.Paused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("Interview paused. Press Ctrl+P to resume."))
	} else {
		s.answer.SetSize(max(width-8, 20), 5)
		b.WriteString("  " + strings.ReplaceAll(s.answer.View(), "\n", "\n  "))
		if s.submitting {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Evaluating answer..."))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
	}

	return b.String()
}

func (s *ChatScreen) renderTimerLine(width, remaining int) string {
	app := s.dispatch.App()
	q := app.Session.CurrentQuestion
	limit := 0
	if q != nil {
		limit = q.EffectiveTimeLimit()
	}

	percent := 0.0
	if limit > 0 {
		percent = float64(remaining) / float64(limit)
	}

	color := theme.Secondary
	switch {
	case remaining <= 5:
		color = theme.Error
	case limit > 0 && percent < 0.33:
		color = theme.Warning
	}

	bar := components.ProgressBar{
		Label:   fmt.Sprintf("  Q%d/%d  %3ds", app.Session.QuestionNumber, api.TotalQuestions, remaining),
		Percent: percent,
		Width:   width - 6,
		Color:   color,
	}
	return bar.View()
}

func (s *ChatScreen) renderTranscript(width, height int) string {
	botStyle := theme.BotMessage.MaxWidth(width * 3 / 4)
	userStyle := theme.UserMessage.MaxWidth(width * 3 / 4)

	var lines []string
	for _, e := range s.transcript {
		var block string
		if e.role == roleBot {
			block = botStyle.Render(e.text)
		} else {
			block = lipgloss.PlaceHorizontal(width-4, lipgloss.Right, userStyle.Render(e.text))
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (s *ChatScreen) renderResults(width int) string {
	app := s.dispatch.App()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Interview complete"))
	b.WriteString("\n\n")

	if r := app.Session.Results; r != nil {
		b.WriteString(center.Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("Final score: %d/%d", r.FinalScore, api.TotalScore)))
		if r.Summary != "" {
			b.WriteString("\n\n")
			b.WriteString(center.Render(r.Summary))
		}
	} else {
		b.WriteString(center.Render("Thank you for completing the interview."))
	}

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Returning to the start screen shortly. Press Enter to go now."))
	return b.String()
}
