package upload

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/intervue-ai/intervue/internal/ui/theme"
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone"}

func (s *UploadScreen) View(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("AI-Powered Interview Assistant"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Full Stack Developer position"))
	b.WriteString("\n\n")

	switch s.phase {
	case phasePath, phaseUploading:
		b.WriteString(center.Render("Upload your resume to begin"))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.pathInput.View()))
		if s.phase == phaseUploading {
			b.WriteString("\n\n")
			b.WriteString(center.Foreground(theme.TextDim).Render("Uploading and parsing resume..."))
		}

	case phaseForm, phaseChecking:
		b.WriteString(center.Render("A few details were missing from your resume"))
		b.WriteString("\n\n")
		for i := 0; i < fieldCount; i++ {
			if !s.missing[i] {
				continue
			}
			label := fieldLabels[i]
			if i == s.focus {
				label = "▸ " + label
			} else {
				label = "  " + label
			}
			line := fmt.Sprintf("%-10s %s", label, s.fields[i].View())
			b.WriteString(center.Render(line))
			b.WriteString("\n")
		}
		if s.phase == phaseChecking {
			b.WriteString("\n")
			b.WriteString(center.Foreground(theme.TextDim).Render("Checking candidate record..."))
		}

	case phaseCompleted:
		b.WriteString(center.Foreground(theme.Success).Bold(true).Render("Interview already completed"))
		b.WriteString("\n\n")
		line := fmt.Sprintf("%s has already finished this interview.", s.doneName)
		b.WriteString(center.Render(line))
		if s.doneScore != nil {
			b.WriteString("\n")
			b.WriteString(center.Render(fmt.Sprintf("Final score: %d/20", *s.doneScore)))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}
