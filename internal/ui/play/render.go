package play

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"encard/internal/quiz"
)

// Box width as a share of the terminal, like a centered popup.
const boxWidthPercent = 60

// renderFrame draws the whole screen for a view.
func renderFrame(view quiz.View, width, height int, noColor bool, helpView string) string {
	sections := make([]string, 0, 6)
	if view.State == quiz.StateQuiz {
		sections = append(sections, renderStatus(view, noColor))
	}
	if view.Feedback != nil {
		sections = append(sections, renderFeedback(*view.Feedback, noColor))
	}
	sections = append(sections, renderPrompt(view.Prompt, noColor), "", renderChoices(view, noColor))
	if view.Notice != "" {
		sections = append(sections, "", stylize(view.Notice, noColor, lipgloss.Color("220")))
	}
	box := boxStyle(width, noColor).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	body := lipgloss.JoinVertical(lipgloss.Center, box, stylize(helpView, noColor, lipgloss.Color("241")))
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderStatus renders the score and elapsed line.
func renderStatus(view quiz.View, noColor bool) string {
	line := "Score " + formatScore(view.Score, view.Answered) + " | Elapsed " + formatElapsed(view.Elapsed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFeedback renders the outcome of the last answer.
func renderFeedback(feedback quiz.Feedback, noColor bool) string {
	color := lipgloss.Color("196")
	if feedback.Correct {
		color = lipgloss.Color("42")
	}
	return stylize(formatFeedback(feedback), noColor, color)
}

// renderPrompt renders the question text.
func renderPrompt(prompt string, noColor bool) string {
	if noColor {
		return prompt
	}
	return lipgloss.NewStyle().Bold(true).Render(prompt)
}

// renderChoices renders the choice list with the cursor marker.
func renderChoices(view quiz.View, noColor bool) string {
	lines := make([]string, 0, len(view.Choices))
	for i, choice := range view.Choices {
		highlighted := i == view.Selected
		line := formatChoice(choice, highlighted)
		if highlighted && !noColor {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// boxStyle returns the bordered container style.
func boxStyle(width int, noColor bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if width > 0 {
		style = style.Width(max(width*boxWidthPercent/100, 20))
	}
	if !noColor {
		style = style.BorderForeground(lipgloss.Color("63"))
	}
	return style
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
