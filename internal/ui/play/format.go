package play

import (
	"fmt"
	"time"

	"encard/internal/quiz"
)

// formatElapsed renders a duration as m:ss, or h:mm:ss past an hour.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// formatScore renders correct/answered.
func formatScore(score, answered int) string {
	return fmt.Sprintf("%d/%d", score, answered)
}

// formatFeedback describes the previous submission.
func formatFeedback(feedback quiz.Feedback) string {
	if feedback.Correct {
		return "Correct! " + feedback.Answer
	}
	return fmt.Sprintf("Wrong: you chose %q, the answer was %q", feedback.Chosen, feedback.Answer)
}

// formatChoice prefixes the highlighted choice with a marker.
func formatChoice(choice string, highlighted bool) string {
	if highlighted {
		return "> " + choice
	}
	return "  " + choice
}
