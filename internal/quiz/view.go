package quiz

import "time"

// View is everything the event loop needs to draw one frame.
type View struct {
	State    State
	Prompt   string
	Choices  []string
	Selected int
	Score    int
	Answered int
	Elapsed  time.Duration
	Feedback *Feedback
	Notice   string
	Terminal bool
}

// View returns a snapshot of the session for rendering. It does not mutate
// the session.
func (s *Session) View() View {
	view := View{
		State:    s.state,
		Prompt:   s.current.Prompt,
		Choices:  append([]string(nil), s.current.Choices...),
		Selected: s.cursor.Selected(),
		Score:    s.score,
		Answered: s.answered,
		Elapsed:  s.elapsed,
		Notice:   s.notice,
		Terminal: s.state == StateExiting,
	}
	if s.feedback != nil {
		feedback := *s.feedback
		view.Feedback = &feedback
	}
	return view
}
