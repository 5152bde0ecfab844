// Package quiz holds the quiz session state machine. It performs no I/O; the
// event loop renders Session.View and feeds inputs to Session.Dispatch.
package quiz

import (
	"context"
	"errors"
	"time"

	"encard/internal/question"
	"encard/internal/store"
)

// Picker supplies random questions. store.Store satisfies it.
type Picker interface {
	LoadRandom(ctx context.Context) (question.Record, error)
}

// Session is the in-memory state of one run of the quiz.
type Session struct {
	picker   Picker
	state    State
	current  question.Record
	cursor   Cursor
	score    int
	answered int
	elapsed  time.Duration
	feedback *Feedback
	notice   string
	err      error
}

// NewSession returns a session in the menu state.
func NewSession(picker Picker) *Session {
	s := &Session{picker: picker}
	s.toMenu()
	return s
}

// Dispatch applies one input and returns the resulting state. Every
// (state, input) pair is defined; unrecognized inputs are no-ops.
func (s *Session) Dispatch(ctx context.Context, input Input) State {
	if input == InputCancel {
		s.state = StateExiting
		return s.state
	}
	switch s.state {
	case StateMenu:
		s.dispatchMenu(ctx, input)
	case StateQuiz:
		s.dispatchQuiz(ctx, input)
	case StateExiting:
	}
	return s.state
}

func (s *Session) dispatchMenu(ctx context.Context, input Input) {
	switch input {
	case InputMoveUp:
		s.cursor.MoveUp()
	case InputMoveDown:
		s.cursor.MoveDown()
	case InputConfirm:
		switch s.cursor.Selected() {
		case menuStart:
			s.start(ctx)
		case menuExit:
			s.state = StateExiting
		}
	case InputOther, InputCancel:
	}
}

func (s *Session) dispatchQuiz(ctx context.Context, input Input) {
	switch input {
	case InputMoveUp:
		s.cursor.MoveUp()
	case InputMoveDown:
		s.cursor.MoveDown()
	case InputConfirm:
		s.submit(ctx)
	case InputOther, InputCancel:
	}
}

// Tick advances the elapsed clock while a quiz is running.
func (s *Session) Tick(d time.Duration) {
	if s.state != StateQuiz || d <= 0 {
		return
	}
	s.elapsed += d
}

// Compare reports whether the highlighted choice is the correct one.
func (s *Session) Compare() bool {
	return s.current.IsCorrect(s.cursor.Selected())
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Current returns the bound question; the menu pseudo-question in StateMenu.
func (s *Session) Current() question.Record {
	return s.current.Clone()
}

// Cursor returns a copy of the navigation cursor.
func (s *Session) Cursor() Cursor {
	return s.cursor
}

// Score returns the number of correct submissions since the quiz started.
func (s *Session) Score() int {
	return s.score
}

// Answered returns the number of submissions since the quiz started.
func (s *Session) Answered() int {
	return s.answered
}

// Elapsed returns the time spent in the current quiz.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Err returns the storage error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// start binds the first question, or stays in the menu with a notice when the
// store is empty.
func (s *Session) start(ctx context.Context) {
	record, ok := s.next(ctx)
	if !ok {
		return
	}
	s.score = 0
	s.answered = 0
	s.elapsed = 0
	s.feedback = nil
	s.notice = ""
	s.bind(record)
	s.state = StateQuiz
}

// submit scores the highlighted choice and advances to another question.
func (s *Session) submit(ctx context.Context) {
	selected := s.cursor.Selected()
	correct := s.Compare()
	if correct {
		s.score++
	}
	s.answered++
	feedback := Feedback{
		Correct: correct,
		Prompt:  s.current.Prompt,
		Answer:  s.current.Answer(),
	}
	if selected >= 0 && selected < len(s.current.Choices) {
		feedback.Chosen = s.current.Choices[selected]
	}
	s.feedback = &feedback

	record, ok := s.next(ctx)
	if !ok {
		return
	}
	s.bind(record)
}

// next fetches a question. On failure it moves the session to the menu
// (empty store) or to Exiting (any other storage error) and returns false.
func (s *Session) next(ctx context.Context) (question.Record, bool) {
	if s.picker == nil {
		s.failEmpty()
		return question.Record{}, false
	}
	record, err := s.picker.LoadRandom(ctx)
	switch {
	case err == nil:
		if len(record.Choices) == 0 {
			s.err = store.ErrMalformedStorage
			s.state = StateExiting
			return question.Record{}, false
		}
		return record, true
	case errors.Is(err, store.ErrStoreEmpty):
		s.failEmpty()
	default:
		s.err = err
		s.state = StateExiting
	}
	return question.Record{}, false
}

func (s *Session) failEmpty() {
	if s.state != StateMenu {
		s.toMenu()
	}
	s.notice = NoQuestionsNotice
}

func (s *Session) bind(record question.Record) {
	s.current = record.Clone()
	s.cursor.Rebind(s.current.Choices)
}

// toMenu binds the menu pseudo-question and clears the quiz counters.
func (s *Session) toMenu() {
	s.state = StateMenu
	s.score = 0
	s.answered = 0
	s.elapsed = 0
	s.feedback = nil
	s.notice = ""
	s.bind(question.Record{
		Prompt:  WelcomePrompt,
		Choices: []string{ChoiceStart, ChoiceExit},
	})
}
