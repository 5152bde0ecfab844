package play

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"encard/internal/quiz"
)

// Terminal selects the streams the program draws to and reads from.
type Terminal struct {
	Input  io.Reader
	Output io.Writer
}

// Run takes over the terminal until the session reaches StateExiting. It
// returns the storage error that ended the session, if any.
func Run(ctx context.Context, session *quiz.Session, term Terminal, opts Options) error {
	model := NewModel(ctx, session, opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if term.Input != nil {
		programOpts = append(programOpts, tea.WithInput(term.Input))
	}
	if term.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(term.Output))
	}
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}
	return session.Err()
}
