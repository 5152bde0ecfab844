package play

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"encard/internal/quiz"
)

// keyMap binds terminal keys to quiz inputs.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// translate maps a key press to a quiz input. Bubble Tea only reports key
// presses, so releases never reach this point.
func (k keyMap) translate(msg tea.KeyMsg) quiz.Input {
	switch {
	case key.Matches(msg, k.Cancel):
		return quiz.InputCancel
	case key.Matches(msg, k.Up):
		return quiz.InputMoveUp
	case key.Matches(msg, k.Down):
		return quiz.InputMoveDown
	case key.Matches(msg, k.Confirm):
		return quiz.InputConfirm
	default:
		return quiz.InputOther
	}
}
