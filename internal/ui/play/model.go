package play

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"encard/internal/logging"
	"encard/internal/quiz"
)

// Model drives a quiz.Session from Bubble Tea messages.
type Model struct {
	ctx          context.Context
	session      *quiz.Session
	keys         keyMap
	help         help.Model
	tickInterval time.Duration
	width        int
	height       int
	noColor      bool
	log          logrus.FieldLogger
}

// Options configures the quiz UI.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
	Logger       logrus.FieldLogger
}

// NewModel wraps a session for Bubble Tea.
func NewModel(ctx context.Context, session *quiz.Session, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:          ctx,
		session:      session,
		keys:         defaultKeyMap(),
		help:         help.New(),
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
		log:          log,
	}
}

// Init starts the elapsed clock.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update dispatches key presses into the session and advances the clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		input := m.keys.translate(typed)
		before := m.session.State()
		after := m.session.Dispatch(m.ctx, input)
		if before != after {
			m.log.WithFields(logrus.Fields{
				"from":  before.String(),
				"to":    after.String(),
				"input": input.String(),
			}).Debug("session transition")
		}
		if after == quiz.StateExiting {
			if err := m.session.Err(); err != nil {
				m.log.WithError(err).Error("quiz ended by storage error")
			}
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		m.session.Tick(m.tickInterval)
		return m, tick(m.tickInterval)
	}
	return m, nil
}

// View renders the current session.
func (m Model) View() string {
	view := m.session.View()
	if view.Terminal {
		return ""
	}
	return renderFrame(view, m.width, m.height, m.noColor, m.help.View(m.keys))
}

// tickMsg carries a clock tick.
type tickMsg time.Time

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
