package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"panetop/internal/errors"
)

// programRunner abstracts the Bubble Tea program so tests can substitute
// a fake and assert the session outcome mapping.
type programRunner interface {
	Run() (tea.Model, error)
}

// Session owns the full-screen program lifecycle: raw input, alternate
// screen, and mouse capture are acquired when the program starts and
// restored by the program runtime on every exit path, including panics.
type Session struct {
	newProgram func(tea.Model) programRunner
}

// NewSession creates a session backed by a real terminal program.
func NewSession() *Session {
	return &Session{
		newProgram: func(m tea.Model) programRunner {
			return tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
		},
	}
}

// Run blocks until the monitor quits or fails. The returned error is nil
// for a clean quit; a provider failure carries its own code, and a
// terminal failure is wrapped as a terminal error. In every case the
// terminal has already been restored when Run returns.
func (s *Session) Run(m Model) error {
	final, err := s.newProgram(m).Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Terminal session failed",
			"Make sure panetop runs in an interactive terminal.")
	}

	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
