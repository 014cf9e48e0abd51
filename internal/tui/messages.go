package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rgehrsitz/healthsim/internal/domain"
)

// Message types for the Bubble Tea update cycle

// AnalysisCompleteMsg signals the analysis pipeline has finished.
type AnalysisCompleteMsg struct {
	Report *domain.AnalysisReport
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Rerun key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-run analysis"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
