package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/healthsim/internal/calculation"
	"github.com/rgehrsitz/healthsim/internal/config"
	"github.com/rgehrsitz/healthsim/internal/domain"
)

// Model is the application state for the interactive report viewer: it loads
// a profile, runs the analysis pipeline in a command, and renders the report.
type Model struct {
	configPath string
	keys       KeyMap
	spinner    spinner.Model

	width  int
	height int

	loading bool
	report  *domain.AnalysisReport
	err     error
}

// NewModel creates the application model for a profile file.
func NewModel(configPath string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(ColorPrimary)

	return Model{
		configPath: configPath,
		keys:       DefaultKeyMap(),
		spinner:    sp,
		width:      80,
		height:     24,
		loading:    true,
	}
}

// Init kicks off the first analysis run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runAnalysisCmd(m.configPath))
}

// runAnalysisCmd loads the profile and runs the full pipeline off the UI
// goroutine.
func runAnalysisCmd(configPath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		configData, err := parser.LoadFromFile(configPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		engine := calculation.NewAnalysisEngine()
		report, err := engine.RunAnalysis(context.Background(), configData)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return AnalysisCompleteMsg{Report: report}
	}
}

// Update handles messages (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rerun):
			if !m.loading {
				m.loading = true
				m.report = nil
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, runAnalysisCmd(m.configPath))
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AnalysisCompleteMsg:
		m.loading = false
		m.report = msg.Report
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}
