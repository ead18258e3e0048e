// Package tui provides the interactive Bubble Tea front end: a huh form
// that collects the scenario, then a scrollable results dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/config"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/model"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/project"
	"github.com/bmathews04/Lease-vs-Buy-Tool/internal/validate"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	phaseForm phase = iota
	phaseResults
)

// App is the root Bubble Tea model.
type App struct {
	phase phase

	form   *huh.Form
	inputs *scenarioInputs

	projection model.Projection
	scenario   model.Scenario
	issues     validate.Issues

	view   viewport.Model
	width  int
	height int
	ready  bool
}

// NewApp creates the TUI, seeding the form from configured defaults.
func NewApp(cfg config.Config) *App {
	inputs := newScenarioInputs(cfg)
	return &App{
		inputs: inputs,
		form:   newScenarioForm(inputs),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.view = viewport.New(msg.Width, max(msg.Height-2, 1))
			a.ready = true
		} else {
			a.view.Width = msg.Width
			a.view.Height = max(msg.Height-2, 1)
		}
		if a.phase == phaseResults {
			a.view.SetContent(a.renderResults())
		}

	case tea.KeyMsg:
		if a.phase == phaseResults {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return a, tea.Quit
			case "e":
				// Back to the form with current values preserved
				a.phase = phaseForm
				a.form = newScenarioForm(a.inputs)
				return a, a.form.Init()
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	if a.phase == phaseForm {
		form, cmd := a.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			a.form = f
		}

		if a.form.State == huh.StateCompleted {
			a.scenario = a.inputs.scenario()
			a.issues = validate.Check(a.scenario)
			if len(a.issues) == 0 {
				a.projection = project.Run(a.scenario)
			}
			a.phase = phaseResults
			if a.ready {
				a.view.SetContent(a.renderResults())
				a.view.GotoTop()
			}
			return a, nil
		}
		if a.form.State == huh.StateAborted {
			return a, tea.Quit
		}
		return a, cmd
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.phase == phaseForm {
		return a.form.View()
	}

	if !a.ready {
		return a.renderResults()
	}

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6F6E69")).
		Render("  j/k scroll · e edit inputs · q quit")

	return a.view.View() + "\n" + status
}

func (a *App) renderResults() string {
	if len(a.issues) > 0 {
		var b strings.Builder
		b.WriteString("\n  Scenario has problems:\n\n")
		for _, issue := range a.issues {
			b.WriteString(fmt.Sprintf("    • %s\n", issue))
		}
		b.WriteString("\n  Press e to edit inputs.\n")
		return b.String()
	}

	return renderDashboard(a.scenario, a.projection)
}
