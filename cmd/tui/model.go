package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wricardo/mcp-training/game2048/game/shell"
)

// model forwards key presses to the shell and draws whatever the presenter holds
type model struct {
	shell      *shell.Shell
	presenter  *boardPresenter
	configName string
	quitting   bool
}

func newModel(sh *shell.Shell, presenter *boardPresenter, configName string) model {
	return model{
		shell:      sh,
		presenter:  presenter,
		configName: configName,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.shell.Navigate("")
			return m, tea.Quit
		}
		m.shell.Dispatch(msg.String())
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	return m.presenter.View(m.configName)
}
