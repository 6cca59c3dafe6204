// Package tui implements the interactive tab picker.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vburojevic/fftabs/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	urlStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the picker state. The zero cursor starts on the first tab.
type Model struct {
	tabs     []domain.Tab
	cursor   int
	choice   *domain.Tab
	quitting bool
}

func NewModel(tabs []domain.Tab) Model {
	return Model{tabs: tabs}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tabs)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.tabs) > 0 {
			tab := m.tabs[m.cursor]
			m.choice = &tab
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Open tabs (%d)", len(m.tabs))))
	b.WriteString("\n\n")

	for i, tab := range m.tabs {
		cursor := "  "
		line := fmt.Sprintf("%s %s", tab.Title, urlStyle.Render("("+tab.URL+")"))
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter focus · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the tab picked with enter, or nil if the user quit.
func (m Model) Choice() *domain.Tab {
	return m.choice
}
