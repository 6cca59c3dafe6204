package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vburojevic/fftabs/internal/focus"
	"github.com/vburojevic/fftabs/internal/tui"
)

// UICmd launches the interactive tab picker
type UICmd struct {
	Browser string `help:"Browser binary to spawn" default:"${config_browser}"`
}

// Run executes the ui command
func (c *UICmd) Run(globals *Globals) error {
	tabs, err := globals.discoverTabs()
	if err != nil {
		return outputDiscoveryError(globals, err)
	}
	if len(tabs) == 0 {
		fmt.Fprintln(globals.Stderr, "No open tabs")
		return nil
	}

	p := tea.NewProgram(tui.NewModel(tabs), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	model, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	tab := model.Choice()
	if tab == nil {
		return nil
	}

	if !globals.Quiet {
		fmt.Fprintf(globals.Stderr, "Focusing %s\n", tab.Title)
	}
	f := &focus.Focuser{Browser: c.Browser}
	if err := f.Focus(*tab); err != nil {
		return outputErrorCommon(globals, "FOCUS_FAILED", err.Error())
	}
	return nil
}
