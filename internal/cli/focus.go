package cli

import (
	"fmt"

	"github.com/vburojevic/fftabs/internal/focus"
)

// FocusCmd focuses one open tab
type FocusCmd struct {
	Index   int    `arg:"" help:"Tab index as shown by list"`
	Browser string `help:"Browser binary to spawn" default:"${config_browser}"`
}

// Run executes the focus command
func (c *FocusCmd) Run(globals *Globals) error {
	tabs, err := globals.discoverTabs()
	if err != nil {
		return outputDiscoveryError(globals, err)
	}

	if c.Index < 0 || c.Index >= len(tabs) {
		return outputErrorCommon(globals, "INDEX_OUT_OF_RANGE",
			fmt.Sprintf("tab index %d out of range [0, %d]", c.Index, len(tabs)-1),
			"run 'fftabs list' to see valid indexes")
	}

	tab := tabs[c.Index]
	globals.Debug("focusing tab %d: %s", c.Index, tab.URL)

	f := &focus.Focuser{Browser: c.Browser}
	if err := f.Focus(tab); err != nil {
		return outputErrorCommon(globals, "FOCUS_FAILED", err.Error())
	}

	if globals.ResolvedFormat() == "ndjson" {
		fmt.Fprintf(globals.Stdout, `{"type":"focus","index":%d,"url":%q}`+"\n", c.Index, tab.URL)
	} else if !globals.Quiet {
		fmt.Fprintf(globals.Stderr, "Focusing %s\n", tab.Title)
	}
	return nil
}
