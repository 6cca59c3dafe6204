package cli

import "fmt"

// ListCmd lists the currently open tabs
type ListCmd struct{}

// Run executes the list command
func (c *ListCmd) Run(globals *Globals) error {
	tabs, err := globals.discoverTabs()
	if err != nil {
		return outputDiscoveryError(globals, err)
	}

	if len(tabs) == 0 && !globals.Quiet && globals.ResolvedFormat() != "ndjson" {
		fmt.Fprintln(globals.Stderr, "No open tabs")
		return nil
	}
	return globals.tabWriter(globals.Stdout).WriteTabs(tabs)
}
