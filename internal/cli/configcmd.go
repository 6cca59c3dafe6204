package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/fftabs/internal/config"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"1" help:"Show the loaded configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show which config file is in use"`
	Generate ConfigGenerateCmd `cmd:"" help:"Print a sample configuration file"`
}

// ConfigShowCmd shows the effective configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.ResolvedFormat() == "ndjson" {
		rec := map[string]interface{}{
			"type":    "config",
			"format":  cfg.Format,
			"quiet":   cfg.Quiet,
			"verbose": cfg.Verbose,
			"root":    cfg.Root,
			"defaults": map[string]string{
				"browser":      cfg.Defaults.Browser,
				"interval":     cfg.Defaults.Interval,
				"tmux_session": cfg.Defaults.TmuxSession,
			},
		}
		return json.NewEncoder(globals.Stdout).Encode(rec)
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintf(globals.Stdout, "  format: %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet: %t\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %t\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  root: %s\n", cfg.Root)
	fmt.Fprintln(globals.Stdout, "  Defaults:")
	fmt.Fprintf(globals.Stdout, "    browser: %s\n", cfg.Defaults.Browser)
	fmt.Fprintf(globals.Stdout, "    interval: %s\n", cfg.Defaults.Interval)
	fmt.Fprintf(globals.Stdout, "    tmux_session: %s\n", cfg.Defaults.TmuxSession)
	return nil
}

// ConfigPathCmd shows which config file was loaded
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.ResolvedFormat() == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]string{
			"type": "config_path",
			"path": path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found (using defaults)")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}
	return nil
}

// ConfigGenerateCmd prints a sample configuration file
type ConfigGenerateCmd struct{}

const sampleConfig = `# fftabs configuration file
# Place in ~/.fftabs.yaml or $XDG_CONFIG_HOME/fftabs/fftabs.yaml

# Output format: auto, text, ndjson, table
format: auto

# Suppress informational output
quiet: false

# Enable verbose debug logging
verbose: false

# Firefox profile root override (empty = platform default)
root: ""

defaults:
  # Browser binary the focus command spawns
  browser: firefox

  # Watch command scan interval
  interval: 2s

  # Watch --tmux session name (empty = fftabs-watch)
  tmux_session: ""
`

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
