package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/fftabs/internal/cli"
	"github.com/vburojevic/fftabs/internal/config"
)

const quickStart = `fftabs - list and focus open Firefox tabs

Quick start:
  fftabs list                           List open tabs
  fftabs focus 3                        Focus tab 3
  fftabs ui                             Interactive picker
  fftabs watch --tmux                   Mirror the tab list into tmux

For help:
  fftabs --help                         All commands and flags
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Apply config defaults before parsing
	// These will be overridden by CLI flags if specified
	vars := kong.Vars{
		"config_format":       cfg.Format,
		"config_root":         cfg.Root,
		"config_browser":      cfg.Defaults.Browser,
		"config_interval":     cfg.Defaults.Interval,
		"config_tmux_session": cfg.Defaults.TmuxSession,
	}

	ctx := kong.Parse(&c,
		kong.Name("fftabs"),
		kong.Description("fftabs: list and focus open Firefox tabs from their on-disk session data"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	err = ctx.Run(globals)
	if err != nil {
		os.Exit(1)
	}
}
