package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/vburojevic/fftabs/internal/tmux"
)

// WatchCmd re-runs tab discovery on an interval
type WatchCmd struct {
	Interval time.Duration `help:"Delay between scans" default:"${config_interval}"`
	Count    int           `help:"Stop after this many scans (0 = run until interrupted)"`
	Tmux     bool          `help:"Mirror output into a tmux session"`
	Session  string        `help:"Custom tmux session name (default: fftabs-watch)" default:"${config_tmux_session}"`

	clk clock.Clock
}

// Run executes the watch command
func (c *WatchCmd) Run(globals *Globals) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	clk := c.clk
	if clk == nil {
		clk = clock.New()
	}
	if c.Interval <= 0 {
		return outputErrorCommon(globals, "INVALID_INTERVAL",
			fmt.Sprintf("interval must be positive, got %s", c.Interval))
	}

	// Determine output destination. A tmux sink that cannot be set up
	// degrades to stdout, but never silently.
	var outputWriter io.Writer = globals.Stdout
	var tmuxMgr *tmux.Manager

	if c.Tmux {
		mgr, sessionName, err := c.setupTmux()
		if err != nil {
			watchWarn(globals, fmt.Sprintf("tmux output unavailable, writing to stdout: %s", err))
		} else {
			tmuxMgr = mgr
			outputWriter = tmux.NewWriter(mgr)
			if err := tmuxMgr.ClearPaneWithBanner("watching tabs"); err != nil {
				watchWarn(globals, fmt.Sprintf("could not clear tmux pane: %s", err))
			}

			if globals.ResolvedFormat() == "ndjson" {
				fmt.Fprintf(globals.Stdout, `{"type":"tmux","session":"%s","attach":"%s"}`+"\n",
					sessionName, tmuxMgr.AttachCommand())
			} else {
				fmt.Fprintf(globals.Stdout, "Tmux session: %s\n", sessionName)
				fmt.Fprintf(globals.Stdout, "Attach with: %s\n", tmuxMgr.AttachCommand())
			}
		}
	}

	if !globals.Quiet && tmuxMgr == nil && globals.ResolvedFormat() != "ndjson" {
		fmt.Fprintf(globals.Stderr, "Watching tabs every %s\n", c.Interval)
		fmt.Fprintln(globals.Stderr, "Press Ctrl+C to stop")
	}

	ticker := clk.Ticker(c.Interval)
	defer ticker.Stop()

	scans := 0
	for {
		if err := c.scanOnce(globals, outputWriter); err != nil {
			watchWarn(globals, err.Error())
		}
		scans++
		if c.Count > 0 && scans >= c.Count {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// setupTmux resolves the session name and gets or creates the session.
func (c *WatchCmd) setupTmux() (*tmux.Manager, string, error) {
	if !tmux.IsTmuxAvailable() {
		return nil, "", fmt.Errorf("tmux not found in PATH")
	}

	sessionName := c.Session
	if sessionName == "" {
		sessionName = tmux.GenerateSessionName("watch")
	}

	mgr, err := tmux.NewManager(&tmux.Config{SessionName: sessionName})
	if err != nil {
		return nil, "", err
	}
	if err := mgr.GetOrCreateSession(); err != nil {
		return nil, "", err
	}
	return mgr, sessionName, nil
}

// watchWarn emits a non-fatal problem in the resolved format.
func watchWarn(globals *Globals, msg string) {
	if globals.Quiet {
		return
	}
	if globals.ResolvedFormat() == "ndjson" {
		fmt.Fprintf(globals.Stdout, `{"type":"warning","message":%q}`+"\n", msg)
	} else {
		fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
	}
}

// scanOnce runs one discovery pass and writes the result to w
func (c *WatchCmd) scanOnce(globals *Globals, w io.Writer) error {
	tabs, err := globals.discoverTabs()
	if err != nil {
		return err
	}

	if globals.ResolvedFormat() != "ndjson" {
		fmt.Fprintf(w, "--- %s: %d tabs ---\n", time.Now().Format("15:04:05"), len(tabs))
	}
	return globals.tabWriter(w).WriteTabs(tabs)
}
