// Package cli wires the kong command tree over the discovery pipeline.
package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vburojevic/fftabs/internal/config"
	"github.com/vburojevic/fftabs/internal/discovery"
	"github.com/vburojevic/fftabs/internal/domain"
	"github.com/vburojevic/fftabs/internal/output"
	"github.com/vburojevic/fftabs/internal/profile"
)

// CLI is the top-level command tree
type CLI struct {
	Format  string `help:"Output format (auto, text, ndjson, table)" enum:"auto,text,ndjson,table" default:"${config_format}"`
	Root    string `help:"Firefox profile root (default: platform location)" default:"${config_root}"`
	Quiet   bool   `short:"q" help:"Suppress informational output"`
	Verbose bool   `short:"v" help:"Enable verbose debug logging"`

	List   ListCmd   `cmd:"" default:"1" help:"List currently open tabs"`
	Focus  FocusCmd  `cmd:"" help:"Focus an open tab by index"`
	Watch  WatchCmd  `cmd:"" help:"Re-list tabs on an interval"`
	UI     UICmd     `cmd:"" name:"ui" help:"Interactive tab picker"`
	Config ConfigCmd `cmd:"" help:"Inspect configuration"`
}

// Globals carries resolved flags and injected streams to every command.
// Stdout/Stderr are fields so tests can capture output.
type Globals struct {
	Format  string
	Root    string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config

	logger *debugLogger
}

// NewGlobalsWithConfig merges CLI flags with config fallbacks
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  c.Format,
		Root:    c.Root,
		Quiet:   c.Quiet || cfg.Quiet,
		Verbose: c.Verbose || cfg.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}
	g.logger = newDebugLogger(g.Verbose)
	return g
}

// Debug logs a verbose message when --verbose is set
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(format, args...)
	}
}

// ResolvedFormat maps "auto" to text on a terminal and ndjson otherwise.
func (g *Globals) ResolvedFormat() string {
	if g.Format != "" && g.Format != "auto" {
		return g.Format
	}
	if f, ok := g.Stdout.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return "text"
		}
	}
	return "ndjson"
}

// tabWriter selects the output writer for the resolved format
func (g *Globals) tabWriter(w io.Writer) output.TabWriter {
	switch g.ResolvedFormat() {
	case "table":
		return output.NewTableWriter(w)
	case "text":
		return output.NewTextWriter(w)
	default:
		return output.NewNDJSONWriter(w)
	}
}

// profileRoot resolves the scan root: flag, then config, then platform default
func (g *Globals) profileRoot() (string, error) {
	if g.Root != "" {
		return g.Root, nil
	}
	if g.Config != nil && g.Config.Root != "" {
		return g.Config.Root, nil
	}
	return profile.DefaultRoot()
}

// discoverTabs runs one discovery pass over the resolved root
func (g *Globals) discoverTabs() ([]domain.Tab, error) {
	root, err := g.profileRoot()
	if err != nil {
		return nil, err
	}
	g.Debug("scanning profile root: %s", root)
	p := discovery.New(profile.NewLocator(root), g.logger.Sugared())
	return p.Tabs()
}
