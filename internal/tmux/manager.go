// Package tmux mirrors command output into a managed tmux session.
package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// ErrNoSession indicates the managed session is gone or was never created.
var ErrNoSession = errors.New("tmux session not available")

// Config holds tmux output settings
type Config struct {
	SessionName string
}

// Manager owns one tmux session used as an output sink.
type Manager struct {
	mu      sync.Mutex
	tmux    *gotmux.Tmux
	config  *Config
	created bool
}

// IsTmuxAvailable reports whether a tmux binary is on PATH.
func IsTmuxAvailable() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// NewManager creates a manager bound to the local tmux server.
func NewManager(cfg *Config) (*Manager, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, err
	}
	return &Manager{tmux: t, config: cfg}, nil
}

// GetOrCreateSession ensures the configured session exists, detached.
func (m *Manager) GetOrCreateSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tmux.HasSession(m.config.SessionName) {
		m.created = true
		return nil
	}
	_, err := m.tmux.NewSession(&gotmux.SessionOptions{
		Name: m.config.SessionName,
	})
	if err != nil {
		return err
	}
	m.created = true
	return nil
}

// AttachCommand returns the shell command a user runs to view the session.
func (m *Manager) AttachCommand() string {
	return fmt.Sprintf("tmux attach -t %s", m.config.SessionName)
}

// GenerateSessionName builds a session name from a label.
func GenerateSessionName(label string) string {
	name := strings.ToLower(strings.TrimSpace(label))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		return "fftabs"
	}
	return "fftabs-" + name
}
