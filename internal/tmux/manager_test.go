package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSessionName(t *testing.T) {
	assert.Equal(t, "fftabs-default-release", GenerateSessionName("Default Release"))
	assert.Equal(t, "fftabs-5w5airb6-default", GenerateSessionName("5w5airb6.default"))
	assert.Equal(t, "fftabs", GenerateSessionName("   "))
	assert.Equal(t, "fftabs", GenerateSessionName("---"))
}

func TestEscapeTmuxString(t *testing.T) {
	assert.Equal(t, `it'"'"'s`, escapeTmuxString("it's"))
	assert.Equal(t, `a\\b`, escapeTmuxString(`a\b`))
}

func TestWriterRequiresSession(t *testing.T) {
	m := &Manager{config: &Config{SessionName: "fftabs-test"}}
	w := NewWriter(m)

	_, err := w.Write([]byte("line\n"))
	assert.ErrorIs(t, err, ErrNoSession)
}
