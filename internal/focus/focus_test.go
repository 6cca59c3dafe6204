package focus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/fftabs/internal/domain"
)

func TestPage(t *testing.T) {
	t.Run("redirects to the tab url", func(t *testing.T) {
		page := Page("https://example.com/a?b=1")
		assert.Contains(t, page, `content="0;url=https://example.com/a?b=1"`)
	})

	t.Run("escapes html in the url", func(t *testing.T) {
		page := Page(`https://example.com/"><script>alert(1)</script>`)
		assert.NotContains(t, page, "<script>")
		assert.Contains(t, page, "&lt;script&gt;")
	})
}

func TestFocus(t *testing.T) {
	t.Run("writes the page and spawns the browser", func(t *testing.T) {
		dir := t.TempDir()
		f := &Focuser{Browser: "true", Dir: dir}

		err := f.Focus(domain.Tab{Title: "Example", URL: "https://example.com"})
		require.NoError(t, err)

		page, err := os.ReadFile(filepath.Join(dir, pageName))
		require.NoError(t, err)
		assert.Contains(t, string(page), "https://example.com")
	})

	t.Run("reports a missing browser binary", func(t *testing.T) {
		f := &Focuser{Browser: "fftabs-no-such-browser", Dir: t.TempDir()}

		err := f.Focus(domain.Tab{URL: "https://example.com"})
		assert.Error(t, err)
	})
}
