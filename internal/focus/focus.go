// Package focus raises an already-open tab by spawning the browser on a
// generated page that immediately navigates to the tab's URL. Firefox's
// switch-to-tab deduplication then brings the existing tab forward instead of
// opening a duplicate.
package focus

import (
	"fmt"
	"html"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vburojevic/fftabs/internal/domain"
)

const pageName = "fftabs-focus.html"

// Focuser spawns a browser process to focus a tab.
type Focuser struct {
	Browser string // binary to spawn; "firefox" when empty
	Dir     string // where the generated page is written; os.TempDir() when empty
}

// Focus writes the redirect page and starts the browser on it. The browser
// is left running detached; only spawn failures are reported.
func (f *Focuser) Focus(tab domain.Tab) error {
	dir := f.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, pageName)
	if err := os.WriteFile(path, []byte(Page(tab.URL)), 0o644); err != nil {
		return err
	}

	browser := f.Browser
	if browser == "" {
		browser = "firefox"
	}
	cmd := exec.Command(browser, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", browser, err)
	}
	return cmd.Process.Release()
}

// Page renders the generated redirect page for url.
func Page(url string) string {
	escaped := html.EscapeString(url)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0;url=%s">
<title>fftabs</title>
</head>
<body>
<a href="%s">%s</a>
</body>
</html>
`, escaped, escaped, escaped)
}
