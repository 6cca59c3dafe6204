// Package profile walks a Firefox configuration root for session recovery
// files: <root>/<dir containing "default">/sessionstore-backups/recovery.js*.
package profile

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/vburojevic/fftabs/internal/domain"
)

const (
	backupsDirName = "sessionstore-backups"
	recoveryPrefix = "recovery.js"
	defaultMarker  = "default"
)

// PathResult is one item of the candidate sequence: either a recovery file
// path or the traversal error that ended a directory listing.
type PathResult struct {
	Path string
	Err  error
}

// Locator produces recovery file candidates under a profile root.
type Locator struct {
	Root string
}

func NewLocator(root string) *Locator {
	return &Locator{Root: root}
}

// DefaultRoot resolves the platform's Firefox profile root under the user's
// home directory.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &domain.RootNotFoundError{Path: "home", Err: err}
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"), nil
	default:
		return filepath.Join(home, ".mozilla", "firefox"), nil
	}
}

// Candidates lists the root eagerly (a missing or unreadable root is fatal
// and the walk never starts) and yields recovery file candidates lazily,
// one profile directory at a time, in name order.
//
// Listing errors partway through a directory do not abort the walk: the
// affected level's contribution ends with a single PathResult carrying the
// error. That keeps "no candidates", "aborted listing", and "partial results,
// then an error" structurally distinguishable for the caller.
func (l *Locator) Candidates() (iter.Seq[PathResult], error) {
	profiles, rootReadErr, err := readDirSplit(l.Root)
	if err != nil {
		return nil, &domain.RootNotFoundError{Path: l.Root, Err: err}
	}

	seq := func(yield func(PathResult) bool) {
		for _, entry := range profiles {
			if !entry.IsDir() || !strings.Contains(entry.Name(), defaultMarker) {
				continue
			}

			backups := filepath.Join(l.Root, entry.Name(), backupsDirName)
			files, readErr, openErr := readDirSplit(backups)
			if openErr != nil {
				// A default-like profile without sessionstore-backups is
				// normal; it contributes nothing.
				continue
			}

			for _, f := range files {
				if !f.Type().IsRegular() || !strings.HasPrefix(f.Name(), recoveryPrefix) {
					continue
				}
				if !yield(PathResult{Path: filepath.Join(backups, f.Name())}) {
					return
				}
			}
			if readErr != nil {
				if !yield(PathResult{Err: readErr}) {
					return
				}
			}
		}
		if rootReadErr != nil {
			yield(PathResult{Err: rootReadErr})
		}
	}
	return seq, nil
}

var errNotDir = errors.New("not a directory")

// readDirSplit separates "could not open the directory" from "the listing
// failed partway through", returning whatever entries were read before the
// failure. A path that opens but is not a directory counts as an open
// failure, so a file posing as the root stays fatal and a file posing as
// a backups dir stays a skip. Entries are sorted by name for deterministic
// candidate order.
func readDirSplit(dir string) (entries []fs.DirEntry, readErr, openErr error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, &fs.PathError{Op: "open", Path: dir, Err: errNotDir}
	}

	entries, readErr = f.ReadDir(-1)
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, readErr, nil
}
