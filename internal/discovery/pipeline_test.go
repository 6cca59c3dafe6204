package discovery

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/fftabs/internal/domain"
	"github.com/vburojevic/fftabs/internal/mozlz4"
	"github.com/vburojevic/fftabs/internal/profile"
)

func sessionJSON(titleURL ...string) []byte {
	tabs := ""
	for i := 0; i+1 < len(titleURL); i += 2 {
		if i > 0 {
			tabs += ","
		}
		tabs += fmt.Sprintf(`{"entries":[{"title":%q,"url":%q}],"index":1}`, titleURL[i], titleURL[i+1])
	}
	return []byte(`{"windows":[{"tabs":[` + tabs + `]}]}`)
}

// writeRecovery drops a mozLz4-framed payload into a profile fixture.
func writeRecovery(t *testing.T, root, profileName, fileName string, payload []byte) {
	t.Helper()
	backups := filepath.Join(root, profileName, "sessionstore-backups")
	require.NoError(t, os.MkdirAll(backups, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(backups, fileName), payload, 0o644))
}

func newPipeline(root string) *Pipeline {
	return New(profile.NewLocator(root), nil)
}

// stubSource replays a fixed candidate traversal, letting tests inject
// mid-listing errors the real filesystem will not produce on demand.
type stubSource struct {
	results []profile.PathResult
	err     error
}

func (s stubSource) Candidates() (iter.Seq[profile.PathResult], error) {
	if s.err != nil {
		return nil, s.err
	}
	return func(yield func(profile.PathResult) bool) {
		for _, res := range s.results {
			if !yield(res) {
				return
			}
		}
	}, nil
}

func TestTabs_FirstDecodableCandidateWins(t *testing.T) {
	t.Run("single valid candidate", func(t *testing.T) {
		root := t.TempDir()
		writeRecovery(t, root, "x.default", "recovery.jsonlz4",
			mozlz4.Compress(sessionJSON("Example", "https://example.com")))

		tabs, err := newPipeline(root).Tabs()
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		assert.Equal(t, "Example", tabs[0].Title)
		assert.Equal(t, "https://example.com", tabs[0].URL)
	})

	t.Run("corrupt first candidate is soft-skipped", func(t *testing.T) {
		root := t.TempDir()
		// "recovery.js" sorts before "recovery.jsonlz4".
		writeRecovery(t, root, "x.default", "recovery.js",
			mozlz4.Compress([]byte(`{"windows": [`)))
		writeRecovery(t, root, "x.default", "recovery.jsonlz4",
			mozlz4.Compress(sessionJSON("Second", "https://second.example")))

		tabs, err := newPipeline(root).Tabs()
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		assert.Equal(t, "Second", tabs[0].Title)
	})

	t.Run("no merging across valid candidates", func(t *testing.T) {
		root := t.TempDir()
		writeRecovery(t, root, "a.default", "recovery.jsonlz4",
			mozlz4.Compress(sessionJSON("First", "1")))
		writeRecovery(t, root, "b.default", "recovery.jsonlz4",
			mozlz4.Compress(sessionJSON("Other", "2")))

		tabs, err := newPipeline(root).Tabs()
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		assert.Equal(t, "First", tabs[0].Title)
	})

	t.Run("valid file with zero tabs is still a success", func(t *testing.T) {
		root := t.TempDir()
		writeRecovery(t, root, "x.default", "recovery.jsonlz4",
			mozlz4.Compress([]byte(`{"windows":[]}`)))

		tabs, err := newPipeline(root).Tabs()
		require.NoError(t, err)
		assert.Empty(t, tabs)
	})
}

func TestTabs_NoCandidates(t *testing.T) {
	t.Run("empty root", func(t *testing.T) {
		_, err := newPipeline(t.TempDir()).Tabs()
		assert.ErrorIs(t, err, domain.ErrNoCandidates)
	})

	t.Run("profiles without backups dirs", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "one.default"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "two.default-release"), 0o755))

		_, err := newPipeline(root).Tabs()
		assert.ErrorIs(t, err, domain.ErrNoCandidates)
	})
}

func TestTabs_MissingRootIsFatal(t *testing.T) {
	_, err := newPipeline(filepath.Join(t.TempDir(), "nope")).Tabs()

	var rootErr *domain.RootNotFoundError
	require.ErrorAs(t, err, &rootErr)
}

func TestTabs_SingleFailureSurfacesUnchanged(t *testing.T) {
	root := t.TempDir()
	writeRecovery(t, root, "x.default", "recovery.jsonlz4", []byte("not mozlz4"))

	_, err := newPipeline(root).Tabs()

	var de *domain.DecompressionError
	require.ErrorAs(t, err, &de)
	var multi *domain.MultiError
	assert.False(t, errors.As(err, &multi))
}

func TestTabs_MultipleFailuresCompose(t *testing.T) {
	root := t.TempDir()
	// (0) decompression failure, (1) malformed session.
	writeRecovery(t, root, "x.default", "recovery.js", []byte("garbage"))
	writeRecovery(t, root, "x.default", "recovery.jsonlz4",
		mozlz4.Compress([]byte(`{"windows":[{"tabs":[{"entries":[{"title":"A","url":"a"}],"index":5}]}]}`)))

	_, err := newPipeline(root).Tabs()

	var multi *domain.MultiError
	require.ErrorAs(t, err, &multi)
	require.Len(t, multi.Errors, 2)

	var de *domain.DecompressionError
	assert.ErrorAs(t, multi.Errors[0], &de)
	var me *domain.MalformedSessionError
	assert.ErrorAs(t, multi.Errors[1], &me)

	msg := err.Error()
	assert.Contains(t, msg, "(0)")
	assert.Contains(t, msg, "(1)")
}

func TestTabs_TraversalErrors(t *testing.T) {
	writeValid := func(t *testing.T, title, url string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "recovery.jsonlz4")
		require.NoError(t, os.WriteFile(path, mozlz4.Compress(sessionJSON(title, url)), 0o644))
		return path
	}

	t.Run("mid-listing error is soft and a later candidate still wins", func(t *testing.T) {
		src := stubSource{results: []profile.PathResult{
			{Err: errors.New("readdirent: input/output error")},
			{Path: writeValid(t, "Survivor", "https://survivor.example")},
		}}

		tabs, err := New(src, nil).Tabs()
		require.NoError(t, err)
		require.Len(t, tabs, 1)
		assert.Equal(t, "Survivor", tabs[0].Title)
	})

	t.Run("lone mid-listing error surfaces unchanged", func(t *testing.T) {
		sentinel := errors.New("readdirent: input/output error")
		src := stubSource{results: []profile.PathResult{{Err: sentinel}}}

		_, err := New(src, nil).Tabs()
		require.ErrorIs(t, err, sentinel)
		var multi *domain.MultiError
		assert.False(t, errors.As(err, &multi))
	})

	t.Run("partial results then an error is not no-candidates", func(t *testing.T) {
		sentinel := errors.New("readdirent: input/output error")
		src := stubSource{results: []profile.PathResult{
			{Path: filepath.Join(t.TempDir(), "gone.jsonlz4")}, // unreadable candidate
			{Err: sentinel},
		}}

		_, err := New(src, nil).Tabs()
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNoCandidates)

		var multi *domain.MultiError
		require.ErrorAs(t, err, &multi)
		require.Len(t, multi.Errors, 2)
		assert.ErrorIs(t, multi.Errors[1], sentinel)
	})

	t.Run("source error is returned eagerly", func(t *testing.T) {
		rootErr := &domain.RootNotFoundError{Path: "/nope", Err: errors.New("no such file")}
		src := stubSource{err: rootErr}

		_, err := New(src, nil).Tabs()
		var got *domain.RootNotFoundError
		require.ErrorAs(t, err, &got)
	})
}

func TestTabs_OutOfRangeIndexIsMalformedSession(t *testing.T) {
	for _, index := range []int{0, 2} {
		root := t.TempDir()
		payload := fmt.Sprintf(`{"windows":[{"tabs":[{"entries":[{"title":"A","url":"a"}],"index":%d}]}]}`, index)
		writeRecovery(t, root, "x.default", "recovery.jsonlz4", mozlz4.Compress([]byte(payload)))

		_, err := newPipeline(root).Tabs()

		var me *domain.MalformedSessionError
		require.ErrorAs(t, err, &me, "index %d", index)
	}
}
