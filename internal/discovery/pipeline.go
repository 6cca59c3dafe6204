// Package discovery orchestrates the scan-decompress-parse-extract pipeline
// over recovery file candidates.
package discovery

import (
	"iter"
	"os"

	"go.uber.org/zap"

	"github.com/vburojevic/fftabs/internal/domain"
	"github.com/vburojevic/fftabs/internal/mozlz4"
	"github.com/vburojevic/fftabs/internal/profile"
	"github.com/vburojevic/fftabs/internal/session"
)

// CandidateSource hands out one traversal of recovery file candidates.
// *profile.Locator is the production implementation.
type CandidateSource interface {
	Candidates() (iter.Seq[profile.PathResult], error)
}

// Pipeline pulls candidates from a source and returns the first candidate
// that decodes end to end. Everything runs synchronously on the caller's
// goroutine; the filesystem is only read.
type Pipeline struct {
	source CandidateSource
	log    *zap.SugaredLogger
}

// New creates a pipeline. log may be nil.
func New(source CandidateSource, log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{source: source, log: log}
}

// Tabs performs one discovery pass.
//
// Per-candidate failures never abort the pass: they are collected while the
// next candidate is tried, and the first fully decodable candidate wins
// outright. There is no merging across recovery files and no "most recent
// file" heuristic; candidates are taken strictly in locator order. Only when
// every candidate has failed does the accumulator resolve the result:
// zero recorded failures means no candidate existed at all, a single failure
// surfaces unchanged, and two or more compose into a MultiError in discovery
// order.
func (p *Pipeline) Tabs() ([]domain.Tab, error) {
	seq, err := p.source.Candidates()
	if err != nil {
		return nil, err
	}

	var failures []error
	for res := range seq {
		if res.Err != nil {
			p.log.Debugw("traversal error", "error", res.Err)
			failures = append(failures, res.Err)
			continue
		}

		tabs, err := p.decode(res.Path)
		if err != nil {
			p.log.Debugw("candidate failed", "path", res.Path, "error", err)
			failures = append(failures, err)
			continue
		}

		p.log.Debugw("candidate decoded", "path", res.Path, "tabs", len(tabs))
		return tabs, nil
	}

	switch len(failures) {
	case 0:
		return nil, domain.ErrNoCandidates
	case 1:
		return nil, failures[0]
	default:
		return nil, &domain.MultiError{Errors: failures}
	}
}

// decode attempts one candidate file end to end.
func (p *Pipeline) decode(path string) ([]domain.Tab, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	buf, err := mozlz4.Decompress(raw)
	if err != nil {
		return nil, &domain.DecompressionError{Path: path, Err: err}
	}

	doc, err := session.Parse(buf)
	if err != nil {
		return nil, &domain.MalformedSessionError{Path: path, Err: err}
	}

	tabs, err := session.Extract(doc)
	if err != nil {
		return nil, &domain.MalformedSessionError{Path: path, Err: err}
	}
	return tabs, nil
}
