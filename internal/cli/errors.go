package cli

import (
	"errors"
	"fmt"

	"github.com/vburojevic/fftabs/internal/domain"
	"github.com/vburojevic/fftabs/internal/output"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so machine consumers always get structured failures.
func outputErrorCommon(globals *Globals, code, message string, hint ...string) error {
	if globals != nil && globals.ResolvedFormat() == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message, hint...)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s", code, message)
		if len(hint) > 0 && hint[0] != "" {
			fmt.Fprintf(globals.Stderr, " (hint: %s)", hint[0])
		}
		fmt.Fprintln(globals.Stderr)
	}
	return errors.New(message)
}

// outputDiscoveryError maps the discovery error taxonomy onto stable codes.
func outputDiscoveryError(globals *Globals, err error) error {
	return outputErrorCommon(globals, discoveryErrorCode(err), err.Error())
}

func discoveryErrorCode(err error) string {
	var (
		rootErr   *domain.RootNotFoundError
		decompErr *domain.DecompressionError
		malErr    *domain.MalformedSessionError
		multiErr  *domain.MultiError
	)
	switch {
	case errors.Is(err, domain.ErrNoCandidates):
		return "NO_CANDIDATES"
	case errors.As(err, &rootErr):
		return "ROOT_NOT_FOUND"
	case errors.As(err, &multiErr):
		return "MULTIPLE_FAILURES"
	case errors.As(err, &decompErr):
		return "DECOMPRESSION_FAILED"
	case errors.As(err, &malErr):
		return "MALFORMED_SESSION"
	default:
		return "IO_ERROR"
	}
}
