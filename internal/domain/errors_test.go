package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiError(t *testing.T) {
	t.Run("tags entries with discovery order", func(t *testing.T) {
		err := &MultiError{Errors: []error{
			errors.New("first failure"),
			errors.New("second failure"),
		}}

		assert.Equal(t, "multiple errors: (0) first failure (1) second failure", err.Error())
	})

	t.Run("unwraps to the original errors", func(t *testing.T) {
		inner := &DecompressionError{Path: "recovery.jsonlz4", Err: errors.New("bad block")}
		err := &MultiError{Errors: []error{inner, errors.New("other")}}

		var de *DecompressionError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "recovery.jsonlz4", de.Path)
	})
}

func TestErrorWrapping(t *testing.T) {
	t.Run("root error unwraps to cause", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &RootNotFoundError{Path: "/home/user/.mozilla/firefox", Err: cause}

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "/home/user/.mozilla/firefox")
	})

	t.Run("malformed session keeps the file path", func(t *testing.T) {
		err := &MalformedSessionError{Path: "/p/recovery.jsonlz4", Err: errors.New("index 7 out of range")}
		assert.Contains(t, err.Error(), "/p/recovery.jsonlz4")
		assert.Contains(t, err.Error(), "out of range")
	})
}
