package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/robbyt/go-arithscript/internal/helpers"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestNewFromIoReader(t *testing.T) {
	t.Parallel()

	t.Run("named source", func(t *testing.T) {
		l, err := NewFromIoReader(strings.NewReader(SimpleContent), "stdin")
		require.NoError(t, err)

		expectedHash := helpers.SHA256(SimpleContent)[:8]
		verifyLoader(t, l, "reader://stdin/"+expectedHash)
		require.Equal(t, SimpleContent, readAll(t, l))
		require.Contains(t, l.String(), "Bytes: 18")
	})

	t.Run("unnamed source", func(t *testing.T) {
		l, err := NewFromIoReader(strings.NewReader("7"), "")
		require.NoError(t, err)
		require.Contains(t, l.GetSourceURL().String(), "reader://unnamed/")
	})

	t.Run("nil reader", func(t *testing.T) {
		l, err := NewFromIoReader(nil, "x")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		require.Nil(t, l)
	})

	t.Run("whitespace only", func(t *testing.T) {
		l, err := NewFromIoReader(strings.NewReader(" \n "), "x")
		require.ErrorIs(t, err, ErrScriptNotAvailable)
		require.Nil(t, l)
	})

	t.Run("read error", func(t *testing.T) {
		l, err := NewFromIoReader(failingReader{}, "x")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to read from reader")
		require.Nil(t, l)
	})
}
