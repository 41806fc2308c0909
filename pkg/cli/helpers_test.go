//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/github/gh-progress/pkg/progress"
	"github.com/stretchr/testify/require"
)

// fileStream returns a non-terminal stream backed by a temp file and a
// function reading back everything written to it.
func fileStream(t *testing.T) (progress.Stream, func() string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stream.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return progress.NewTerminalStream(f), func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
