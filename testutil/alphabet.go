package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
)

// TempAlphabetFile writes content to a temp file and returns its path. The
// file is removed when the test finishes.
func TempAlphabetFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alphabet.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// MustAlphabet builds an Alphabet from chars and fails the test on error.
func MustAlphabet(t *testing.T, chars string) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(chars)
	require.NoError(t, err)
	return a
}
