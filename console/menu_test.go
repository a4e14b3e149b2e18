package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbaydullinAA/Project-Module2/log"
	"github.com/AbaydullinAA/Project-Module2/testutil"
)

func runMenu(t *testing.T, cfg Config, input string) string {
	t.Helper()

	var out bytes.Buffer
	r := NewRunner(RunnerConfig{
		Logger: log.NewLogger(log.WithNop()),
		In:     strings.NewReader(input),
		Out:    &out,
	})

	err := r.menu(context.Background(), cfg, log.NewLogger(log.WithNop()), nil)
	require.NoError(t, err)
	return out.String()
}

func TestMenu_Caesar(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "1\n1\n2\nace\nn\n")
	assert.Contains(t, out, "Alphabet loaded (6 characters)")
	assert.Contains(t, out, "Encrypted text:")
	assert.Contains(t, out, "cea")
}

func TestMenu_VigenereDecrypt(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "2\n2\nba\nbb ce\nn\n")
	assert.Contains(t, out, "Decrypted text:")
	assert.Contains(t, out, "ab cd")
}

func TestMenu_Atbash(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "3\n1\nabc\nn\n")
	assert.Contains(t, out, "fed")
}

func TestMenu_Quit(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "4\n")
	assert.Contains(t, out, "Bye.")
}

func TestMenu_RetriesInvalidInput(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "9\nx\n1\n3\n1\nz\n2\nace\nn\n")
	assert.Contains(t, out, "Error: enter a number from 1 to 4")
	assert.Contains(t, out, "Error: enter a number")
	assert.Contains(t, out, "Error: enter 1 or 2")
	assert.Contains(t, out, "Error: key must be an integer")
	assert.Contains(t, out, "cea")
}

func TestMenu_PromptsForAlphabet(t *testing.T) {
	path := testutil.TempAlphabetFile(t, "abcdef")

	out := runMenu(t, Config{}, path+".missing\n"+path+"\n4\n")
	assert.Contains(t, out, "not found. Try again.")
	assert.Contains(t, out, "Alphabet loaded (6 characters)")
}

func TestMenu_RejectsBadAlphabetFile(t *testing.T) {
	bad := testutil.TempAlphabetFile(t, "aab")
	good := testutil.TempAlphabetFile(t, "abcdef")

	out := runMenu(t, Config{}, bad+"\n"+good+"\n4\n")
	assert.Contains(t, out, "Alphabet error:")
	assert.Contains(t, out, "Alphabet loaded (6 characters)")
}

func TestMenu_ReportsTextOutsideAlphabet(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "абвгде")}

	out := runMenu(t, cfg, "1\n1\n2\nпривет\nn\n")
	assert.Contains(t, out, "Text error:")
	assert.Contains(t, out, `'п'`)
}

func TestMenu_EmptyVigenereKeyRetried(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	// A blank key line is retried by the prompt rather than reaching the cipher.
	out := runMenu(t, cfg, "2\n1\n\nba\nab\nn\n")
	assert.Contains(t, out, "Error: key must not be empty")
	assert.Contains(t, out, "bb")
}

func TestMenu_EOFQuitsQuietly(t *testing.T) {
	cfg := Config{AlphabetPath: testutil.TempAlphabetFile(t, "abcdef")}

	out := runMenu(t, cfg, "")
	assert.Contains(t, out, "Choose a cipher:")
}
