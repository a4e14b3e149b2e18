package alphabet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbaydullinAA/Project-Module2/errtag"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		chars   string
		wantErr bool
	}{
		{
			name:  "latin alphabet",
			chars: "abcdef",
		},
		{
			name:  "cyrillic alphabet",
			chars: "абвгде",
		},
		{
			name:  "single character",
			chars: "a",
		},
		{
			name:    "empty",
			chars:   "",
			wantErr: true,
		},
		{
			name:    "duplicate character",
			chars:   "aab",
			wantErr: true,
		},
		{
			name:    "duplicate non-ascii character",
			chars:   "абва",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.chars)
			if tt.wantErr {
				assert.True(t, errtag.HasTag[errtag.Alphabet](err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chars, got.String())
		})
	}
}

func TestLoad(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "alphabet.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("strips surrounding whitespace", func(t *testing.T) {
		a, err := Load(writeFile(t, "abcdef\n"))
		require.NoError(t, err)
		assert.Equal(t, "abcdef", a.String())
		assert.Equal(t, 6, a.Len())
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeFile(t, "\n"))
		assert.True(t, errtag.HasTag[errtag.Alphabet](err))
	})

	t.Run("duplicate characters", func(t *testing.T) {
		_, err := Load(writeFile(t, "aab"))
		assert.True(t, errtag.HasTag[errtag.Alphabet](err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		assert.True(t, errtag.HasTag[errtag.NotFound](err))
		assert.False(t, errtag.HasTag[errtag.Alphabet](err))
	})
}

func TestAlphabet_Validate(t *testing.T) {
	a, err := New("abc")
	require.NoError(t, err)

	tests := []struct {
		name    string
		text    string
		wantErr string
	}{
		{
			name: "all members",
			text: "abccba",
		},
		{
			name: "spaces exempt",
			text: "a b c",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name:    "first offender reported",
			text:    "xyz",
			wantErr: `character 'x' not found in alphabet`,
		},
		{
			name:    "offender after members",
			text:    "ab d",
			wantErr: `character 'd' not found in alphabet`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Validate(tt.text)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errtag.HasTag[errtag.Alphabet](err))
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAlphabet_Index(t *testing.T) {
	a, err := New("абвгде")
	require.NoError(t, err)

	i, ok := a.Index('в')
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 'в', a.Rune(2))

	_, ok = a.Index('я')
	assert.False(t, ok)
}
