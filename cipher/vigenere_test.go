package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbaydullinAA/Project-Module2/errtag"
	"github.com/AbaydullinAA/Project-Module2/testutil"
)

func TestNewVigenere(t *testing.T) {
	a := testutil.MustAlphabet(t, "abcdef")

	tests := []struct {
		name      string
		key       string
		wantUsage bool
		wantAlpha bool
	}{
		{
			name: "valid key",
			key:  "bad",
		},
		{
			name: "key with spaces",
			key:  "b a d",
		},
		{
			name:      "empty key",
			key:       "",
			wantUsage: true,
		},
		{
			name:      "key of only spaces",
			key:       "   ",
			wantUsage: true,
		},
		{
			name:      "key outside alphabet",
			key:       "xyz",
			wantAlpha: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewVigenere(a, tt.key)
			switch {
			case tt.wantUsage:
				assert.True(t, errtag.HasTag[errtag.CipherUsage](err))
				assert.Nil(t, got)
			case tt.wantAlpha:
				assert.True(t, errtag.HasTag[errtag.Alphabet](err))
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.NotNil(t, got)
			}
		})
	}
}

func TestVigenere_Encrypt(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		key      string
		text     string
		want     string
	}{
		{
			// Spaces copy through but the position counter that selects the
			// key character still advances past them.
			name:     "key index advances over spaces",
			alphabet: "abcdef",
			key:      "ba",
			text:     "ab cd",
			want:     "bb ce",
		},
		{
			name:     "single character key behaves like caesar",
			alphabet: "abcdef",
			key:      "b",
			text:     "ace",
			want:     "bdf",
		},
		{
			name:     "spaces stripped from key",
			alphabet: "abcdef",
			key:      "b a",
			text:     "ab cd",
			want:     "bb ce",
		},
		{
			name:     "cyrillic alphabet",
			alphabet: "абвгде",
			key:      "б",
			text:     "абв",
			want:     "бвг",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVigenere(testutil.MustAlphabet(t, tt.alphabet), tt.key)
			require.NoError(t, err)

			got, err := v.Encrypt(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := v.Decrypt(got)
			require.NoError(t, err)
			assert.Equal(t, tt.text, back)
		})
	}
}

func TestVigenere_TextOutsideAlphabet(t *testing.T) {
	v, err := NewVigenere(testutil.MustAlphabet(t, "абвгде"), "аб")
	require.NoError(t, err)

	_, err = v.Encrypt("привет")
	require.Error(t, err)
	assert.True(t, errtag.HasTag[errtag.Alphabet](err))
}

func TestVigenere_RoundTrip(t *testing.T) {
	a := testutil.MustAlphabet(t, "abcdefghij")

	for i := 0; i < 50; i++ {
		v, err := NewVigenere(a, testutil.RandKey(a, 1+i%7))
		require.NoError(t, err)

		text := testutil.RandText(a, 40)

		enc, err := v.Encrypt(text)
		require.NoError(t, err)
		dec, err := v.Decrypt(enc)
		require.NoError(t, err)

		assert.Equal(t, text, dec, "text=%q", text)
	}
}
