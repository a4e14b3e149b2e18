package testutil

import (
	mrand "math/rand"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
)

// RandText returns a random string of n characters drawn from the alphabet,
// with roughly one in six characters replaced by a space. Useful for cipher
// round-trip tests.
func RandText(a *alphabet.Alphabet, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		if mrand.Intn(6) == 0 {
			runes[i] = ' '
			continue
		}
		runes[i] = a.Rune(mrand.Intn(a.Len()))
	}
	return string(runes)
}

// RandKey returns a random non-empty key of n characters drawn from the
// alphabet, with no spaces.
func RandKey(a *alphabet.Alphabet, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = a.Rune(mrand.Intn(a.Len()))
	}
	return string(runes)
}

// RandString returns a random alphanumeric ASCII string of the given length.
func RandString(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[mrand.Intn(len(charset))]
	}
	return string(b)
}
