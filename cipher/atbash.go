package cipher

import (
	"strings"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
)

var _ Cipher = (*Atbash)(nil)

// Atbash mirrors the alphabet: the first character maps to the last, the
// second to the second-to-last, and so on. The transformation is its own
// inverse, so Encrypt and Decrypt are identical.
type Atbash struct {
	alphabet *alphabet.Alphabet
}

// NewAtbash creates an Atbash cipher. It takes no key.
func NewAtbash(a *alphabet.Alphabet) *Atbash {
	return &Atbash{alphabet: a}
}

func (at *Atbash) Encrypt(text string) (string, error) {
	return at.mirror(text)
}

func (at *Atbash) Decrypt(text string) (string, error) {
	return at.mirror(text)
}

func (at *Atbash) mirror(text string) (string, error) {
	if err := at.alphabet.Validate(text); err != nil {
		return "", err
	}

	n := at.alphabet.Len()
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == ' ' {
			b.WriteRune(' ')
			continue
		}
		idx, _ := at.alphabet.Index(r)
		b.WriteRune(at.alphabet.Rune(n - 1 - idx))
	}

	return b.String(), nil
}
