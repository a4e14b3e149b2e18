package cipher

import (
	"strings"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
	"github.com/AbaydullinAA/Project-Module2/errtag"
)

var _ Cipher = (*Vigenere)(nil)

// Vigenere varies the shift per character using a repeating key drawn from
// the alphabet. Spaces in the key are stripped before use; spaces in the
// text are copied through untranslated, but the position counter that
// selects the key character still advances past them.
type Vigenere struct {
	alphabet *alphabet.Alphabet
	key      []rune
}

// NewVigenere creates a Vigenère cipher with the given key. An empty key
// fails with an errtag.CipherUsage error before any validation; a key
// character outside the alphabet fails with an errtag.Alphabet error.
func NewVigenere(a *alphabet.Alphabet, key string) (*Vigenere, error) {
	if key == "" {
		return nil, errtag.NewTagged[errtag.CipherUsage]("key must not be empty")
	}
	if err := a.Validate(key); err != nil {
		return nil, err
	}

	stripped := []rune(strings.ReplaceAll(key, " ", ""))
	if len(stripped) == 0 {
		return nil, errtag.NewTagged[errtag.CipherUsage]("key must contain at least one alphabet character")
	}

	return &Vigenere{alphabet: a, key: stripped}, nil
}

func (v *Vigenere) Encrypt(text string) (string, error) {
	return v.shift(text, 1)
}

func (v *Vigenere) Decrypt(text string) (string, error) {
	return v.shift(text, -1)
}

func (v *Vigenere) shift(text string, sign int) (string, error) {
	if err := v.alphabet.Validate(text); err != nil {
		return "", err
	}

	n := v.alphabet.Len()
	var b strings.Builder
	b.Grow(len(text))

	for i, r := range []rune(text) {
		if r == ' ' {
			b.WriteRune(' ')
			continue
		}
		textIdx, _ := v.alphabet.Index(r)
		keyIdx, _ := v.alphabet.Index(v.key[i%len(v.key)])
		b.WriteRune(v.alphabet.Rune(mod(textIdx+sign*keyIdx, n)))
	}

	return b.String(), nil
}
