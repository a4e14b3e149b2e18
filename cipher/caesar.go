package cipher

import (
	"strings"

	"github.com/AbaydullinAA/Project-Module2/alphabet"
)

var _ Cipher = (*Caesar)(nil)

// Caesar shifts every character a fixed number of positions along the
// alphabet. The key may be any integer, including negative or larger than
// the alphabet; the shift is normalized modulo the alphabet length.
type Caesar struct {
	alphabet *alphabet.Alphabet
	key      int
}

// NewCaesar creates a Caesar cipher with the given shift key.
func NewCaesar(a *alphabet.Alphabet, key int) *Caesar {
	return &Caesar{alphabet: a, key: key}
}

func (c *Caesar) Encrypt(text string) (string, error) {
	return c.shift(text, c.key)
}

func (c *Caesar) Decrypt(text string) (string, error) {
	return c.shift(text, -c.key)
}

func (c *Caesar) shift(text string, key int) (string, error) {
	if err := c.alphabet.Validate(text); err != nil {
		return "", err
	}

	n := c.alphabet.Len()
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if r == ' ' {
			b.WriteRune(' ')
			continue
		}
		idx, _ := c.alphabet.Index(r)
		b.WriteRune(c.alphabet.Rune(mod(idx+key, n)))
	}

	return b.String(), nil
}
