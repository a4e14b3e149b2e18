package alphabet

import (
	"os"
	"strings"

	"github.com/AbaydullinAA/Project-Module2/errtag"
)

// Alphabet is an ordered, duplicate-free set of characters. A character's
// position in the sequence is its cipher index. Immutable once constructed
// and safe to share across any number of sequential cipher invocations.
type Alphabet struct {
	runes   []rune
	indexes map[rune]int
}

// New builds an Alphabet from the given characters, preserving their order.
// It fails with an errtag.Alphabet error if s is empty or contains a
// repeated character.
func New(s string) (*Alphabet, error) {
	if s == "" {
		return nil, errtag.NewTagged[errtag.Alphabet]("alphabet must not be empty")
	}

	runes := []rune(s)
	indexes := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := indexes[r]; ok {
			return nil, errtag.NewTaggedf[errtag.Alphabet]("alphabet contains duplicate character %q", r)
		}
		indexes[r] = i
	}

	return &Alphabet{runes: runes, indexes: indexes}, nil
}

// Load reads an alphabet from a plain text file. The whole content is read
// as UTF-8 and surrounding whitespace (including the trailing newline) is
// stripped before validation. A missing or unreadable file fails with an
// errtag.NotFound error; malformed content fails as in New.
func Load(path string) (*Alphabet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errtag.Tag[errtag.NotFound](err,
			errtag.WithMsgf("alphabet file %q not found", path))
	}
	return New(strings.TrimSpace(string(content)))
}

// Validate checks that every character of text is either a space or a member
// of the alphabet. It fails fast on the first offending character with an
// errtag.Alphabet error naming it. Validate has no side effects and may be
// called independently for pre-validation.
func (a *Alphabet) Validate(text string) error {
	for _, r := range text {
		if r == ' ' {
			continue
		}
		if _, ok := a.indexes[r]; !ok {
			return errtag.NewTaggedf[errtag.Alphabet]("character %q not found in alphabet", r)
		}
	}
	return nil
}

// Index returns the position of r in the alphabet, or false if r is not a
// member. Lookup is constant time.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.indexes[r]
	return i, ok
}

// Rune returns the character at position i.
func (a *Alphabet) Rune(i int) rune {
	return a.runes[i]
}

// Len returns the number of characters in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.runes)
}

// String returns the alphabet's characters in order.
func (a *Alphabet) String() string {
	return string(a.runes)
}
