// Package cipher implements classical substitution ciphers over a
// user-supplied alphabet. These are teaching ciphers, not secure encryption.
package cipher

// Mode selects the direction of a cipher transformation.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return "unknown"
}

func ParseMode(mode string) (Mode, bool) {
	switch mode {
	case "encrypt":
		return Encrypt, true
	case "decrypt":
		return Decrypt, true
	}
	return -1, false
}

// Cipher defines a reversible text transformation over a fixed alphabet.
// Implementations validate their input against the alphabet and either fully
// succeed or produce no output.
type Cipher interface {
	// Encrypt returns the enciphered text.
	Encrypt(text string) (string, error)
	// Decrypt returns the deciphered text.
	Decrypt(text string) (string, error)
}

// Apply runs c in the given mode.
func Apply(c Cipher, mode Mode, text string) (string, error) {
	if mode == Decrypt {
		return c.Decrypt(text)
	}
	return c.Encrypt(text)
}

// mod returns the non-negative remainder of a modulo n, always in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
