package errtag

// NotFound tags errors for a missing alphabet source.
type NotFound struct{ ErrorTag[codeNotFound] }

// Alphabet tags structural or content alphabet errors: an empty or duplicated
// alphabet, or a text/key character outside the alphabet.
type Alphabet struct{ ErrorTag[codeAlphabet] }

// CipherUsage tags misuse of a cipher itself, such as an empty Vigenère key.
type CipherUsage struct{ ErrorTag[codeCipherUsage] }

// Internal tags unexpected failures.
type Internal struct{ ErrorTag[codeInternal] }
