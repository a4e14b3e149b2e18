package valgoutil

import (
	"os"

	"github.com/cohesivestack/valgo"

	"github.com/AbaydullinAA/Project-Module2/log"
)

// LogLevelValidator passes when the value is a known log level name.
func LogLevelValidator(level string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(level, nameAndTitle...).Passing(func(level string) bool {
		_, ok := log.ParseLevel(level)
		return ok
	}, "must be one of 'debug', 'info', 'warn', 'error'")
}

// ReadableFileValidator passes when the value is a path to a readable
// regular file.
func ReadableFileValidator(path string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(path, nameAndTitle...).Passing(func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}, "must be a path to a readable file")
}

// ModeValidator passes when the value names a cipher mode.
func ModeValidator(mode string, nameAndTitle ...string) valgo.Validator {
	return valgo.String(mode, nameAndTitle...).Passing(func(mode string) bool {
		return mode == "encrypt" || mode == "decrypt"
	}, "must be 'encrypt' or 'decrypt'")
}
