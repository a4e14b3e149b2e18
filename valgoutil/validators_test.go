package valgoutil

import (
	"testing"

	"github.com/cohesivestack/valgo"
	"github.com/stretchr/testify/assert"

	"github.com/AbaydullinAA/Project-Module2/testutil"
)

func TestLogLevelValidator(t *testing.T) {
	assert.NoError(t, valgo.Is(LogLevelValidator("debug", "level")).ToError())
	assert.Error(t, valgo.Is(LogLevelValidator("verbose", "level")).ToError())
}

func TestReadableFileValidator(t *testing.T) {
	path := testutil.TempAlphabetFile(t, "abc")
	assert.NoError(t, valgo.Is(ReadableFileValidator(path, "alphabet")).ToError())
	assert.Error(t, valgo.Is(ReadableFileValidator(path+".missing", "alphabet")).ToError())
	assert.Error(t, valgo.Is(ReadableFileValidator(t.TempDir(), "alphabet")).ToError())
}

func TestModeValidator(t *testing.T) {
	assert.NoError(t, valgo.Is(ModeValidator("encrypt", "mode")).ToError())
	assert.NoError(t, valgo.Is(ModeValidator("decrypt", "mode")).ToError())
	assert.Error(t, valgo.Is(ModeValidator("both", "mode")).ToError())
}

func TestGetDetails(t *testing.T) {
	v := valgo.Is(valgo.String("", "name").Not().Blank())
	verr, ok := v.ToError().(*valgo.Error)
	assert.True(t, ok)

	details := GetDetails(verr)
	assert.Len(t, details, 1)
	assert.Contains(t, details[0], "name")

	assert.Empty(t, GetDetails(nil))
}
