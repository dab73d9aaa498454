package errors_test

import (
	"testing"

	"github.com/indigoparadox/NTSC-CRT/errors"
)

func TestError(t *testing.T) {
	e := errors.New(errors.InvalidOutputDimensions, 0, -4)
	if e.Error() != "invalid output dimensions (0x-4)" {
		t.Errorf("unexpected error message: %s", e.Error())
	}

	e = errors.New(errors.InvalidPixFormat, 99)
	if e.Error() != "unrecognised pixel format (99)" {
		t.Errorf("unexpected error message: %s", e.Error())
	}
}
