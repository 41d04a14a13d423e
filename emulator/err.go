package emulator

import (
	"github.com/ezrec/tinker/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  uint64
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%08x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
