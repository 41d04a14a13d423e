package cpu

import (
	"errors"

	"github.com/ezrec/tinker/translate"
)

var f = translate.From

var (
	// Execution control
	ErrHalt = errors.New(f("halt"))

	// Cpu errors
	ErrBounds         = errors.New(f("out of bounds"))
	ErrPcBounds       = errors.New(f("pc out of bounds"))
	ErrStack          = errors.New(f("stack slot below load base"))
	ErrDivideByZero   = errors.New(f("divide by zero"))
	ErrPrivUnknown    = errors.New(f("priv operation unknown"))
	ErrInput          = errors.New(f("input"))
	ErrOutput         = errors.New(f("output"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Instruction decode errors
	ErrOpcodeDecode = errors.New(f("decode"))

	// Program image errors
	ErrProgramSize      = errors.New(f("program too large"))
	ErrProgramAlignment = errors.New(f("program not a whole number of words"))
)

// ErrAddress is the location of a memory access that failed a bounds check.
type ErrAddress struct {
	Addr  uint64
	Width uint64
}

func (ea ErrAddress) Error() string {
	return f("address 0x%x width %d", ea.Addr, ea.Width)
}

// ErrOpcode is the instruction word that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%08x %v", uint32(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
