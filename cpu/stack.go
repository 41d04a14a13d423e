package cpu

import (
	"errors"
)

const (
	STACK_SLOT = 8 // Offset below the stack pointer of the return address slot.
)

// Stack is the memory-resident return address slot used by call and return.
// The slot lives STACK_SLOT bytes below the stack pointer and must not dip
// under the program load base.
type Stack struct {
	Memory *Memory
	Base   uint64 // Lowest address the slot may occupy.
}

// Slot returns the address of the return address slot for stack pointer sp.
func (s *Stack) Slot(sp uint64) (addr uint64, err error) {
	if sp < STACK_SLOT || sp-STACK_SLOT < s.Base {
		err = errors.Join(ErrStack, ErrAddress{Addr: sp - STACK_SLOT, Width: WORD_SIZE})
		return
	}

	addr = sp - STACK_SLOT
	err = s.Memory.Check(addr, WORD_SIZE)
	if err != nil {
		err = errors.Join(ErrStack, err)
	}
	return
}

// Push stores a return address in the slot for sp.
func (s *Stack) Push(sp uint64, value uint64) (err error) {
	addr, err := s.Slot(sp)
	if err != nil {
		return
	}

	return s.Memory.SetUint64(addr, value)
}

// Peek reads the return address in the slot for sp.
func (s *Stack) Peek(sp uint64) (value uint64, err error) {
	addr, err := s.Slot(sp)
	if err != nil {
		return
	}

	return s.Memory.Uint64(addr)
}
