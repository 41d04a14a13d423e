package cpu

import (
	"encoding/binary"
	"errors"
)

const (
	DEFAULT_MEM_SIZE  = 512 * 1024 // Default memory size, in bytes.
	DEFAULT_LOAD_BASE = 4096       // Default program load address.

	WORD_SIZE = 8 // Width in bytes of a register load or store.
)

// Memory is a flat, zero-initialized, byte addressable store.
// All multi-byte accesses are little-endian and need not be aligned.
type Memory struct {
	data []byte
}

// NewMemory creates a zeroed memory of size bytes.
func NewMemory(size uint64) (mem *Memory) {
	mem = &Memory{
		data: make([]byte, size),
	}

	return
}

// Size returns the memory size in bytes.
func (mem *Memory) Size() uint64 {
	return uint64(len(mem.data))
}

// Reset zeros the memory.
func (mem *Memory) Reset() {
	clear(mem.data)
}

// Check verifies that width bytes starting at addr lie inside the memory.
func (mem *Memory) Check(addr uint64, width uint64) (err error) {
	size := mem.Size()
	if addr > size || width > size-addr {
		err = errors.Join(ErrBounds, ErrAddress{Addr: addr, Width: width})
	}
	return
}

// Uint32 reads the 32-bit word at addr.
func (mem *Memory) Uint32(addr uint64) (value uint32, err error) {
	err = mem.Check(addr, INSTRUCTION_SIZE)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(mem.data[addr:])
	return
}

// SetUint32 writes the 32-bit word at addr.
func (mem *Memory) SetUint32(addr uint64, value uint32) (err error) {
	err = mem.Check(addr, INSTRUCTION_SIZE)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(mem.data[addr:], value)
	return
}

// Uint64 reads the 64-bit word at addr.
func (mem *Memory) Uint64(addr uint64) (value uint64, err error) {
	err = mem.Check(addr, WORD_SIZE)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint64(mem.data[addr:])
	return
}

// SetUint64 writes the 64-bit word at addr.
func (mem *Memory) SetUint64(addr uint64, value uint64) (err error) {
	err = mem.Check(addr, WORD_SIZE)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint64(mem.data[addr:], value)
	return
}

// Effective computes base plus a signed displacement, failing if the
// result is negative or the access of width bytes leaves memory.
func (mem *Memory) Effective(base uint64, disp int64, width uint64) (addr uint64, err error) {
	signed := int64(base) + disp
	if signed < 0 {
		err = errors.Join(ErrBounds, ErrAddress{Addr: uint64(signed), Width: width})
		return
	}

	addr = uint64(signed)
	err = mem.Check(addr, width)
	return
}
