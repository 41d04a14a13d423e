package cpu

import (
	"encoding/binary"
	"io"
	"iter"
)

// Program is a program image: a sequence of instruction words.
type Program struct {
	Codes []Code
}

// ReadProgram reads a program image of little-endian 32-bit words.
func ReadProgram(r io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	if len(data)%INSTRUCTION_SIZE != 0 {
		err = ErrProgramAlignment
		return
	}

	prog = &Program{
		Codes: make([]Code, 0, len(data)/INSTRUCTION_SIZE),
	}
	for n := 0; n < len(data); n += INSTRUCTION_SIZE {
		prog.Codes = append(prog.Codes, Code(binary.LittleEndian.Uint32(data[n:])))
	}

	return
}

// Size returns the program image size in bytes.
func (prog *Program) Size() uint64 {
	return uint64(len(prog.Codes)) * INSTRUCTION_SIZE
}

// Binary returns the program image bytes.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, prog.Size())
	for _, code := range prog.Codes {
		bins = binary.LittleEndian.AppendUint32(bins, uint32(code))
	}

	return
}

// All yields each instruction word with its byte offset in the image.
func (prog *Program) All() iter.Seq2[uint64, Code] {
	return func(yield func(offset uint64, code Code) bool) {
		for n, code := range prog.Codes {
			if !yield(uint64(n)*INSTRUCTION_SIZE, code) {
				return
			}
		}
	}
}
