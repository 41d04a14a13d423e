package cpu

import (
	"fmt"
)

const (
	INSTRUCTION_SIZE = 4 // Width in bytes of an instruction word.

	LITERAL_MASK = 0xfff  // Mask of the 12-bit literal field.
	LITERAL_SIGN = 0x800  // Sign bit of the literal field.
	LITERAL_SPAN = 0x1000 // Number of distinct literal values.
)

// Opcode is an instruction operation code.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_AND       = Opcode(0)  // and
	OP_OR        = Opcode(1)  // or
	OP_XOR       = Opcode(2)  // xor
	OP_NOT       = Opcode(3)  // not
	OP_SHFTR     = Opcode(4)  // shftr
	OP_SHFTRI    = Opcode(5)  // shftri
	OP_SHFTL     = Opcode(6)  // shftl
	OP_SHFTLI    = Opcode(7)  // shftli
	OP_BR        = Opcode(8)  // br
	OP_BRR1      = Opcode(9)  // brr1
	OP_BRR2      = Opcode(10) // brr2
	OP_BRNZ      = Opcode(11) // brnz
	OP_CALL      = Opcode(12) // call
	OP_RETURN    = Opcode(13) // return
	OP_BRGT      = Opcode(14) // brgt
	OP_PRIV      = Opcode(15) // priv
	OP_MOV_LOAD  = Opcode(16) // mov.load
	OP_MOV_REG   = Opcode(17) // mov.reg
	OP_MOV_HIGH  = Opcode(18) // mov.high
	OP_MOV_STORE = Opcode(19) // mov.store
	OP_ADDF      = Opcode(20) // addf
	OP_SUBF      = Opcode(21) // subf
	OP_MULF      = Opcode(22) // mulf
	OP_DIVF      = Opcode(23) // divf
	OP_ADD       = Opcode(24) // add
	OP_ADDI      = Opcode(25) // addi
	OP_SUB       = Opcode(26) // sub
	OP_SUBI      = Opcode(27) // subi
	OP_MUL       = Opcode(28) // mul
	OP_DIV       = Opcode(29) // div
)

// OP_COUNT is the number of defined opcodes.
const OP_COUNT = 30

// Transfers returns true if the opcode may replace the program counter
// instead of advancing it by one instruction.
func (op Opcode) Transfers() bool {
	switch op {
	case OP_BR, OP_BRR1, OP_BRR2, OP_BRNZ, OP_BRGT, OP_CALL, OP_RETURN:
		return true
	}
	return false
}

// PrivOp selects the action of the priv opcode, from its literal.
type PrivOp int

//go:generate go tool stringer -linecomment -type=PrivOp
const (
	PRIV_HALT       = PrivOp(0) // halt
	PRIV_SUPERVISOR = PrivOp(1) // supervisor
	PRIV_USER       = PrivOp(2) // user
	PRIV_INPUT      = PrivOp(3) // input
	PRIV_OUTPUT     = PrivOp(4) // output
)

// Code is a single encoded instruction word.
type Code uint32

// Instruction is a decoded instruction word.
type Instruction struct {
	Op      Opcode
	R1      int
	R2      int
	R3      int
	Literal uint16 // Raw 12-bit literal.
}

// MakeCode encodes an instruction word.
// Register indices are taken modulo 32, and the literal modulo 4096.
func MakeCode(op Opcode, r1, r2, r3 int, literal uint16) Code {
	return Code((uint32(op)&0x1f)<<27 |
		(uint32(r1)&0x1f)<<22 |
		(uint32(r2)&0x1f)<<17 |
		(uint32(r3)&0x1f)<<12 |
		uint32(literal)&LITERAL_MASK)
}

// Code re-encodes the decoded instruction.
func (ins Instruction) Code() Code {
	return MakeCode(ins.Op, ins.R1, ins.R2, ins.R3, ins.Literal)
}

// Opcode returns the operation code of the instruction word.
func (code Code) Opcode() Opcode {
	return Opcode((uint32(code) >> 27) & 0x1f)
}

// Decode splits the instruction word into its fields. Decoding never fails;
// opcodes past OP_COUNT are rejected at dispatch.
func (code Code) Decode() (ins Instruction) {
	word := uint32(code)
	ins.Op = Opcode((word >> 27) & 0x1f)
	ins.R1 = int((word >> 22) & 0x1f)
	ins.R2 = int((word >> 17) & 0x1f)
	ins.R3 = int((word >> 12) & 0x1f)
	ins.Literal = uint16(word & LITERAL_MASK)
	return
}

// SignExtend sign-extends a 12-bit literal from bit 11.
func SignExtend(literal uint16) int64 {
	value := int64(literal & LITERAL_MASK)
	if (value & LITERAL_SIGN) != 0 {
		value -= LITERAL_SPAN
	}
	return value
}

// Displacement returns the literal sign-extended to 64 bits.
func (ins Instruction) Displacement() int64 {
	return SignExtend(ins.Literal)
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%v r%d, r%d, r%d, 0x%03x", ins.Op, ins.R1, ins.R2, ins.R3, ins.Literal)
}

// String returns the assembly language representation of this instruction word.
func (code Code) String() string {
	return code.Decode().String()
}
