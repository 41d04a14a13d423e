package cpu

import (
	"errors"
	"log"
)

// handler executes one decoded instruction, returning the next program
// counter. A handler must not modify any state when it returns an error.
type handler func(cpu *Cpu, ins Instruction) (next_pc uint64, err error)

// _handlers is the dispatch table, indexed by opcode.
var _handlers = [OP_COUNT]handler{
	OP_AND: aluOp(func(a, b uint64) uint64 { return a & b }),
	OP_OR:  aluOp(func(a, b uint64) uint64 { return a | b }),
	OP_XOR: aluOp(func(a, b uint64) uint64 { return a ^ b }),
	OP_NOT: aluOp(func(a, _ uint64) uint64 { return ^a }),

	OP_SHFTR:  aluOp(func(a, b uint64) uint64 { return a >> b }),
	OP_SHFTRI: immOp(func(a, l uint64) uint64 { return a >> l }),
	OP_SHFTL:  aluOp(func(a, b uint64) uint64 { return a << b }),
	OP_SHFTLI: immOp(func(a, l uint64) uint64 { return a << l }),

	OP_BR:     (*Cpu).doBr,
	OP_BRR1:   (*Cpu).doBrr1,
	OP_BRR2:   (*Cpu).doBrr2,
	OP_BRNZ:   (*Cpu).doBrnz,
	OP_CALL:   (*Cpu).doCall,
	OP_RETURN: (*Cpu).doReturn,
	OP_BRGT:   (*Cpu).doBrgt,

	OP_PRIV: (*Cpu).doPriv,

	OP_MOV_LOAD:  (*Cpu).doMovLoad,
	OP_MOV_REG:   (*Cpu).doMovReg,
	OP_MOV_HIGH:  (*Cpu).doMovHigh,
	OP_MOV_STORE: (*Cpu).doMovStore,

	OP_ADDF: floatOp(func(a, b float64) float64 { return a + b }),
	OP_SUBF: floatOp(func(a, b float64) float64 { return a - b }),
	OP_MULF: floatOp(func(a, b float64) float64 { return a * b }),
	OP_DIVF: (*Cpu).doDivf,

	OP_ADD:  aluOp(func(a, b uint64) uint64 { return a + b }),
	OP_ADDI: immOp(func(a, l uint64) uint64 { return a + l }),
	OP_SUB:  aluOp(func(a, b uint64) uint64 { return a - b }),
	OP_SUBI: immOp(func(a, l uint64) uint64 { return a - l }),
	OP_MUL:  aluOp(func(a, b uint64) uint64 { return a * b }),
	OP_DIV:  (*Cpu).doDiv,
}

// nextPc is the address of the instruction after the current one.
func (cpu *Cpu) nextPc() uint64 {
	return cpu.Pc + INSTRUCTION_SIZE
}

// aluOp builds a handler for r1 = op(r2, r3).
func aluOp(op func(a, b uint64) uint64) handler {
	return func(cpu *Cpu, ins Instruction) (uint64, error) {
		cpu.Register[ins.R1] = op(cpu.Register[ins.R2], cpu.Register[ins.R3])
		return cpu.nextPc(), nil
	}
}

// immOp builds a handler for r1 = op(r1, L), with L the raw literal.
func immOp(op func(a, l uint64) uint64) handler {
	return func(cpu *Cpu, ins Instruction) (uint64, error) {
		cpu.Register[ins.R1] = op(cpu.Register[ins.R1], uint64(ins.Literal))
		return cpu.nextPc(), nil
	}
}

// floatOp builds a handler for r1 = op(r2, r3) on IEEE-754 doubles.
func floatOp(op func(a, b float64) float64) handler {
	return func(cpu *Cpu, ins Instruction) (uint64, error) {
		cpu.Register.SetFloat(ins.R1, op(cpu.Register.Float(ins.R2), cpu.Register.Float(ins.R3)))
		return cpu.nextPc(), nil
	}
}

func (cpu *Cpu) doBr(ins Instruction) (next_pc uint64, err error) {
	next_pc = cpu.Register[ins.R1]
	return
}

func (cpu *Cpu) doBrr1(ins Instruction) (next_pc uint64, err error) {
	next_pc = cpu.Pc + cpu.Register[ins.R1]
	return
}

func (cpu *Cpu) doBrr2(ins Instruction) (next_pc uint64, err error) {
	next_pc = cpu.Pc + uint64(ins.Displacement())
	return
}

func (cpu *Cpu) doBrnz(ins Instruction) (next_pc uint64, err error) {
	if cpu.Register[ins.R2] != 0 {
		next_pc = cpu.Register[ins.R1]
	} else {
		next_pc = cpu.nextPc()
	}
	return
}

// doBrgt branches on strictly greater, comparing unsigned.
func (cpu *Cpu) doBrgt(ins Instruction) (next_pc uint64, err error) {
	if cpu.Register[ins.R2] > cpu.Register[ins.R3] {
		next_pc = cpu.Register[ins.R1]
	} else {
		next_pc = cpu.nextPc()
	}
	return
}

func (cpu *Cpu) doCall(ins Instruction) (next_pc uint64, err error) {
	err = cpu.Stack.Push(cpu.Register[REG_SP], cpu.nextPc())
	if err != nil {
		return
	}

	next_pc = cpu.Register[ins.R1]
	return
}

func (cpu *Cpu) doReturn(ins Instruction) (next_pc uint64, err error) {
	next_pc, err = cpu.Stack.Peek(cpu.Register[REG_SP])
	return
}

func (cpu *Cpu) doPriv(ins Instruction) (next_pc uint64, err error) {
	next_pc = cpu.nextPc()

	op := PrivOp(ins.Literal)
	switch op {
	case PRIV_HALT:
		err = ErrHalt
	case PRIV_SUPERVISOR:
		cpu.setMode(MODE_SUPERVISOR)
	case PRIV_USER:
		cpu.setMode(MODE_USER)
	case PRIV_INPUT:
		if cpu.Register[ins.R2] != 0 {
			break
		}
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			err = errors.Join(ErrInput, err)
			return
		}
		var value uint64
		value, err = channel.Receive()
		if err != nil {
			err = errors.Join(ErrInput, err)
			return
		}
		cpu.Register[ins.R1] = value
	case PRIV_OUTPUT:
		if cpu.Register[ins.R1] == 0 {
			break
		}
		var channel Channel
		channel, err = cpu.GetChannel()
		if err == nil {
			err = channel.Send(cpu.Register[ins.R2])
		}
		if err != nil {
			err = errors.Join(ErrOutput, err)
			return
		}
	default:
		err = ErrPrivUnknown
	}

	return
}

func (cpu *Cpu) setMode(mode Mode) {
	if cpu.Verbose && cpu.Mode != mode {
		log.Printf("cpu: mode %v", mode)
	}
	cpu.Mode = mode
}

func (cpu *Cpu) doMovLoad(ins Instruction) (next_pc uint64, err error) {
	addr, err := cpu.Memory.Effective(cpu.Register[ins.R2], ins.Displacement(), WORD_SIZE)
	if err != nil {
		return
	}

	value, err := cpu.Memory.Uint64(addr)
	if err != nil {
		return
	}

	cpu.Register[ins.R1] = value
	next_pc = cpu.nextPc()
	return
}

func (cpu *Cpu) doMovReg(ins Instruction) (next_pc uint64, err error) {
	cpu.Register[ins.R1] = cpu.Register[ins.R2]
	next_pc = cpu.nextPc()
	return
}

// doMovHigh replaces the top 12 bits of r1 with the raw literal.
func (cpu *Cpu) doMovHigh(ins Instruction) (next_pc uint64, err error) {
	const shift = 64 - 12
	low := cpu.Register[ins.R1] & ((uint64(1) << shift) - 1)
	cpu.Register[ins.R1] = (uint64(ins.Literal) << shift) | low
	next_pc = cpu.nextPc()
	return
}

func (cpu *Cpu) doMovStore(ins Instruction) (next_pc uint64, err error) {
	addr, err := cpu.Memory.Effective(cpu.Register[ins.R1], ins.Displacement(), WORD_SIZE)
	if err != nil {
		return
	}

	err = cpu.Memory.SetUint64(addr, cpu.Register[ins.R2])
	if err != nil {
		return
	}

	next_pc = cpu.nextPc()
	return
}

func (cpu *Cpu) doDivf(ins Instruction) (next_pc uint64, err error) {
	divisor := cpu.Register.Float(ins.R3)
	if divisor == 0.0 {
		err = ErrDivideByZero
		return
	}

	cpu.Register.SetFloat(ins.R1, cpu.Register.Float(ins.R2)/divisor)
	next_pc = cpu.nextPc()
	return
}

// doDiv is signed, truncating division.
func (cpu *Cpu) doDiv(ins Instruction) (next_pc uint64, err error) {
	divisor := cpu.Register.Int(ins.R3)
	if divisor == 0 {
		err = ErrDivideByZero
		return
	}

	cpu.Register.SetInt(ins.R1, cpu.Register.Int(ins.R2)/divisor)
	next_pc = cpu.nextPc()
	return
}
