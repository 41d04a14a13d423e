package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tinker/io"
)

// Channel is the console channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"INSTRUCTION_SIZE": fmt.Sprintf("%d", INSTRUCTION_SIZE),
	"WORD_SIZE":        fmt.Sprintf("%d", WORD_SIZE),
	"STACK_SLOT":       fmt.Sprintf("%d", STACK_SLOT),
	"REGISTER_COUNT":   fmt.Sprintf("%d", REGISTER_COUNT),
	"REG_SP":           fmt.Sprintf("%d", REG_SP),
	"PRIV_HALT":        fmt.Sprintf("%d", PRIV_HALT),
	"PRIV_SUPERVISOR":  fmt.Sprintf("%d", PRIV_SUPERVISOR),
	"PRIV_USER":        fmt.Sprintf("%d", PRIV_USER),
	"PRIV_INPUT":       fmt.Sprintf("%d", PRIV_INPUT),
	"PRIV_OUTPUT":      fmt.Sprintf("%d", PRIV_OUTPUT),
}

// Cpu is the simulation context for the processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint64       // Program counter.
	Register RegisterFile // Register bank.
	Memory   *Memory      // Main memory.
	Stack    Stack        // Call/return slot below the stack pointer.
	Mode     Mode         // Privilege mode.
	LoadBase uint64       // Program load address.

	Ticks int // Retired instruction counter.

	channel Channel // Console.
}

// NewCpu creates a new CPU with size bytes of memory, loading programs at
// loadBase.
func NewCpu(size uint64, loadBase uint64) (cpu *Cpu) {
	mem := NewMemory(size)

	cpu = &Cpu{
		Memory:   mem,
		LoadBase: loadBase,
		Stack:    Stack{Memory: mem, Base: loadBase},
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	defs := maps.Clone(_cpu_defines)
	defs["MEM_SIZE"] = fmt.Sprintf("%d", cpu.Memory.Size())
	defs["LOAD_BASE"] = fmt.Sprintf("%d", cpu.LoadBase)
	return maps.All(defs)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %08x\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "mode", cpu.Mode)
	for n, val := range cpu.Register {
		reg := fmt.Sprintf("r%d", n)
		text += fmt.Sprintf("% 5s: %08X_%08X\n", reg, val>>32, val&0xffffffff)
	}

	return
}

// Reset the CPU state.
// - Zeros memory, registers and the tick counter.
// - Points the stack pointer at the top of memory.
// - Returns to user mode with the PC at the load base.
// - Rewinds the console channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = cpu.Memory.Size()
	cpu.Pc = cpu.LoadBase
	cpu.Mode = MODE_USER
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// Load copies the program image into memory at the load base.
func (cpu *Cpu) Load(prog *Program) (err error) {
	size := cpu.Memory.Size()
	if cpu.LoadBase > size || prog.Size() > size-cpu.LoadBase {
		err = ErrProgramSize
		return
	}

	for offset, code := range prog.All() {
		err = cpu.Memory.SetUint32(cpu.LoadBase+offset, uint32(code))
		if err != nil {
			return
		}
	}

	return
}

// SetChannel sets the console channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the console channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// FetchCode fetches the instruction word at the program counter.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	word, err := cpu.Memory.Uint32(cpu.Pc)
	if err != nil {
		err = errors.Join(ErrPcBounds, err)
		return
	}

	code = Code(word)
	return
}

// Tick executes a single CPU instruction cycle.
// ErrHalt is returned when the program requests a halt.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	return cpu.Execute(code)
}

// Execute executes a single instruction word at the current program counter.
// On failure the program counter and registers are left unchanged.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && !errors.Is(err, ErrHalt) {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	ins := code.Decode()

	if cpu.Verbose {
		log.Printf("cpu: %08x: %v", cpu.Pc, ins)
	}

	if int(ins.Op) >= len(_handlers) {
		err = ErrOpcodeDecode
		return
	}

	next_pc, err := _handlers[ins.Op](cpu, ins)
	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
