package emulator

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinker/config"
	"github.com/ezrec/tinker/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(config.Default(), emu.Config())
}

func doRun(emu *Emulator, program []cpu.Code, input string, t *testing.T) (output string, err error) {
	assert := assert.New(t)

	emu.Program = &cpu.Program{Codes: program}
	emu.Tape.Input = strings.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()

	output = tape_output.String()
	return
}

func TestEmulatorAdd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []cpu.Code{
		cpu.MakeCode(cpu.OP_ADDI, 0, 0, 0, 5),
		cpu.MakeCode(cpu.OP_ADDI, 1, 1, 0, 7),
		cpu.MakeCode(cpu.OP_ADD, 2, 0, 1, 0),
		cpu.MakeCode(cpu.OP_PRIV, 2, 2, 0, uint16(cpu.PRIV_OUTPUT)),
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),
	}

	output, err := doRun(emu, program, "", t)
	assert.NoError(err)
	assert.Equal("12", output)
	assert.Equal(4, emu.Ticks())
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []cpu.Code{
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),
	}

	emu.Program = &cpu.Program{Codes: program}
	assert.NoError(emu.Reset())
	assert.Equal(program[0], emu.Code())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(0, emu.Ticks())
	assert.Equal(uint64(cpu.DEFAULT_LOAD_BASE), emu.Pc())
}

func TestEmulatorDivfZero(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []cpu.Code{
		cpu.MakeCode(cpu.OP_DIVF, 0, 1, 2, 0),
		cpu.MakeCode(cpu.OP_PRIV, 1, 1, 0, uint16(cpu.PRIV_OUTPUT)),
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),
	}

	output, err := doRun(emu, program, "", t)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.Empty(output)
	assert.Equal(0, emu.Ticks())

	var rerr *ErrRuntime
	assert.ErrorAs(err, &rerr)
	assert.Equal(uint64(cpu.DEFAULT_LOAD_BASE), rerr.Pc)
}

func TestEmulatorRunOff(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Configure(config.Config{MemSize: 64, LoadBase: 32})
	assert.NoError(err)

	// No halt: zeroed memory executes as no-ops until the pc leaves memory.
	output, err := doRun(emu, []cpu.Code{cpu.MakeCode(cpu.OP_ADDI, 1, 0, 0, 1)}, "", t)
	assert.ErrorIs(err, cpu.ErrPcBounds)
	assert.Empty(output)
	assert.Equal(8, emu.Ticks())
	assert.Equal(uint64(1), emu.Cpu.Register[1])
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	// Sum input words until a zero is read, then print the total.
	program := []cpu.Code{
		cpu.MakeCode(cpu.OP_ADDI, 5, 0, 0, 1),                       // 1000: r5 = 1
		cpu.MakeCode(cpu.OP_PRIV, 1, 0, 0, uint16(cpu.PRIV_INPUT)),  // 1004: r1 = input
		cpu.MakeCode(cpu.OP_ADD, 2, 2, 1, 0),                        // 1008: r2 += r1
		cpu.MakeCode(cpu.OP_BRNZ, 3, 1, 0, 0),                       // 100c: if r1 goto r3
		cpu.MakeCode(cpu.OP_PRIV, 5, 2, 0, uint16(cpu.PRIV_OUTPUT)), // 1010: output r2
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),   // 1014: halt
	}

	emu.Program = &cpu.Program{Codes: program}
	emu.Tape.Input = strings.NewReader("3\n4\n5\n0\n")
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output
	assert.NoError(emu.Reset())
	emu.Cpu.Register[3] = cpu.DEFAULT_LOAD_BASE + 4

	assert.NoError(emu.Run())
	assert.Equal("12", tape_output.String())
}

func TestEmulatorCall(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	// Subroutine at 0x1100 doubles r1.
	program := make([]cpu.Code, 0x44)
	copy(program, []cpu.Code{
		cpu.MakeCode(cpu.OP_ADDI, 1, 0, 0, 21),                      // r1 = 21
		cpu.MakeCode(cpu.OP_ADDI, 4, 0, 0, 0x100),                   // r4 = 0x100
		cpu.MakeCode(cpu.OP_SHFTLI, 4, 0, 0, 4),                     // r4 = 0x1000
		cpu.MakeCode(cpu.OP_ADDI, 4, 0, 0, 0x100),                   // r4 = 0x1100
		cpu.MakeCode(cpu.OP_CALL, 4, 0, 0, 0),                       // call r4
		cpu.MakeCode(cpu.OP_PRIV, 1, 1, 0, uint16(cpu.PRIV_OUTPUT)), // output r1
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),   // halt
	})
	program[0x40] = cpu.MakeCode(cpu.OP_ADD, 1, 1, 1, 0)
	program[0x41] = cpu.MakeCode(cpu.OP_RETURN, 0, 0, 0, 0)

	output, err := doRun(emu, program, "", t)
	assert.NoError(err)
	assert.Equal("42", output)
}

func TestEmulatorFloat(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []cpu.Code{
		cpu.MakeCode(cpu.OP_MOV_STORE, 3, 1, 0, 0),
		cpu.MakeCode(cpu.OP_MOV_LOAD, 4, 3, 0, 0),
		cpu.MakeCode(cpu.OP_MULF, 5, 4, 2, 0),
		cpu.MakeCode(cpu.OP_PRIV, 0, 0, 0, uint16(cpu.PRIV_HALT)),
	}

	emu.Program = &cpu.Program{Codes: program}
	assert.NoError(emu.Reset())
	emu.Cpu.Register.SetFloat(1, 2.5)
	emu.Cpu.Register.SetFloat(2, 4)
	emu.Cpu.Register[3] = 0x2000

	assert.NoError(emu.Run())
	assert.Equal(math.Float64bits(2.5), emu.Cpu.Register[4])
	assert.Equal(10.0, emu.Cpu.Register.Float(5))
}

func TestEmulatorProgramSize(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	assert.NoError(emu.Configure(config.Config{MemSize: 64, LoadBase: 32}))

	emu.Program = &cpu.Program{Codes: make([]cpu.Code, 9)}
	assert.ErrorIs(emu.Reset(), cpu.ErrProgramSize)

	emu.Program = &cpu.Program{Codes: make([]cpu.Code, 8)}
	assert.NoError(emu.Reset())
}

func TestEmulatorConfigure(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Configure(config.Config{MemSize: 64, LoadBase: 30})
	assert.ErrorIs(err, config.ErrConfigAlignment)

	assert.NoError(emu.Configure(config.Config{MemSize: 4096, LoadBase: 1024, Verbose: true}))
	assert.True(emu.Verbose)
	assert.Equal(uint64(4096), emu.Cpu.Register[cpu.REG_SP])
	assert.Equal(uint64(1024), emu.Pc())

	defs := map[string]string{}
	for key, value := range emu.Defines() {
		defs[key] = value
	}
	assert.Equal("4096", defs["MEM_SIZE"])
	assert.Equal("1024", defs["LOAD_BASE"])
	assert.Equal("524288", defs["DEFAULT_MEM_SIZE"])
}
