// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tinker/config"
	"github.com/ezrec/tinker/cpu"
	"github.com/ezrec/tinker/internal"
	"github.com/ezrec/tinker/io"
)

var _emulator_defines = map[string]string{
	"MEM_SIZE_LIMIT":    fmt.Sprintf("%d", config.MEM_SIZE_LIMIT),
	"DEFAULT_MEM_SIZE":  fmt.Sprintf("%d", cpu.DEFAULT_MEM_SIZE),
	"DEFAULT_LOAD_BASE": fmt.Sprintf("%d", cpu.DEFAULT_LOAD_BASE),
}

// Emulator state. CPU + program image + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the program image.

	Tape io.Tape // Console IO channel.
}

// NewEmulator creates a new emulator with the default configuration.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	err := emu.Configure(config.Default())
	if err != nil {
		panic(err)
	}

	return
}

// Configure replaces the CPU with one built for cfg.
func (emu *Emulator) Configure(cfg config.Config) (err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	emu.Cpu = cpu.NewCpu(cfg.MemSize, cfg.LoadBase)
	emu.Cpu.SetChannel(&emu.Tape)
	emu.Verbose = cfg.Verbose

	return
}

// Config returns the configuration of the current CPU.
func (emu *Emulator) Config() config.Config {
	return config.Config{
		MemSize:  emu.Cpu.Memory.Size(),
		LoadBase: emu.Cpu.LoadBase,
		Verbose:  emu.Verbose,
	}
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU, and load the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d words", len(emu.Program.Codes))
	}

	return
}

// Ticks returns the total instructions retired since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() uint64 {
	return emu.Cpu.Pc
}

// Code returns the instruction word at the program counter, if any.
func (emu *Emulator) Code() cpu.Code {
	code, err := emu.Cpu.FetchCode()
	if err != nil {
		return cpu.Code(0)
	}

	return code
}

// Tick performs a single tick of the emulator. done is set once the
// program halts.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
