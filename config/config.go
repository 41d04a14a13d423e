// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config evaluates Starlark configuration files for the emulator.
//
// A configuration file is a Starlark script. Every emulator define is
// predeclared as an upper case integer, and the script sets the lower case
// globals mem_size, load_base and verbose, for example:
//
//	mem_size = 2 * MEM_SIZE
//	load_base = 2 * INSTRUCTION_SIZE * 1024
//	verbose = True
package config

import (
	"errors"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tinker/cpu"
	"github.com/ezrec/tinker/translate"
)

var f = translate.From

const (
	MEM_SIZE_LIMIT  = 1 << 30              // Largest configurable memory, in bytes.
	MEM_SIZE_ALIGN  = cpu.WORD_SIZE        // Memory size granularity.
	LOAD_BASE_ALIGN = cpu.INSTRUCTION_SIZE // Load base granularity.
)

var (
	ErrConfigAlignment = errors.New(f("misaligned"))
	ErrConfigRange     = errors.New(f("out of range"))
)

// ErrConfigType is a known global assigned a value of the wrong type.
type ErrConfigType string

func (err ErrConfigType) Error() string {
	return f("%v has the wrong type", string(err))
}

// ErrConfig indicates which setting failed.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config is the emulator configuration.
type Config struct {
	MemSize  uint64 // Memory size, in bytes.
	LoadBase uint64 // Program load address.
	Verbose  bool   // Per-instruction trace.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MemSize:  cpu.DEFAULT_MEM_SIZE,
		LoadBase: cpu.DEFAULT_LOAD_BASE,
	}
}

// Validate checks the configuration for consistency.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.MemSize == 0 || cfg.MemSize > MEM_SIZE_LIMIT:
		err = &ErrConfig{Name: "mem_size", Err: ErrConfigRange}
	case cfg.MemSize%MEM_SIZE_ALIGN != 0:
		err = &ErrConfig{Name: "mem_size", Err: ErrConfigAlignment}
	case cfg.LoadBase%LOAD_BASE_ALIGN != 0:
		err = &ErrConfig{Name: "load_base", Err: ErrConfigAlignment}
	case cfg.LoadBase >= cfg.MemSize:
		err = &ErrConfig{Name: "load_base", Err: ErrConfigRange}
	}

	return
}

// Parse evaluates the Starlark script src, named name, starting from cfg.
// Integer valued defines are predeclared for the script; others are
// ignored.
func Parse(cfg Config, name string, src any, defines iter.Seq2[string, string]) (out Config, err error) {
	out = cfg

	thread := starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("config: %v", msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		value, perr := strconv.ParseUint(str, 0, 64)
		if perr != nil {
			continue
		}
		pred[key] = starlark.MakeUint64(value)
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	if value, ok := dict["mem_size"]; ok {
		out.MemSize, err = asUint64("mem_size", value)
		if err != nil {
			return
		}
	}

	if value, ok := dict["load_base"]; ok {
		out.LoadBase, err = asUint64("load_base", value)
		if err != nil {
			return
		}
	}

	if value, ok := dict["verbose"]; ok {
		st_bool, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrConfig{Name: "verbose", Err: ErrConfigType("verbose")}
			return
		}
		out.Verbose = bool(st_bool)
	}

	err = out.Validate()
	return
}

// asUint64 converts a Starlark value to a non-negative integer.
func asUint64(name string, value starlark.Value) (out uint64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType(name)}
		return
	}

	out, ok = st_int.Uint64()
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigRange}
		return
	}

	return
}
