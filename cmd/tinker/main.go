// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/tinker/config"
	"github.com/ezrec/tinker/cpu"
	"github.com/ezrec/tinker/emulator"
	"github.com/ezrec/tinker/internal"
)

const (
	EXIT_SUCCESS = 0
	EXIT_FAILURE = 1
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the tinker command line, returning the process exit code.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "tinker: ", 0)
	log.SetOutput(stderr)
	log.SetFlags(0)

	var configFile string
	var verbose bool
	var defines bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&configFile, "c", "", ".star configuration file")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&defines, "D", false, "List predefined constants, then exit")

	err := flags.Parse(args[1:])
	if err != nil {
		return EXIT_FAILURE
	}

	emu := emulator.NewEmulator()

	if len(configFile) != 0 {
		src, err := os.ReadFile(configFile)
		if err != nil {
			logger.Printf("%v: %v", configFile, err)
			return EXIT_FAILURE
		}
		cfg, err := config.Parse(emu.Config(), configFile, src, emu.Defines())
		if err != nil {
			logger.Printf("%v: %v", configFile, err)
			return EXIT_FAILURE
		}
		err = emu.Configure(cfg)
		if err != nil {
			logger.Printf("%v: %v", configFile, err)
			return EXIT_FAILURE
		}
	}
	emu.Verbose = emu.Verbose || verbose

	if defines {
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Fprintf(stdout, "%v=%v\n", key, value)
		}
		return EXIT_SUCCESS
	}

	if flags.NArg() != 1 {
		logger.Printf("Invalid tinker filepath")
		flags.Usage()
		return EXIT_FAILURE
	}

	image := flags.Arg(0)
	inf, err := os.Open(image)
	if err != nil {
		logger.Printf("Invalid tinker filepath: %v", err)
		return EXIT_FAILURE
	}
	defer inf.Close()

	emu.Program, err = cpu.ReadProgram(inf)
	if err != nil {
		logger.Printf("%v: %v", image, err)
		return EXIT_FAILURE
	}

	emu.Tape.Input = stdin
	emu.Tape.Output = stdout

	err = emu.Reset()
	if err != nil {
		logger.Printf("%v: %v", image, err)
		return EXIT_FAILURE
	}

	err = emu.Run()
	if err != nil {
		logger.Printf("Simulation error: %v", err)
		if emu.Verbose {
			logger.Print(emu.Cpu.String())
		}
		return EXIT_FAILURE
	}

	return EXIT_SUCCESS
}
