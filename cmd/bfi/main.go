// bfi - a tape language interpreter with a peephole optimizer
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/bfi-lang/bfi/pkg/configs"
	"github.com/bfi-lang/bfi/pkg/interpreter"
	"github.com/bfi-lang/bfi/pkg/logs"
	"github.com/bfi-lang/bfi/pkg/optimizer"
	"github.com/reusee/dscope"
)

var (
	flagOptimize = flag.Bool("O", true, "Run the optimizer passes")
	flagPointer  = flag.String("pointer", "fault", "Pointer policy at the tape edges: fault, wrap or clamp")
	flagSteps    = flag.Int("steps", 0, "Step limit per run (0 = unlimited)")
	flagDump     = flag.Bool("dump", false, "Print the optimized program instead of running it")
	flagConfig   = flag.String("config", "", "Config file (default: search bfi.cue)")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagQuiet    = flag.Bool("quiet", false, "Quiet mode (no banner)")
)

func main() {
	flag.Parse()

	if *flagDebug {
		logs.SetLevel(slog.LevelDebug)
	}

	args := flag.Args()

	var defs []any
	if *flagConfig != "" {
		defs = append(defs, func() configs.Paths {
			return configs.Paths{*flagConfig}
		})
	}
	// Files read stdin unbuffered. The REPL shares one buffered reader
	// between its own line input and the programs it runs.
	var lines *bufio.Reader
	if len(args) == 0 {
		lines = bufio.NewReader(os.Stdin)
		defs = append(defs, func() Stdin {
			return lines
		})
	}

	scope := dscope.New(new(Module)).Fork(defs...)

	scope.Call(func(
		runner *Runner,
	) {
		if err := applyFlags(&runner.Config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if len(args) == 0 {
			repl := &REPL{
				Runner: runner,
				In:     lines,
				Out:    os.Stdout,
				Err:    os.Stderr,
				Quiet:  *flagQuiet,
			}
			repl.Loop()
			return
		}

		for _, filename := range args {
			if err := runFile(runner, filename); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	})
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cfg *configs.Config) (err error) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "O":
			if *flagOptimize {
				cfg.Optimize = optimizer.AllPasses
			} else {
				cfg.Optimize = optimizer.Options{}
			}
		case "pointer":
			var policy interpreter.PointerPolicy
			policy, err = interpreter.ParsePointerPolicy(*flagPointer)
			cfg.Policy = policy
		case "steps":
			cfg.MaxSteps = *flagSteps
		}
	})
	return err
}

func runFile(runner *Runner, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	if *flagDump {
		prog, err := runner.Compile(context.Background(), filename, string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Fprintln(runner.Output, prog.String())
		return nil
	}

	if err := runner.Run(context.Background(), filename, string(data)); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}
