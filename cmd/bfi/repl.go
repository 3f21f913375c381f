package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bfi-lang/bfi/pkg/interpreter"
	"github.com/bfi-lang/bfi/pkg/parser"
	"github.com/bfi-lang/bfi/pkg/types"
)

// REPL reads source a line at a time. Input with unclosed loops is held
// until the loops close, then the whole entry runs on a fresh tape.
type REPL struct {
	Runner *Runner
	In     *bufio.Reader
	Out    io.Writer
	Err    io.Writer
	Quiet  bool

	pending strings.Builder
}

func (r *REPL) Loop() {
	if !r.Quiet {
		printBanner(r.Out)
	}
	for {
		if r.pending.Len() == 0 {
			fmt.Fprint(r.Out, "bfi> ")
		} else {
			fmt.Fprint(r.Out, "...> ")
		}
		line, err := r.In.ReadString('\n')
		if err != nil {
			fmt.Fprintln(r.Out)
			return
		}
		if !r.Feed(strings.TrimRight(line, "\r\n")) {
			return
		}
	}
}

// Feed handles one line and reports whether the session goes on.
func (r *REPL) Feed(line string) bool {
	trimmed := strings.TrimSpace(line)
	if r.pending.Len() == 0 {
		if trimmed == "" {
			return true
		}
		if strings.HasPrefix(trimmed, ":") {
			return r.command(trimmed)
		}
	}

	r.pending.WriteString(line)
	r.pending.WriteByte('\n')
	source := r.pending.String()
	if _, err := parser.Parse(source); errors.Is(err, types.ErrUnmatchedLoopOpen) {
		return true
	}
	r.pending.Reset()

	if err := r.Runner.Run(context.Background(), "<repl>", source); err != nil {
		fmt.Fprintf(r.Err, "Error: %v\n", err)
		return true
	}
	fmt.Fprintln(r.Out)
	return true
}

func (r *REPL) command(trimmed string) bool {
	name, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case ":help", ":h", ":?":
		printHelp(r.Out)

	case ":quit", ":q", ":exit":
		fmt.Fprintln(r.Out, "Goodbye!")
		return false

	case ":tape", ":t":
		if r.Runner.Last == nil {
			fmt.Fprintln(r.Out, "Nothing has run yet.")
		} else {
			fmt.Fprintln(r.Out, r.Runner.Last.TapeString())
		}

	case ":dump":
		prog, err := r.Runner.Compile(context.Background(), "<repl>", rest)
		if err != nil {
			fmt.Fprintf(r.Err, "Error: %v\n", err)
			break
		}
		fmt.Fprintln(r.Out, prog.String())

	case ":load", ":l":
		if rest == "" {
			fmt.Fprintln(r.Out, "Usage: :load <filename>")
			break
		}
		if err := runFile(r.Runner, rest); err != nil {
			fmt.Fprintf(r.Err, "Error: %v\n", err)
		}
		fmt.Fprintln(r.Out)

	case ":pointer":
		if rest == "" {
			fmt.Fprintf(r.Out, "Pointer policy: %s\n", r.Runner.Config.Policy)
			break
		}
		policy, err := interpreter.ParsePointerPolicy(rest)
		if err != nil {
			fmt.Fprintf(r.Err, "Error: %v\n", err)
			break
		}
		r.Runner.Config.Policy = policy
		fmt.Fprintf(r.Out, "Pointer policy set to %s\n", policy)

	case ":steps":
		if rest == "" {
			fmt.Fprintf(r.Out, "Step limit: %d\n", r.Runner.Config.MaxSteps)
			break
		}
		steps, err := strconv.Atoi(rest)
		if err != nil || steps < 0 {
			fmt.Fprintf(r.Err, "Error: step limit must be a non-negative integer, got %q\n", rest)
			break
		}
		r.Runner.Config.MaxSteps = steps
		fmt.Fprintf(r.Out, "Step limit set to %d\n", steps)

	default:
		fmt.Fprintf(r.Err, "Error: unknown command %s (try :help)\n", name)
	}
	return true
}

func printBanner(w io.Writer) {
	fmt.Fprint(w, `
╔═══════════════════════════════════════════════════════════╗
║  bfi - eight symbols, sixty-four cells                    ║
╠═══════════════════════════════════════════════════════════╣
║  Type :help for commands, :quit to exit                   ║
╚═══════════════════════════════════════════════════════════╝
`)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `
bfi Commands:
  :help, :h, :?    Show this help
  :quit, :q        Exit
  :tape, :t        Show the tape after the last run
  :dump <code>     Show the optimized form of <code>
  :load <file>     Load and run a file
  :pointer <p>     Set pointer policy (fault, wrap, clamp)
  :steps <n>       Set step limit (0 = unlimited)

Language:
  > <              Move the pointer right / left
  + -              Increment / decrement the current cell (wraps at 256)
  . ,              Write / read one byte
  [ ... ]          Repeat while the current cell is non-zero
  anything else    Comment

Example:
  ++++++++[>++++++++<-]>+.
`)
}
