// Package interpreter provides the tree-walking evaluator.
// It owns the tape, the pointer and the input/output streams for one run.
package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bfi-lang/bfi/pkg/types"
)

// TapeSize is the fixed number of cells. The tape never grows.
const TapeSize = 64

// PointerPolicy decides what happens when the pointer leaves the tape.
type PointerPolicy int

const (
	// PolicyFault stops the run with ErrPointerOutOfBounds.
	PolicyFault PointerPolicy = iota
	// PolicyWrap moves the pointer modulo TapeSize.
	PolicyWrap
	// PolicyClamp keeps the pointer at the first or last cell.
	PolicyClamp
)

func (p PointerPolicy) String() string {
	switch p {
	case PolicyFault:
		return "fault"
	case PolicyWrap:
		return "wrap"
	case PolicyClamp:
		return "clamp"
	}
	return fmt.Sprintf("PointerPolicy(%d)", int(p))
}

// ParsePointerPolicy parses "fault", "wrap" or "clamp". Empty means fault.
func ParsePointerPolicy(s string) (PointerPolicy, error) {
	switch strings.ToLower(s) {
	case "", "fault":
		return PolicyFault, nil
	case "wrap":
		return PolicyWrap, nil
	case "clamp":
		return PolicyClamp, nil
	}
	return PolicyFault, fmt.Errorf("unknown pointer policy %q", s)
}

// Interpreter is the execution engine
type Interpreter struct {
	// Tape holds the cells, all zero at the start of a run
	Tape [TapeSize]byte

	// Ptr indexes the current cell
	Ptr int

	// Input is read one byte per Read instruction, never ahead
	Input io.Reader

	// Output receives one byte per Write instruction
	Output io.Writer

	// Policy handles pointer movement past either end of the tape
	Policy PointerPolicy

	// MaxSteps bounds the number of steps in one run (0 = unlimited)
	MaxSteps int
	// Steps counts executed instructions and loop re-checks while MaxSteps is set
	Steps int

	// Logger receives debug records for each run (nil = discard)
	Logger *slog.Logger

	buf [1]byte
}

var discard = slog.New(slog.DiscardHandler)

// Option configures an Interpreter.
type Option func(*Interpreter)

func WithPolicy(p PointerPolicy) Option {
	return func(i *Interpreter) {
		i.Policy = p
	}
}

func WithMaxSteps(n int) Option {
	return func(i *Interpreter) {
		i.MaxSteps = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.Logger = logger
	}
}

// New creates an Interpreter reading from in and writing to out
func New(in io.Reader, out io.Writer, opts ...Option) *Interpreter {
	interp := &Interpreter{
		Input:  in,
		Output: out,
		Logger: discard,
	}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Reset zeroes the tape, the pointer and the step counter
func (i *Interpreter) Reset() {
	i.Tape = [TapeSize]byte{}
	i.Ptr = 0
	i.Steps = 0
}

// Run executes prog from a fresh state.
// Parse errors never reach here; the only failures are I/O errors,
// pointer faults and step exhaustion, all of which stop the run.
func (i *Interpreter) Run(prog types.Program) error {
	i.Reset()
	logger := i.Logger
	if logger == nil {
		logger = discard
	}
	logger.Debug("run",
		"instructions", prog.Count(),
		"depth", prog.Depth(),
		"policy", i.Policy.String(),
	)
	err := i.exec(prog)
	if err != nil {
		logger.Debug("run failed",
			"error", err,
			"ptr", i.Ptr,
			"steps", i.Steps,
		)
		return err
	}
	logger.Debug("run done",
		"ptr", i.Ptr,
		"steps", i.Steps,
	)
	return nil
}

func (i *Interpreter) exec(prog types.Program) error {
	for _, in := range prog {
		if err := i.step(); err != nil {
			return err
		}
		switch in.Op {
		case types.IncPtr:
			if err := i.move(1); err != nil {
				return err
			}
		case types.DecPtr:
			if err := i.move(-1); err != nil {
				return err
			}
		case types.IncVal:
			i.Tape[i.Ptr]++
		case types.DecVal:
			i.Tape[i.Ptr]--
		case types.ClearVal:
			i.Tape[i.Ptr] = 0
		case types.Write:
			if err := i.write(); err != nil {
				return err
			}
		case types.Read:
			if err := i.read(); err != nil {
				return err
			}
		case types.Loop:
			for i.Tape[i.Ptr] != 0 {
				if err := i.exec(in.Body); err != nil {
					return err
				}
				if err := i.step(); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("unknown instruction %v", in.Op)
		}
	}
	return nil
}

func (i *Interpreter) step() error {
	if i.MaxSteps == 0 {
		return nil
	}
	i.Steps++
	if i.Steps > i.MaxSteps {
		return fmt.Errorf("%w: limit %d", types.ErrStepsExhausted, i.MaxSteps)
	}
	return nil
}

func (i *Interpreter) move(delta int) error {
	next := i.Ptr + delta
	if next >= 0 && next < TapeSize {
		i.Ptr = next
		return nil
	}
	switch i.Policy {
	case PolicyWrap:
		i.Ptr = (next + TapeSize) % TapeSize
	case PolicyClamp:
		// pointer stays at the edge
	default:
		return fmt.Errorf("%w: cell %d", types.ErrPointerOutOfBounds, next)
	}
	return nil
}

func (i *Interpreter) write() error {
	if i.Output == nil {
		return fmt.Errorf("%w: write: no output", types.ErrIO)
	}
	i.buf[0] = i.Tape[i.Ptr]
	n, err := i.Output.Write(i.buf[:])
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: write: %w", types.ErrIO, err)
	}
	return nil
}

func (i *Interpreter) read() error {
	if i.Input == nil {
		return fmt.Errorf("%w: read: no input", types.ErrIO)
	}
	if _, err := io.ReadFull(i.Input, i.buf[:]); err != nil {
		return fmt.Errorf("%w: read: %w", types.ErrIO, err)
	}
	i.Tape[i.Ptr] = i.buf[0]
	return nil
}

// TapeString renders the tape up to the last non-zero cell or the pointer,
// marking the current cell.
func (i *Interpreter) TapeString() string {
	last := i.Ptr
	for j := TapeSize - 1; j > last; j-- {
		if i.Tape[j] != 0 {
			last = j
			break
		}
	}
	var sb strings.Builder
	sb.WriteString("[")
	for j := 0; j <= last; j++ {
		if j > 0 {
			sb.WriteString(" ")
		}
		if j == i.Ptr {
			fmt.Fprintf(&sb, "<%d>", i.Tape[j])
		} else {
			fmt.Fprintf(&sb, "%d", i.Tape[j])
		}
	}
	sb.WriteString("]")
	return sb.String()
}
