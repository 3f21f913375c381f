// Package types defines the tokens, instructions and errors shared by the
// scanner, parser, optimizer and interpreter.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind identifies one of the eight source symbols.
type TokenKind int

const (
	TokIncPtr    TokenKind = iota // >
	TokDecPtr                     // <
	TokIncVal                     // +
	TokDecVal                     // -
	TokWrite                      // .
	TokRead                       // ,
	TokLoopOpen                   // [
	TokLoopClose                  // ]
)

var tokenSymbols = [...]string{
	TokIncPtr:    ">",
	TokDecPtr:    "<",
	TokIncVal:    "+",
	TokDecVal:    "-",
	TokWrite:     ".",
	TokRead:      ",",
	TokLoopOpen:  "[",
	TokLoopClose: "]",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenSymbols) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenSymbols[k]
}

// Token is a single scanned symbol. Pos is only used for diagnostics.
type Token struct {
	Kind TokenKind
	Pos  lexer.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d", t.Kind, t.Pos.Line, t.Pos.Column)
}

// Op is the instruction variant.
type Op int

const (
	IncPtr Op = iota
	DecPtr
	IncVal
	DecVal
	ClearVal
	Write
	Read
	Loop
)

var opNames = [...]string{
	IncPtr:   "IncPtr",
	DecPtr:   "DecPtr",
	IncVal:   "IncVal",
	DecVal:   "DecVal",
	ClearVal: "ClearVal",
	Write:    "Write",
	Read:     "Read",
	Loop:     "Loop",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Instruction is one node of the program tree.
// Body is owned by the node and only used when Op is Loop.
type Instruction struct {
	Op   Op
	Body Program
}

// Simple returns a non-loop instruction.
func Simple(op Op) Instruction {
	return Instruction{Op: op}
}

// NewLoop wraps body in a Loop instruction.
func NewLoop(body Program) Instruction {
	return Instruction{Op: Loop, Body: body}
}

func (in Instruction) String() string {
	var sb strings.Builder
	in.write(&sb)
	return sb.String()
}

func (in Instruction) write(sb *strings.Builder) {
	switch in.Op {
	case IncPtr:
		sb.WriteByte('>')
	case DecPtr:
		sb.WriteByte('<')
	case IncVal:
		sb.WriteByte('+')
	case DecVal:
		sb.WriteByte('-')
	case ClearVal:
		sb.WriteString("[-]")
	case Write:
		sb.WriteByte('.')
	case Read:
		sb.WriteByte(',')
	case Loop:
		sb.WriteByte('[')
		for _, child := range in.Body {
			child.write(sb)
		}
		sb.WriteByte(']')
	}
}

// Equal reports structural equality, recursing into loop bodies.
func (in Instruction) Equal(other Instruction) bool {
	if in.Op != other.Op {
		return false
	}
	if in.Op == Loop {
		return in.Body.Equal(other.Body)
	}
	return true
}

// Program is an ordered sequence of instructions. Loop bodies are nested
// Programs, so rewriting one sequence never affects another.
type Program []Instruction

// String renders the program back to canonical source text.
func (p Program) String() string {
	var sb strings.Builder
	for _, in := range p {
		in.write(&sb)
	}
	return sb.String()
}

func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of leaf (non-loop) instructions in the tree.
func (p Program) Count() int {
	n := 0
	for _, in := range p {
		if in.Op == Loop {
			n += in.Body.Count()
		} else {
			n++
		}
	}
	return n
}

// Depth returns the maximum loop nesting depth.
func (p Program) Depth() int {
	deepest := 0
	for _, in := range p {
		if in.Op != Loop {
			continue
		}
		if d := 1 + in.Body.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// Structural and runtime errors.
var (
	ErrUnmatchedLoopClose = errors.New("unmatched loop close")
	ErrUnmatchedLoopOpen  = errors.New("unmatched loop open")
	ErrIO                 = errors.New("i/o failure")
	ErrPointerOutOfBounds = errors.New("pointer out of bounds")
	ErrStepsExhausted     = errors.New("steps exhausted")
)

// ParseError carries the position of the offending bracket.
// Open is the number of unclosed loops when Err is ErrUnmatchedLoopOpen.
type ParseError struct {
	Err  error
	Pos  lexer.Position
	Open int
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrUnmatchedLoopClose:
		return fmt.Sprintf("%s: `]` at column %d does not have a matching `[`", e.Pos, e.Pos.Column)
	case ErrUnmatchedLoopOpen:
		return fmt.Sprintf("%s: found %d unclosed `[`", e.Pos, e.Open)
	}
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
