// Package parser builds the nested instruction tree from scanned tokens.
// Loop bodies are owned child programs, never jump offsets.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bfi-lang/bfi/pkg/scanner"
	"github.com/bfi-lang/bfi/pkg/types"
)

// Parser consumes a Scanner once.
type Parser struct {
	scan *scanner.Scanner
	// opens holds the positions of the loops currently being parsed,
	// innermost last.
	opens []lexer.Position
}

// New creates a Parser reading from s.
func New(s *scanner.Scanner) *Parser {
	return &Parser{scan: s}
}

// Parse parses source text into a Program
func Parse(source string) (types.Program, error) {
	return ParseFile("", source)
}

// ParseFile parses source text, using filename in error positions
func ParseFile(filename, source string) (types.Program, error) {
	return New(scanner.New(filename, source)).Parse()
}

// Parse parses the whole token stream.
func (p *Parser) Parse() (types.Program, error) {
	return p.parseTop()
}

// parseTop parses outside of any loop, where `]` has nothing to close.
func (p *Parser) parseTop() (types.Program, error) {
	prog := types.Program{}
	for {
		tok, ok := p.scan.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case types.TokLoopOpen:
			body, err := p.parseLoop(tok.Pos)
			if err != nil {
				return nil, err
			}
			prog = append(prog, types.NewLoop(body))
		case types.TokLoopClose:
			return nil, &types.ParseError{
				Err: types.ErrUnmatchedLoopClose,
				Pos: tok.Pos,
			}
		default:
			prog = append(prog, simple(tok.Kind))
		}
	}
	if err := p.scan.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}

// parseLoop parses a loop body up to and including its closing bracket.
func (p *Parser) parseLoop(open lexer.Position) (types.Program, error) {
	p.opens = append(p.opens, open)
	body := types.Program{}
	for {
		tok, ok := p.scan.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case types.TokLoopOpen:
			inner, err := p.parseLoop(tok.Pos)
			if err != nil {
				return nil, err
			}
			body = append(body, types.NewLoop(inner))
		case types.TokLoopClose:
			p.opens = p.opens[:len(p.opens)-1]
			return body, nil
		default:
			body = append(body, simple(tok.Kind))
		}
	}
	if err := p.scan.Err(); err != nil {
		return nil, err
	}
	return nil, &types.ParseError{
		Err:  types.ErrUnmatchedLoopOpen,
		Pos:  p.opens[len(p.opens)-1],
		Open: len(p.opens),
	}
}

func simple(kind types.TokenKind) types.Instruction {
	switch kind {
	case types.TokIncPtr:
		return types.Simple(types.IncPtr)
	case types.TokDecPtr:
		return types.Simple(types.DecPtr)
	case types.TokIncVal:
		return types.Simple(types.IncVal)
	case types.TokDecVal:
		return types.Simple(types.DecVal)
	case types.TokWrite:
		return types.Simple(types.Write)
	case types.TokRead:
		return types.Simple(types.Read)
	}
	panic("parser: not a simple token: " + kind.String())
}
