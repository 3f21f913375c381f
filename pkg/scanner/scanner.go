// Package scanner turns source text into a lazy stream of symbol tokens.
// Every character outside the eight symbols is a comment and is skipped.
package scanner

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/bfi-lang/bfi/pkg/types"
)

// Definition is the lexer for the symbol set. Anything that is not a symbol
// is grouped into Comment runs, so the lexer never fails on input.
var Definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "IncPtr", Pattern: `>`},
	{Name: "DecPtr", Pattern: `<`},
	{Name: "IncVal", Pattern: `\+`},
	{Name: "DecVal", Pattern: `-`},
	{Name: "Write", Pattern: `\.`},
	{Name: "Read", Pattern: `,`},
	{Name: "LoopOpen", Pattern: `\[`},
	{Name: "LoopClose", Pattern: `\]`},
	{Name: "Comment", Pattern: `[^<>+\-.,\[\]]+`},
})

var kinds = func() map[lexer.TokenType]types.TokenKind {
	symbols := Definition.Symbols()
	return map[lexer.TokenType]types.TokenKind{
		symbols["IncPtr"]:    types.TokIncPtr,
		symbols["DecPtr"]:    types.TokDecPtr,
		symbols["IncVal"]:    types.TokIncVal,
		symbols["DecVal"]:    types.TokDecVal,
		symbols["Write"]:     types.TokWrite,
		symbols["Read"]:      types.TokRead,
		symbols["LoopOpen"]:  types.TokLoopOpen,
		symbols["LoopClose"]: types.TokLoopClose,
	}
}()

// Scanner yields tokens one at a time. It cannot be rewound.
type Scanner struct {
	lex  lexer.Lexer
	err  error
	done bool
	last lexer.Position
}

// New creates a Scanner over src. filename only appears in positions.
func New(filename, src string) *Scanner {
	lex, err := Definition.LexString(filename, src)
	return &Scanner{
		lex:  lex,
		err:  err,
		done: err != nil,
		last: lexer.Position{Filename: filename, Line: 1, Column: 1},
	}
}

// Next returns the next symbol token, or false once the source is exhausted.
func (s *Scanner) Next() (types.Token, bool) {
	for !s.done {
		tok, err := s.lex.Next()
		if err != nil {
			s.err = err
			s.done = true
			break
		}
		s.last = tok.Pos
		if tok.EOF() {
			s.done = true
			break
		}
		kind, ok := kinds[tok.Type]
		if !ok {
			continue
		}
		return types.Token{Kind: kind, Pos: tok.Pos}, true
	}
	return types.Token{}, false
}

// Pos is the position of the last token seen, including skipped comments
// and the end of input.
func (s *Scanner) Pos() lexer.Position {
	return s.last
}

// Err returns the lexer failure that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// All scans the whole source.
func All(src string) ([]types.Token, error) {
	s := New("", src)
	var toks []types.Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, s.Err()
}
