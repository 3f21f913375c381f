package scanner

import (
	"testing"

	"github.com/bfi-lang/bfi/pkg/types"
)

func TestSymbols(t *testing.T) {
	toks, err := All("><+-.,[]")
	if err != nil {
		t.Fatal(err)
	}
	expected := []types.TokenKind{
		types.TokIncPtr, types.TokDecPtr, types.TokIncVal, types.TokDecVal,
		types.TokWrite, types.TokRead, types.TokLoopOpen, types.TokLoopClose,
	}
	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Errorf("Token %d: Expected %v, got %v", i, kind, toks[i].Kind)
		}
	}
}

func TestCommentsSkipped(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"", ""},
		{"hello world", ""},
		{"a+b-c", "+-"},
		{"\n\t[ loop ]\r\n", "[]"},
		{"é+ü→.", "+."},
		{"#!/usr/bin/env bfi\n+.", "+."},
	}
	for _, tt := range tests {
		toks, err := All(tt.src)
		if err != nil {
			t.Fatalf("%q: %v", tt.src, err)
		}
		got := ""
		for _, tok := range toks {
			got += tok.Kind.String()
		}
		if got != tt.expected {
			t.Errorf("%q: Expected %q, got %q", tt.src, tt.expected, got)
		}
	}
}

func TestPositions(t *testing.T) {
	s := New("prog.bf", "+ x\n  >\n\n]")
	var toks []types.Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if s.Err() != nil {
		t.Fatal(s.Err())
	}
	expected := [][2]int{{1, 1}, {2, 3}, {4, 1}}
	if len(toks) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d", len(expected), len(toks))
	}
	for i, pos := range expected {
		if toks[i].Pos.Line != pos[0] || toks[i].Pos.Column != pos[1] {
			t.Errorf("Token %d: Expected %d:%d, got %d:%d",
				i, pos[0], pos[1], toks[i].Pos.Line, toks[i].Pos.Column)
		}
		if toks[i].Pos.Filename != "prog.bf" {
			t.Errorf("Token %d: Expected filename, got %q", i, toks[i].Pos.Filename)
		}
	}
}

func TestExhausted(t *testing.T) {
	s := New("", "+")
	if _, ok := s.Next(); !ok {
		t.Fatal("Expected a token")
	}
	for range 3 {
		if tok, ok := s.Next(); ok {
			t.Fatalf("Expected end of input, got %v", tok)
		}
	}
}
