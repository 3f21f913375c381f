package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bfi-lang/bfi/pkg/configs"
	"github.com/bfi-lang/bfi/pkg/types"
)

func TestRunFile(t *testing.T) {
	tests := []struct {
		file     string
		input    string
		expected string
	}{
		{"hello.bf", "", "Hello World!\n"},
		{"reverse.bf", "abc\x00", "cba"},
		{"echo.bf", "one two\x00", "one two"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			runner, out := newTestRunner(t, tt.input)
			if err := runFile(runner, filepath.Join("..", "..", "testdata", tt.file)); err != nil {
				t.Fatal(err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestRunFileUnbalanced(t *testing.T) {
	runner, _ := newTestRunner(t, "")
	err := runFile(runner, filepath.Join("..", "..", "testdata", "unbalanced.bf"))
	if !errors.Is(err, types.ErrUnmatchedLoopOpen) {
		t.Fatalf("Expected ErrUnmatchedLoopOpen, got %v", err)
	}
}

func TestRunFileMissing(t *testing.T) {
	runner, _ := newTestRunner(t, "")
	if err := runFile(runner, "no-such-file.bf"); err == nil {
		t.Fatal("Expected error")
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := configs.Default
	if err := applyFlags(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg != configs.Default {
		t.Errorf("Expected unset flags to leave config alone, got %+v", cfg)
	}
}
