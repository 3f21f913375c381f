package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bfi-lang/bfi/pkg/configs"
	"github.com/bfi-lang/bfi/pkg/interpreter"
	"github.com/bfi-lang/bfi/pkg/logs"
	"github.com/bfi-lang/bfi/pkg/optimizer"
	"github.com/bfi-lang/bfi/pkg/parser"
	"github.com/bfi-lang/bfi/pkg/types"
)

// Runner ties the pipeline together for one source at a time.
type Runner struct {
	Config configs.Config
	Logger logs.Logger
	Input  io.Reader
	Output io.Writer

	// Last is the interpreter of the most recent run, kept for :tape
	Last *interpreter.Interpreter
}

// Compile parses and optimizes source.
func (r *Runner) Compile(ctx context.Context, name, source string) (types.Program, error) {
	prog, err := parser.ParseFile(name, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	before := prog.Count()
	prog = optimizer.Optimize(prog, r.Config.Optimize.Passes()...)
	r.Logger.DebugContext(ctx, "compiled",
		"instructions", before,
		"optimized", prog.Count(),
	)
	return prog, nil
}

// Run compiles and executes source.
func (r *Runner) Run(ctx context.Context, name, source string) error {
	ctx = logs.WithSource(ctx, name)
	prog, err := r.Compile(ctx, name, source)
	if err != nil {
		return err
	}
	interp := interpreter.New(r.Input, r.Output,
		append(r.Config.Options(), interpreter.WithLogger(r.Logger))...,
	)
	r.Last = interp
	if err := interp.Run(prog); err != nil {
		r.Logger.DebugContext(ctx, "runtime error", "error", err)
		return fmt.Errorf("runtime error: %w", err)
	}
	return nil
}
