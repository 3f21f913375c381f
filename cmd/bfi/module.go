package main

import (
	"io"
	"os"

	"github.com/bfi-lang/bfi/pkg/configs"
	"github.com/bfi-lang/bfi/pkg/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

// Stdin is the byte source for `,`. It is read one byte at a time.
type Stdin io.Reader

type Stdout io.Writer

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Runner(
	cfg configs.Config,
	logger logs.Logger,
	stdin Stdin,
	stdout Stdout,
) *Runner {
	return &Runner{
		Config: cfg,
		Logger: logger,
		Input:  stdin,
		Output: stdout,
	}
}
