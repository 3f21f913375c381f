package main

import (
	"os"
	"testing"

	"github.com/bfi-lang/bfi/pkg/configs"
	"github.com/reusee/dscope"
)

func TestModuleDefaultStreams(t *testing.T) {
	var runner *Runner
	dscope.New(new(Module)).Fork(
		func() configs.Paths {
			return nil
		},
	).Call(func(r *Runner) {
		runner = r
	})
	if runner == nil {
		t.Fatal("Expected a runner")
	}
	// file mode reads stdin directly, with no buffering in front of it
	if runner.Input != os.Stdin {
		t.Errorf("Expected os.Stdin input, got %T", runner.Input)
	}
	if runner.Output != os.Stdout {
		t.Errorf("Expected os.Stdout output, got %T", runner.Output)
	}
}
