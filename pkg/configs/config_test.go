package configs

import (
	"testing"

	"github.com/bfi-lang/bfi/pkg/interpreter"
	"github.com/bfi-lang/bfi/pkg/optimizer"
	"github.com/reusee/dscope"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load(NewLoader(nil, schema))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadOverlay(t *testing.T) {
	cfg, err := Load(NewLoader([]string{
		"testdata/bfi.cue",
		"testdata/system.cue",
	}, schema))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Policy:   interpreter.PolicyWrap,
		MaxSteps: 1000,
		Optimize: optimizer.Options{
			Cancel:    false,
			ClearLoop: false,
		},
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestModuleConfig(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() Paths {
			return Paths{"testdata/system.cue"}
		},
	).Call(func(
		cfg Config,
	) {
		if cfg.Policy != interpreter.PolicyClamp {
			t.Fatalf("got %v", cfg.Policy)
		}
		if cfg.Optimize.Cancel || !cfg.Optimize.ClearLoop {
			t.Fatalf("got %+v", cfg.Optimize)
		}
		if len(cfg.Options()) != 2 {
			t.Fatal("expected two interpreter options")
		}
	})
}

func TestModuleConfigFallback(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() Paths {
			return Paths{"testdata/bad.cue"}
		},
	).Call(func(
		cfg Config,
	) {
		if cfg != Default {
			t.Fatalf("got %+v", cfg)
		}
	})
}
