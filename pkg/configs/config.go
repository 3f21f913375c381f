package configs

import (
	"fmt"

	"github.com/bfi-lang/bfi/pkg/interpreter"
	"github.com/bfi-lang/bfi/pkg/logs"
	"github.com/bfi-lang/bfi/pkg/optimizer"
)

// Config holds the settings of one interpreter invocation.
type Config struct {
	Policy   interpreter.PointerPolicy
	MaxSteps int
	Optimize optimizer.Options
}

// Default runs every pass with an unlimited step budget and faults on
// out-of-bounds pointer moves.
var Default = Config{
	Policy:   interpreter.PolicyFault,
	Optimize: optimizer.AllPasses,
}

// Options returns the interpreter options for c.
func (c Config) Options() []interpreter.Option {
	return []interpreter.Option{
		interpreter.WithPolicy(c.Policy),
		interpreter.WithMaxSteps(c.MaxSteps),
	}
}

// Load overlays the values found by loader onto Default.
func Load(loader Loader) (Config, error) {
	cfg := Default

	pointer, err := First[*string](loader, "pointer")
	if err != nil {
		return cfg, fmt.Errorf("config pointer: %w", err)
	}
	if pointer != nil {
		if cfg.Policy, err = interpreter.ParsePointerPolicy(*pointer); err != nil {
			return cfg, err
		}
	}

	maxSteps, err := First[*int](loader, "max_steps")
	if err != nil {
		return cfg, fmt.Errorf("config max_steps: %w", err)
	}
	if maxSteps != nil {
		cfg.MaxSteps = *maxSteps
	}

	for key, target := range map[string]*bool{
		"optimize.cancel":     &cfg.Optimize.Cancel,
		"optimize.clear_loop": &cfg.Optimize.ClearLoop,
	} {
		v, err := First[*bool](loader, key)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", key, err)
		}
		if v != nil {
			*target = *v
		}
	}

	return cfg, nil
}

// Config loads the configuration, falling back to Default with a warning
// when the files are unusable.
func (Module) Config(
	loader Loader,
	logger logs.Logger,
) Config {
	cfg, err := Load(loader)
	if err != nil {
		logger.Warn("load config", "error", err)
		return Default
	}
	return cfg
}
