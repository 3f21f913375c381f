package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/bfi-lang/bfi/pkg/logs"
)

//go:embed schema.cue
var schema string

// Paths lists the config files to load, highest precedence first.
type Paths []string

var filenames = []string{
	"bfi.cue",
	".bfi.cue",
}

// Paths searches the working directory, the user config dir and /etc.
func (Module) Paths() Paths {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	var paths Paths
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return paths
}

func (Module) Loader(
	paths Paths,
	logger logs.Logger,
) Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return NewLoader(paths, schema)
}
