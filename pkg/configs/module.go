// Package configs loads cue configuration files and decodes the
// interpreter settings from them.
package configs

import (
	"github.com/bfi-lang/bfi/pkg/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
