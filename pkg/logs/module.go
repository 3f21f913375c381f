// Package logs provides the structured logger shared by the command line
// front end and the interpreter.
package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}
