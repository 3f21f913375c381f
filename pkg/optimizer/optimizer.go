// Package optimizer implements peephole rewrites over the instruction tree.
// Each pass rewrites a program in place and returns the resulting slice,
// recursing into every loop body it keeps.
package optimizer

import "github.com/bfi-lang/bfi/pkg/types"

// Pass is a single tree rewrite.
type Pass func(types.Program) types.Program

// Default runs cancellation before clear-loop recognition, since
// cancellation can shrink a loop body down to a clearable shape.
var Default = []Pass{Cancel, ClearLoop}

// Optimize applies passes in order.
func Optimize(prog types.Program, passes ...Pass) types.Program {
	for _, pass := range passes {
		prog = pass(prog)
	}
	return prog
}

// Options selects which passes run.
type Options struct {
	Cancel    bool `json:"cancel"`
	ClearLoop bool `json:"clear_loop"`
}

// AllPasses enables every pass.
var AllPasses = Options{Cancel: true, ClearLoop: true}

// Passes returns the enabled passes in their canonical order.
func (o Options) Passes() []Pass {
	var passes []Pass
	if o.Cancel {
		passes = append(passes, Cancel)
	}
	if o.ClearLoop {
		passes = append(passes, ClearLoop)
	}
	return passes
}

// Cancel removes adjacent inverse pairs: >< <> +- -+.
// The scan runs back to front and steps back after a removal so that
// newly adjacent pairs collapse in the same pass. Loops are never
// cancelled against neighbours; only their bodies are rewritten.
func Cancel(prog types.Program) types.Program {
	i := len(prog) - 1
	for i >= 0 {
		if prog[i].Op == types.Loop {
			prog[i].Body = Cancel(prog[i].Body)
			i--
			continue
		}
		if i > 0 && inverse(prog[i-1].Op, prog[i].Op) {
			prog = remove(prog, i-1)
			// prog[i-1] is now the successor of the removed pair. It has
			// been visited already, but its left neighbour is new.
			i--
			if i < len(prog) && prog[i].Op != types.Loop {
				continue
			}
			i--
			continue
		}
		i--
	}
	return prog
}

func inverse(l, r types.Op) bool {
	switch {
	case l == types.IncPtr && r == types.DecPtr,
		l == types.DecPtr && r == types.IncPtr,
		l == types.IncVal && r == types.DecVal,
		l == types.DecVal && r == types.IncVal:
		return true
	}
	return false
}

// remove deletes prog[i] and prog[i+1], shifting the tail down.
func remove(prog types.Program, i int) types.Program {
	n := copy(prog[i:], prog[i+2:])
	tail := prog[i+n:]
	for j := range tail {
		tail[j] = types.Instruction{}
	}
	return prog[:i+n]
}

// ClearLoop replaces [+] and [-] with ClearVal. Any other loop is
// recursed into, even if its body is semantically a clear.
func ClearLoop(prog types.Program) types.Program {
	for i := range prog {
		in := &prog[i]
		if in.Op != types.Loop {
			continue
		}
		if len(in.Body) == 1 && (in.Body[0].Op == types.IncVal || in.Body[0].Op == types.DecVal) {
			*in = types.Simple(types.ClearVal)
			continue
		}
		in.Body = ClearLoop(in.Body)
	}
	return prog
}
