// Package utility defines the external utility-interpreter collaborator
// that ICallUtility delegates to, plus a small table of symbolic-safe
// builtins sufficient to drive common scenarios without implementing real
// command semantics (mkdir, test, echo, ... are explicitly out of scope as
// individually-specified utilities).
package utility

import (
	"context"

	"github.com/shsym/shsym/fsstate"
)

// Result is one (state, boolean-result) pair a utility call may produce.
type Result struct {
	State fsstate.State
	Bool  bool
}

// Interpreter is the external collaborator interp.ICallUtility delegates
// to: given a state, a utility name, and already-evaluated string
// arguments, it returns the set of resulting (state, bool) pairs.
//
// Implementations must honor the invariant that the output's stdout must
// be obtainable from the input's stdout only by appending.
// Formally, for any state with empty stdout producing (state', b), running
// from any state with arbitrary stdout must produce
// (state' with stdout = concat(state.stdout, state'.stdout), b).
type Interpreter interface {
	Call(ctx context.Context, state fsstate.State, name string, args []string) []Result
}

// Func adapts a plain function to the Interpreter interface.
type Func func(ctx context.Context, state fsstate.State, name string, args []string) []Result

func (f Func) Call(ctx context.Context, state fsstate.State, name string, args []string) []Result {
	return f(ctx, state, name, args)
}
