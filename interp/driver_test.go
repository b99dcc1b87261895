package interp_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/constraint"
	"github.com/shsym/shsym/fsstate"
	"github.com/shsym/shsym/interp"
	"github.com/shsym/shsym/utility"
)

func TestRunConcreteSingleOutcome(t *testing.T) {
	c := qt.New(t)
	cfg := mustConfig(t)
	prog := ast.Program{
		Instr: ast.ICallUtility{
			Id:   "echo",
			Args: ast.ListExpr{{Expr: ast.SArgument{N: 1}, Split: ast.DontSplit}},
		},
	}
	state, ok, err := interp.RunConcrete(cfg, constraint.NewBackend(), "symsh", []string{"world"}, prog)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(state.Stdout.String(), qt.Equals, "world")
}

// forkingUtility always returns two results, for testing RunConcrete against
// a genuinely non-deterministic utility interpreter.
type forkingUtility struct{}

func (forkingUtility) Call(_ context.Context, s fsstate.State, _ string, _ []string) []utility.Result {
	return []utility.Result{{State: s, Bool: true}, {State: s, Bool: false}}
}

func TestRunConcreteRejectsBranching(t *testing.T) {
	c := qt.New(t)
	cfg := mustConfig(t, interp.WithUtility(forkingUtility{}))
	prog := ast.Program{Instr: ast.ICallUtility{Id: "fork"}}
	_, _, err := interp.RunConcrete(cfg, constraint.NewBackend(), "symsh", nil, prog)
	c.Assert(err, qt.ErrorMatches, ".*branched into 2 states.*")
}
