package interp

import (
	"fmt"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/constraint"
	"github.com/shsym/shsym/execctx"
	"github.com/shsym/shsym/fsstate"
)

// Result is the three-way partition a run produces: states
// that reached a normal success, states that reached a normal failure, and
// states that hit an engine failure along the way. Normal success/failure
// is decided by Context.Result at the point the program finished running,
// whether that was by falling off the end (Normal) or an explicit exit
// (Exit).
type Result struct {
	Success       StateSet
	NormalFailure StateSet
	EngineFailure StateSet
}

// Run installs prog's function definitions left-to-right — later
// definitions override earlier ones bound to the same name — then evaluates the top-level instruction from a single initial
// SymbolicState, returning the three-way partition.
//
// A bare Return reaching the top level (one with no enclosing
// ICallFunction to catch it) is treated exactly like Exit: there is no
// caller scope left to restore into, so the two behaviours are
// indistinguishable at the top of a program.
func Run(cfg Config, inp Input, initial SymbolicState, prog ast.Program) Result {
	ctx := initial.Ctx
	for _, fd := range prog.Funcs {
		ctx = ctx.WithFunc(fd.Id, fd.Body)
	}

	out := eval(cfg, inp, SymbolicState{State: initial.State, Ctx: ctx}, prog.Instr)

	var res Result
	for _, s := range out.Normal.Union(out.Exit).Union(out.Return) {
		if s.Ctx.Result() {
			res.Success = res.Success.Add(s)
		} else {
			res.NormalFailure = res.NormalFailure.Add(s)
		}
	}
	res.EngineFailure = out.Failure
	return res
}

// RunConcrete collapses Run to a single concrete outcome, for driving the
// Language as an ordinary (non-exploring) interpreter: a caller with one
// fully-concrete initial state who does not want to reason about branching
// gets back one resulting state and its boolean result directly. It is
// an error for the run to have produced an engine failure or
// to have branched into more than one reachable state — a symbolic feature
// (SSubshell inside a genuinely concrete program never introduces real
// branching, but nothing here prevents a caller from handing RunConcrete a
// program that does, and it should fail loudly rather than silently pick
// one).
func RunConcrete(cfg Config, backend constraint.Backend, argument0 string, args []string, prog ast.Program) (fsstate.State, bool, error) {
	initial := SymbolicState{State: fsstate.New(backend), Ctx: execctx.New(args)}
	res := Run(cfg, Input{UnderCondition: false, Argument0: argument0}, initial, prog)

	if len(res.EngineFailure) > 0 {
		return fsstate.State{}, false, fmt.Errorf("interp: engine failure during concrete run")
	}
	all := res.Success.Union(res.NormalFailure)
	switch len(all) {
	case 0:
		return fsstate.State{}, false, fmt.Errorf("interp: concrete run produced no result state")
	case 1:
		return all[0].State, all[0].Ctx.Result(), nil
	default:
		return fsstate.State{}, false, fmt.Errorf("interp: concrete run branched into %d states, want exactly 1", len(all))
	}
}
