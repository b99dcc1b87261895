package interp

import (
	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/execctx"
	"github.com/shsym/shsym/fsstate"
)

// SymbolicState pairs a symbolic filesystem/IO state with the execution
// context in effect for it. The core evaluates
// one SymbolicState at a time (eval) and lifts to sets (evalSet) by union,
// rather than threading a generic ancillary-data field through every rule:
// the handful of rules that need extra per-branch bookkeeping (IWhile's
// last_result) keep it as a local value alongside the branch instead, since
// that bookkeeping never needs to be observable at a rule's own boundary.
type SymbolicState struct {
	State fsstate.State
	Ctx   execctx.Context
}

// Equal reports structural equality, the basis for StateSet deduplication.
func (s SymbolicState) Equal(o SymbolicState) bool {
	return s.State.Equal(o.State) && s.Ctx.Equal(o.Ctx)
}

// StateSet is a set of SymbolicStates, deduplicated by Equal. The zero value
// is the empty set.
type StateSet []SymbolicState

// singleton returns a StateSet containing exactly s.
func singleton(s SymbolicState) StateSet { return StateSet{s} }

// Add returns a new StateSet with s included, collapsing s into an existing
// equal element if present: duplicates collapse by the Equal relation.
func (set StateSet) Add(s SymbolicState) StateSet {
	for _, existing := range set {
		if existing.Equal(s) {
			return set
		}
	}
	return append(append(StateSet(nil), set...), s)
}

// Union returns the set union of set and o.
func (set StateSet) Union(o StateSet) StateSet {
	result := set
	for _, s := range o {
		result = result.Add(s)
	}
	return result
}

// Outcome partitions the states reachable from evaluating one instruction
// into the four disjoint behaviour buckets: Normal, Exit, Return, Failure.
type Outcome struct {
	Normal  StateSet
	Exit    StateSet
	Return  StateSet
	Failure StateSet
}

// union merges o2 into o, bucket by bucket.
func (o Outcome) union(o2 Outcome) Outcome {
	return Outcome{
		Normal:  o.Normal.Union(o2.Normal),
		Exit:    o.Exit.Union(o2.Exit),
		Return:  o.Return.Union(o2.Return),
		Failure: o.Failure.Union(o2.Failure),
	}
}

// maybeExit applies the strict-mode reclassification: in strict mode (not
// under a condition), a Normal outcome whose result is false is
// reclassified as Exit ("maybe-exit"). Otherwise it stays Normal.
func maybeExit(inp Input, s SymbolicState) Outcome {
	if inp.Strict() && !s.Ctx.Result() {
		return Outcome{Exit: singleton(s)}
	}
	return Outcome{Normal: singleton(s)}
}

// evalSet lifts eval to a StateSet, unioning the Outcome produced from each
// live state: the set-lifted version unions the per-state outcomes.
func evalSet(cfg Config, inp Input, states StateSet, ins ast.Instruction) Outcome {
	var out Outcome
	for _, s := range states {
		out = out.union(eval(cfg, inp, s, ins))
	}
	return out
}
