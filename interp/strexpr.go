package interp

import (
	"fmt"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/buffer"
	"github.com/shsym/shsym/execctx"
	"github.com/shsym/shsym/fsstate"
)

// StrValue is the successful result of evaluating a StringExpr: the string
// produced, and the boolean "result so far" carried alongside it.
type StrValue struct {
	Result bool
	Value  string
}

// StrOutcome is one (state, optional value) pair from evaluating a
// StringExpr. Value is nil when that branch failed (e.g. an SSubshell whose
// instruction produced Failure).
type StrOutcome struct {
	State fsstate.State
	Value *StrValue
}

// evalStr evaluates a StringExpr against a single (ctx, state), threading
// the carried boolean b ("true on entry" at the top of a concatenation
// chain) and returning the set of resulting (state, optional value) pairs.
func evalStr(cfg Config, inp Input, ctx execctx.Context, state fsstate.State, b bool, e ast.StringExpr) []StrOutcome {
	switch se := e.(type) {
	case ast.SLiteral:
		return []StrOutcome{{State: state, Value: &StrValue{Result: b, Value: se.Value}}}

	case ast.SVariable:
		return []StrOutcome{{State: state, Value: &StrValue{Result: b, Value: ctx.Var(se.Id)}}}

	case ast.SArgument:
		var v string
		if se.N == 0 {
			v = inp.Argument0
		} else {
			v = ctx.Argument(se.N)
		}
		return []StrOutcome{{State: state, Value: &StrValue{Result: b, Value: v}}}

	case ast.SSubshell:
		// Isolated context, empty stdout, masked to under_condition=true:
		// the subshell's own Exit is never reclassified by the caller's
		// strictness. Exit and Return are absorbed into the substitution's
		// value exactly as ISubshell absorbs them; only Failure fails the
		// substitution.
		iso := ctx.Isolated()
		forked := state.WithStdout(buffer.NewStdout())
		sub := eval(cfg, inp.underCond(true), SymbolicState{State: forked, Ctx: iso}, se.I)
		var out []StrOutcome
		absorb := func(set StateSet) {
			for _, s := range set {
				restored := s.State.WithStdout(state.Stdout)
				out = append(out, StrOutcome{State: restored, Value: &StrValue{Result: s.Ctx.Result(), Value: s.State.Stdout.String()}})
			}
		}
		absorb(sub.Normal)
		absorb(sub.Exit)
		absorb(sub.Return)
		for _, s := range sub.Failure {
			out = append(out, StrOutcome{State: s.State.WithStdout(state.Stdout), Value: nil})
		}
		return out

	case ast.SConcat:
		var out []StrOutcome
		for _, lhs := range evalStr(cfg, inp, ctx, state, b, se.E1) {
			if lhs.Value == nil {
				out = append(out, StrOutcome{State: lhs.State, Value: nil})
				continue
			}
			for _, rhs := range evalStr(cfg, inp, ctx, lhs.State, lhs.Value.Result, se.E2) {
				if rhs.Value == nil {
					out = append(out, StrOutcome{State: rhs.State, Value: nil})
					continue
				}
				out = append(out, StrOutcome{
					State: rhs.State,
					Value: &StrValue{Result: rhs.Value.Result, Value: lhs.Value.Value + rhs.Value.Value},
				})
			}
		}
		return out

	default:
		panic(fmt.Sprintf("interp: unknown StringExpr %T", e))
	}
}
