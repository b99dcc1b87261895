package interp

import (
	"strings"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/execctx"
	"github.com/shsym/shsym/fsstate"
)

// ListOutcome is one (state, args, ok) triple from evaluating a ListExpr.
// Ok is false if any element's StringExpr failed, in which case Args is
// meaningless.
type ListOutcome struct {
	State fsstate.State
	Args  []string
	Ok    bool
}

// evalList evaluates a ListExpr element by element, in order, threading the
// carried boolean result across elements the same way evalStr threads it
// across an SConcat chain. A DontSplit element always contributes exactly
// one argument, even the empty string; a Split element is broken on
// whitespace and contributes zero or more arguments, vanishing entirely if
// it is empty or all whitespace (field-splitting).
func evalList(cfg Config, inp Input, ctx execctx.Context, state fsstate.State, le ast.ListExpr) []ListOutcome {
	branches := []struct {
		state fsstate.State
		b     bool
		args  []string
	}{{state: state, b: true}}

	var failed []ListOutcome

	for _, elem := range le {
		var next []struct {
			state fsstate.State
			b     bool
			args  []string
		}
		for _, br := range branches {
			for _, so := range evalStr(cfg, inp, ctx, br.state, br.b, elem.Expr) {
				if so.Value == nil {
					failed = append(failed, ListOutcome{State: so.State, Ok: false})
					continue
				}
				args := append([]string(nil), br.args...)
				if elem.Split == ast.Split {
					args = append(args, strings.Fields(so.Value.Value)...)
				} else {
					args = append(args, so.Value.Value)
				}
				next = append(next, struct {
					state fsstate.State
					b     bool
					args  []string
				}{state: so.State, b: so.Value.Result, args: args})
			}
		}
		branches = next
	}

	out := failed
	for _, br := range branches {
		out = append(out, ListOutcome{State: br.state, Args: br.args, Ok: true})
	}
	return out
}
