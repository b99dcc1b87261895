package interp

import "github.com/shsym/shsym/ast"

// evalForeach evaluates i.Args once per incoming branch, then iterates the
// resulting argument list, binding i.Id to each element in turn and running
// i.I. A branch of i.I's own Normal outcome continues to the next element;
// Exit, Return, and Failure abort that branch and flow straight into the
// corresponding outer bucket, carrying whatever result the body itself
// produced. The loop's own result threading needs no separate bookkeeping
// beyond Context.Result, which starts true on entry and, for an empty
// argument list, is left at that initial true rather than the caller's
// incoming result.
func evalForeach(cfg Config, inp Input, sym SymbolicState, i ast.IForeach) Outcome {
	var out Outcome
	for _, lo := range evalList(cfg, inp, sym.Ctx, sym.State, i.Args) {
		if !lo.Ok {
			out.Failure = out.Failure.Add(SymbolicState{State: lo.State, Ctx: sym.Ctx})
			continue
		}

		frontier := singleton(SymbolicState{State: lo.State, Ctx: sym.Ctx.WithResult(true)})
		for _, arg := range lo.Args {
			var next StateSet
			for _, s := range frontier {
				bodyOut := eval(cfg, inp, SymbolicState{State: s.State, Ctx: s.Ctx.WithVar(i.Id, arg)}, i.I)
				next = next.Union(bodyOut.Normal)
				out.Exit = out.Exit.Union(bodyOut.Exit)
				out.Return = out.Return.Union(bodyOut.Return)
				out.Failure = out.Failure.Union(bodyOut.Failure)
			}
			frontier = next
		}
		out.Normal = out.Normal.Union(frontier)
	}
	return out
}

// whileBranch is one live while-loop iteration: a SymbolicState plus the
// last Normal result the body produced ("last_result"). This is the one
// place the core needs per-branch bookkeeping
// beyond State+Context, because the condition's own result must overwrite
// Context.Result while the loop is still deciding whether to continue, which
// would otherwise clobber the body's last recorded result before it can be
// written back on natural loop exit.
type whileBranch struct {
	State SymbolicState
	Last  bool
}

// evalWhile runs i.Cond, then while true i.Body, bounded by cfg.LoopLimit
// iterations of the condition. On the bound being hit, every still-live
// branch becomes Failure rather than being silently dropped.
func evalWhile(cfg Config, inp Input, sym SymbolicState, i ast.IWhile) Outcome {
	condInp := inp.underCond(true)
	frontier := []whileBranch{{State: sym, Last: true}}

	var out Outcome
	for ctr := 0; len(frontier) > 0; ctr++ {
		if ctr == cfg.LoopLimit {
			if cfg.OnLoopBound != nil {
				cfg.OnLoopBound(ctr)
			}
			for _, b := range frontier {
				out.Failure = out.Failure.Add(b.State)
			}
			frontier = nil
			break
		}

		var next []whileBranch
		for _, b := range frontier {
			condOut := eval(cfg, condInp, b.State, i.Cond)
			out.Exit = out.Exit.Union(condOut.Exit)
			out.Return = out.Return.Union(condOut.Return)
			out.Failure = out.Failure.Union(condOut.Failure)

			for _, s := range condOut.Normal {
				if s.Ctx.Result() {
					bodyOut := eval(cfg, inp, s, i.Body)
					out.Exit = out.Exit.Union(bodyOut.Exit)
					out.Return = out.Return.Union(bodyOut.Return)
					out.Failure = out.Failure.Union(bodyOut.Failure)
					for _, s2 := range bodyOut.Normal {
						next = appendBranch(next, whileBranch{State: s2, Last: s2.Ctx.Result()})
					}
				} else {
					out.Normal = out.Normal.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithResult(b.Last)})
				}
			}
		}
		frontier = next
	}
	return out
}

// appendBranch adds b to branches unless an equal branch (same state, same
// last_result) is already present.
func appendBranch(branches []whileBranch, b whileBranch) []whileBranch {
	for _, existing := range branches {
		if existing.Last == b.Last && existing.State.Equal(b.State) {
			return branches
		}
	}
	return append(branches, b)
}
