package interp

import (
	"context"
	"fmt"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/buffer"
)

// eval evaluates one Instruction against a single SymbolicState, returning
// the four-way Outcome. This is the core evaluation relation; evalSet
// (outcome.go) lifts it to StateSets by union.
func eval(cfg Config, inp Input, sym SymbolicState, ins ast.Instruction) Outcome {
	switch i := ins.(type) {

	case ast.IExit:
		newCtx := sym.Ctx.WithResult(resultForCode(i.Code, sym.Ctx.Result()))
		return Outcome{Exit: singleton(SymbolicState{State: sym.State, Ctx: newCtx})}

	case ast.IReturn:
		newCtx := sym.Ctx.WithResult(resultForCode(i.Code, sym.Ctx.Result()))
		return Outcome{Return: singleton(SymbolicState{State: sym.State, Ctx: newCtx})}

	case ast.IShift:
		n := i.N
		if n == 0 {
			n = 1
		}
		newCtx, ok := sym.Ctx.WithShiftedArguments(n)
		newCtx = newCtx.WithResult(ok)
		return maybeExit(inp, SymbolicState{State: sym.State, Ctx: newCtx})

	case ast.IAssignment:
		var out Outcome
		for _, so := range evalStr(cfg, inp.underCond(true), sym.Ctx, sym.State, true, i.Expr) {
			if so.Value == nil {
				out = out.union(Outcome{Failure: singleton(SymbolicState{State: so.State, Ctx: sym.Ctx})})
				continue
			}
			newCtx := sym.Ctx.WithVar(i.Id, so.Value.Value).WithResult(so.Value.Result)
			out = out.union(maybeExit(inp, SymbolicState{State: so.State, Ctx: newCtx}))
		}
		return out

	case ast.ISequence:
		out1 := eval(cfg, inp, sym, i.I1)
		out2 := evalSet(cfg, inp, out1.Normal, i.I2)
		return Outcome{
			Normal:  out2.Normal,
			Exit:    out1.Exit.Union(out2.Exit),
			Return:  out1.Return.Union(out2.Return),
			Failure: out1.Failure.Union(out2.Failure),
		}

	case ast.ISubshell:
		iso := sym.Ctx.Isolated()
		sub := eval(cfg, inp.underCond(true), SymbolicState{State: sym.State, Ctx: iso}, i.I)
		var out Outcome
		for _, s := range sub.Normal {
			restored := sym.Ctx.RestoreScope(sym.Ctx, s.Ctx.Result())
			out = out.union(maybeExit(inp, SymbolicState{State: s.State, Ctx: restored}))
		}
		for _, s := range sub.Exit {
			restored := sym.Ctx.RestoreScope(sym.Ctx, s.Ctx.Result())
			out = out.union(maybeExit(inp, SymbolicState{State: s.State, Ctx: restored}))
		}
		for _, s := range sub.Return {
			restored := sym.Ctx.RestoreScope(sym.Ctx, s.Ctx.Result())
			out = out.union(maybeExit(inp, SymbolicState{State: s.State, Ctx: restored}))
		}
		out.Failure = out.Failure.Union(sub.Failure)
		return out

	case ast.INot:
		sub := eval(cfg, inp.underCond(true), sym, i.I)
		var flipped StateSet
		for _, s := range sub.Normal {
			flipped = flipped.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithResult(!s.Ctx.Result())})
		}
		var flippedReturn StateSet
		for _, s := range sub.Return {
			flippedReturn = flippedReturn.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithResult(!s.Ctx.Result())})
		}
		return Outcome{Normal: flipped, Exit: sub.Exit, Return: flippedReturn, Failure: sub.Failure}

	case ast.INoOutput:
		sub := eval(cfg, inp, sym, i.I)
		restore := func(set StateSet) StateSet {
			var out StateSet
			for _, s := range set {
				out = out.Add(SymbolicState{State: s.State.WithStdout(sym.State.Stdout), Ctx: s.Ctx})
			}
			return out
		}
		return Outcome{
			Normal:  restore(sub.Normal),
			Exit:    restore(sub.Exit),
			Return:  restore(sub.Return),
			Failure: sub.Failure,
		}

	case ast.IIf:
		condOut := eval(cfg, inp.underCond(true), sym, i.Cond)
		var trueBranch, falseBranch StateSet
		for _, s := range condOut.Normal {
			if s.Ctx.Result() {
				trueBranch = trueBranch.Add(s)
			} else {
				falseBranch = falseBranch.Add(s)
			}
		}
		thenOut := evalSet(cfg, inp, trueBranch, i.Then)
		elseOut := evalSet(cfg, inp, falseBranch, i.Else)
		return Outcome{
			Normal:  thenOut.Normal.Union(elseOut.Normal),
			Exit:    condOut.Exit.Union(thenOut.Exit).Union(elseOut.Exit),
			Return:  condOut.Return.Union(thenOut.Return).Union(elseOut.Return),
			Failure: condOut.Failure.Union(thenOut.Failure).Union(elseOut.Failure),
		}

	case ast.IPipe:
		return evalPipe(cfg, inp, sym, i)

	case ast.ICallUtility:
		var out Outcome
		for _, lo := range evalList(cfg, inp, sym.Ctx, sym.State, i.Args) {
			if !lo.Ok {
				out = out.union(Outcome{Failure: singleton(SymbolicState{State: lo.State, Ctx: sym.Ctx})})
				continue
			}
			for _, r := range cfg.Utility.Call(context.Background(), lo.State, string(i.Id), lo.Args) {
				newCtx := sym.Ctx.WithResult(r.Bool)
				out = out.union(maybeExit(inp, SymbolicState{State: r.State, Ctx: newCtx}))
			}
		}
		return out

	case ast.ICallFunction:
		return evalCallFunction(cfg, inp, sym, i)

	case ast.IForeach:
		return evalForeach(cfg, inp, sym, i)

	case ast.IWhile:
		return evalWhile(cfg, inp, sym, i)

	default:
		panic(fmt.Sprintf("interp: unknown Instruction %T", ins))
	}
}

func resultForCode(code ast.ReturnCode, prev bool) bool {
	switch code {
	case ast.RSuccess:
		return true
	case ast.RFailure:
		return false
	default:
		return prev
	}
}

func evalPipe(cfg Config, inp Input, sym SymbolicState, i ast.IPipe) Outcome {
	savedStdin := sym.State.Stdin
	callerStdout := sym.State.Stdout
	forked := sym.State.WithStdout(buffer.NewStdout())

	out1 := eval(cfg, inp, SymbolicState{State: forked, Ctx: sym.Ctx}, i.I1)

	out := Outcome{Exit: out1.Exit, Return: out1.Return, Failure: out1.Failure}
	for _, s1 := range out1.Normal {
		piped := s1.State.WithStdin(s1.State.Stdout.PipeToStdin()).WithStdout(callerStdout)
		out2 := eval(cfg, inp, SymbolicState{State: piped, Ctx: s1.Ctx}, i.I2)
		restore := func(set StateSet) StateSet {
			var r StateSet
			for _, s := range set {
				r = r.Add(SymbolicState{State: s.State.WithStdin(savedStdin), Ctx: s.Ctx})
			}
			return r
		}
		out.Normal = out.Normal.Union(restore(out2.Normal))
		out.Exit = out.Exit.Union(restore(out2.Exit))
		out.Return = out.Return.Union(restore(out2.Return))
		out.Failure = out.Failure.Union(restore(out2.Failure))
	}
	return out
}

func evalCallFunction(cfg Config, inp Input, sym SymbolicState, i ast.ICallFunction) Outcome {
	var out Outcome
	for _, lo := range evalList(cfg, inp, sym.Ctx, sym.State, i.Args) {
		if !lo.Ok {
			out = out.union(Outcome{Failure: singleton(SymbolicState{State: lo.State, Ctx: sym.Ctx})})
			continue
		}
		body, ok := sym.Ctx.Func(i.Id)
		if !ok {
			newCtx := sym.Ctx.WithResult(false)
			out = out.union(maybeExit(inp, SymbolicState{State: lo.State, Ctx: newCtx}))
			continue
		}
		calleeCtx := sym.Ctx.WithArguments(lo.Args)
		calleeInp := Input{UnderCondition: inp.UnderCondition, Argument0: string(i.Id)}
		sub := eval(cfg, calleeInp, SymbolicState{State: lo.State, Ctx: calleeCtx}, body)

		for _, s := range sub.Normal {
			out.Normal = out.Normal.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithArguments(sym.Ctx.Arguments())})
		}
		for _, s := range sub.Return {
			out.Normal = out.Normal.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithArguments(sym.Ctx.Arguments())})
		}
		for _, s := range sub.Exit {
			out.Exit = out.Exit.Add(SymbolicState{State: s.State, Ctx: s.Ctx.WithArguments(sym.Ctx.Arguments())})
		}
		out.Failure = out.Failure.Union(sub.Failure)
	}
	return out
}
