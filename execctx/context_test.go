package execctx_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/execctx"
)

func TestVarDefaultsEmpty(t *testing.T) {
	c := qt.New(t)
	ctx := execctx.New(nil)
	c.Assert(ctx.Var("x"), qt.Equals, "")
	ctx2 := ctx.WithVar("x", "hi")
	c.Assert(ctx2.Var("x"), qt.Equals, "hi")
	c.Assert(ctx.Var("x"), qt.Equals, "") // original untouched
}

func TestArgumentIndexing(t *testing.T) {
	c := qt.New(t)
	ctx := execctx.New([]string{"a", "b"})
	c.Assert(ctx.Argument(1), qt.Equals, "a")
	c.Assert(ctx.Argument(2), qt.Equals, "b")
	c.Assert(ctx.Argument(3), qt.Equals, "")
	c.Assert(ctx.Argument(0), qt.Equals, "")
}

func TestShift(t *testing.T) {
	c := qt.New(t)
	ctx := execctx.New([]string{"a", "b", "c"})
	ctx2, ok := ctx.WithShiftedArguments(2)
	c.Assert(ok, qt.IsTrue)
	c.Assert(ctx2.Arguments(), qt.DeepEquals, []string{"c"})

	_, ok = ctx.WithShiftedArguments(10)
	c.Assert(ok, qt.IsFalse)
}

func TestFuncOverride(t *testing.T) {
	c := qt.New(t)
	ctx := execctx.New(nil).
		WithFunc("f", ast.IReturn{Code: ast.RSuccess}).
		WithFunc("f", ast.IReturn{Code: ast.RFailure})
	body, ok := ctx.Func("f")
	c.Assert(ok, qt.IsTrue)
	c.Assert(body, qt.Equals, ast.Instruction(ast.IReturn{Code: ast.RFailure}))
}

func TestRestoreScope(t *testing.T) {
	c := qt.New(t)
	caller := execctx.New([]string{"caller-arg"}).WithVar("x", "caller-val")
	callee := execctx.New([]string{"callee-arg"}).WithVar("x", "callee-val").WithResult(false)

	restored := callee.RestoreScope(caller, callee.Result())
	c.Assert(restored.Var("x"), qt.Equals, "caller-val")
	c.Assert(restored.Arguments(), qt.DeepEquals, []string{"caller-arg"})
	c.Assert(restored.Result(), qt.IsFalse)
}
