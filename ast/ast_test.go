package ast_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/ast"
)

func TestProgramShape(t *testing.T) {
	c := qt.New(t)

	// x := "a"; echo $x
	prog := ast.Program{
		Instr: ast.ISequence{
			I1: ast.IAssignment{Id: "x", Expr: ast.SLiteral{Value: "a"}},
			I2: ast.ICallUtility{
				Id: "echo",
				Args: ast.ListExpr{
					{Expr: ast.SVariable{Id: "x"}, Split: ast.Split},
				},
			},
		},
	}

	seq, ok := prog.Instr.(ast.ISequence)
	c.Assert(ok, qt.IsTrue)
	assign, ok := seq.I1.(ast.IAssignment)
	c.Assert(ok, qt.IsTrue)
	c.Assert(assign.Id, qt.Equals, ast.Identifier("x"))
	call, ok := seq.I2.(ast.ICallUtility)
	c.Assert(ok, qt.IsTrue)
	c.Assert(call.Id, qt.Equals, ast.Identifier("echo"))
	c.Assert(call.Args, qt.HasLen, 1)
	c.Assert(call.Args[0].Split, qt.Equals, ast.Split)
}

func TestFuncDefOverride(t *testing.T) {
	c := qt.New(t)
	prog := ast.Program{
		Funcs: []ast.FuncDef{
			{Id: "f", Body: ast.IReturn{Code: ast.RSuccess}},
			{Id: "f", Body: ast.IReturn{Code: ast.RFailure}},
		},
	}
	c.Assert(prog.Funcs, qt.HasLen, 2)
	c.Assert(prog.Funcs[1].Body, qt.Equals, ast.Instruction(ast.IReturn{Code: ast.RFailure}))
}
