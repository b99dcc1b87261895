// Package execctx implements the Language's evaluation Context: a variable environment, a function environment, the current
// positional arguments, and the previous boolean result ($?). Context is
// immutable; every mutation returns a new Context, so callers never need to
// save/restore fields by hand except across scope boundaries that must not
// let changes escape (subshells, function calls).
package execctx

import (
	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/symenv"
)

// Context is the immutable evaluation context threaded through the
// interpreter alongside each symbolic state.
type Context struct {
	vars      symenv.Env[ast.Identifier, string]
	funcs     symenv.Env[ast.Identifier, ast.Instruction]
	arguments []string
	result    bool
}

// New returns the initial context for running a program: empty var and func
// environments, the given positional arguments, and result = true.
func New(arguments []string) Context {
	return Context{
		vars:      symenv.New[ast.Identifier, string](),
		funcs:     symenv.New[ast.Identifier, ast.Instruction](),
		arguments: append([]string(nil), arguments...),
		result:    true,
	}
}

// Var looks up a variable, defaulting to "" if unset.
func (c Context) Var(id ast.Identifier) string {
	return c.vars.Get(id, "")
}

// WithVar binds id to val, returning a new Context.
func (c Context) WithVar(id ast.Identifier, val string) Context {
	c.vars = c.vars.With(id, val)
	return c
}

// Func looks up a function body by name.
func (c Context) Func(id ast.Identifier) (ast.Instruction, bool) {
	return c.funcs.Lookup(id)
}

// WithFunc binds id to body, returning a new Context. Installing function
// definitions left-to-right, later calls override earlier ones with the
// same name.
func (c Context) WithFunc(id ast.Identifier, body ast.Instruction) Context {
	c.funcs = c.funcs.With(id, body)
	return c
}

// Arguments returns the current positional argument list. The returned
// slice must not be mutated.
func (c Context) Arguments() []string { return c.arguments }

// Argument returns the nth positional argument (1-indexed), or "" if n is
// out of range.
func (c Context) Argument(n int) string {
	if n < 1 || n > len(c.arguments) {
		return ""
	}
	return c.arguments[n-1]
}

// WithArguments returns a new Context with the positional arguments replaced.
func (c Context) WithArguments(args []string) Context {
	c.arguments = append([]string(nil), args...)
	return c
}

// WithShiftedArguments drops the first n arguments, returning the new
// Context and whether there were enough arguments to drop.
func (c Context) WithShiftedArguments(n int) (Context, bool) {
	if n > len(c.arguments) {
		return c, false
	}
	c.arguments = append([]string(nil), c.arguments[n:]...)
	return c, true
}

// Result returns the context's current boolean result ($?).
func (c Context) Result() bool { return c.result }

// WithResult returns a new Context with result replaced.
func (c Context) WithResult(b bool) Context {
	c.result = b
	return c
}

// Isolated returns a new Context suitable for a subshell or string-expr
// subshell substitution: arguments and var-env are copied (mutations inside
// will not escape, since Context is immutable and the caller keeps its own
// value), and the function environment is shared as-is: mutations to
// var-env, arguments, and func-env must not escape a subshell. Since
// Context is a plain value type, "isolation" here
// is simply: the subshell gets a copy to evolve independently, and the
// caller's own Context value is never written back to.
func (c Context) Isolated() Context {
	return c
}

// Equal reports equality for state-set deduplication purposes: same arguments, same result, and the same variable bindings. The function
// environment is deliberately excluded: it is installed once by the program
// driver and never mutated afterwards (no evaluation rule rebinds it), so it
// is invariant across every state live during a single run and comparing it
// would either always succeed or require comparing ast.Instruction values,
// which are not comparable with == once they embed a slice-backed
// StringExpr/ListExpr.
func (c Context) Equal(o Context) bool {
	if c.result != o.result || len(c.arguments) != len(o.arguments) {
		return false
	}
	for i := range c.arguments {
		if c.arguments[i] != o.arguments[i] {
			return false
		}
	}
	return c.vars.EqualFunc(o.vars, func(a, b string) bool { return a == b })
}

// RestoreScope returns a Context with caller's var-env, func-env, and
// arguments, but the given result; the receiver's own fields are not used.
// It serves where a callee's scope must not leak into the caller except via
// the result field.
func (c Context) RestoreScope(caller Context, result bool) Context {
	caller.result = result
	return caller
}
