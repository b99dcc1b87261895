// Package ast defines the abstract syntax tree consumed by the symbolic
// and concrete interpreters. Parsing of the Language (or translation from
// shell) is out of scope here: these types are the interface the upstream
// producer is expected to build, by hand or from a parser not included in
// this module.
package ast

// Identifier is a variable or function name. Equality is by bytes.
type Identifier string

// ReturnCode is the operand of IExit and IReturn.
type ReturnCode int

const (
	RPrevious ReturnCode = iota // keep the context's current result
	RSuccess                    // force result = true
	RFailure                    // force result = false
)

// SplitMode tags a single element of a ListExpr.
type SplitMode int

const (
	DontSplit SplitMode = iota
	Split
)

// Instruction is the closed sum of statement forms the Language supports.
// It is a sealed interface: every implementation lives in this package.
type Instruction interface {
	instructionNode()
}

// IExit terminates the whole program with the given boolean result.
type IExit struct {
	Code ReturnCode
}

// IReturn terminates the current function body with the given boolean result.
type IReturn struct {
	Code ReturnCode
}

// IShift drops the first N positional arguments (default 1).
type IShift struct {
	N int // 0 means "use the default of 1"
}

// IAssignment binds Id to the string produced by evaluating Expr.
type IAssignment struct {
	Id   Identifier
	Expr StringExpr
}

// ISequence runs I1 then, if it completed normally, I2.
type ISequence struct {
	I1, I2 Instruction
}

// ISubshell runs I in an isolated context; only the filesystem/stdin/stdout
// escape to the caller, never var-env, arguments, or func-env.
type ISubshell struct {
	I Instruction
}

// INot runs I under a condition context and flips its boolean result.
type INot struct {
	I Instruction
}

// INoOutput runs I but discards any stdout it produced, restoring the
// caller's stdout in every non-failure resulting state.
type INoOutput struct {
	I Instruction
}

// IIf runs Cond under a condition context, then Then or Else depending on
// the result.
type IIf struct {
	Cond, Then, Else Instruction
}

// IPipe connects I1's stdout to I2's stdin.
type IPipe struct {
	I1, I2 Instruction
}

// ICallUtility evaluates Args and delegates to the external utility
// interpreter.
type ICallUtility struct {
	Id   Identifier
	Args ListExpr
}

// ICallFunction evaluates Args and invokes the function bound to Id in the
// context's function environment.
type ICallFunction struct {
	Id   Identifier
	Args ListExpr
}

// IForeach binds Id to each element produced by evaluating Args in turn,
// running I for each.
type IForeach struct {
	Id   Identifier
	Args ListExpr
	I    Instruction
}

// IWhile repeatedly runs Cond then, while it is true, Body, bounded by the
// interpreter's configured loop limit.
type IWhile struct {
	Cond, Body Instruction
}

func (IExit) instructionNode()         {}
func (IReturn) instructionNode()       {}
func (IShift) instructionNode()        {}
func (IAssignment) instructionNode()   {}
func (ISequence) instructionNode()     {}
func (ISubshell) instructionNode()     {}
func (INot) instructionNode()          {}
func (INoOutput) instructionNode()     {}
func (IIf) instructionNode()           {}
func (IPipe) instructionNode()         {}
func (ICallUtility) instructionNode()  {}
func (ICallFunction) instructionNode() {}
func (IForeach) instructionNode()      {}
func (IWhile) instructionNode()        {}

// StringExpr is the closed sum of string-expression forms.
type StringExpr interface {
	stringExprNode()
}

// SLiteral is a constant string.
type SLiteral struct {
	Value string
}

// SVariable reads a variable, defaulting to the empty string if unset.
type SVariable struct {
	Id Identifier
}

// SArgument reads argument N; N=0 is argument0 (the call name), N>0 reads
// the Nth positional argument (1-indexed), defaulting to "" out of range.
type SArgument struct {
	N int
}

// SSubshell runs I in an isolated context and yields its serialized stdout,
// carrying I's boolean result forward.
type SSubshell struct {
	I Instruction
}

// SConcat concatenates the strings produced by E1 and E2; the rightmost
// successfully-evaluated boolean result wins.
type SConcat struct {
	E1, E2 StringExpr
}

func (SLiteral) stringExprNode()  {}
func (SVariable) stringExprNode() {}
func (SArgument) stringExprNode() {}
func (SSubshell) stringExprNode() {}
func (SConcat) stringExprNode()   {}

// ListElem is one element of a ListExpr: a string expression tagged with
// whether its value should be field-split.
type ListElem struct {
	Expr  StringExpr
	Split SplitMode
}

// ListExpr is an ordered sequence of tagged string expressions.
type ListExpr []ListElem

// FuncDef is a top-level function definition: a name bound to a body
// instruction.
type FuncDef struct {
	Id   Identifier
	Body Instruction
}

// Program is a complete compilation unit: a list of function definitions
// installed left-to-right (later definitions override earlier ones with the
// same name) followed by a top-level instruction.
type Program struct {
	Funcs []FuncDef
	Instr Instruction
}
