package ast

import (
	"math"

	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

type Kind uint8

const (
	KindLiteral Kind = iota
	KindUnary
	KindBinary
	KindConvert
	KindVarDecl
	KindVarRead
	KindVarWrite
	KindFnDef
	KindFnCall
	KindFnReturn
	KindScope
	KindCondition
	KindError
)

var kindNames = [...]string{
	KindLiteral:   "Literal",
	KindUnary:     "Unary",
	KindBinary:    "Binary",
	KindConvert:   "Convert",
	KindVarDecl:   "VarDecl",
	KindVarRead:   "VarRead",
	KindVarWrite:  "VarWrite",
	KindFnDef:     "FnDef",
	KindFnCall:    "FnCall",
	KindFnReturn:  "FnReturn",
	KindScope:     "Scope",
	KindCondition: "Condition",
	KindError:     "Error",
}

func (k Kind) String() string {
	return kindNames[k]
}

// GlobalID is the local ID of variables that live in the global map.
const GlobalID uint64 = math.MaxUint64

type Expr interface {
	Kind() Kind
	Type() types.Type
	Span() token.Span

	is_Expr()
}

type exprBase struct {
	typ  types.Type
	span token.Span
}

func (e *exprBase) Type() types.Type { return e.typ }
func (e *exprBase) Span() token.Span { return e.span }
func (e *exprBase) is_Expr()         {}

type Literal struct {
	exprBase
	value uint64
}

func (e *Literal) Kind() Kind { return KindLiteral }

// Value returns the raw 64 bit payload.
func (e *Literal) Value() uint64 { return e.value }

func (e *Literal) Int() int64 { return int64(e.value) }

func (e *Literal) Float() float64 { return math.Float64frombits(e.value) }

func (e *Literal) Bool() bool { return e.value != 0 }

func (c *Context) NewLiteral(value uint64, typ types.Type, span token.Span) *Literal {
	e := &Literal{exprBase{typ, span}, value}
	c.add(e)
	return e
}

type Unary struct {
	exprBase
	op    token.UnaryOperator
	child Expr
}

func (e *Unary) Kind() Kind                     { return KindUnary }
func (e *Unary) Operation() token.UnaryOperator { return e.op }
func (e *Unary) Child() Expr                    { return e.child }

// NewUnary creates a unary expression from its operator token.
func (c *Context) NewUnary(tkn token.TokenKind, isPost bool, child Expr, typ types.Type, span token.Span) *Unary {
	e := &Unary{exprBase{typ, span}, token.ToUnaryOperator(tkn, isPost), child}
	c.add(e)
	return e
}

type Binary struct {
	exprBase
	lhs Expr
	op  token.BinaryOperator
	rhs Expr
}

func (e *Binary) Kind() Kind                      { return KindBinary }
func (e *Binary) LHS() Expr                       { return e.lhs }
func (e *Binary) RHS() Expr                       { return e.rhs }
func (e *Binary) Operation() token.BinaryOperator { return e.op }

func (c *Context) NewBinary(lhs Expr, op token.BinaryOperator, rhs Expr, typ types.Type, span token.Span) *Binary {
	e := &Binary{exprBase{typ, span}, lhs, op, rhs}
	c.add(e)
	return e
}

// Convert converts its child to its own Type.
type Convert struct {
	exprBase
	child Expr
}

func (e *Convert) Kind() Kind  { return KindConvert }
func (e *Convert) Child() Expr { return e.child }

func (c *Context) NewConvert(child Expr, to types.Type, span token.Span) *Convert {
	e := &Convert{exprBase{to, span}, child}
	c.add(e)
	return e
}

// VarDecl declares a variable. Its Type is the declared type, const included.
type VarDecl struct {
	exprBase
	name     string
	init     Expr
	isGlobal bool
}

func (e *VarDecl) Kind() Kind     { return KindVarDecl }
func (e *VarDecl) Name() string   { return e.name }
func (e *VarDecl) IsGlobal() bool { return e.isGlobal }

// Value returns the initial value, or nil for uninitialized variables.
func (e *VarDecl) Value() Expr { return e.init }

func (c *Context) NewVarDecl(name string, init Expr, isGlobal bool, typ types.Type, span token.Span) *VarDecl {
	e := &VarDecl{exprBase{typ, span}, name, init, isGlobal}
	c.add(e)
	return e
}

type VarRead struct {
	exprBase
	name    string
	localID uint64
}

func (e *VarRead) Kind() Kind     { return KindVarRead }
func (e *VarRead) Name() string   { return e.name }
func (e *VarRead) IsGlobal() bool { return e.localID == GlobalID }

// LocalID returns the local slot of the variable. It panics for globals.
func (e *VarRead) LocalID() uint64 {
	if e.IsGlobal() {
		panic("unreachable: variable " + e.name + " is global")
	}
	return e.localID
}

// UnsafeLocalID returns the slot without checking, GlobalID for globals.
func (e *VarRead) UnsafeLocalID() uint64 { return e.localID }

// NewVarRead creates a read of a local variable, or of a global when id is
// GlobalID.
func (c *Context) NewVarRead(name string, id uint64, typ types.Type, span token.Span) *VarRead {
	e := &VarRead{exprBase{typ, span}, name, id}
	c.add(e)
	return e
}

type VarWrite struct {
	exprBase
	name    string
	value   Expr
	localID uint64
}

func (e *VarWrite) Kind() Kind            { return KindVarWrite }
func (e *VarWrite) Name() string          { return e.name }
func (e *VarWrite) Value() Expr           { return e.value }
func (e *VarWrite) IsGlobal() bool        { return e.localID == GlobalID }
func (e *VarWrite) UnsafeLocalID() uint64 { return e.localID }

func (e *VarWrite) LocalID() uint64 {
	if e.IsGlobal() {
		panic("unreachable: variable " + e.name + " is global")
	}
	return e.localID
}

func (c *Context) NewVarWrite(name string, value Expr, id uint64, typ types.Type, span token.Span) *VarWrite {
	e := &VarWrite{exprBase{typ, span}, name, value, id}
	c.add(e)
	return e
}

// FnDef is a function declaration, completed into a definition through a
// FnBuilder once its body is parsed.
type FnDef struct {
	exprBase
	name    string
	params  []string
	body    Expr
	returns []*FnReturn
	defined bool
}

func (e *FnDef) Kind() Kind              { return KindFnDef }
func (e *FnDef) Name() string            { return e.name }
func (e *FnDef) ParamNames() []string    { return e.params }
func (e *FnDef) FnType() *types.Fn       { return e.typ.(*types.Fn) }
func (e *FnDef) IsDefined() bool         { return e.defined }
func (e *FnDef) Body() Expr              { return e.body }
func (e *FnDef) ReturnList() []*FnReturn { return e.returns }

// NewFnDef declares a function. The declaration has no body until a builder
// from DefineFn finishes it.
func (c *Context) NewFnDef(name string, params []string, typ *types.Fn, span token.Span) *FnDef {
	e := &FnDef{exprBase: exprBase{typ, span}, name: name, params: params}
	c.add(e)
	return e
}

// FnBuilder collects the parts of a function definition discovered while
// its body is parsed.
type FnBuilder struct {
	def     *FnDef
	returns []*FnReturn
}

// DefineFn starts the definition of a declared function.
func (c *Context) DefineFn(def *FnDef) *FnBuilder {
	if def.defined {
		panic("unreachable: function " + def.name + " is already defined")
	}
	return &FnBuilder{def: def}
}

func (b *FnBuilder) Decl() *FnDef { return b.def }

// PushReturn records a return statement found inside the body.
func (b *FnBuilder) PushReturn(ret *FnReturn) {
	b.returns = append(b.returns, ret)
}

// ReturnCount is the number of returns pushed so far.
func (b *FnBuilder) ReturnCount() int {
	return len(b.returns)
}

// Finish attaches the body and the collected returns to the declaration.
func (b *FnBuilder) Finish(body Expr) *FnDef {
	if b.def.defined {
		panic("unreachable: function " + b.def.name + " finished twice")
	}
	b.def.body = body
	b.def.returns = b.returns
	b.def.defined = true
	return b.def
}

type FnCall struct {
	exprBase
	decl *FnDef
	args []Expr
}

func (e *FnCall) Kind() Kind        { return KindFnCall }
func (e *FnCall) Decl() *FnDef      { return e.decl }
func (e *FnCall) Name() string      { return e.decl.name }
func (e *FnCall) Arguments() []Expr { return e.args }

// NewFnCall creates a call of decl. Its type is the callee's return type.
func (c *Context) NewFnCall(decl *FnDef, args []Expr, span token.Span) *FnCall {
	e := &FnCall{exprBase{decl.FnType().Return(), span}, decl, args}
	c.add(e)
	return e
}

type FnReturn struct {
	exprBase
	value Expr
}

func (e *FnReturn) Kind() Kind { return KindFnReturn }

// Value returns the returned expression, nil for a bare return.
func (e *FnReturn) Value() Expr { return e.value }

func (c *Context) NewFnReturn(value Expr, span token.Span) *FnReturn {
	e := &FnReturn{exprBase{c.Void(), span}, value}
	c.add(e)
	return e
}

type Scope struct {
	exprBase
	body []Expr
}

func (e *Scope) Kind() Kind   { return KindScope }
func (e *Scope) Body() []Expr { return e.body }

func (c *Context) NewScope(body []Expr, span token.Span) *Scope {
	e := &Scope{exprBase{c.Void(), span}, body}
	c.add(e)
	return e
}

type Condition struct {
	exprBase
	cond     Expr
	ifStmt   Expr
	elseStmt Expr
}

func (e *Condition) Kind() Kind        { return KindCondition }
func (e *Condition) IfCondition() Expr { return e.cond }
func (e *Condition) IfStatement() Expr { return e.ifStmt }

// ElseStatement returns the else branch, nil when there is none.
func (e *Condition) ElseStatement() Expr { return e.elseStmt }

func (c *Context) NewCondition(cond, ifStmt, elseStmt Expr, span token.Span) *Condition {
	e := &Condition{exprBase{c.Void(), span}, cond, ifStmt, elseStmt}
	c.add(e)
	return e
}

// Error stands in for an expression that failed to parse or resolve. The
// failure was already reported.
type Error struct {
	exprBase
}

func (e *Error) Kind() Kind { return KindError }

func (c *Context) NewError(span token.Span) *Error {
	e := &Error{exprBase{c.Arena.Error(), span}}
	c.add(e)
	return e
}

// IsError reports whether e is an error expression or has the error type.
func IsError(e Expr) bool {
	return e.Kind() == KindError || types.IsError(e.Type())
}
