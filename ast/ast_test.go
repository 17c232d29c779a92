package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

var span = token.Span{StartLine: 1, EndLine: 1, Line: "x", Lexeme: "x"}

// build creates the same expressions on every call, so that pairs of calls
// give structurally equal but distinct nodes.
func build(c *Context) []Expr {
	i64 := c.Builtin(types.I64, false)
	one := func() Expr { return c.NewLiteral(1, i64, span) }
	read := func() Expr { return c.NewVarRead("x", 0, i64, span) }

	return []Expr{
		one(),
		c.NewUnary(token.MINUS, false, one(), i64, span),
		c.NewUnary(token.PLUSPLUS, true, read(), i64, span),
		c.NewBinary(one(), token.OpSum, read(), i64, span),
		c.NewConvert(one(), c.Builtin(types.U8, false), span),
		c.NewVarDecl("y", one(), false, i64, span),
		read(),
		c.NewVarRead("g", GlobalID, i64, span),
		c.NewVarWrite("x", one(), 0, i64, span),
		c.NewFnReturn(read(), span),
		c.NewFnReturn(nil, span),
		c.NewCondition(c.NewLiteral(1, c.Bool(false), span), one(), nil, span),
		c.NewError(span),
	}
}

func TestEqualAndHash(t *testing.T) {
	c := NewContext()
	lhs, rhs := build(c), build(c)

	for i := range lhs {
		t.Run(lhs[i].Kind().String(), func(t *testing.T) {
			require.NotSame(t, lhs[i], rhs[i])
			assert.True(t, Equal(lhs[i], rhs[i]))
			assert.Equal(t, Hash(lhs[i]), Hash(rhs[i]))
		})
	}

	// distinct expressions never compare equal
	for i := range lhs {
		for j := range rhs {
			if i != j {
				assert.False(t, Equal(lhs[i], rhs[j]), "%s vs %s", Dump(lhs[i]), Dump(rhs[j]))
			}
		}
	}
}

func TestEqualDetails(t *testing.T) {
	c := NewContext()
	i64 := c.Builtin(types.I64, false)
	u64 := c.Builtin(types.U64, false)

	assert.False(t, Equal(c.NewLiteral(1, i64, span), c.NewLiteral(2, i64, span)))
	assert.False(t, Equal(c.NewLiteral(1, i64, span), c.NewLiteral(1, u64, span)))
	assert.False(t, Equal(c.NewVarRead("x", 0, i64, span), c.NewVarRead("x", 1, i64, span)))
	assert.False(t, Equal(
		c.NewUnary(token.PLUSPLUS, true, c.NewVarRead("x", 0, i64, span), i64, span),
		c.NewUnary(token.PLUSPLUS, false, c.NewVarRead("x", 0, i64, span), i64, span),
	))

	scope := c.NewScope(nil, span)
	assert.True(t, Equal(scope, scope))
	assert.False(t, Equal(scope, c.NewScope(nil, span)))
	assert.Equal(t, Hash(scope), Hash(c.NewScope(nil, span)))

	fn := c.NewFnDef("f", nil, c.Fn(c.Void(), nil), span)
	assert.False(t, Equal(fn, fn))

	f1 := c.NewFnCall(fn, []Expr{c.NewLiteral(1, i64, span)}, span)
	f2 := c.NewFnCall(fn, []Expr{c.NewLiteral(1, i64, span)}, span)
	other := c.NewFnDef("f", nil, c.Fn(c.Void(), nil), span)
	f3 := c.NewFnCall(other, []Expr{c.NewLiteral(1, i64, span)}, span)
	assert.True(t, Equal(f1, f2))
	assert.Equal(t, Hash(f1), Hash(f2))
	assert.False(t, Equal(f1, f3))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, f1))
}

func TestContextOwnsExpressions(t *testing.T) {
	c := NewContext()
	before := c.ExprCount()
	lit := c.NewLiteral(0, c.Bool(false), span)
	assert.Equal(t, before+1, c.ExprCount())
	assert.True(t, c.Owns(lit))
	assert.False(t, NewContext().Owns(lit))
}

func TestFnBuilder(t *testing.T) {
	c := NewContext()
	i64 := c.Builtin(types.I64, false)
	def := c.NewFnDef("f", []string{"a"}, c.Fn(i64, []types.Type{i64}), span)
	assert.False(t, def.IsDefined())
	assert.Nil(t, def.Body())

	b := c.DefineFn(def)
	ret := c.NewFnReturn(c.NewVarRead("a", 0, i64, span), span)
	b.PushReturn(ret)
	assert.Equal(t, 1, b.ReturnCount())
	assert.Same(t, def, b.Decl())

	body := c.NewScope([]Expr{ret}, span)
	assert.Same(t, def, b.Finish(body))
	assert.True(t, def.IsDefined())
	assert.Equal(t, []*FnReturn{ret}, def.ReturnList())
	assert.Equal(t, "(fn f (a) (scope (return a)))", Dump(def))

	assert.Panics(t, func() { c.DefineFn(def) })
	assert.Panics(t, func() { b.Finish(body) })

	call := c.NewFnCall(def, []Expr{c.NewLiteral(3, i64, span)}, span)
	assert.Same(t, i64, call.Type())
	assert.Equal(t, "(call f 3)", Dump(call))
}

func TestIsError(t *testing.T) {
	c := NewContext()
	assert.True(t, IsError(c.NewError(span)))
	assert.True(t, IsError(c.NewBinary(c.NewError(span), token.OpSum, c.NewError(span), c.Arena.Error(), span)))
	assert.False(t, IsError(c.NewLiteral(0, c.Bool(false), span)))
}

func TestDump(t *testing.T) {
	c := NewContext()
	i64 := c.Builtin(types.I64, false)
	f64 := c.Builtin(types.F64, false)
	b := c.Bool(false)

	neg := c.NewLiteral(uint64(math.MaxUint64), i64, span)
	assert.Equal(t, "-1", Dump(neg))
	assert.Equal(t, "2.5", Dump(c.NewLiteral(math.Float64bits(2.5), f64, span)))
	assert.Equal(t, "true", Dump(c.NewLiteral(1, b, span)))

	cond := c.NewCondition(
		c.NewVarRead("ok", GlobalID, b, span),
		c.NewScope([]Expr{c.NewVarWrite("x", neg, 0, i64, span)}, span),
		c.NewScope(nil, span),
		span,
	)
	assert.Equal(t, "(if ok (scope (= x -1)) (scope))", Dump(cond))
	assert.Equal(t, "(global g 1)", Dump(c.NewVarDecl("g", c.NewLiteral(1, i64, span), true, i64, span)))
	assert.Equal(t, "(var v)", Dump(c.NewVarDecl("v", nil, false, i64, span)))
	assert.Equal(t, "<error>", Dump(c.NewError(span)))
}

func TestDescribe(t *testing.T) {
	c := NewContext()
	i64 := c.Builtin(types.I64, false)
	bin := c.NewBinary(c.NewLiteral(1, i64, span), token.OpMul, c.NewLiteral(2, i64, span), i64, span)

	assert.Equal(t, Node{
		Kind: "Binary",
		Text: "*",
		Type: "i64",
		Line: 1,
		Children: []Node{
			{Kind: "Literal", Text: "1", Type: "i64", Line: 1},
			{Kind: "Literal", Text: "2", Type: "i64", Line: 1},
		},
	}, Describe(bin))
}

func TestASTAccessors(t *testing.T) {
	c := NewContext()
	i64 := c.Builtin(types.I64, false)
	fn := c.NewFnDef("f", nil, c.Fn(c.Void(), nil), span)
	global := c.NewVarDecl("g", nil, true, i64, span)

	tree := &AST{Expressions: []Expr{global, fn}, Ctx: c}
	assert.Equal(t, []*FnDef{fn}, tree.Functions())
	assert.Equal(t, []*VarDecl{global}, tree.Globals())
}
