package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOpPrecedence(t *testing.T) {
	assert.Less(t, GetOpPrecedence(STAR), GetOpPrecedence(PLUS))
	assert.Less(t, GetOpPrecedence(PLUS), GetOpPrecedence(LSHIFT))
	assert.Less(t, GetOpPrecedence(LESS), GetOpPrecedence(EQEQ))
	assert.Less(t, GetOpPrecedence(ANDAND), GetOpPrecedence(OROR))
	assert.Equal(t, GetOpPrecedence(SLASH), GetOpPrecedence(PERCENT))

	for _, tkn := range []TokenKind{RPAREN, COMMA, SEMICOLON, ERROR, EOF, EQUALS, PLUSEQ, AS, IDENT, PLUSPLUS} {
		assert.Equal(t, NoPrecedence, GetOpPrecedence(tkn), tkn.String())
	}
}

func TestIsAssignment(t *testing.T) {
	for tkn := EQUALS; tkn <= RSHIFTEQ; tkn++ {
		assert.True(t, IsAssignment(tkn), tkn.String())
	}
	assert.False(t, IsAssignment(EQEQ))
	assert.False(t, IsAssignment(PLUS))
	assert.False(t, IsAssignment(PLUSPLUS))
}

func TestToBinaryOperator(t *testing.T) {
	cases := map[TokenKind]BinaryOperator{
		PLUS:      OpSum,
		PERCENT:   OpMod,
		OROR:      OpBoolOr,
		EQEQ:      OpEqual,
		EQUALS:    OpAssign,
		STAREQ:    OpAssignMul,
		RSHIFTEQ:  OpAssignShiftRight,
		GREATEREQ: OpGreaterEqual,
	}
	for tkn, op := range cases {
		assert.Equal(t, op, ToBinaryOperator(tkn), tkn.String())
		assert.Equal(t, tkn.String(), op.String())
	}
	assert.Panics(t, func() { ToBinaryOperator(SEMICOLON) })
}

func TestBinaryOperatorClasses(t *testing.T) {
	assert.Equal(t, OpSum, OpAssignSum.NonAssigning())
	assert.Equal(t, OpShiftRight, OpAssignShiftRight.NonAssigning())
	assert.Equal(t, OpAssign, OpAssign.NonAssigning())
	assert.Equal(t, OpMul, OpMul.NonAssigning())

	assert.True(t, OpLess.IsComparison())
	assert.True(t, OpEqual.IsComparison())
	assert.False(t, OpBoolAnd.IsComparison())
	assert.True(t, OpAssignBitXor.IsAssignment())
	assert.False(t, OpEqual.IsAssignment())
}

func TestToUnaryOperator(t *testing.T) {
	assert.Equal(t, OpPreIncrement, ToUnaryOperator(PLUSPLUS, false))
	assert.Equal(t, OpPostIncrement, ToUnaryOperator(PLUSPLUS, true))
	assert.Equal(t, OpPreDecrement, ToUnaryOperator(MINUSMINUS, false))
	assert.Equal(t, OpPostDecrement, ToUnaryOperator(MINUSMINUS, true))
	assert.Equal(t, OpNegate, ToUnaryOperator(MINUS, true))
	assert.Equal(t, OpDereference, ToUnaryOperator(STAR, false))
	assert.Equal(t, OpAddressOf, ToUnaryOperator(AND, false))
	assert.True(t, OpPostDecrement.IsPost())
	assert.False(t, OpBitNot.IsPost())
	assert.Panics(t, func() { ToUnaryOperator(SLASH, false) })

	for _, tkn := range []TokenKind{PLUS, MINUS, STAR, AND, BANG, TILDE, PLUSPLUS, MINUSMINUS} {
		assert.True(t, IsUnaryOperator(tkn), tkn.String())
	}
	assert.False(t, IsUnaryOperator(SLASH))
}
