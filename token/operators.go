package token

// NoPrecedence is returned by GetOpPrecedence for every token that is not a
// binary operator. Lower precedence values bind tighter, so a loop running
// while the precedence is below its limit stops on it without a special case.
const NoPrecedence uint8 = 255

// GetOpPrecedence returns the precedence of a binary operator, or
// NoPrecedence. ')', ',', ';' and ERROR also get NoPrecedence.
func GetOpPrecedence(t TokenKind) uint8 {
	switch t {
	case STAR, SLASH, PERCENT:
		return 3
	case PLUS, MINUS:
		return 4
	case LSHIFT, RSHIFT:
		return 5
	case LESS, LESSEQ, GREATER, GREATEREQ:
		return 6
	case EQEQ, NOTEQ:
		return 7
	case AND:
		return 8
	case CARET:
		return 9
	case OR:
		return 10
	case ANDAND:
		return 11
	case OROR:
		return 12
	}
	return NoPrecedence
}

// IsAssignment is true for '=' and every compound assignment.
func IsAssignment(t TokenKind) bool {
	return t >= EQUALS && t <= RSHIFTEQ
}

// IsUnaryOperator is true for tokens that can start a unary expression.
func IsUnaryOperator(t TokenKind) bool {
	switch t {
	case PLUS, MINUS, STAR, AND, BANG, TILDE, PLUSPLUS, MINUSMINUS:
		return true
	}
	return false
}

type UnaryOperator uint8

const (
	OpPreIncrement UnaryOperator = iota
	OpPostIncrement
	OpPreDecrement
	OpPostDecrement
	OpUnaryPlus
	OpNegate
	OpAddressOf
	OpDereference
	OpBoolNot
	OpBitNot
)

var unaryNames = [...]string{
	OpPreIncrement:  "++",
	OpPostIncrement: "++",
	OpPreDecrement:  "--",
	OpPostDecrement: "--",
	OpUnaryPlus:     "+",
	OpNegate:        "-",
	OpAddressOf:     "&",
	OpDereference:   "*",
	OpBoolNot:       "!",
	OpBitNot:        "~",
}

func (op UnaryOperator) String() string {
	return unaryNames[op]
}

// IsPost is true for the postfix increment and decrement.
func (op UnaryOperator) IsPost() bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

// ToUnaryOperator maps a token to its unary operator. isPost selects the
// postfix variant of '++' and '--' and is ignored for other tokens.
func ToUnaryOperator(t TokenKind, isPost bool) UnaryOperator {
	switch t {
	case PLUSPLUS:
		if isPost {
			return OpPostIncrement
		}
		return OpPreIncrement
	case MINUSMINUS:
		if isPost {
			return OpPostDecrement
		}
		return OpPreDecrement
	case PLUS:
		return OpUnaryPlus
	case MINUS:
		return OpNegate
	case AND:
		return OpAddressOf
	case STAR:
		return OpDereference
	case BANG:
		return OpBoolNot
	case TILDE:
		return OpBitNot
	}
	panic("unreachable: " + t.String() + " is not a unary operator")
}

type BinaryOperator uint8

const (
	OpSum BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShiftLeft
	OpShiftRight
	OpBoolAnd
	OpBoolOr
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpNotEqual
	OpEqual

	OpAssign
	OpAssignSum
	OpAssignSub
	OpAssignMul
	OpAssignDiv
	OpAssignMod
	OpAssignBitAnd
	OpAssignBitOr
	OpAssignBitXor
	OpAssignShiftLeft
	OpAssignShiftRight
)

var binaryNames = [...]string{
	OpSum:              "+",
	OpSub:              "-",
	OpMul:              "*",
	OpDiv:              "/",
	OpMod:              "%",
	OpBitAnd:           "&",
	OpBitOr:            "|",
	OpBitXor:           "^",
	OpShiftLeft:        "<<",
	OpShiftRight:       ">>",
	OpBoolAnd:          "&&",
	OpBoolOr:           "||",
	OpLess:             "<",
	OpLessEqual:        "<=",
	OpGreater:          ">",
	OpGreaterEqual:     ">=",
	OpNotEqual:         "!=",
	OpEqual:            "==",
	OpAssign:           "=",
	OpAssignSum:        "+=",
	OpAssignSub:        "-=",
	OpAssignMul:        "*=",
	OpAssignDiv:        "/=",
	OpAssignMod:        "%=",
	OpAssignBitAnd:     "&=",
	OpAssignBitOr:      "|=",
	OpAssignBitXor:     "^=",
	OpAssignShiftLeft:  "<<=",
	OpAssignShiftRight: ">>=",
}

func (op BinaryOperator) String() string {
	return binaryNames[op]
}

// IsComparison is true for operators producing a bool.
func (op BinaryOperator) IsComparison() bool {
	return op >= OpLess && op <= OpEqual
}

// IsAssignment is true for '=' and the compound assignments.
func (op BinaryOperator) IsAssignment() bool {
	return op >= OpAssign
}

// NonAssigning returns the arithmetic operator behind a compound assignment
// ('+=' gives '+'). It returns op unchanged for non-assignments and for '='.
func (op BinaryOperator) NonAssigning() BinaryOperator {
	if op <= OpAssign {
		return op
	}
	return [...]BinaryOperator{
		OpAssignSum:        OpSum,
		OpAssignSub:        OpSub,
		OpAssignMul:        OpMul,
		OpAssignDiv:        OpDiv,
		OpAssignMod:        OpMod,
		OpAssignBitAnd:     OpBitAnd,
		OpAssignBitOr:      OpBitOr,
		OpAssignBitXor:     OpBitXor,
		OpAssignShiftLeft:  OpShiftLeft,
		OpAssignShiftRight: OpShiftRight,
	}[op]
}

// ToBinaryOperator maps a binary or assignment token to its operator.
func ToBinaryOperator(t TokenKind) BinaryOperator {
	if t >= PLUS && t <= RSHIFTEQ {
		return BinaryOperator(t - PLUS)
	}
	panic("unreachable: " + t.String() + " is not a binary operator")
}
