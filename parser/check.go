package parser

import (
	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

func isBool(t types.Type) bool {
	b, ok := t.(*types.Builtin)
	return ok && b.IsBool()
}

// hasSideEffects reports whether evaluating e can change state.
func hasSideEffects(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.VarWrite, *ast.FnCall:
		return true
	case *ast.Unary:
		switch e.Operation() {
		case token.OpPreIncrement, token.OpPostIncrement, token.OpPreDecrement, token.OpPostDecrement:
			return true
		}
		return hasSideEffects(e.Child())
	case *ast.Binary:
		return hasSideEffects(e.LHS()) || hasSideEffects(e.RHS())
	case *ast.Convert:
		return hasSideEffects(e.Child())
	}
	return false
}

func (p *Parser) makeBinary(lhs ast.Expr, op token.BinaryOperator, rhs ast.Expr, opSpan, span token.Span) ast.Expr {
	if ast.IsError(lhs) || ast.IsError(rhs) {
		return p.ctx.NewBinary(lhs, op, rhs, p.ctx.Arena.Error(), span)
	}

	b, ok := lhs.Type().(*types.Builtin)
	switch {
	case !ok || !types.Equal(lhs.Type(), rhs.Type()):
		p.reportError(opSpan, "invalid operands to '%s' (%s and %s)", op, lhs.Type(), rhs.Type())
		return p.ctx.NewBinary(lhs, op, rhs, p.ctx.Arena.Error(), span)
	case !b.Supports(op):
		p.reportError(opSpan, "operator '%s' is not supported by %s", op, b)
		return p.ctx.NewBinary(lhs, op, rhs, p.ctx.Arena.Error(), span)
	}

	var typ types.Type = p.ctx.Builtin(b.ID(), false)
	if op.IsComparison() {
		typ = p.ctx.Bool(false)
	}
	return p.ctx.NewBinary(lhs, op, rhs, typ, span)
}

func (p *Parser) makeUnary(tkn token.TokenKind, isPost bool, child ast.Expr, span token.Span) ast.Expr {
	if ast.IsError(child) {
		return p.ctx.NewUnary(tkn, isPost, child, p.ctx.Arena.Error(), span)
	}

	op := token.ToUnaryOperator(tkn, isPost)
	t := child.Type()
	b, isBuiltin := t.(*types.Builtin)
	invalid := func(want string) ast.Expr {
		p.reportError(span, "operator '%s' expects %s, not %s", op, want, t)
		return p.ctx.NewUnary(tkn, isPost, child, p.ctx.Arena.Error(), span)
	}

	var typ types.Type
	switch op {
	case token.OpUnaryPlus, token.OpNegate:
		if !isBuiltin || b.IsBool() {
			return invalid("a numeric operand")
		}
		if op == token.OpNegate && b.IsIntegral() && !b.IsSigned() {
			p.reportWarning(span, "negating a value of unsigned type %s", t)
		}
		typ = p.ctx.Unqualified(t)
	case token.OpBoolNot:
		if !isBuiltin || !b.IsBool() {
			return invalid("a bool operand")
		}
		typ = p.ctx.Bool(false)
	case token.OpBitNot:
		if !isBuiltin || !b.IsIntegral() {
			return invalid("an integral operand")
		}
		typ = p.ctx.Unqualified(t)
	case token.OpPreIncrement, token.OpPostIncrement, token.OpPreDecrement, token.OpPostDecrement:
		read, ok := child.(*ast.VarRead)
		if !ok {
			p.reportError(span, "operand of '%s' must be a variable", op)
			return p.ctx.NewUnary(tkn, isPost, child, p.ctx.Arena.Error(), span)
		}
		if !isBuiltin || !b.IsIntegral() {
			return invalid("an integral variable")
		}
		if p.declaredType(read).IsConst() {
			p.reportError(span, "cannot modify constant variable '%s'", read.Name())
		}
		typ = p.ctx.Unqualified(t)
	case token.OpAddressOf:
		read, ok := child.(*ast.VarRead)
		if !ok {
			p.reportError(span, "cannot take the address of an expression that is not a variable")
			return p.ctx.NewUnary(tkn, isPost, child, p.ctx.Arena.Error(), span)
		}
		typ = p.ctx.Ptr(false, p.declaredType(read))
	case token.OpDereference:
		ptr, ok := t.(*types.Ptr)
		if !ok {
			return invalid("a pointer")
		}
		if ptr.Pointee().Kind() == types.KindVoid {
			p.reportError(span, "cannot dereference %s", t)
			return p.ctx.NewUnary(tkn, isPost, child, p.ctx.Arena.Error(), span)
		}
		typ = p.ctx.Unqualified(ptr.Pointee())
	default:
		panic("unreachable: unhandled unary operator " + op.String())
	}
	return p.ctx.NewUnary(tkn, isPost, child, typ, span)
}

// validateFnCall checks the arguments of call against its declaration. At
// most one error is reported per call, and none when an argument already
// failed to parse.
func (p *Parser) validateFnCall(call *ast.FnCall, nameSpan token.Span) {
	params := call.Decl().FnType().Params()
	args := call.Arguments()
	for _, arg := range args {
		if ast.IsError(arg) {
			return
		}
	}
	if len(args) != len(params) {
		p.reportError(nameSpan, "'%s' expects %d argument(s), but %d were given", call.Name(), len(params), len(args))
		return
	}
	for i, arg := range args {
		want := p.ctx.Unqualified(params[i])
		if !types.EqualWithConst(arg.Type(), want) {
			p.reportError(arg.Span(), "argument %d of '%s' has type %s, expected %s", i+1, call.Name(), arg.Type(), want)
			return
		}
	}
}
