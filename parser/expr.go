package parser

import (
	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

func (p *Parser) parseExpression() ast.Expr {
	start := p.currentInfo
	lhs := p.parseBinary(token.NoPrecedence)
	if token.IsAssignment(p.current) {
		return p.parseAssignment(lhs, start)
	}
	return lhs
}

// parseBinary parses operators binding tighter than limit. Lower precedence
// values bind tighter; NoPrecedence accepts every operator.
func (p *Parser) parseBinary(limit uint8) ast.Expr {
	start := p.currentInfo
	lhs := p.parseUnary()
	for prec := token.GetOpPrecedence(p.current); prec < limit; prec = token.GetOpPrecedence(p.current) {
		op := token.ToBinaryOperator(p.current)
		opSpan := p.currentSpan()
		p.consume()

		rhs := p.parseBinary(prec)
		lhs = p.makeBinary(lhs, op, rhs, opSpan, p.spanFrom(start))
	}
	return lhs
}

func (p *Parser) parseUnary() ast.Expr {
	start := p.currentInfo
	if token.IsUnaryOperator(p.current) {
		tkn := p.current
		p.consume()
		child := p.parseUnary()
		return p.makeUnary(tkn, false, child, p.spanFrom(start))
	}

	expr := p.parsePrimary()
	if p.current == token.PLUSPLUS || p.current == token.MINUSMINUS {
		tkn := p.current
		p.consume()
		expr = p.makeUnary(tkn, true, expr, p.spanFrom(start))
	}
	for p.current == token.AS {
		expr = p.parseConversion(expr, start)
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.current.IsLiteral():
		return p.parseLiteral()
	case p.current == token.IDENT:
		return p.parseIdentifier()
	case p.current == token.LPAREN:
		return p.parseParenthesis(p.parseExpression)
	case p.current == token.ERROR:
		span := p.currentSpan()
		p.reportError(span, "%s", p.lexer.Err())
		p.consume()
		p.panicConsumeExpression()
		return p.ctx.NewError(span)
	}

	span := p.currentSpan()
	p.reportError(span, "expected an expression, found %s", p.found())
	p.panicConsumeExpression()
	return p.ctx.NewError(span)
}

var literalTypes = map[token.TokenKind]types.BuiltinID{
	token.BOOL_L:   types.Bool,
	token.CHAR_L:   types.U8,
	token.U8_L:     types.U8,
	token.U16_L:    types.U16,
	token.U32_L:    types.U32,
	token.U64_L:    types.U64,
	token.I8_L:     types.I8,
	token.I16_L:    types.I16,
	token.I32_L:    types.I32,
	token.I64_L:    types.I64,
	token.FLOAT_L:  types.F32,
	token.DOUBLE_L: types.F64,
}

func (p *Parser) parseLiteral() ast.Expr {
	kind := p.current
	value := p.lexer.Value()
	span := p.currentSpan()
	p.consume()

	id, ok := literalTypes[kind]
	if !ok {
		p.reportError(span, "string literals are not supported")
		return p.ctx.NewError(span)
	}
	return p.ctx.NewLiteral(value, p.ctx.Builtin(id, false), span)
}

func (p *Parser) parseIdentifier() ast.Expr {
	start := p.currentInfo
	name := p.lexeme()
	span := p.currentSpan()
	p.consume()

	if p.current == token.LPAREN {
		return p.parseFunctionCall(name, span, start)
	}

	if id, l, ok := p.lookupLocal(name); ok {
		return p.ctx.NewVarRead(name, id, p.ctx.Unqualified(l.typ), span)
	}
	switch decl := p.globals[name].(type) {
	case *ast.VarDecl:
		return p.ctx.NewVarRead(name, ast.GlobalID, p.ctx.Unqualified(decl.Type()), span)
	case *ast.FnDef:
		p.reportError(span, "function '%s' cannot be used as a value", name)
		return p.ctx.NewError(span)
	}
	p.reportError(span, "use of undeclared identifier '%s'", name)
	return p.ctx.NewError(span)
}

func (p *Parser) parseFunctionCall(name string, nameSpan token.Span, start token.LexemeInfo) ast.Expr {
	p.consume()
	var args []ast.Expr
	if p.current != token.RPAREN {
		for {
			args = append(args, p.parseExpression())
			if p.current != token.COMMA {
				break
			}
			p.consume()
		}
	}
	if p.current == token.RPAREN {
		p.consume()
	} else {
		if last := args[len(args)-1]; !ast.IsError(last) {
			p.reportError(p.currentSpan(), "expected ')' to close the call of '%s', found %s", name, p.found())
		}
		p.panicConsumeRParen()
	}
	span := p.spanFrom(start)

	def, ok := p.globals[name].(*ast.FnDef)
	if _, _, shadowed := p.lookupLocal(name); shadowed || !ok {
		if shadowed || p.globals[name] != nil {
			p.reportError(nameSpan, "'%s' is not a function", name)
		} else {
			p.reportError(nameSpan, "call to undeclared function '%s'", name)
		}
		return p.ctx.NewError(span)
	}

	call := p.ctx.NewFnCall(def, args, span)
	p.validateFnCall(call, nameSpan)
	return call
}

// parseParenthesis parses '(' inner ')'.
func (p *Parser) parseParenthesis(inner func() ast.Expr) ast.Expr {
	p.consume()
	expr := inner()
	if p.current != token.RPAREN {
		if !ast.IsError(expr) {
			p.reportError(p.currentSpan(), "expected ')', found %s", p.found())
		}
		p.panicConsumeRParen()
		return expr
	}
	p.consume()
	return expr
}

func (p *Parser) parseAssignment(lhs ast.Expr, start token.LexemeInfo) ast.Expr {
	op := token.ToBinaryOperator(p.current)
	opSpan := p.currentSpan()
	p.consume()

	// assignments are right associative
	rhs := p.parseExpression()
	span := p.spanFrom(start)

	read, ok := lhs.(*ast.VarRead)
	if !ok {
		if !ast.IsError(lhs) {
			p.reportError(lhs.Span(), "expression is not assignable")
		}
		return p.ctx.NewError(span)
	}
	if p.declaredType(read).IsConst() {
		p.reportError(opSpan, "cannot assign to constant variable '%s'", read.Name())
	}

	value := rhs
	if op != token.OpAssign {
		value = p.makeBinary(read, op.NonAssigning(), rhs, opSpan, span)
	} else if !types.Equal(rhs.Type(), read.Type()) {
		p.reportError(rhs.Span(), "cannot assign a value of type %s to variable '%s' of type %s",
			rhs.Type(), read.Name(), read.Type())
	}
	return p.ctx.NewVarWrite(read.Name(), value, read.UnsafeLocalID(), read.Type(), span)
}

func (p *Parser) parseConversion(expr ast.Expr, start token.LexemeInfo) ast.Expr {
	asSpan := p.currentSpan()
	p.consume()
	to := p.parseTypename()
	span := p.spanFrom(start)

	if ast.IsError(expr) || types.IsError(to) {
		return p.ctx.NewConvert(expr, p.ctx.Arena.Error(), span)
	}
	to = p.ctx.Unqualified(to)
	from := expr.Type()

	if from.Kind() != to.Kind() || (to.Kind() != types.KindBuiltin && to.Kind() != types.KindPtr) {
		p.reportError(asSpan, "cannot convert from %s to %s", from, to)
		return p.ctx.NewConvert(expr, p.ctx.Arena.Error(), span)
	}
	if types.EqualWithConst(from, to) {
		p.reportWarning(asSpan, "conversion from %s to itself has no effect", from)
	}
	return p.ctx.NewConvert(expr, to, span)
}
