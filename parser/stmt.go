package parser

import (
	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

func (p *Parser) parseStatement() ast.Expr {
	switch p.current {
	case token.VAR:
		decl := p.parseVarDecl(false)
		p.expectSemicolon()
		return decl
	case token.IF:
		return p.parseCondition()
	case token.RETURN:
		return p.parseReturn()
	case token.COLON, token.LBRACKET:
		return p.parseScope()
	case token.FN:
		span := p.currentSpan()
		p.reportError(span, "functions can only be declared at global scope")
		p.panicConsumeFnDecl()
		if p.current == token.LBRACKET {
			p.panicConsumeBlock()
		} else {
			p.panicConsumeSemicolon()
			if p.current == token.SEMICOLON {
				p.consume()
			}
		}
		return p.ctx.NewError(span)
	}

	expr := p.parseExpression()
	p.expectSemicolon()
	if !ast.IsError(expr) && !hasSideEffects(expr) {
		p.reportWarning(expr.Span(), "expression result unused")
	}
	return expr
}

// parseScope parses either ':' followed by a single statement or a block in
// braces. Locals declared inside are dropped at the end.
func (p *Parser) parseScope() ast.Expr {
	defer p.saveLocals()()

	start := p.currentInfo
	switch p.current {
	case token.COLON:
		p.consume()
		stmt := p.parseStatement()
		return p.ctx.NewScope([]ast.Expr{stmt}, p.spanFrom(start))
	case token.LBRACKET:
		p.consume()
		var body []ast.Expr
		for p.current != token.RBRACKET && p.current != token.EOF {
			body = append(body, p.parseStatement())
		}
		if p.current == token.EOF {
			p.reportError(p.lexer.Span(start, start), "unclosed '{' at end of file")
		} else {
			p.consume()
		}
		return p.ctx.NewScope(body, p.spanFrom(start))
	}

	span := p.currentSpan()
	p.reportError(span, "expected ':' or '{' to start a scope, found %s", p.found())
	p.panicConsumeSemicolon()
	if p.current == token.SEMICOLON {
		p.consume()
	}
	return p.ctx.NewError(span)
}

func (p *Parser) parseCondition() ast.Expr {
	start := p.currentInfo
	p.consume()

	cond := p.parseExpression()
	if !ast.IsError(cond) && !isBool(cond.Type()) {
		p.reportError(cond.Span(), "condition must be of type bool, not %s", cond.Type())
	}

	ifStmt := p.parseScope()
	var elseStmt ast.Expr
	if p.current == token.ELSE {
		p.consume()
		if p.current == token.IF {
			elseStmt = p.parseCondition()
		} else {
			elseStmt = p.parseScope()
		}
	}
	return p.ctx.NewCondition(cond, ifStmt, elseStmt, p.spanFrom(start))
}

func (p *Parser) parseReturn() ast.Expr {
	start := p.currentInfo
	p.consume()

	var value ast.Expr
	if p.current != token.SEMICOLON {
		value = p.parseExpression()
	}
	span := p.spanFrom(start)
	p.expectSemicolon()

	ret := p.ctx.NewFnReturn(value, span)
	if p.currentFn == nil {
		p.reportError(span, "'return' outside of a function")
		return ret
	}

	fn := p.currentFn.Decl()
	want := fn.FnType().Return()
	switch {
	case value == nil:
		if want.Kind() != types.KindVoid && !types.IsError(want) {
			p.reportError(span, "function '%s' must return a value of type %s", fn.Name(), want)
		}
	case ast.IsError(value):
	case want.Kind() == types.KindVoid:
		p.reportError(value.Span(), "void function '%s' cannot return a value", fn.Name())
	case !types.Equal(value.Type(), want):
		p.reportError(value.Span(), "cannot return a value of type %s from function '%s' returning %s",
			value.Type(), fn.Name(), want)
	}
	p.currentFn.PushReturn(ret)
	return ret
}
