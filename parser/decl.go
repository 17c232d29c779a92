package parser

import (
	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

func (p *Parser) parseGlobalDeclaration() ast.Expr {
	switch p.current {
	case token.VAR:
		decl := p.parseVarDecl(true)
		p.expectSemicolon()
		return decl
	case token.FN:
		return p.parseFnDecl()
	case token.ERROR:
		p.reportError(p.currentSpan(), "%s", p.lexer.Err())
	case token.LBRACKET:
		p.reportError(p.currentSpan(), "expected a global declaration, found %s", p.found())
		p.panicConsumeBlock()
		return nil
	default:
		p.reportError(p.currentSpan(), "expected a global declaration, found %s", p.found())
	}
	p.consume()
	p.panicConsumeGlobal()
	return nil
}

// isConstantInitializer reports whether e can initialize a global: a literal
// or a negated literal.
func isConstantInitializer(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Literal:
		return true
	case *ast.Unary:
		if e.Operation() == token.OpNegate {
			_, ok := e.Child().(*ast.Literal)
			return ok
		}
	}
	return false
}

func (p *Parser) parseVarDecl(isGlobal bool) ast.Expr {
	start := p.currentInfo
	p.consume()

	if p.current != token.IDENT {
		p.reportError(p.currentSpan(), "expected an identifier after 'var', found %s", p.found())
		p.panicConsumeSemicolon()
		return p.ctx.NewError(p.spanFrom(start))
	}
	name := p.lexeme()
	nameSpan := p.currentSpan()
	p.consume()

	var typ types.Type
	if p.current == token.COLON {
		p.consume()
		typ = p.parseTypename()
	}

	var init ast.Expr
	if p.current == token.EQUALS {
		p.consume()
		init = p.parseExpression()
	}
	span := p.spanFrom(start)

	switch {
	case typ == nil && init == nil:
		p.reportError(nameSpan, "variable '%s' needs a type or an initial value", name)
		typ = p.ctx.Arena.Error()
	case typ == nil:
		typ = init.Type()
		if typ.Kind() == types.KindVoid {
			p.reportError(init.Span(), "cannot initialize variable '%s' with an expression of type void", name)
			typ = p.ctx.Arena.Error()
		}
	case typ.Kind() == types.KindVoid:
		p.reportError(nameSpan, "variable '%s' cannot be of type void", name)
		typ = p.ctx.Arena.Error()
	case init == nil && typ.IsConst():
		p.reportError(nameSpan, "constant variable '%s' must be initialized", name)
	case init != nil && !types.Equal(init.Type(), typ):
		p.reportError(init.Span(), "cannot initialize variable '%s' of type %s with a value of type %s",
			name, typ, init.Type())
	}

	if isGlobal {
		if init != nil && !ast.IsError(init) && !isConstantInitializer(init) {
			p.reportError(init.Span(), "global variable '%s' must be initialized with a literal", name)
		}
		decl := p.ctx.NewVarDecl(name, init, true, typ, span)
		if prev, ok := p.globals[name]; ok {
			p.reportError(nameSpan, "redefinition of '%s'", name)
			p.reportMessage(prev.Span(), "previous declaration of '%s' is here", name)
			return decl
		}
		p.globals[name] = decl
		return decl
	}

	for _, l := range p.locals[p.scopeStart:] {
		if l.name == name {
			p.reportError(nameSpan, "redeclaration of '%s' in the same scope", name)
			break
		}
	}
	decl := p.ctx.NewVarDecl(name, init, false, typ, span)
	p.pushLocal(name, typ)
	return decl
}

type param struct {
	name string
	typ  types.Type
}

func (p *Parser) parseParams() (ret []param) {
	p.consume()
	for p.current != token.RPAREN {
		if len(ret) > 0 {
			if p.current != token.COMMA {
				p.reportError(p.currentSpan(), "expected ',' or ')' in parameter list, found %s", p.found())
				p.panicConsumeRParen()
				return
			}
			p.consume()
		}
		if p.current != token.IDENT {
			p.reportError(p.currentSpan(), "expected a parameter name, found %s", p.found())
			p.panicConsumeRParen()
			return
		}
		name := p.lexeme()
		nameSpan := p.currentSpan()
		p.consume()

		var typ types.Type = p.ctx.Builtin(types.I64, false)
		if p.current == token.COLON {
			p.consume()
			typ = p.parseTypename()
		}
		if typ.Kind() == types.KindVoid {
			p.reportError(nameSpan, "parameter '%s' cannot be of type void", name)
			typ = p.ctx.Arena.Error()
		}
		for _, other := range ret {
			if other.name == name {
				p.reportError(nameSpan, "duplicate parameter '%s'", name)
				break
			}
		}
		ret = append(ret, param{name, typ})
	}
	p.consume()
	return
}

// declareFn registers the declaration of name, or finds the one it repeats.
// isNew is false when the returned FnDef must not be added to the AST again.
func (p *Parser) declareFn(name string, names []string, typ *types.Fn, span token.Span) (def *ast.FnDef, isNew bool) {
	switch prev := p.globals[name].(type) {
	case nil:
		def = p.ctx.NewFnDef(name, names, typ, span)
		p.globals[name] = def
		return def, true
	case *ast.FnDef:
		if types.Equal(prev.FnType(), typ) {
			return prev, false
		}
		p.reportError(span, "conflicting declaration of '%s': %s, previously %s", name, typ, prev.FnType())
		p.reportMessage(prev.Span(), "previous declaration of '%s' is here", name)
	default:
		p.reportError(span, "redefinition of '%s' as a function", name)
		p.reportMessage(prev.Span(), "previous declaration of '%s' is here", name)
	}
	// parse the body against a detached declaration
	return p.ctx.NewFnDef(name, names, typ, span), false
}

func (p *Parser) parseFnDecl() ast.Expr {
	start := p.currentInfo
	p.consume()

	if p.current != token.IDENT {
		p.reportError(p.currentSpan(), "expected a function name after 'fn', found %s", p.found())
		p.panicConsumeGlobal()
		return nil
	}
	name := p.lexeme()
	p.consume()

	if p.current != token.LPAREN {
		p.reportError(p.currentSpan(), "expected '(' after the name of '%s', found %s", name, p.found())
		p.panicConsumeGlobal()
		return nil
	}
	params := p.parseParams()

	ret := types.Type(p.ctx.Void())
	if p.current == token.ARROW {
		p.consume()
		ret = p.parseTypename()
	}

	names := make([]string, len(params))
	paramTypes := make([]types.Type, len(params))
	for i, pm := range params {
		names[i] = pm.name
		paramTypes[i] = pm.typ
	}
	def, isNew := p.declareFn(name, names, p.ctx.Fn(ret, paramTypes), p.spanFrom(start))

	switch p.current {
	case token.SEMICOLON:
		p.consume()
	case token.COLON, token.LBRACKET:
		if def.IsDefined() {
			p.reportError(p.currentSpan(), "redefinition of function '%s'", name)
			p.reportMessage(def.Span(), "previous definition of '%s' is here", name)
			def = p.ctx.NewFnDef(name, names, def.FnType(), def.Span())
		}
		p.parseFnBody(def, params)
	default:
		p.reportError(p.currentSpan(), "expected ';' or a function body after the declaration of '%s', found %s",
			name, p.found())
		p.panicConsumeFnDecl()
		if p.current == token.COLON || p.current == token.LBRACKET {
			p.parseFnBody(p.ctx.NewFnDef(name, names, def.FnType(), def.Span()), params)
		} else if p.current == token.SEMICOLON {
			p.consume()
		}
	}

	if !isNew {
		return nil
	}
	return def
}

func (p *Parser) parseFnBody(def *ast.FnDef, params []param) {
	defer p.saveLocals()()

	p.currentFn = p.ctx.DefineFn(def)
	defer func() { p.currentFn = nil }()

	for _, pm := range params {
		p.pushLocal(pm.name, pm.typ)
	}

	body := p.parseScope()

	ret := def.FnType().Return()
	if p.currentFn.ReturnCount() == 0 && ret.Kind() != types.KindVoid && !types.IsError(ret) {
		p.reportWarning(def.Span(), "function '%s' returning %s has no return statement", def.Name(), ret)
	}
	p.currentFn.Finish(body)
}
