package parser

import (
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

var builtinTypenames = map[token.TokenKind]types.BuiltinID{
	token.BOOL: types.Bool,
	token.I8:   types.I8,
	token.I16:  types.I16,
	token.I32:  types.I32,
	token.I64:  types.I64,
	token.I128: types.I128,
	token.U8:   types.U8,
	token.U16:  types.U16,
	token.U32:  types.U32,
	token.U64:  types.U64,
	token.U128: types.U128,
	token.F32:  types.F32,
	token.F64:  types.F64,
}

// closeAngle consumes a '>', splitting '>>', '>=' and '>>=' when needed.
func (p *Parser) closeAngle() bool {
	switch p.current {
	case token.GREATER:
		p.consume()
	case token.RSHIFT:
		p.split(token.GREATER)
	case token.GREATEREQ:
		p.split(token.EQUALS)
	case token.RSHIFTEQ:
		p.split(token.GREATEREQ)
	default:
		return false
	}
	return true
}

func (p *Parser) parseTypename() types.Type {
	isConst := false
	if p.current == token.CONST {
		isConst = true
		p.consume()
	}

	switch {
	case p.current.IsBuiltinTypename():
		id := builtinTypenames[p.current]
		p.consume()
		return p.ctx.Builtin(id, isConst)
	case p.current == token.VOID:
		if isConst {
			p.reportWarning(p.currentSpan(), "'const' has no effect on void")
		}
		p.consume()
		return p.ctx.Void()
	case p.current == token.PTR:
		p.consume()
		if p.current != token.LESS {
			p.reportError(p.currentSpan(), "expected '<' after 'PTR', found %s", p.found())
			return p.ctx.Arena.Error()
		}
		p.consume()
		to := p.parseTypename()
		if !p.closeAngle() {
			p.reportError(p.currentSpan(), "expected '>' to close 'PTR<', found %s", p.found())
			return p.ctx.Arena.Error()
		}
		return p.ctx.Ptr(isConst, to)
	case p.current == token.FN:
		return p.parseFnTypename(isConst)
	}

	p.reportError(p.currentSpan(), "expected a typename, found %s", p.found())
	return p.ctx.Arena.Error()
}

func (p *Parser) parseFnTypename(isConst bool) types.Type {
	if isConst {
		p.reportWarning(p.currentSpan(), "'const' has no effect on function types")
	}
	p.consume()
	if p.current != token.LPAREN {
		p.reportError(p.currentSpan(), "expected '(' after 'fn', found %s", p.found())
		return p.ctx.Arena.Error()
	}
	p.consume()

	var params []types.Type
	for p.current != token.RPAREN {
		if len(params) > 0 {
			if p.current != token.COMMA {
				p.reportError(p.currentSpan(), "expected ',' or ')' in function type, found %s", p.found())
				p.panicConsumeRParen()
				return p.ctx.Arena.Error()
			}
			p.consume()
		}
		params = append(params, p.parseTypename())
		if p.current == token.EOF {
			return p.ctx.Arena.Error()
		}
	}
	p.consume()

	var ret types.Type = p.ctx.Void()
	if p.current == token.ARROW {
		p.consume()
		ret = p.parseTypename()
	}
	return p.ctx.Fn(ret, params)
}
