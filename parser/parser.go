// Package parser turns Colt source into an ast.AST. It is a single pass
// recursive descent parser that type checks as it goes and recovers from
// errors by skipping tokens, so one bad declaration does not hide the rest.
package parser

import (
	"github.com/coreos/pkg/capnslog"

	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/errors"
	"github.com/pontaoski/colt/lexer"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/colt", "parser")

type local struct {
	name string
	// declared type, const included
	typ types.Type
}

// Parser holds the state of one parse. It is not safe for concurrent use.
type Parser struct {
	lexer *lexer.Lexer
	ctx   *ast.Context
	sink  errors.Reporter

	current     token.TokenKind
	currentInfo token.LexemeInfo
	lastInfo    token.LexemeInfo

	locals     []local
	scopeStart int
	globals    map[string]ast.Expr

	// non-nil while parsing a function body
	currentFn *ast.FnBuilder

	expressions []ast.Expr
	errorCount  int
	warnCount   int
}

// New creates a parser over src. Every type and expression it creates is
// owned by ctx; diagnostics go to sink.
func New(src string, ctx *ast.Context, sink errors.Reporter) *Parser {
	return &Parser{
		lexer:   lexer.NewLexer(src),
		ctx:     ctx,
		sink:    sink,
		globals: make(map[string]ast.Expr),
	}
}

// CreateAST parses src. When the parse reported errors it returns their
// count as an errors.ErrorCount instead of the AST.
func CreateAST(src string, ctx *ast.Context, sink errors.Reporter) (*ast.AST, error) {
	p := New(src, ctx, sink)
	p.Parse()
	if p.errorCount != 0 {
		return nil, errors.ErrorCount(p.errorCount)
	}
	return p.Result(), nil
}

// Parse consumes the whole source and returns the top-level expressions.
func (p *Parser) Parse() []ast.Expr {
	p.consume()
	for p.current != token.EOF {
		if decl := p.parseGlobalDeclaration(); decl != nil {
			p.expressions = append(p.expressions, decl)
		}
	}
	plog.Debugf("parsed %d declarations, %d errors, %d warnings", len(p.expressions), p.errorCount, p.warnCount)
	return p.expressions
}

// Result returns what was parsed so far, error nodes included.
func (p *Parser) Result() *ast.AST {
	return &ast.AST{Expressions: p.expressions, Ctx: p.ctx}
}

func (p *Parser) ErrorCount() int {
	return p.errorCount
}

func (p *Parser) WarningCount() int {
	return p.warnCount
}

func (p *Parser) consume() {
	p.lastInfo = p.currentInfo
	p.current = p.lexer.Next()
	p.currentInfo = p.lexer.Info()
}

// split replaces the first byte of the current token, so that the '>>' of
// PTR<PTR<i8>> closes two angle brackets.
func (p *Parser) split(rest token.TokenKind) {
	p.lastInfo = p.currentInfo
	p.lastInfo.End = p.currentInfo.Start + 1
	p.current = rest
	p.currentInfo.Start++
}

func (p *Parser) lexeme() string {
	return p.lexer.Source()[p.currentInfo.Start:p.currentInfo.End]
}

func (p *Parser) found() string {
	if p.current == token.EOF {
		return "end of file"
	}
	return "'" + p.lexeme() + "'"
}

func (p *Parser) currentSpan() token.Span {
	return p.lexer.Span(p.currentInfo, p.currentInfo)
}

// spanFrom covers start through the last consumed token.
func (p *Parser) spanFrom(start token.LexemeInfo) token.Span {
	return p.lexer.Span(start, p.lastInfo)
}

func (p *Parser) reportError(span token.Span, format string, args ...interface{}) {
	p.errorCount++
	p.sink.Error(span, format, args...)
}

func (p *Parser) reportWarning(span token.Span, format string, args ...interface{}) {
	p.warnCount++
	p.sink.Warning(span, format, args...)
}

func (p *Parser) reportMessage(span token.Span, format string, args ...interface{}) {
	p.sink.Message(span, format, args...)
}

// saveLocals opens a scope. The returned func closes it, dropping every local
// declared since.
func (p *Parser) saveLocals() func() {
	size, start := len(p.locals), p.scopeStart
	p.scopeStart = size
	return func() {
		p.locals = p.locals[:size]
		p.scopeStart = start
	}
}

func (p *Parser) pushLocal(name string, typ types.Type) uint64 {
	p.locals = append(p.locals, local{name, typ})
	return uint64(len(p.locals) - 1)
}

// lookupLocal finds the innermost local called name.
func (p *Parser) lookupLocal(name string) (uint64, local, bool) {
	for i := len(p.locals) - 1; i >= 0; i-- {
		if p.locals[i].name == name {
			return uint64(i), p.locals[i], true
		}
	}
	return 0, local{}, false
}

// declaredType returns the type a variable was declared with.
func (p *Parser) declaredType(read *ast.VarRead) types.Type {
	if read.IsGlobal() {
		if decl, ok := p.globals[read.Name()].(*ast.VarDecl); ok {
			return decl.Type()
		}
		return read.Type()
	}
	return p.locals[read.LocalID()].typ
}

// panicConsumeSemicolon skips to the next ';' without consuming it. It also
// stops before a '}' so that the enclosing scope can close.
func (p *Parser) panicConsumeSemicolon() {
	skipped := 0
	for p.current != token.SEMICOLON && p.current != token.RBRACKET && p.current != token.EOF {
		p.consume()
		skipped++
	}
	plog.Debugf("skipped %d tokens looking for ';'", skipped)
}

// panicConsumeRParen skips to the ')' matching an already consumed '(' and
// consumes it. It gives up before a ';' or '}'.
func (p *Parser) panicConsumeRParen() {
	depth := 0
	for p.current != token.EOF && p.current != token.SEMICOLON && p.current != token.RBRACKET {
		switch p.current {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth == 0 {
				p.consume()
				return
			}
			depth--
		}
		p.consume()
	}
	plog.Debug("no matching ')' found")
}

// panicConsumeFnDecl skips to a ';' or to the start of a scope.
func (p *Parser) panicConsumeFnDecl() {
	for p.current != token.SEMICOLON && p.current != token.COLON &&
		p.current != token.LBRACKET && p.current != token.EOF {
		p.consume()
	}
}

// panicConsumeExpression skips the rest of a malformed operand, stopping on
// anything that can end an expression.
func (p *Parser) panicConsumeExpression() {
	for {
		switch p.current {
		case token.SEMICOLON, token.COMMA, token.RPAREN, token.LBRACKET, token.RBRACKET, token.EOF:
			return
		}
		p.consume()
	}
}

// panicConsumeBlock skips a '{' ... '}' block, nested blocks included.
func (p *Parser) panicConsumeBlock() {
	depth := 0
	for p.current != token.EOF {
		switch p.current {
		case token.LBRACKET:
			depth++
		case token.RBRACKET:
			depth--
			if depth <= 0 {
				p.consume()
				return
			}
		}
		p.consume()
	}
}

// panicConsumeGlobal skips to the next global declaration.
func (p *Parser) panicConsumeGlobal() {
	for p.current != token.EOF && p.current != token.FN && p.current != token.VAR {
		switch p.current {
		case token.SEMICOLON:
			p.consume()
			return
		case token.LBRACKET:
			p.panicConsumeBlock()
			return
		}
		p.consume()
	}
}

// expectSemicolon consumes the ';' ending a statement, skipping whatever
// comes before it.
func (p *Parser) expectSemicolon() {
	if p.current == token.SEMICOLON {
		p.consume()
		return
	}
	p.reportError(p.currentSpan(), "expected ';', found %s", p.found())
	p.panicConsumeSemicolon()
	if p.current == token.SEMICOLON {
		p.consume()
	}
}
