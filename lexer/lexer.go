package lexer

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pontaoski/colt/token"
)

// Lexer breaks a source buffer into tokens on demand. It never fails: a
// malformed lexeme yields token.ERROR and Err describes why.
type Lexer struct {
	src string

	offset    int
	line      int
	lineStart int

	// bookkeeping of the last returned token
	info  token.LexemeInfo
	value uint64
	str   string
	err   string
}

func NewLexer(src string) *Lexer {
	// the buffer is NUL terminated as far as the lexer is concerned
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return &Lexer{
		src:  src,
		line: 1,
	}
}

// Source returns the buffer being lexed.
func (l *Lexer) Source() string {
	return l.src
}

// Lexeme returns the text of the last returned token.
func (l *Lexer) Lexeme() string {
	return l.src[l.info.Start:l.info.End]
}

// Line returns the line number of the last returned token.
func (l *Lexer) Line() int {
	return l.info.Line
}

// LineText returns the full source line holding the last returned token.
func (l *Lexer) LineText() string {
	return l.src[l.info.LineStart:l.info.LineEnd]
}

// Info returns the position bundle of the last returned token.
func (l *Lexer) Info() token.LexemeInfo {
	return l.info
}

// Value returns the payload of the last literal token. Integers are stored as
// their two's complement bits, floats as float64 bits, bools as 0 or 1.
func (l *Lexer) Value() uint64 {
	return l.value
}

// StringValue returns the unescaped content of the last STRING_L token.
func (l *Lexer) StringValue() string {
	return l.str
}

// Err returns the reason of the last ERROR token.
func (l *Lexer) Err() string {
	return l.err
}

// Span builds the source information covering from through to.
func (l *Lexer) Span(from, to token.LexemeInfo) token.Span {
	if to.End < from.Start {
		to = from
	}
	lineEnd := to.LineEnd
	if lineEnd < from.LineStart {
		lineEnd = from.LineEnd
	}
	return token.Span{
		StartLine: from.Line,
		EndLine:   to.Line,
		Line:      l.src[from.LineStart:lineEnd],
		Lexeme:    l.src[from.Start:to.End],
		Column:    from.Start - from.LineStart,
	}
}

// CurrentSpan is the span of the last returned token.
func (l *Lexer) CurrentSpan() token.Span {
	return l.Span(l.info, l.info)
}

func (l *Lexer) peekByte(n int) byte {
	if l.offset+n < len(l.src) {
		return l.src[l.offset+n]
	}
	return 0
}

func (l *Lexer) lineEnd(from int) int {
	if i := strings.IndexByte(l.src[from:], '\n'); i >= 0 {
		end := from + i
		if end > from && l.src[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(l.src)
}

func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.offset
}

func (l *Lexer) kinded(t token.TokenKind) token.TokenKind {
	l.info.End = l.offset
	return t
}

func (l *Lexer) errored(reason string) token.TokenKind {
	l.err = reason
	return l.kinded(token.ERROR)
}

func firstChar(r byte) bool {
	return r == '_' || r < unicode.MaxASCII && unicode.IsLetter(rune(r))
}

func otherChar(r byte) bool {
	return firstChar(r) || isDigit(r)
}

func isDigit(r byte) bool {
	return '0' <= r && r <= '9'
}

func (l *Lexer) skipTrivia() (ok bool) {
	for l.offset < len(l.src) {
		c := l.src[l.offset]
		switch {
		case c == '\n':
			l.offset++
			l.newline()
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.offset++
		case c == '/' && l.peekByte(1) == '/':
			for l.offset < len(l.src) && l.src[l.offset] != '\n' {
				l.offset++
			}
		case c == '/' && l.peekByte(1) == '*':
			l.beginLexeme()
			l.offset += 2
			for {
				if l.offset >= len(l.src) {
					return false
				}
				if l.src[l.offset] == '*' && l.peekByte(1) == '/' {
					l.offset += 2
					break
				}
				if l.src[l.offset] == '\n' {
					l.offset++
					l.newline()
					continue
				}
				l.offset++
			}
		default:
			return true
		}
	}
	return true
}

func (l *Lexer) beginLexeme() {
	l.info = token.LexemeInfo{
		Line:      l.line,
		LineStart: l.lineStart,
		LineEnd:   l.lineEnd(l.lineStart),
		Start:     l.offset,
		End:       l.offset,
	}
}

// Next returns the next token, or EOF once the buffer is exhausted.
func (l *Lexer) Next() token.TokenKind {
	l.err = ""
	if !l.skipTrivia() {
		// info still points at the comment opening
		l.info.End = l.info.Start + 2
		l.err = "unterminated block comment"
		return token.ERROR
	}
	l.beginLexeme()

	if l.offset >= len(l.src) {
		return l.kinded(token.EOF)
	}

	c := l.src[l.offset]
	l.offset++

	switch c {
	case '(':
		return l.kinded(token.LPAREN)
	case ')':
		return l.kinded(token.RPAREN)
	case '{':
		return l.kinded(token.LBRACKET)
	case '}':
		return l.kinded(token.RBRACKET)
	case ',':
		return l.kinded(token.COMMA)
	case ';':
		return l.kinded(token.SEMICOLON)
	case ':':
		return l.kinded(token.COLON)
	case '~':
		return l.kinded(token.TILDE)
	case '+':
		return l.operator(token.PLUS, token.PLUSEQ, '+', token.PLUSPLUS)
	case '-':
		if l.peekByte(0) == '>' {
			l.offset++
			return l.kinded(token.ARROW)
		}
		return l.operator(token.MINUS, token.MINUSEQ, '-', token.MINUSMINUS)
	case '*':
		return l.operator(token.STAR, token.STAREQ, 0, 0)
	case '/':
		return l.operator(token.SLASH, token.SLASHEQ, 0, 0)
	case '%':
		return l.operator(token.PERCENT, token.PERCENTEQ, 0, 0)
	case '^':
		return l.operator(token.CARET, token.CARETEQ, 0, 0)
	case '&':
		return l.operator(token.AND, token.ANDEQ, '&', token.ANDAND)
	case '|':
		return l.operator(token.OR, token.OREQ, '|', token.OROR)
	case '=':
		return l.operator(token.EQUALS, token.EQEQ, 0, 0)
	case '!':
		return l.operator(token.BANG, token.NOTEQ, 0, 0)
	case '<':
		if l.peekByte(0) == '<' {
			l.offset++
			return l.operator(token.LSHIFT, token.LSHIFTEQ, 0, 0)
		}
		return l.operator(token.LESS, token.LESSEQ, 0, 0)
	case '>':
		if l.peekByte(0) == '>' {
			l.offset++
			return l.operator(token.RSHIFT, token.RSHIFTEQ, 0, 0)
		}
		return l.operator(token.GREATER, token.GREATEREQ, 0, 0)
	case '\'':
		return l.lexChar()
	case '"':
		return l.lexString()
	}

	switch {
	case isDigit(c):
		l.offset--
		return l.lexNumber()
	case firstChar(c):
		l.offset--
		return l.lexIdent()
	}

	r, size := utf8.DecodeRuneInString(l.src[l.offset-1:])
	l.offset += size - 1
	return l.errored("invalid character " + strconv.QuoteRune(r))
}

// operator handles the 'op', 'op=' and doubled 'opop' forms.
func (l *Lexer) operator(single, withEq token.TokenKind, double byte, doubled token.TokenKind) token.TokenKind {
	next := l.peekByte(0)
	switch {
	case next == '=':
		l.offset++
		return l.kinded(withEq)
	case double != 0 && next == double:
		l.offset++
		return l.kinded(doubled)
	}
	return l.kinded(single)
}

func (l *Lexer) lexIdent() token.TokenKind {
	start := l.offset
	for l.offset < len(l.src) && otherChar(l.src[l.offset]) {
		l.offset++
	}
	lit := l.src[start:l.offset]

	if kind, ok := token.Keywords[lit]; ok {
		if kind == token.BOOL_L {
			l.value = 0
			if lit == "true" {
				l.value = 1
			}
		}
		return l.kinded(kind)
	}
	return l.kinded(token.IDENT)
}

var integerSuffixes = map[string]token.TokenKind{
	"u8":  token.U8_L,
	"u16": token.U16_L,
	"u32": token.U32_L,
	"u64": token.U64_L,
	"i8":  token.I8_L,
	"i16": token.I16_L,
	"i32": token.I32_L,
	"i64": token.I64_L,
	"f32": token.FLOAT_L,
	"f64": token.DOUBLE_L,
}

var integerLimits = map[token.TokenKind]uint64{
	token.U8_L:  math.MaxUint8,
	token.U16_L: math.MaxUint16,
	token.U32_L: math.MaxUint32,
	token.U64_L: math.MaxUint64,
	token.I8_L:  math.MaxInt8,
	token.I16_L: math.MaxInt16,
	token.I32_L: math.MaxInt32,
	token.I64_L: math.MaxInt64,
}

func (l *Lexer) lexNumber() token.TokenKind {
	start := l.offset
	base := 10
	if l.src[l.offset] == '0' {
		switch l.peekByte(1) {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 10 {
			l.offset += 2
			start = l.offset
		}
	}

	isFloat := false
	for l.offset < len(l.src) {
		c := l.src[l.offset]
		switch {
		case isDigit(c):
		case base == 16 && strings.IndexByte("abcdefABCDEF", c) >= 0:
		case base == 10 && c == '.' && !isFloat && isDigit(l.peekByte(1)):
			isFloat = true
		case base == 10 && (c == 'e' || c == 'E') && l.exponentFollows():
			isFloat = true
			l.offset++
			if c := l.src[l.offset]; c == '+' || c == '-' {
				l.offset++
			}
		default:
			goto done
		}
		l.offset++
	}
done:
	digits := l.src[start:l.offset]

	suffixStart := l.offset
	for l.offset < len(l.src) && otherChar(l.src[l.offset]) {
		l.offset++
	}
	suffix := l.src[suffixStart:l.offset]

	if len(digits) == 0 {
		return l.errored("expected digits after base prefix")
	}

	kind := token.I64_L
	if isFloat {
		kind = token.DOUBLE_L
	}
	if suffix != "" {
		k, ok := integerSuffixes[suffix]
		if !ok || isFloat && k != token.FLOAT_L && k != token.DOUBLE_L {
			return l.errored("invalid literal suffix '" + suffix + "'")
		}
		kind = k
	}

	if kind == token.FLOAT_L || kind == token.DOUBLE_L {
		if base != 10 {
			return l.errored("floating point literals must be written in base 10")
		}
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return l.errored("invalid floating point literal")
		}
		l.value = math.Float64bits(f)
		return l.kinded(kind)
	}

	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil || v > integerLimits[kind] {
		return l.errored("integer literal is too big for its type")
	}
	l.value = v
	return l.kinded(kind)
}

func (l *Lexer) exponentFollows() bool {
	next := l.peekByte(1)
	if next == '+' || next == '-' {
		return isDigit(l.peekByte(2))
	}
	return isDigit(next)
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '\'', '"':
		return c, true
	}
	return 0, false
}

func (l *Lexer) lexChar() token.TokenKind {
	if l.offset >= len(l.src) || l.src[l.offset] == '\n' {
		return l.errored("unterminated char literal")
	}
	c := l.src[l.offset]
	l.offset++
	if c == '\\' {
		if l.offset >= len(l.src) {
			return l.errored("unterminated char literal")
		}
		esc, ok := unescape(l.src[l.offset])
		l.offset++
		if !ok {
			return l.errored("invalid escape sequence")
		}
		c = esc
	}
	if l.peekByte(0) != '\'' {
		return l.errored("unterminated char literal")
	}
	l.offset++
	l.value = uint64(c)
	return l.kinded(token.CHAR_L)
}

func (l *Lexer) lexString() token.TokenKind {
	var lit strings.Builder
	for {
		if l.offset >= len(l.src) || l.src[l.offset] == '\n' {
			return l.errored("unterminated string literal")
		}
		c := l.src[l.offset]
		l.offset++
		switch c {
		case '"':
			l.str = lit.String()
			return l.kinded(token.STRING_L)
		case '\\':
			if l.offset >= len(l.src) {
				return l.errored("unterminated string literal")
			}
			esc, ok := unescape(l.src[l.offset])
			l.offset++
			if !ok {
				return l.errored("invalid escape sequence")
			}
			lit.WriteByte(esc)
		default:
			lit.WriteByte(c)
		}
	}
}

// Token is one entry of LexAll.
type Token struct {
	Kind   token.TokenKind
	Lexeme string
	Line   int
}

// LexAll drains the lexer, excluding the final EOF.
func (l *Lexer) LexAll() (ret []Token) {
	for t := l.Next(); t != token.EOF; t = l.Next() {
		ret = append(ret, Token{
			Kind:   t,
			Lexeme: l.Lexeme(),
			Line:   l.Line(),
		})
	}
	return
}
