package lexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontaoski/colt/token"
)

func kinds(src string) (ret []token.TokenKind) {
	for _, tok := range NewLexer(src).LexAll() {
		ret = append(ret, tok.Kind)
	}
	return
}

func TestLexer(t *testing.T) {
	toks := NewLexer("fn main() {\n\tvar a = 10;\n}").LexAll()

	expected := []Token{
		{token.FN, "fn", 1},
		{token.IDENT, "main", 1},
		{token.LPAREN, "(", 1},
		{token.RPAREN, ")", 1},
		{token.LBRACKET, "{", 1},
		{token.VAR, "var", 2},
		{token.IDENT, "a", 2},
		{token.EQUALS, "=", 2},
		{token.I64_L, "10", 2},
		{token.SEMICOLON, ";", 2},
		{token.RBRACKET, "}", 3},
	}
	assert.Equal(t, expected, toks)
}

func TestOperators(t *testing.T) {
	assert.Equal(t, []token.TokenKind{
		token.PLUS, token.PLUSPLUS, token.PLUSEQ,
		token.MINUS, token.MINUSMINUS, token.MINUSEQ, token.ARROW,
		token.LSHIFT, token.LSHIFTEQ, token.LESS, token.LESSEQ,
		token.RSHIFT, token.RSHIFTEQ, token.GREATER, token.GREATEREQ,
		token.ANDAND, token.ANDEQ, token.AND,
		token.OROR, token.OREQ, token.OR,
		token.EQEQ, token.EQUALS, token.NOTEQ, token.BANG, token.TILDE,
		token.STAR, token.STAREQ, token.SLASH, token.SLASHEQ, token.PERCENT, token.PERCENTEQ,
		token.CARET, token.CARETEQ, token.COLON, token.COMMA,
	}, kinds("+ ++ += - -- -= -> << <<= < <= >> >>= > >= && &= & || |= | == = != ! ~ * *= / /= % %= ^ ^= : ,"))
}

func TestComments(t *testing.T) {
	assert.Equal(t, []token.TokenKind{token.IDENT, token.IDENT},
		kinds("a // line comment\n/* block\ncomment */ b"))

	l := NewLexer("a /* never closed")
	l.Next()
	assert.Equal(t, token.ERROR, l.Next())
	assert.Equal(t, "unterminated block comment", l.Err())
	assert.Equal(t, token.EOF, l.Next())
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		src   string
		kind  token.TokenKind
		value uint64
	}{
		{"42", token.I64_L, 42},
		{"0x2A", token.I64_L, 42},
		{"0b101010", token.I64_L, 42},
		{"0o52", token.I64_L, 42},
		{"255u8", token.U8_L, 255},
		{"7i32", token.I32_L, 7},
		{"18446744073709551615u64", token.U64_L, math.MaxUint64},
		{"1.5", token.DOUBLE_L, math.Float64bits(1.5)},
		{"1e3", token.DOUBLE_L, math.Float64bits(1000)},
		{"2.5f32", token.FLOAT_L, math.Float64bits(2.5)},
		{"'a'", token.CHAR_L, 'a'},
		{`'\n'`, token.CHAR_L, '\n'},
		{"true", token.BOOL_L, 1},
		{"false", token.BOOL_L, 0},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			l := NewLexer(c.src)
			require.Equal(t, c.kind, l.Next(), l.Err())
			assert.Equal(t, c.value, l.Value())
			assert.Equal(t, token.EOF, l.Next())
		})
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		src string
		err string
	}{
		{"256u8", "integer literal is too big for its type"},
		{"9223372036854775808", "integer literal is too big for its type"},
		{"1.5i32", "invalid literal suffix 'i32'"},
		{"3xyz", "invalid literal suffix 'xyz'"},
		{"0x", "expected digits after base prefix"},
		{"$", "invalid character '$'"},
		{"é", "invalid character 'é'"},
		{"\"abc", "unterminated string literal"},
		{"'ab'", "unterminated char literal"},
		{`'\q'`, "invalid escape sequence"},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			l := NewLexer(c.src)
			assert.Equal(t, token.ERROR, l.Next())
			assert.Equal(t, c.err, l.Err())
		})
	}
}

func TestMultibyteInvalidCharacter(t *testing.T) {
	l := NewLexer("var é = 1;")
	kinds := []token.TokenKind{token.VAR, token.ERROR, token.EQUALS, token.I64_L, token.SEMICOLON, token.EOF}
	for _, want := range kinds {
		assert.Equal(t, want, l.Next())
	}
	l = NewLexer("é")
	l.Next()
	assert.Equal(t, "é", l.Lexeme())
}

func TestStrings(t *testing.T) {
	l := NewLexer(`"hello\tworld"`)
	require.Equal(t, token.STRING_L, l.Next())
	assert.Equal(t, "hello\tworld", l.StringValue())
}

func TestNulTerminates(t *testing.T) {
	assert.Equal(t, []token.TokenKind{token.IDENT}, kinds("a\x00 b c"))
}

func TestSpan(t *testing.T) {
	l := NewLexer("var a = 1;\nvar bee = 2;")
	for i := 0; i < 5; i++ {
		l.Next()
	}
	require.Equal(t, token.VAR, l.Next())
	first := l.Info()
	require.Equal(t, token.IDENT, l.Next())

	span := l.Span(first, l.Info())
	assert.Equal(t, token.Span{
		StartLine: 2,
		EndLine:   2,
		Line:      "var bee = 2;",
		Lexeme:    "var bee",
		Column:    0,
	}, span)
	assert.Equal(t, "line 2", span.String())

	assert.Equal(t, "bee", l.Lexeme())
	assert.Equal(t, "var bee = 2;", l.LineText())
	assert.Equal(t, 4, l.CurrentSpan().Column)
}
