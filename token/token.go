package token

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	ERROR

	// binary operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	AND
	OR
	CARET
	LSHIFT
	RSHIFT
	ANDAND
	OROR
	LESS
	LESSEQ
	GREATER
	GREATEREQ
	NOTEQ
	EQEQ

	// assignments
	EQUALS
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ
	PERCENTEQ
	ANDEQ
	OREQ
	CARETEQ
	LSHIFTEQ
	RSHIFTEQ

	PLUSPLUS
	MINUSMINUS
	TILDE
	BANG

	COMMA
	SEMICOLON
	COLON
	ARROW
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET

	// literals
	BOOL_L
	CHAR_L
	U8_L
	U16_L
	U32_L
	U64_L
	I8_L
	I16_L
	I32_L
	I64_L
	FLOAT_L
	DOUBLE_L
	STRING_L

	IDENT

	// keywords
	FN
	VAR
	IF
	ELSE
	RETURN
	AS
	CONST

	// type keywords
	VOID
	BOOL
	I8
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
	F32
	F64
	PTR
)

var kindNames = map[TokenKind]string{
	EOF:        "EOF",
	ERROR:      "ERROR",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	PERCENT:    "%",
	AND:        "&",
	OR:         "|",
	CARET:      "^",
	LSHIFT:     "<<",
	RSHIFT:     ">>",
	ANDAND:     "&&",
	OROR:       "||",
	LESS:       "<",
	LESSEQ:     "<=",
	GREATER:    ">",
	GREATEREQ:  ">=",
	NOTEQ:      "!=",
	EQEQ:       "==",
	EQUALS:     "=",
	PLUSEQ:     "+=",
	MINUSEQ:    "-=",
	STAREQ:     "*=",
	SLASHEQ:    "/=",
	PERCENTEQ:  "%=",
	ANDEQ:      "&=",
	OREQ:       "|=",
	CARETEQ:    "^=",
	LSHIFTEQ:   "<<=",
	RSHIFTEQ:   ">>=",
	PLUSPLUS:   "++",
	MINUSMINUS: "--",
	TILDE:      "~",
	BANG:       "!",
	COMMA:      ",",
	SEMICOLON:  ";",
	COLON:      ":",
	ARROW:      "->",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACKET:   "{",
	RBRACKET:   "}",
	BOOL_L:     "BOOL_L",
	CHAR_L:     "CHAR_L",
	U8_L:       "U8_L",
	U16_L:      "U16_L",
	U32_L:      "U32_L",
	U64_L:      "U64_L",
	I8_L:       "I8_L",
	I16_L:      "I16_L",
	I32_L:      "I32_L",
	I64_L:      "I64_L",
	FLOAT_L:    "FLOAT_L",
	DOUBLE_L:   "DOUBLE_L",
	STRING_L:   "STRING_L",
	IDENT:      "IDENT",
	FN:         "fn",
	VAR:        "var",
	IF:         "if",
	ELSE:       "else",
	RETURN:     "return",
	AS:         "as",
	CONST:      "const",
	VOID:       "void",
	BOOL:       "bool",
	I8:         "i8",
	I16:        "i16",
	I32:        "i32",
	I64:        "i64",
	I128:       "i128",
	U8:         "u8",
	U16:        "u16",
	U32:        "u32",
	U64:        "u64",
	U128:       "u128",
	F32:        "f32",
	F64:        "f64",
	PTR:        "PTR",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Keywords maps reserved identifiers to their token.
var Keywords = map[string]TokenKind{
	"fn":     FN,
	"var":    VAR,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
	"as":     AS,
	"const":  CONST,
	"true":   BOOL_L,
	"false":  BOOL_L,
	"void":   VOID,
	"bool":   BOOL,
	"i8":     I8,
	"i16":    I16,
	"i32":    I32,
	"i64":    I64,
	"i128":   I128,
	"u8":     U8,
	"u16":    U16,
	"u32":    U32,
	"u64":    U64,
	"u128":   U128,
	"f32":    F32,
	"f64":    F64,
	"PTR":    PTR,
}

// IsLiteral reports whether t carries a literal payload.
func (t TokenKind) IsLiteral() bool {
	return t >= BOOL_L && t <= STRING_L
}

// IsBuiltinTypename reports whether t names a builtin scalar type.
func (t TokenKind) IsBuiltinTypename() bool {
	return t >= BOOL && t <= F64
}

// LexemeInfo locates one lexeme in the source buffer. All offsets are byte
// offsets into the buffer the lexer was created with.
type LexemeInfo struct {
	Line      int
	LineStart int
	LineEnd   int
	Start     int
	End       int
}

// Span is the source information attached to diagnostics and expressions.
type Span struct {
	StartLine int
	EndLine   int
	// Line holds the full text of lines StartLine through EndLine.
	Line string
	// Lexeme is the exact text covered by the span.
	Lexeme string
	// Column is the byte offset of Lexeme inside Line.
	Column int
}

func (s Span) String() string {
	if s.StartLine == s.EndLine {
		return fmt.Sprintf("line %d", s.StartLine)
	}
	return fmt.Sprintf("lines %d-%d", s.StartLine, s.EndLine)
}
