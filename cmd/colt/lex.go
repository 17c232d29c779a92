package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pontaoski/colt/lexer"
	"github.com/pontaoski/colt/token"
)

// lex prints one token per line. Errors show their reason in place of the
// lexeme and strings their unescaped value.
func lex(out io.Writer, src string) error {
	l := lexer.NewLexer(src)
	for kind := l.Next(); kind != token.EOF; kind = l.Next() {
		text := l.Lexeme()
		switch kind {
		case token.ERROR:
			text = l.Err()
		case token.STRING_L:
			text = strconv.Quote(l.StringValue())
		}
		if _, err := fmt.Fprintf(out, "%4d %-12s %s\n", l.Line(), kind, text); err != nil {
			return err
		}
	}
	return nil
}
