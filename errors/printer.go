package errors

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/pontaoski/colt/token"
)

// PrintOptions selects what a Printer shows and how.
type PrintOptions struct {
	Colored  bool
	Messages bool
	Warnings bool
	Errors   bool
}

// Printer renders diagnostics for a terminal, underlining the lexeme.
type Printer struct {
	out  io.Writer
	opts PrintOptions
	au   aurora.Aurora
}

func NewPrinter(out io.Writer, opts PrintOptions) *Printer {
	return &Printer{out: out, opts: opts, au: aurora.NewAurora(opts.Colored)}
}

func (p *Printer) Message(span token.Span, format string, args ...interface{}) {
	if p.opts.Messages {
		p.print(MessageLevel, span, fmt.Sprintf(format, args...))
	}
}

func (p *Printer) Warning(span token.Span, format string, args ...interface{}) {
	if p.opts.Warnings {
		p.print(WarningLevel, span, fmt.Sprintf(format, args...))
	}
}

func (p *Printer) Error(span token.Span, format string, args ...interface{}) {
	if p.opts.Errors {
		p.print(ErrorLevel, span, fmt.Sprintf(format, args...))
	}
}

// paint renders s in the color of level, or plain when colors are off.
func (p *Printer) paint(level Severity, s string) string {
	switch level {
	case ErrorLevel:
		return fmt.Sprint(p.au.Red(s).Bold())
	case WarningLevel:
		return fmt.Sprint(p.au.Yellow(s).Bold())
	}
	return fmt.Sprint(p.au.Cyan(s).Bold())
}

func (p *Printer) print(level Severity, span token.Span, text string) {
	var b strings.Builder

	b.WriteString(p.paint(level, level.String()+":"))
	b.WriteString(" " + text + "\n")

	if span.StartLine > 0 {
		lines := strings.Split(span.Line, "\n")
		width := len(strconv.Itoa(span.StartLine + len(lines) - 1))
		for i, line := range lines {
			fmt.Fprintf(&b, " %*d | %s\n", width, span.StartLine+i, strings.TrimRight(line, "\r"))
		}

		if len(lines) == 1 && span.Lexeme != "" {
			b.WriteString(" " + strings.Repeat(" ", width) + " | ")
			b.WriteString(strings.Repeat(" ", span.Column))
			b.WriteString(p.paint(level, strings.Repeat("^", len(span.Lexeme))))
			b.WriteString("\n")
		}
	}

	io.WriteString(p.out, b.String())
}
