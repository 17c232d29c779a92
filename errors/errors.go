// Package errors holds the diagnostics produced while compiling Colt source.
package errors

import (
	"fmt"

	"github.com/pontaoski/colt/token"
)

type Severity int

const (
	MessageLevel Severity = iota
	WarningLevel
	ErrorLevel
)

func (s Severity) String() string {
	switch s {
	case MessageLevel:
		return "Message"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Reporter receives the diagnostics of the front-end. The front-end only
// counts them; rendering and filtering belong to the implementation.
type Reporter interface {
	Message(span token.Span, format string, args ...interface{})
	Warning(span token.Span, format string, args ...interface{})
	Error(span token.Span, format string, args ...interface{})
}

type Diagnostic struct {
	Level Severity
	Span  token.Span
	Text  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s. %s", d.Level, d.Text, d.Span)
}

// Collector records diagnostics in the order they are reported.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) add(level Severity, span token.Span, format string, args []interface{}) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{
		Level: level,
		Span:  span,
		Text:  fmt.Sprintf(format, args...),
	})
}

func (c *Collector) Message(span token.Span, format string, args ...interface{}) {
	c.add(MessageLevel, span, format, args)
}

func (c *Collector) Warning(span token.Span, format string, args ...interface{}) {
	c.add(WarningLevel, span, format, args)
}

func (c *Collector) Error(span token.Span, format string, args ...interface{}) {
	c.add(ErrorLevel, span, format, args)
}

// Count returns how many diagnostics of level were collected.
func (c *Collector) Count(level Severity) (n int) {
	for _, d := range c.Diagnostics {
		if d.Level == level {
			n++
		}
	}
	return
}

// Texts returns the formatted text of every diagnostic of level.
func (c *Collector) Texts(level Severity) (ret []string) {
	for _, d := range c.Diagnostics {
		if d.Level == level {
			ret = append(ret, d.Text)
		}
	}
	return
}

// Replay forwards every collected diagnostic to r, in order.
func (c *Collector) Replay(r Reporter) {
	for _, d := range c.Diagnostics {
		switch d.Level {
		case MessageLevel:
			r.Message(d.Span, "%s", d.Text)
		case WarningLevel:
			r.Warning(d.Span, "%s", d.Text)
		case ErrorLevel:
			r.Error(d.Span, "%s", d.Text)
		}
	}
}

// ErrorCount is returned when a compilation produced errors.
type ErrorCount int

func (e ErrorCount) Error() string {
	if e == 1 {
		return "1 error generated"
	}
	return fmt.Sprintf("%d errors generated", int(e))
}
