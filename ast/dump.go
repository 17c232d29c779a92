package ast

import (
	"strconv"
	"strings"

	"github.com/pontaoski/colt/types"
)

func literalToString(e *Literal) string {
	b, ok := e.typ.(*types.Builtin)
	if !ok {
		return strconv.FormatUint(e.value, 10)
	}
	switch {
	case b.IsBool():
		return strconv.FormatBool(e.Bool())
	case b.IsFloating():
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	case b.IsSigned():
		return strconv.FormatInt(e.Int(), 10)
	}
	return strconv.FormatUint(e.value, 10)
}

// Dump renders e as an s-expression, e.g. (+ 1 (* 2 3)).
func Dump(e Expr) string {
	if e == nil {
		return "<nil>"
	}

	switch v := e.(type) {
	case *Literal:
		return literalToString(v)
	case *Unary:
		if v.op.IsPost() {
			return "(" + Dump(v.child) + " " + v.op.String() + ")"
		}
		return "(" + v.op.String() + " " + Dump(v.child) + ")"
	case *Binary:
		return "(" + v.op.String() + " " + Dump(v.lhs) + " " + Dump(v.rhs) + ")"
	case *Convert:
		return "(as " + Dump(v.child) + " " + v.typ.String() + ")"
	case *VarDecl:
		head := "(var "
		if v.isGlobal {
			head = "(global "
		}
		if v.init == nil {
			return head + v.name + ")"
		}
		return head + v.name + " " + Dump(v.init) + ")"
	case *VarRead:
		return v.name
	case *VarWrite:
		return "(= " + v.name + " " + Dump(v.value) + ")"
	case *FnDef:
		s := "(fn " + v.name + " (" + strings.Join(v.params, " ") + ")"
		if v.body != nil {
			s += " " + Dump(v.body)
		}
		return s + ")"
	case *FnCall:
		s := "(call " + v.decl.name
		for _, arg := range v.args {
			s += " " + Dump(arg)
		}
		return s + ")"
	case *FnReturn:
		if v.value == nil {
			return "(return)"
		}
		return "(return " + Dump(v.value) + ")"
	case *Scope:
		s := "(scope"
		for _, stmt := range v.body {
			s += " " + Dump(stmt)
		}
		return s + ")"
	case *Condition:
		s := "(if " + Dump(v.cond) + " " + Dump(v.ifStmt)
		if v.elseStmt != nil {
			s += " " + Dump(v.elseStmt)
		}
		return s + ")"
	case *Error:
		return "<error>"
	}

	panic("unhandled")
}

// Node is a plain tree view of an expression, meant for dumping.
type Node struct {
	Kind     string
	Text     string
	Type     string
	Line     int
	Children []Node
}

// Describe converts e into a Node tree.
func Describe(e Expr) Node {
	n := Node{
		Kind: e.Kind().String(),
		Type: e.Type().String(),
		Line: e.Span().StartLine,
	}
	add := func(children ...Expr) {
		for _, child := range children {
			if child != nil {
				n.Children = append(n.Children, Describe(child))
			}
		}
	}

	switch v := e.(type) {
	case *Literal:
		n.Text = literalToString(v)
	case *Unary:
		n.Text = v.op.String()
		add(v.child)
	case *Binary:
		n.Text = v.op.String()
		add(v.lhs, v.rhs)
	case *Convert:
		add(v.child)
	case *VarDecl:
		n.Text = v.name
		add(v.init)
	case *VarRead:
		n.Text = v.name
	case *VarWrite:
		n.Text = v.name
		add(v.value)
	case *FnDef:
		n.Text = v.name + "(" + strings.Join(v.params, ", ") + ")"
		add(v.body)
	case *FnCall:
		n.Text = v.decl.name
		add(v.args...)
	case *FnReturn:
		add(v.value)
	case *Scope:
		add(v.body...)
	case *Condition:
		add(v.cond, v.ifStmt, v.elseStmt)
	}
	return n
}
