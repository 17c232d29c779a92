package ast

import (
	"github.com/pontaoski/colt/types"
)

// Equal compares two expressions structurally. Expressions of different
// kinds are never equal. Function definitions are never equal, not even to
// themselves, and scopes are only equal to themselves.
func Equal(lhs, rhs Expr) bool {
	if lhs == nil || rhs == nil {
		return lhs == nil && rhs == nil
	}
	if lhs.Kind() != rhs.Kind() {
		return false
	}

	switch l := lhs.(type) {
	case *Literal:
		r := rhs.(*Literal)
		return l.value == r.value && types.EqualWithConst(l.typ, r.typ)
	case *Unary:
		r := rhs.(*Unary)
		return l.op == r.op && Equal(l.child, r.child)
	case *Binary:
		r := rhs.(*Binary)
		return l.op == r.op && Equal(l.lhs, r.lhs) && Equal(l.rhs, r.rhs)
	case *Convert:
		r := rhs.(*Convert)
		return types.EqualWithConst(l.typ, r.typ) && Equal(l.child, r.child)
	case *VarDecl:
		r := rhs.(*VarDecl)
		return l.name == r.name && l.isGlobal == r.isGlobal && Equal(l.init, r.init)
	case *VarRead:
		r := rhs.(*VarRead)
		return l.name == r.name && l.localID == r.localID
	case *VarWrite:
		r := rhs.(*VarWrite)
		return l.name == r.name && l.localID == r.localID && Equal(l.value, r.value)
	case *FnDef:
		// overload resolution might give this a meaning
		return false
	case *FnCall:
		r := rhs.(*FnCall)
		if l.decl != r.decl || len(l.args) != len(r.args) {
			return false
		}
		for i := range l.args {
			if !Equal(l.args[i], r.args[i]) {
				return false
			}
		}
		return true
	case *FnReturn:
		return Equal(l.value, rhs.(*FnReturn).value)
	case *Scope:
		return l == rhs.(*Scope)
	case *Condition:
		r := rhs.(*Condition)
		return Equal(l.cond, r.cond) && Equal(l.ifStmt, r.ifStmt) && Equal(l.elseStmt, r.elseStmt)
	case *Error:
		return true
	}
	panic("unreachable: invalid expression kind")
}
