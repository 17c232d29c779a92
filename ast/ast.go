// Package ast holds the Colt expression model and the Context that owns it.
package ast

// AST is the result of a parse: the top-level expressions in source order
// and the Context they live in.
type AST struct {
	Expressions []Expr
	Ctx         *Context
}

// Functions returns the top-level function definitions.
func (a *AST) Functions() (ret []*FnDef) {
	for _, e := range a.Expressions {
		if fn, ok := e.(*FnDef); ok {
			ret = append(ret, fn)
		}
	}
	return
}

// Globals returns the top-level variable declarations.
func (a *AST) Globals() (ret []*VarDecl) {
	for _, e := range a.Expressions {
		if decl, ok := e.(*VarDecl); ok {
			ret = append(ret, decl)
		}
	}
	return
}
