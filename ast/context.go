package ast

import (
	"github.com/pontaoski/colt/types"
)

// Context owns every Type and Expr of one compilation unit. Nodes are never
// released one by one: dropping the Context drops them all.
type Context struct {
	*types.Arena

	exprs []Expr
	owned map[Expr]struct{}
}

func NewContext() *Context {
	return &Context{
		Arena: types.NewArena(),
		owned: make(map[Expr]struct{}),
	}
}

func (c *Context) add(e Expr) {
	c.exprs = append(c.exprs, e)
	c.owned[e] = struct{}{}
}

// ExprCount returns how many expressions the context owns.
func (c *Context) ExprCount() int {
	return len(c.exprs)
}

// Owns reports whether e was allocated by this context.
func (c *Context) Owns(e Expr) bool {
	_, ok := c.owned[e]
	return ok
}
