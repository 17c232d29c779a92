package types

type builtinKey struct {
	id      BuiltinID
	isConst bool
}

// Arena owns every Type created for one compilation unit. Void, Error and
// builtins are interned; pointers and function types are allocated per call.
type Arena struct {
	types    []Type
	void     *Void
	err      *Error
	builtins map[builtinKey]*Builtin
}

func NewArena() *Arena {
	return &Arena{
		builtins: make(map[builtinKey]*Builtin),
	}
}

func (a *Arena) add(t Type) Type {
	a.types = append(a.types, t)
	return t
}

// TypeCount returns how many types the arena owns.
func (a *Arena) TypeCount() int {
	return len(a.types)
}

func (a *Arena) Void() *Void {
	if a.void == nil {
		a.void = a.add(&Void{}).(*Void)
	}
	return a.void
}

func (a *Arena) Error() *Error {
	if a.err == nil {
		a.err = a.add(&Error{}).(*Error)
	}
	return a.err
}

func (a *Arena) Builtin(id BuiltinID, isConst bool) *Builtin {
	key := builtinKey{id, isConst}
	if b, ok := a.builtins[key]; ok {
		return b
	}

	b := a.add(&Builtin{id: id, isConst: isConst}).(*Builtin)
	a.builtins[key] = b
	return b
}

func (a *Arena) Bool(isConst bool) *Builtin {
	return a.Builtin(Bool, isConst)
}

func (a *Arena) Ptr(isConst bool, to Type) *Ptr {
	return a.add(&Ptr{isConst: isConst, to: to}).(*Ptr)
}

func (a *Arena) Fn(ret Type, params []Type) *Fn {
	return a.add(&Fn{ret: ret, params: params}).(*Fn)
}

// Unqualified returns t without top-level const. Pointees keep theirs.
func (a *Arena) Unqualified(t Type) Type {
	return a.WithConst(t, false)
}

// WithConst returns t with top-level const set to isConst.
func (a *Arena) WithConst(t Type, isConst bool) Type {
	if t.IsConst() == isConst {
		return t
	}
	switch t := t.(type) {
	case *Builtin:
		return a.Builtin(t.id, isConst)
	case *Ptr:
		return a.Ptr(isConst, t.to)
	}
	return t
}
