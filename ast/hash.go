package ast

import (
	"encoding/binary"
	"hash/fnv"
)

func hashCombine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

func hashU64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func hashBool(b bool) uint64 {
	if b {
		return hashU64(1)
	}
	return hashU64(0)
}

// Hash returns a structural hash consistent with Equal: equal expressions
// hash to the same value.
func Hash(e Expr) uint64 {
	if e == nil {
		return 0
	}

	switch e := e.(type) {
	case *Literal:
		return hashU64(e.value)
	case *Unary:
		return hashCombine(hashU64(uint64(e.op)), Hash(e.child))
	case *Binary:
		return hashCombine(hashU64(uint64(e.op)), hashCombine(Hash(e.lhs), Hash(e.rhs)))
	case *Convert:
		return Hash(e.child)
	case *VarDecl:
		return hashCombine(hashString(e.name), hashCombine(hashBool(e.isGlobal), Hash(e.init)))
	case *VarRead:
		return hashCombine(hashString(e.name), hashU64(e.localID))
	case *VarWrite:
		return hashCombine(hashString(e.name), hashCombine(hashU64(e.localID), Hash(e.value)))
	case *FnDef:
		return 0
	case *FnCall:
		h := hashString(e.decl.name)
		for _, arg := range e.args {
			h = hashCombine(h, Hash(arg))
		}
		return h
	case *FnReturn:
		return Hash(e.value)
	case *Scope:
		return hashU64(uint64(len(e.body)))
	case *Condition:
		return hashCombine(Hash(e.cond), hashCombine(Hash(e.ifStmt), Hash(e.elseStmt)))
	case *Error:
		return hashString("error")
	}
	panic("unreachable: invalid expression kind")
}
