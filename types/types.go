// Package types holds the Colt type model. Every Type is allocated by an
// Arena and lives as long as it. The concrete structs are exported for type
// switches only: their fields are private, and a value not obtained from an
// Arena is not a valid Type.
package types

import (
	"strings"

	"github.com/pontaoski/colt/token"
)

type Kind uint8

const (
	KindVoid Kind = iota
	KindBuiltin
	KindPtr
	KindFn
	KindError
)

type Type interface {
	Kind() Kind
	IsConst() bool
	String() string

	is_Type()
}

// Void is the type of statements. Get it from Arena.Void.
type Void struct{}

func (v *Void) Kind() Kind     { return KindVoid }
func (v *Void) IsConst() bool  { return false }
func (v *Void) String() string { return "void" }
func (v *Void) is_Type()       {}

type BuiltinID uint8

const (
	U8 BuiltinID = iota
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
	F32
	F64
	Bool
)

var builtinNames = [...]string{
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	U128: "u128",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	I128: "i128",
	F32:  "f32",
	F64:  "f64",
	Bool: "bool",
}

func (id BuiltinID) String() string {
	return builtinNames[id]
}

// IsIntegral is true for signed and unsigned integers.
func (id BuiltinID) IsIntegral() bool { return id <= I128 }

// IsSigned is true for signed integers and floats.
func (id BuiltinID) IsSigned() bool { return id >= I8 && id <= F64 }

func (id BuiltinID) IsFloating() bool { return id == F32 || id == F64 }

// Bits returns the storage width of the type.
func (id BuiltinID) Bits() int {
	switch id {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32, F32:
		return 32
	case U64, I64, F64:
		return 64
	case U128, I128:
		return 128
	}
	return 1
}

// Supported binary operators. Supports scans these linearly, they are tiny.
var (
	integralSupported = []token.BinaryOperator{
		token.OpSum, token.OpSub, token.OpMul, token.OpDiv, token.OpMod,
		token.OpBitAnd, token.OpBitOr, token.OpBitXor, token.OpShiftLeft, token.OpShiftRight,
		token.OpLess, token.OpLessEqual, token.OpGreater, token.OpGreaterEqual,
		token.OpNotEqual, token.OpEqual,
	}
	floatingSupported = []token.BinaryOperator{
		token.OpSum, token.OpSub, token.OpMul, token.OpDiv,
		token.OpLess, token.OpLessEqual, token.OpGreater, token.OpGreaterEqual,
		token.OpNotEqual, token.OpEqual,
	}
	boolSupported = []token.BinaryOperator{
		token.OpBoolAnd, token.OpBoolOr, token.OpNotEqual, token.OpEqual,
	}
)

func (id BuiltinID) operators() []token.BinaryOperator {
	switch {
	case id.IsFloating():
		return floatingSupported
	case id == Bool:
		return boolSupported
	}
	return integralSupported
}

// Builtin is a numeric or boolean type. Only values returned by
// Arena.Builtin are interned, so build them there and compare by identity
// only through Equal.
type Builtin struct {
	id      BuiltinID
	isConst bool
}

func (b *Builtin) Kind() Kind {
	return KindBuiltin
}

func (b *Builtin) IsConst() bool {
	return b.isConst
}

func (b *Builtin) ID() BuiltinID {
	return b.id
}

func (b *Builtin) IsIntegral() bool {
	return b.id.IsIntegral()
}

func (b *Builtin) IsFloating() bool {
	return b.id.IsFloating()
}

func (b *Builtin) IsSigned() bool {
	return b.id.IsSigned()
}

func (b *Builtin) IsBool() bool {
	return b.id == Bool
}

func (b *Builtin) is_Type() {}

func (b *Builtin) String() string {
	return constPrefix(b.isConst) + b.id.String()
}

// Supports reports whether op can be applied to two values of this type.
func (b *Builtin) Supports(op token.BinaryOperator) bool {
	for _, valid := range b.id.operators() {
		if valid == op {
			return true
		}
	}
	return false
}

type Ptr struct {
	isConst bool
	to      Type
}

func (p *Ptr) Kind() Kind    { return KindPtr }
func (p *Ptr) IsConst() bool { return p.isConst }
func (p *Ptr) Pointee() Type { return p.to }
func (p *Ptr) is_Type()      {}

func (p *Ptr) String() string {
	return constPrefix(p.isConst) + "PTR<" + p.to.String() + ">"
}

type Fn struct {
	ret    Type
	params []Type
}

func (f *Fn) Kind() Kind     { return KindFn }
func (f *Fn) IsConst() bool  { return false }
func (f *Fn) Return() Type   { return f.ret }
func (f *Fn) Params() []Type { return f.params }
func (f *Fn) is_Type()       {}

func (f *Fn) String() string {
	var params []string
	for _, p := range f.params {
		params = append(params, p.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + f.ret.String()
}

// Error marks a type error that was already reported. Get it from
// Arena.Error.
type Error struct{}

func (e *Error) Kind() Kind     { return KindError }
func (e *Error) IsConst() bool  { return false }
func (e *Error) String() string { return "<error>" }
func (e *Error) is_Type()       {}

func constPrefix(isConst bool) string {
	if isConst {
		return "const "
	}
	return ""
}

// IsError reports whether t is the error sentinel.
func IsError(t Type) bool {
	return t.Kind() == KindError
}

// Equal compares a and b, ignoring the const-ness of a and b themselves. A
// pointee is compared with its const-ness. The error type is equal to anything.
func Equal(a, b Type) bool {
	if IsError(a) || IsError(b) {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case *Void:
		return true
	case *Builtin:
		return a.id == b.(*Builtin).id
	case *Ptr:
		return EqualWithConst(a.to, b.(*Ptr).to)
	case *Fn:
		bf := b.(*Fn)
		if !Equal(a.ret, bf.ret) || len(a.params) != len(bf.params) {
			return false
		}
		for i := range a.params {
			if !Equal(a.params[i], bf.params[i]) {
				return false
			}
		}
		return true
	}
	panic("unreachable: invalid type comparison")
}

// EqualWithConst is Equal that also requires matching const-ness.
func EqualWithConst(a, b Type) bool {
	if IsError(a) || IsError(b) {
		return true
	}
	if a.IsConst() != b.IsConst() {
		return false
	}
	return Equal(a, b)
}
