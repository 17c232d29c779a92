package irgen

import (
	lltypes "github.com/llir/llvm/ir/types"

	"github.com/pontaoski/colt/types"
)

var builtins = map[types.BuiltinID]lltypes.Type{
	types.U8:   lltypes.I8,
	types.I8:   lltypes.I8,
	types.U16:  lltypes.I16,
	types.I16:  lltypes.I16,
	types.U32:  lltypes.I32,
	types.I32:  lltypes.I32,
	types.U64:  lltypes.I64,
	types.I64:  lltypes.I64,
	types.U128: lltypes.I128,
	types.I128: lltypes.I128,
	types.F32:  lltypes.Float,
	types.F64:  lltypes.Double,
	types.Bool: lltypes.I1,
}

// Type lowers t. Function types lower to function pointers, the way values
// of those types are stored.
func Type(t types.Type) lltypes.Type {
	switch t := t.(type) {
	case *types.Void:
		return lltypes.Void
	case *types.Builtin:
		return builtins[t.ID()]
	case *types.Ptr:
		to := Type(t.Pointee())
		if lltypes.IsVoid(to) {
			to = lltypes.I8
		}
		return lltypes.NewPointer(to)
	case *types.Fn:
		return lltypes.NewPointer(Signature(t))
	case *types.Error:
		panic("unreachable: error type reached lowering")
	}
	panic("unreachable: invalid type kind")
}

func Signature(t *types.Fn) *lltypes.FuncType {
	var params []lltypes.Type
	for _, param := range t.Params() {
		params = append(params, Type(param))
	}
	return lltypes.NewFunc(Type(t.Return()), params...)
}
