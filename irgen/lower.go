// Package irgen lowers the declarations of a Colt AST to an LLVM IR module:
// globals with their initializers and function prototypes. Function bodies
// are not lowered.
package irgen

import (
	"math"
	"math/big"

	"github.com/coreos/pkg/capnslog"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"

	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/colt", "irgen")

// EntryName is the symbol calling main in executables.
const EntryName = "_colt_main"

type Settings struct {
	Package string
	Library bool
}

// Lower builds a module from an AST that parsed without errors.
func Lower(tree *ast.AST, s Settings) *ir.Module {
	m := ir.NewModule()
	m.SourceFilename = s.Package

	info := TypeInfo{
		Functions: make(map[string]string),
		Globals:   make(map[string]string),
	}
	var entry *ir.Func

	for _, e := range tree.Expressions {
		if !tree.Ctx.Owns(e) {
			panic("unreachable: " + e.Kind().String() + " belongs to another context")
		}
		switch e := e.(type) {
		case *ast.VarDecl:
			g := m.NewGlobalDef(e.Name(), Constant(e.Type(), e.Value()))
			g.Immutable = e.Type().IsConst()
			info.Globals[e.Name()] = e.Type().String()
		case *ast.FnDef:
			fn := lowerFnDecl(m, e)
			info.Functions[e.Name()] = e.FnType().String()
			if e.Name() == "main" && len(fn.Params) == 0 {
				entry = fn
			}
		default:
			panic("unreachable: " + e.Kind().String() + " at top level")
		}
	}

	if entry != nil && !s.Library {
		opening := m.NewFunc(EntryName, lltypes.Void)
		bloc := opening.NewBlock("entry")
		bloc.NewCall(entry)
		bloc.NewRet(nil)
	}

	registerTypeInfo(info, m)
	plog.Debugf("lowered %d globals and %d functions", len(info.Globals), len(info.Functions))
	return m
}

func lowerFnDecl(m *ir.Module, def *ast.FnDef) *ir.Func {
	sig := def.FnType()

	var params []*ir.Param
	for i, param := range sig.Params() {
		params = append(params, ir.NewParam(def.ParamNames()[i], Type(param)))
	}
	return m.NewFunc(def.Name(), Type(sig.Return()), params...)
}

// literalOf unpacks a global initializer: a literal, maybe negated.
func literalOf(e ast.Expr) (lit *ast.Literal, negate bool) {
	switch e := e.(type) {
	case *ast.Literal:
		return e, false
	case *ast.Unary:
		if lit, ok := e.Child().(*ast.Literal); ok && e.Operation() == token.OpNegate {
			return lit, true
		}
	}
	panic("unreachable: global initializer is not a literal")
}

// Constant lowers the initializer of a global of type t. A nil init gives
// the zero value.
func Constant(t types.Type, init ast.Expr) constant.Constant {
	typ := Type(t)
	if init == nil {
		if ptr, ok := typ.(*lltypes.PointerType); ok {
			return constant.NewNull(ptr)
		}
		return constant.NewZeroInitializer(typ)
	}

	lit, negate := literalOf(init)
	b, ok := t.(*types.Builtin)
	if !ok {
		panic("unreachable: literal initializer for " + t.String())
	}

	switch {
	case b.IsBool():
		return constant.NewBool(lit.Bool())
	case b.IsFloating():
		f := lit.Float()
		if negate {
			f = -f
		}
		return constant.NewFloat(typ.(*lltypes.FloatType), f)
	}

	v := lit.Value()
	if negate {
		v = -v
	}
	if b.IsSigned() {
		return constant.NewInt(typ.(*lltypes.IntType), int64(v))
	}
	if bits := b.ID().Bits(); bits < 64 {
		v &= math.MaxUint64 >> (64 - uint(bits))
	}
	return &constant.Int{Typ: typ.(*lltypes.IntType), X: new(big.Int).SetUint64(v)}
}
