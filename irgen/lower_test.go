package irgen

import (
	"math"
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontaoski/colt/ast"
	"github.com/pontaoski/colt/errors"
	"github.com/pontaoski/colt/parser"
	"github.com/pontaoski/colt/token"
	"github.com/pontaoski/colt/types"
)

const program = `
var count = 3;
var limit: const i32 = -7i32;
var mask = 255u8;
var ratio = -0.5;
var enabled = true;
var nothing: PTR<i64>;

fn add(x, y) -> i64;
fn scale(v: f64, by: u8) -> f64 { return v; }
fn main() { }
`

func lower(t *testing.T, src string, s Settings) *ir.Module {
	t.Helper()

	sink := &errors.Collector{}
	tree, err := parser.CreateAST(src, ast.NewContext(), sink)
	require.NoError(t, err, "%v", sink.Texts(errors.ErrorLevel))
	return Lower(tree, s)
}

func global(t *testing.T, m *ir.Module, name string) *ir.Global {
	t.Helper()

	for _, g := range m.Globals {
		if g.Name() == name {
			return g
		}
	}
	require.FailNow(t, "no global "+name)
	return nil
}

func TestLowerGlobals(t *testing.T) {
	m := lower(t, program, Settings{Package: "demo"})
	assert.Equal(t, "demo", m.SourceFilename)

	count := global(t, m, "count").Init.(*constant.Int)
	assert.Equal(t, int64(3), count.X.Int64())
	assert.False(t, global(t, m, "count").Immutable)

	limit := global(t, m, "limit")
	assert.True(t, limit.Immutable)
	assert.Equal(t, int64(-7), limit.Init.(*constant.Int).X.Int64())
	assert.Equal(t, lltypes.I32, limit.Init.Type())

	mask := global(t, m, "mask").Init.(*constant.Int)
	assert.Equal(t, uint64(255), mask.X.Uint64())

	ratio := global(t, m, "ratio").Init.(*constant.Float)
	f, _ := ratio.X.Float64()
	assert.Equal(t, -0.5, f)

	enabled := global(t, m, "enabled").Init.(*constant.Int)
	assert.Equal(t, int64(1), enabled.X.Int64())

	_, isNull := global(t, m, "nothing").Init.(*constant.Null)
	assert.True(t, isNull)
}

func TestLowerFunctions(t *testing.T) {
	m := lower(t, program, Settings{})
	require.Len(t, m.Funcs, 4)

	add := m.Funcs[0]
	assert.Equal(t, "add", add.Name())
	assert.Equal(t, lltypes.I64, add.Sig.RetType)
	require.Len(t, add.Params, 2)
	assert.Equal(t, "x", add.Params[0].Name())
	assert.Empty(t, add.Blocks)

	scale := m.Funcs[1]
	assert.Equal(t, []lltypes.Type{lltypes.Double, lltypes.I8}, scale.Sig.Params)

	entry := m.Funcs[3]
	assert.Equal(t, EntryName, entry.Name())
	require.Len(t, entry.Blocks, 1)

	library := lower(t, program, Settings{Library: true})
	assert.Len(t, library.Funcs, 3)
	assert.Contains(t, library.String(), "@scale")
}

func TestLowerForeignExpression(t *testing.T) {
	other := ast.NewContext()
	decl := other.NewVarDecl("x", nil, true, other.Builtin(types.I64, false), token.Span{})

	tree := &ast.AST{Expressions: []ast.Expr{decl}, Ctx: ast.NewContext()}
	assert.Panics(t, func() { Lower(tree, Settings{}) })
}

func TestTypeInfo(t *testing.T) {
	m := lower(t, program, Settings{})

	info, err := ReadTypeInfo(m)
	require.NoError(t, err)
	assert.Equal(t, "fn(i64, i64) -> i64", info.Functions["add"])
	assert.Equal(t, "fn() -> void", info.Functions["main"])
	assert.Equal(t, "const i32", info.Globals["limit"])
	assert.Len(t, info.Globals, 6)

	_, err = ReadTypeInfo(ir.NewModule())
	assert.Error(t, err)
}

func TestType(t *testing.T) {
	a := types.NewArena()
	i16 := a.Builtin(types.I16, true)

	assert.Equal(t, lltypes.I16, Type(i16))
	assert.Equal(t, lltypes.I1, Type(a.Bool(false)))
	assert.Equal(t, lltypes.Float, Type(a.Builtin(types.F32, false)))
	assert.Equal(t, lltypes.NewPointer(lltypes.I8), Type(a.Ptr(false, a.Void())))
	assert.Equal(t, lltypes.NewPointer(lltypes.NewPointer(lltypes.I16)), Type(a.Ptr(false, a.Ptr(true, i16))))

	fn := a.Fn(a.Void(), []types.Type{i16})
	assert.Equal(t, lltypes.NewFunc(lltypes.Void, lltypes.I16), Signature(fn))
	assert.Equal(t, lltypes.NewPointer(Signature(fn)), Type(fn))

	assert.Panics(t, func() { Type(a.Error()) })
}

func TestConstantWraps(t *testing.T) {
	c := ast.NewContext()
	u8 := c.Builtin(types.U8, false)
	neg := c.NewUnary(token.MINUS, false, c.NewLiteral(1, u8, token.Span{}), u8, token.Span{})

	v := Constant(u8, neg).(*constant.Int)
	assert.Equal(t, uint64(math.MaxUint8), v.X.Uint64())

	zero := Constant(c.Builtin(types.I32, false), nil)
	assert.Equal(t, constant.NewZeroInitializer(lltypes.I32), zero)
}
