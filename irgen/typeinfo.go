package irgen

import (
	"bytes"
	"encoding/json"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/ztrue/tracerr"
)

// TypeInfoName is the global holding the JSON encoded TypeInfo of a module.
const TypeInfoName = "__colt_types"

// TypeInfo lists the signatures of a module's declarations, keyed by name.
type TypeInfo struct {
	Functions map[string]string `json:"functions"`
	Globals   map[string]string `json:"globals"`
}

func registerTypeInfo(t TypeInfo, m *ir.Module) {
	data, err := json.Marshal(t)
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef(TypeInfoName, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

// ReadTypeInfo finds and decodes the TypeInfo of m.
func ReadTypeInfo(m *ir.Module) (t TypeInfo, err error) {
	for _, g := range m.Globals {
		if g.Name() != TypeInfoName {
			continue
		}
		arr, ok := g.Init.(*constant.CharArray)
		if !ok {
			return TypeInfo{}, tracerr.Errorf("%s is not a character array", TypeInfoName)
		}
		err = json.Unmarshal(bytes.TrimRight(arr.X, "\x00"), &t)
		return t, tracerr.Wrap(err)
	}
	return TypeInfo{}, tracerr.Errorf("module has no %s global", TypeInfoName)
}
