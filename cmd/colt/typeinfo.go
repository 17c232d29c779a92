package main

import (
	"github.com/alecthomas/repr"
	"github.com/llir/llvm/asm"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/colt/irgen"
)

func typeinfo(path string) error {
	if path == "" {
		return tracerr.New("no module provided")
	}

	m, err := asm.ParseFile(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	info, err := irgen.ReadTypeInfo(m)
	if err != nil {
		return err
	}
	repr.Println(info)
	return nil
}
