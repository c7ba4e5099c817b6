//go:build js && wasm

// Command outlinewasm exposes the outline processors to JavaScript.
//
// Built with GOOS=js GOARCH=wasm, it registers every request entry
// point on a global outlineCore namespace. All calls are string in,
// string out; the host boundary carries nothing a text interchange
// format cannot.
package main

import (
	"syscall/js"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/pathops"
)

const missingArgs = `{"success":false,"error":"missing arguments"}`

func main() {
	core := js.Global().Get("Object").New()

	core.Set("getInfo", infoFn(outline.Info))
	core.Set("pathBounds", stringFn(outline.PathBounds))
	core.Set("pathTranslate", transformFn(outline.PathTranslate))
	core.Set("pathScale", transformFn(outline.PathScale))
	core.Set("pathValidate", stringFn(outline.PathValidate))
	core.Set("pathInfo", stringFn(outline.PathInfo))

	core.Set("pathOpsInfo", infoFn(pathops.Info))
	core.Set("pathUnion", stringFn(pathops.PathUnion))
	core.Set("pathSimplify", stringFn(pathops.PathSimplify))
	core.Set("pathSubtract", pairFn(pathops.PathSubtract))
	core.Set("pathIntersect", pairFn(pathops.PathIntersect))
	core.Set("pathExclude", pairFn(pathops.PathExclude))

	js.Global().Set("outlineCore", core)

	// Block forever; the exported functions are called from JavaScript.
	select {}
}

func infoFn(fn func() string) js.Func {
	return js.FuncOf(func(js.Value, []js.Value) any {
		return fn()
	})
}

func stringFn(fn func(string) string) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return missingArgs
		}
		return fn(args[0].String())
	})
}

func transformFn(fn func(string, float64, float64) string) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 3 {
			return missingArgs
		}
		return fn(args[0].String(), args[1].Float(), args[2].Float())
	})
}

func pairFn(fn func(string, string) string) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return missingArgs
		}
		return fn(args[0].String(), args[1].String())
	})
}
