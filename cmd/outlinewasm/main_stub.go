//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "outlinewasm targets WebAssembly; build it with GOOS=js GOARCH=wasm")
	os.Exit(2)
}
