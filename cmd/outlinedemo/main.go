// Command outlinedemo drives the outline processors from the command line.
//
// "info" prints the processor descriptions; "test" runs the request
// entry points against a 100x100 square and prints each envelope.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/outline"
	"github.com/gogpu/outline/pathops"
)

const squareJSON = `{"contours":[{"points":[{"x":0,"y":0},{"x":100,"y":0},{"x":100,"y":100},{"x":0,"y":100}],"isClosed":true}]}`

func main() {
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch op := flag.Arg(0); op {
	case "info":
		fmt.Println(outline.Info())
		fmt.Println(pathops.Info())
	case "test":
		runTest()
	case "":
		fmt.Println("outlinedemo v" + outline.Version)
		fmt.Println("Usage: outlinedemo [-v] [info|test]")
	default:
		fmt.Printf("Unknown operation: %s\n", op)
		fmt.Println("Available operations: info, test")
		os.Exit(2)
	}
}

func runTest() {
	fmt.Println("Path info test:", outline.PathInfo(squareJSON))
	fmt.Println("Bounds test:", outline.PathBounds(squareJSON))
	fmt.Println("Translate test:", outline.PathTranslate(squareJSON, 50, 25))
	fmt.Println("Scale test:", outline.PathScale(squareJSON, 2.0, 1.5))
	fmt.Println("Union test result:", pathops.PathUnion(squareJSON))
}
