// Package outline provides a JSON facade over multi-contour 2D font outlines.
//
// # Overview
//
// outline holds the in-memory model of a font outline (ordered contours of
// tagged points) together with a codec for the JSON interchange form used by
// browser-hosted font editors, a small set of geometry operations (bounding
// box, translation, scaling, structural statistics), and a string-in/
// string-out request dispatcher that wraps every result in a uniform
// success/error envelope. Boolean path operations (union, subtract,
// intersect, exclude) are not part of this package; they live in the
// pathops subpackage, which delegates them to an external clipping engine.
//
// # Quick Start
//
//	import "github.com/gogpu/outline"
//
//	// Dispatch a request: JSON string in, JSON envelope out.
//	result := outline.PathBounds(`{"contours":[{"points":[{"x":0,"y":0},{"x":100,"y":100}],"isClosed":true}]}`)
//	// result == `{"success":true,"bounds":{"xMin":0,"yMin":0,"xMax":100,"yMax":100,"width":100,"height":100}}`
//
//	// Or work with the model directly.
//	p, err := outline.Decode(data)
//	if err != nil { ... }
//	moved := p.Translate(50, 25)
//
// # Interchange Form
//
// A path is {"contours": [{"points": [{"x", "y", "type"?, "smooth"?}],
// "isClosed"}]}. Missing fields decode to defaults (x/y 0, type "line",
// smooth false, isClosed false, absent sequences empty). Encoding omits
// "type" when it is "line" and "smooth" when it is false; everything else is
// always present. The asymmetry keeps the wire form minimal and is part of
// the contract.
//
// # Coordinate System
//
// Coordinates are font units:
//   - X increases right
//   - Y increases up (the typographic convention, origin on the baseline)
//
// The package never interprets them beyond min/max reduction and affine
// arithmetic, so any consistent convention works.
//
// # Concurrency
//
// Every operation is a pure function over value types; no package state is
// mutated after initialization (SetLogger swaps an atomic pointer). Calls
// may be issued concurrently from any number of goroutines.
package outline

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
