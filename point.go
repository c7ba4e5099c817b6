package outline

// TypeLine is the default point type. Points of this type are straight
// line vertices; any other type tags the point for consumers that
// distinguish curve control points.
const TypeLine = "line"

// Point is a single outline vertex. X and Y are coordinates in font
// units. Type tags the role of the point and defaults to [TypeLine];
// Smooth marks the point as a smooth connection between segments.
type Point struct {
	X, Y   float64
	Type   string
	Smooth bool
}

// Pt is a convenience function to create a line point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y, Type: TypeLine}
}

// IsLine reports whether the point is a plain line vertex.
func (p Point) IsLine() bool {
	return p.Type == TypeLine
}
