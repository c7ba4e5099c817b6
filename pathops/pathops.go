// Package pathops performs boolean operations on outlines by delegating
// to a polygon clipping engine.
//
// Outlines are handed to the engine as flat polygons: every contour
// becomes a closed ring of its points, with curve control points taken
// as plain vertices. Results come back as closed contours of line
// points; vertex order and winding within a result are the engine's
// business.
//
// The package mirrors the request surface of the parent outline
// package: the same interchange form, the same envelopes, the same
// string-in/string-out entry points.
package pathops

import (
	"fmt"

	polyclip "github.com/ctessum/polyclip-go"
	"github.com/gogpu/outline"
)

// ClipError reports a failure inside the clipping engine. The engine is
// an external dependency; whatever it throws is captured here so that
// nothing propagates past an entry point.
type ClipError struct {
	Op    string
	Cause any
}

func (e *ClipError) Error() string {
	return fmt.Sprintf("pathops: %s failed: %v", e.Op, e.Cause)
}

// Union merges the contours of a single outline, removing any overlap
// between them. A one-contour outline passes through the engine
// unchanged.
func Union(p outline.Path) (outline.Path, error) {
	return clip("union", func() polyclip.Polygon {
		var acc polyclip.Polygon
		for _, ring := range toPolygon(p) {
			if acc == nil {
				acc = polyclip.Polygon{ring}
				continue
			}
			acc = acc.Construct(polyclip.UNION, polyclip.Polygon{ring})
		}
		return acc
	})
}

// Simplify removes overlaps from an outline. It is the union of the
// outline with itself and exists under its own name to match the wire
// capability.
func Simplify(p outline.Path) (outline.Path, error) {
	return Union(p)
}

// Subtract removes the area of b from a.
func Subtract(a, b outline.Path) (outline.Path, error) {
	return clip("subtract", func() polyclip.Polygon {
		return toPolygon(a).Construct(polyclip.DIFFERENCE, toPolygon(b))
	})
}

// Intersect keeps the area shared by a and b.
func Intersect(a, b outline.Path) (outline.Path, error) {
	return clip("intersect", func() polyclip.Polygon {
		return toPolygon(a).Construct(polyclip.INTERSECTION, toPolygon(b))
	})
}

// Exclude keeps the area covered by exactly one of a and b (XOR).
func Exclude(a, b outline.Path) (outline.Path, error) {
	return clip("exclude", func() polyclip.Polygon {
		return toPolygon(a).Construct(polyclip.XOR, toPolygon(b))
	})
}

// clip runs fn with a recover guard, converting any panic from the
// engine into a *ClipError.
func clip(op string, fn func() polyclip.Polygon) (p outline.Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = outline.Path{}
			err = &ClipError{Op: op, Cause: r}
		}
	}()
	return fromPolygon(fn()), nil
}

// toPolygon flattens an outline into engine rings. Empty contours are
// dropped; open contours are closed implicitly, as the engine knows
// only rings.
func toPolygon(p outline.Path) polyclip.Polygon {
	poly := make(polyclip.Polygon, 0, len(p.Contours))
	for _, c := range p.Contours {
		if len(c.Points) == 0 {
			continue
		}
		ring := make(polyclip.Contour, len(c.Points))
		for i, pt := range c.Points {
			ring[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		poly = append(poly, ring)
	}
	return poly
}

// fromPolygon rebuilds an outline from engine rings. Every result
// contour is closed and carries plain line points.
func fromPolygon(poly polyclip.Polygon) outline.Path {
	contours := make([]outline.Contour, len(poly))
	for i, ring := range poly {
		points := make([]outline.Point, len(ring))
		for j, pt := range ring {
			points[j] = outline.Pt(pt.X, pt.Y)
		}
		contours[i] = outline.Contour{Points: points, IsClosed: true}
	}
	return outline.Path{Contours: contours}
}
