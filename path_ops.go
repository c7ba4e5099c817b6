package outline

import "math"

// Path operations for bounding box computation and structural statistics.

// Bounds is the axis-aligned bounding box of a path, in font units.
type Bounds struct {
	XMin   float64 `json:"xMin"`
	YMin   float64 `json:"yMin"`
	XMax   float64 `json:"xMax"`
	YMax   float64 `json:"yMax"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Stats summarizes the structure of a path.
type Stats struct {
	TotalContours  int  `json:"totalContours"`
	ClosedContours int  `json:"closedContours"`
	OpenContours   int  `json:"openContours"`
	TotalPoints    int  `json:"totalPoints"`
	IsEmpty        bool `json:"isEmpty"`
}

// Bounds returns the bounding box over every point of every contour.
// Curve control points count like any other point; segment types are
// not interpreted. The second return value is false when the path is
// empty. A single-point path yields a zero-size box, not an empty
// result.
func (p Path) Bounds() (Bounds, bool) {
	if p.IsEmpty() {
		return Bounds{}, false
	}

	b := Bounds{
		XMin: math.MaxFloat64, YMin: math.MaxFloat64,
		XMax: -math.MaxFloat64, YMax: -math.MaxFloat64,
	}
	for _, c := range p.Contours {
		for _, pt := range c.Points {
			b.XMin = math.Min(b.XMin, pt.X)
			b.YMin = math.Min(b.YMin, pt.Y)
			b.XMax = math.Max(b.XMax, pt.X)
			b.YMax = math.Max(b.YMax, pt.Y)
		}
	}
	b.Width = b.XMax - b.XMin
	b.Height = b.YMax - b.YMin
	return b, true
}

// Stats returns structural counts for the path. It summarizes and never
// rejects: a one-point contour is counted, not flagged.
func (p Path) Stats() Stats {
	s := Stats{TotalContours: len(p.Contours)}
	for _, c := range p.Contours {
		if c.IsClosed {
			s.ClosedContours++
		}
		s.TotalPoints += len(c.Points)
	}
	s.OpenContours = s.TotalContours - s.ClosedContours
	s.IsEmpty = p.IsEmpty()
	return s
}
