package outline

// Contour is a single run of connected points. IsClosed reports whether
// the last point connects back to the first.
type Contour struct {
	Points   []Point
	IsClosed bool
}

// IsEmpty reports whether the contour has no points.
func (c Contour) IsEmpty() bool {
	return len(c.Points) == 0
}

// Clone creates a deep copy of the contour.
func (c Contour) Clone() Contour {
	points := make([]Point, len(c.Points))
	copy(points, c.Points)
	return Contour{Points: points, IsClosed: c.IsClosed}
}

// Path is an outline made of zero or more contours.
type Path struct {
	Contours []Contour
}

// Rect returns a closed rectangular contour with corners at (x, y) and
// (x+w, y+h), in counter-clockwise order for positive w and h.
func Rect(x, y, w, h float64) Contour {
	return Contour{
		Points: []Point{
			Pt(x, y),
			Pt(x+w, y),
			Pt(x+w, y+h),
			Pt(x, y+h),
		},
		IsClosed: true,
	}
}

// IsEmpty reports whether the path has no points at all. A path with
// contours that are all empty counts as empty.
func (p Path) IsEmpty() bool {
	for _, c := range p.Contours {
		if len(c.Points) > 0 {
			return false
		}
	}
	return true
}

// NumPoints returns the total number of points across all contours.
func (p Path) NumPoints() int {
	n := 0
	for _, c := range p.Contours {
		n += len(c.Points)
	}
	return n
}

// Clone creates a deep copy of the path.
func (p Path) Clone() Path {
	contours := make([]Contour, len(p.Contours))
	for i, c := range p.Contours {
		contours[i] = c.Clone()
	}
	return Path{Contours: contours}
}

// Transform applies a transformation matrix to all points in the path.
// Point types and smooth flags are preserved.
func (p Path) Transform(m Matrix) Path {
	contours := make([]Contour, len(p.Contours))
	for i, c := range p.Contours {
		points := make([]Point, len(c.Points))
		for j, pt := range c.Points {
			points[j] = m.TransformPoint(pt)
		}
		contours[i] = Contour{Points: points, IsClosed: c.IsClosed}
	}
	return Path{Contours: contours}
}

// Translate returns the path moved by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	return p.Transform(Translate(dx, dy))
}

// Scale returns the path scaled by (sx, sy) about the origin.
func (p Path) Scale(sx, sy float64) Path {
	return p.Transform(Scale(sx, sy))
}
