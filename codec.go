package outline

import "strconv"

// Decode converts a parsed JSON value into a Path.
//
// The value must be an object with an optional "contours" array. Missing
// optional fields resolve to their defaults ("contours" and "points" to
// empty, "x" and "y" to 0, "type" to [TypeLine], "smooth" and "isClosed"
// to false). A present field with an incompatible shape yields a
// *DecodeError naming the field.
func Decode(data any) (Path, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return Path{}, &DecodeError{Field: "path", Want: "object", Value: data}
	}
	seq, err := seqField(m, "", "contours")
	if err != nil {
		return Path{}, err
	}
	contours := make([]Contour, len(seq))
	for i, v := range seq {
		c, err := decodeContour(v, fieldIndex("contours", i))
		if err != nil {
			return Path{}, err
		}
		contours[i] = c
	}
	return Path{Contours: contours}, nil
}

func decodeContour(v any, field string) (Contour, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Contour{}, &DecodeError{Field: field, Want: "object", Value: v}
	}
	seq, err := seqField(m, field, "points")
	if err != nil {
		return Contour{}, err
	}
	points := make([]Point, len(seq))
	for i, pv := range seq {
		p, err := decodePoint(pv, fieldIndex(fieldPath(field, "points"), i))
		if err != nil {
			return Contour{}, err
		}
		points[i] = p
	}
	isClosed, err := boolField(m, field, "isClosed", false)
	if err != nil {
		return Contour{}, err
	}
	return Contour{Points: points, IsClosed: isClosed}, nil
}

func decodePoint(v any, field string) (Point, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Point{}, &DecodeError{Field: field, Want: "object", Value: v}
	}
	x, err := floatField(m, field, "x", 0)
	if err != nil {
		return Point{}, err
	}
	y, err := floatField(m, field, "y", 0)
	if err != nil {
		return Point{}, err
	}
	typ, err := stringField(m, field, "type", TypeLine)
	if err != nil {
		return Point{}, err
	}
	smooth, err := boolField(m, field, "smooth", false)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y, Type: typ, Smooth: smooth}, nil
}

// Encode converts a Path into a JSON-ready value, the inverse of [Decode].
//
// "contours", "points", "x", "y" and "isClosed" are always present.
// "type" is omitted when it equals [TypeLine] and "smooth" when false;
// Decode fills the defaults back in, so a decode/encode cycle is stable
// even though it drops default-valued keys from the wire form.
func Encode(p Path) map[string]any {
	contours := make([]any, len(p.Contours))
	for i, c := range p.Contours {
		points := make([]any, len(c.Points))
		for j, pt := range c.Points {
			points[j] = encodePoint(pt)
		}
		contours[i] = map[string]any{
			"points":   points,
			"isClosed": c.IsClosed,
		}
	}
	return map[string]any{"contours": contours}
}

func encodePoint(p Point) map[string]any {
	m := map[string]any{
		"x": p.X,
		"y": p.Y,
	}
	if p.Type != TypeLine {
		m["type"] = p.Type
	}
	if p.Smooth {
		m["smooth"] = p.Smooth
	}
	return m
}

// seqField reads an optional array field. A missing key resolves to an
// empty sequence; a present non-array value (including null) fails.
func seqField(m map[string]any, scope, key string) ([]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, &DecodeError{Field: fieldPath(scope, key), Want: "array", Value: v}
	}
	return seq, nil
}

// floatField reads an optional numeric field, resolving a missing key to
// the given default.
func floatField(m map[string]any, scope, key string, def float64) (float64, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &DecodeError{Field: fieldPath(scope, key), Want: "number", Value: v}
	}
	return f, nil
}

// stringField reads an optional string field, resolving a missing key to
// the given default. A present empty string is kept as is.
func stringField(m map[string]any, scope, key, def string) (string, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &DecodeError{Field: fieldPath(scope, key), Want: "string", Value: v}
	}
	return s, nil
}

// boolField reads an optional boolean field, resolving a missing key to
// the given default.
func boolField(m map[string]any, scope, key string, def bool) (bool, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &DecodeError{Field: fieldPath(scope, key), Want: "boolean", Value: v}
	}
	return b, nil
}

func fieldPath(scope, key string) string {
	if scope == "" {
		return key
	}
	return scope + "." + key
}

func fieldIndex(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
