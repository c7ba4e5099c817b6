package outline

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeDefaults(t *testing.T) {
	tests := []struct {
		name string
		data any
		want Path
	}{
		{"empty object", map[string]any{}, Path{Contours: []Contour{}}},
		{"contours absent", map[string]any{"other": 1.0}, Path{Contours: []Contour{}}},
		{"empty contours", map[string]any{"contours": []any{}}, Path{Contours: []Contour{}}},
		{
			"bare contour",
			map[string]any{"contours": []any{map[string]any{}}},
			Path{Contours: []Contour{{Points: []Point{}}}},
		},
		{
			"bare point",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{}}},
			}},
			Path{Contours: []Contour{{Points: []Point{Pt(0, 0)}}}},
		},
		{
			"partial point",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"x": 12.5}}, "isClosed": true},
			}},
			Path{Contours: []Contour{{Points: []Point{Pt(12.5, 0)}, IsClosed: true}}},
		},
		{
			"full point",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{
					map[string]any{"x": 1.0, "y": 2.0, "type": "cubic", "smooth": true},
				}},
			}},
			Path{Contours: []Contour{{Points: []Point{{X: 1, Y: 2, Type: "cubic", Smooth: true}}}}},
		},
		{
			"empty type string kept",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"type": ""}}},
			}},
			Path{Contours: []Contour{{Points: []Point{{Type: ""}}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      any
		wantField string
		wantWant  string
	}{
		{"top-level array", []any{}, "path", "object"},
		{"top-level null", nil, "path", "object"},
		{"top-level string", "contours", "path", "object"},
		{"contours scalar", map[string]any{"contours": 5.0}, "contours", "array"},
		{"contours null", map[string]any{"contours": nil}, "contours", "array"},
		{
			"contour scalar",
			map[string]any{"contours": []any{1.0}},
			"contours[0]", "object",
		},
		{
			"points scalar",
			map[string]any{"contours": []any{map[string]any{"points": "none"}}},
			"contours[0].points", "array",
		},
		{
			"point scalar",
			map[string]any{"contours": []any{map[string]any{"points": []any{true}}}},
			"contours[0].points[0]", "object",
		},
		{
			"x string",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"x": "10"}}},
			}},
			"contours[0].points[0].x", "number",
		},
		{
			"y bool",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"y": true}}},
			}},
			"contours[0].points[0].y", "number",
		},
		{
			"type number",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"type": 3.0}}},
			}},
			"contours[0].points[0].type", "string",
		},
		{
			"smooth string",
			map[string]any{"contours": []any{
				map[string]any{"points": []any{map[string]any{"smooth": "yes"}}},
			}},
			"contours[0].points[0].smooth", "boolean",
		},
		{
			"isClosed number",
			map[string]any{"contours": []any{map[string]any{"isClosed": 1.0}}},
			"contours[0].isClosed", "boolean",
		},
		{
			"second contour bad",
			map[string]any{"contours": []any{map[string]any{}, "oops"}},
			"contours[1]", "object",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("Decode() succeeded, want *DecodeError")
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode() error = %v, want *DecodeError", err)
			}
			if decErr.Field != tt.wantField || decErr.Want != tt.wantWant {
				t.Errorf("DecodeError{Field: %q, Want: %q}, want {%q, %q}",
					decErr.Field, decErr.Want, tt.wantField, tt.wantWant)
			}
			if decErr.Error() == "" {
				t.Error("DecodeError message must not be empty")
			}
		})
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want map[string]any
	}{
		{"line point", Pt(1, 2), map[string]any{"x": 1.0, "y": 2.0}},
		{
			"cubic point",
			Point{X: 1, Y: 2, Type: "cubic"},
			map[string]any{"x": 1.0, "y": 2.0, "type": "cubic"},
		},
		{
			"smooth line point",
			Point{X: 1, Y: 2, Type: TypeLine, Smooth: true},
			map[string]any{"x": 1.0, "y": 2.0, "smooth": true},
		},
		{
			"empty type emitted",
			Point{X: 1, Y: 2},
			map[string]any{"x": 1.0, "y": 2.0, "type": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Path{Contours: []Contour{{Points: []Point{tt.p}}}}
			got := Encode(p)
			want := map[string]any{"contours": []any{
				map[string]any{"points": []any{tt.want}, "isClosed": false},
			}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeEmptyPath(t *testing.T) {
	got := Encode(Path{})
	want := map[string]any{"contours": []any{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode(Path{}) mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripStable(t *testing.T) {
	// encode(decode(encode(p))) must equal encode(p): dropping
	// default-valued keys and filling them back must converge after
	// one cycle.
	p := Path{Contours: []Contour{
		{
			Points: []Point{
				Pt(0, 0),
				{X: 10, Y: 0, Type: "cubic", Smooth: true},
				{X: 10, Y: 10, Type: "qcurve"},
				{X: 0, Y: 10, Type: TypeLine},
			},
			IsClosed: true,
		},
		{Points: []Point{Pt(-5, -5)}},
		{},
	}}

	first := Encode(p)
	decoded, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode(Encode(p)) error: %v", err)
	}
	second := Encode(decoded)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("codec not stable (-first +second):\n%s", diff)
	}
}

func TestDecodeWireJSON(t *testing.T) {
	raw := `{
		"contours": [
			{
				"points": [
					{"x": 0, "y": 0},
					{"x": 100, "y": 0},
					{"x": 100, "y": 100},
					{"x": 0, "y": 100}
				],
				"isClosed": true
			}
		]
	}`
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if diff := cmp.Diff(square(), got); diff != "" {
		t.Errorf("decoded square mismatch (-want +got):\n%s", diff)
	}
}
