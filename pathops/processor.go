package pathops

import (
	"encoding/json"

	"github.com/gogpu/outline"
)

// Request entry points, mirroring the outline package: JSON strings in,
// JSON envelopes out, stateless, safe for concurrent use.

const processorMode = "pathops"

// capabilities lists the wire names of the operations this processor
// answers. Never mutated after initialization.
var capabilities = []string{
	"path_union",
	"path_subtract",
	"path_intersect",
	"path_exclude",
	"path_simplify",
}

type processorInfo struct {
	Version      string   `json:"version"`
	Available    bool     `json:"available"`
	Mode         string   `json:"mode"`
	Capabilities []string `json:"capabilities"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type pathResponse struct {
	Success bool           `json:"success"`
	Path    map[string]any `json:"path"`
}

// Info describes the processor. The clipping engine is compiled in, so
// available is always true; like the outline package's Info it cannot
// fail and carries no success field.
func Info() string {
	return respond("getInfo", processorInfo{
		Version:      outline.Version,
		Available:    true,
		Mode:         processorMode,
		Capabilities: capabilities,
	})
}

// PathUnion merges the contours of the outline in pathJSON, removing
// overlap between them.
func PathUnion(pathJSON string) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathUnion", err)
	}
	result, err := Union(path)
	if err != nil {
		return fail("pathUnion", err)
	}
	return respond("pathUnion", pathResponse{Success: true, Path: outline.Encode(result)})
}

// PathSimplify removes overlaps from the outline in pathJSON.
func PathSimplify(pathJSON string) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathSimplify", err)
	}
	result, err := Simplify(path)
	if err != nil {
		return fail("pathSimplify", err)
	}
	return respond("pathSimplify", pathResponse{Success: true, Path: outline.Encode(result)})
}

// PathSubtract removes the outline in bJSON from the one in aJSON.
func PathSubtract(aJSON, bJSON string) string {
	a, b, err := decodePair(aJSON, bJSON)
	if err != nil {
		return fail("pathSubtract", err)
	}
	result, err := Subtract(a, b)
	if err != nil {
		return fail("pathSubtract", err)
	}
	return respond("pathSubtract", pathResponse{Success: true, Path: outline.Encode(result)})
}

// PathIntersect keeps the area shared by the outlines in aJSON and
// bJSON.
func PathIntersect(aJSON, bJSON string) string {
	a, b, err := decodePair(aJSON, bJSON)
	if err != nil {
		return fail("pathIntersect", err)
	}
	result, err := Intersect(a, b)
	if err != nil {
		return fail("pathIntersect", err)
	}
	return respond("pathIntersect", pathResponse{Success: true, Path: outline.Encode(result)})
}

// PathExclude keeps the area covered by exactly one of the outlines in
// aJSON and bJSON.
func PathExclude(aJSON, bJSON string) string {
	a, b, err := decodePair(aJSON, bJSON)
	if err != nil {
		return fail("pathExclude", err)
	}
	result, err := Exclude(a, b)
	if err != nil {
		return fail("pathExclude", err)
	}
	return respond("pathExclude", pathResponse{Success: true, Path: outline.Encode(result)})
}

// decodePath parses a JSON string and decodes the result into a Path.
func decodePath(pathJSON string) (outline.Path, error) {
	var data any
	if err := json.Unmarshal([]byte(pathJSON), &data); err != nil {
		return outline.Path{}, &outline.ParseError{Err: err}
	}
	return outline.Decode(data)
}

// decodePair decodes the two operands of a binary operation. The first
// failure wins.
func decodePair(aJSON, bJSON string) (outline.Path, outline.Path, error) {
	a, err := decodePath(aJSON)
	if err != nil {
		return outline.Path{}, outline.Path{}, err
	}
	b, err := decodePath(bJSON)
	if err != nil {
		return outline.Path{}, outline.Path{}, err
	}
	return a, b, nil
}

// respond serializes a success envelope, falling back to the error
// envelope if serialization fails.
func respond(op string, v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fail(op, err)
	}
	outline.Logger().Debug("request served", "op", op)
	return string(data)
}

// fail serializes the uniform error envelope.
func fail(op string, err error) string {
	outline.Logger().Warn("request failed", "op", op, "err", err)
	data, merr := json.Marshal(errorResponse{Success: false, Error: err.Error()})
	if merr != nil {
		return `{"success":false,"error":"response serialization failed"}`
	}
	return string(data)
}
