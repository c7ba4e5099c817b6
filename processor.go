package outline

import "encoding/json"

// Request entry points. Each accepts JSON-encoded arguments and returns a
// JSON-encoded envelope, so a host with only string passing at the
// boundary (a wasm runtime, a scripting bridge) can drive the package
// without sharing structured values. Every call is stateless and
// independent; concurrent use is safe.

const (
	// processorVersion is reported by Info and PathInfo. The "-simple"
	// suffix distinguishes the built-in processor from the delegating
	// one in the pathops package.
	processorVersion = Version + "-simple"

	processorMode = "simple"
)

// capabilities lists the wire names of the operations this processor
// answers. Never mutated after initialization.
var capabilities = []string{
	"path_bounds",
	"path_translate",
	"path_scale",
	"path_validate",
	"path_info",
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

type boundsResponse struct {
	Success bool    `json:"success"`
	Bounds  *Bounds `json:"bounds"`
}

type pathResponse struct {
	Success bool           `json:"success"`
	Path    map[string]any `json:"path"`
}

type validateResponse struct {
	Success bool  `json:"success"`
	Valid   bool  `json:"valid"`
	Stats   Stats `json:"stats"`
}

type pathInfo struct {
	Bounds  *Bounds `json:"bounds"`
	Stats   Stats   `json:"stats"`
	Version string  `json:"version"`
}

type pathInfoResponse struct {
	Success bool     `json:"success"`
	Info    pathInfo `json:"info"`
}

// Info describes the processor: its version, availability, mode and the
// wire names of its operations. Unlike the path operations it cannot
// fail, so the result carries no success field.
func Info() string {
	return respond("getInfo", processorInfo{
		Version:      processorVersion,
		Available:    true,
		Mode:         processorMode,
		Capabilities: capabilities,
	})
}

// PathBounds returns the bounding box of the outline in pathJSON.
// The bounds field is null when the outline is empty.
func PathBounds(pathJSON string) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathBounds", err)
	}
	var bounds *Bounds
	if b, ok := path.Bounds(); ok {
		bounds = &b
	}
	return respond("pathBounds", boundsResponse{Success: true, Bounds: bounds})
}

// PathTranslate moves every point of the outline in pathJSON by (dx, dy)
// and returns the translated outline.
func PathTranslate(pathJSON string, dx, dy float64) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathTranslate", err)
	}
	result := path.Translate(dx, dy)
	return respond("pathTranslate", pathResponse{Success: true, Path: Encode(result)})
}

// PathScale multiplies every point of the outline in pathJSON by
// (sx, sy) and returns the scaled outline. Zero and negative factors
// are applied as given.
func PathScale(pathJSON string, sx, sy float64) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathScale", err)
	}
	result := path.Scale(sx, sy)
	return respond("pathScale", pathResponse{Success: true, Path: Encode(result)})
}

// PathValidate summarizes the outline in pathJSON. Any outline that
// decodes is valid; the stats describe its structure.
func PathValidate(pathJSON string) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathValidate", err)
	}
	return respond("pathValidate", validateResponse{Success: true, Valid: true, Stats: path.Stats()})
}

// PathInfo combines bounds, stats and the processor version into one
// report about the outline in pathJSON.
func PathInfo(pathJSON string) string {
	path, err := decodePath(pathJSON)
	if err != nil {
		return fail("pathInfo", err)
	}
	var bounds *Bounds
	if b, ok := path.Bounds(); ok {
		bounds = &b
	}
	info := pathInfo{Bounds: bounds, Stats: path.Stats(), Version: processorVersion}
	return respond("pathInfo", pathInfoResponse{Success: true, Info: info})
}

// decodePath parses a JSON string and decodes the result into a Path.
func decodePath(pathJSON string) (Path, error) {
	var data any
	if err := json.Unmarshal([]byte(pathJSON), &data); err != nil {
		return Path{}, &ParseError{Err: err}
	}
	return Decode(data)
}

// respond serializes a success envelope. If serialization itself fails
// (a NaN coordinate, say, which JSON cannot carry) the error envelope is
// returned instead; nothing escapes an entry point.
func respond(op string, v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fail(op, err)
	}
	Logger().Debug("request served", "op", op)
	return string(data)
}

// fail serializes the uniform error envelope.
func fail(op string, err error) string {
	Logger().Warn("request failed", "op", op, "err", err)
	data, merr := json.Marshal(errorResponse{Success: false, Error: err.Error()})
	if merr != nil {
		return `{"success":false,"error":"response serialization failed"}`
	}
	return string(data)
}
