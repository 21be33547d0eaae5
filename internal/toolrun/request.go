package toolrun

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPalette is the palette the flightline overlap tool renders with.
const DefaultPalette = "light_quant.pal"

var (
	// ErrArgumentCount reports the wrong number of raw parameters.
	ErrArgumentCount = errors.New("expected input path, output path, and grid resolution")
	// ErrEmptyPath reports a blank input or output path.
	ErrEmptyPath = errors.New("path must not be empty")
	// ErrResolution reports a non-numeric or non-positive grid resolution.
	ErrResolution = errors.New("grid resolution must be a positive number")
)

// Request describes one validated tool invocation. It is immutable once
// built; a new invocation needs a new Request.
type Request struct {
	InputPath  string
	OutputPath string
	Resolution float64
	Palette    string
	Verbose    bool
}

// NewRequest validates the three raw parameters supplied by the host dialog:
// input path, output path, and grid resolution. It has no side effects and
// never spawns anything.
func NewRequest(raw []string) (Request, error) {
	if len(raw) != 3 {
		return Request{}, fmt.Errorf("%w: got %d", ErrArgumentCount, len(raw))
	}
	input := strings.TrimSpace(raw[0])
	if input == "" {
		return Request{}, fmt.Errorf("input: %w", ErrEmptyPath)
	}
	output := strings.TrimSpace(raw[1])
	if output == "" {
		return Request{}, fmt.Errorf("output: %w", ErrEmptyPath)
	}
	resolution, err := strconv.ParseFloat(strings.TrimSpace(raw[2]), 64)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrResolution, raw[2])
	}
	if resolution <= 0 || math.IsInf(resolution, 0) || math.IsNaN(resolution) {
		return Request{}, fmt.Errorf("%w: %q", ErrResolution, raw[2])
	}
	return Request{
		InputPath:  input,
		OutputPath: output,
		Resolution: resolution,
		Palette:    DefaultPalette,
		Verbose:    true,
	}, nil
}
