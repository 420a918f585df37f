package render

import (
	"fmt"
	"math"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

// rgbString encodes a color as an SVG rgb() triple, rounding the [0, 1]
// channels to 0-255 integers. Alpha is carried separately via opacity.
func rgbString(c layer.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)",
		channelByte(c[0]), channelByte(c[1]), channelByte(c[2]))
}

func channelByte(v float64) int {
	b := int(math.Round(255 * v))
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return b
}

// broadcastFloats expands vals to one entry per item: nil falls back to
// fallback, a single entry broadcasts, and a full-length slice is copied.
func broadcastFloats(vals []float64, n int, fallback float64, field string) ([]float64, error) {
	out := make([]float64, n)
	switch {
	case len(vals) == 0:
		for i := range out {
			out[i] = fallback
		}
	case len(vals) == 1:
		for i := range out {
			out[i] = vals[0]
		}
	case len(vals) == n:
		copy(out, vals)
	default:
		return nil, errors.New(errors.ErrCodeDimensionality,
			"%s must have 1 or %d entries, got %d", field, n, len(vals))
	}
	return out, nil
}

// broadcastColors is broadcastFloats for per-item colors.
func broadcastColors(vals []layer.RGBA, n int, fallback layer.RGBA, field string) ([]layer.RGBA, error) {
	out := make([]layer.RGBA, n)
	switch {
	case len(vals) == 0:
		for i := range out {
			out[i] = fallback
		}
	case len(vals) == 1:
		for i := range out {
			out[i] = vals[0]
		}
	case len(vals) == n:
		copy(out, vals)
	default:
		return nil, errors.New(errors.ErrCodeDimensionality,
			"%s must have 1 or %d entries, got %d", field, n, len(vals))
	}
	return out, nil
}

// broadcastInts is broadcastFloats for per-item integers.
func broadcastInts(vals []int, n int, fallback int, field string) ([]int, error) {
	out := make([]int, n)
	switch {
	case len(vals) == 0:
		for i := range out {
			out[i] = fallback
		}
	case len(vals) == 1:
		for i := range out {
			out[i] = vals[0]
		}
	case len(vals) == n:
		copy(out, vals)
	default:
		return nil, errors.New(errors.ErrCodeDimensionality,
			"%s must have 1 or %d entries, got %d", field, n, len(vals))
	}
	return out, nil
}

// broadcastShapeKinds is broadcastFloats for per-shape kinds.
func broadcastShapeKinds(vals []layer.ShapeKind, n int, fallback layer.ShapeKind, field string) ([]layer.ShapeKind, error) {
	out := make([]layer.ShapeKind, n)
	switch {
	case len(vals) == 0:
		for i := range out {
			out[i] = fallback
		}
	case len(vals) == 1:
		for i := range out {
			out[i] = vals[0]
		}
	case len(vals) == n:
		copy(out, vals)
	default:
		return nil, errors.New(errors.ErrCodeDimensionality,
			"%s must have 1 or %d entries, got %d", field, n, len(vals))
	}
	return out, nil
}
