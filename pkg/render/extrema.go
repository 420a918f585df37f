package render

import (
	"math"

	"github.com/layerviz/layersvg/pkg/layer"
)

// Extrema is the axis-aligned bounding extent of a layer's content after
// its transform, in (row, col) coordinate order. An empty layer is the
// all-NaN sentinel, which merges as neutral and is sanitized to zero by
// the document assembler.
type Extrema struct {
	Min, Max [2]float64
}

// Empty returns the all-NaN sentinel for layers with no content.
func Empty() Extrema {
	nan := math.NaN()
	return Extrema{Min: [2]float64{nan, nan}, Max: [2]float64{nan, nan}}
}

// IsEmpty reports whether the extrema is the all-NaN sentinel.
func (e Extrema) IsEmpty() bool {
	return math.IsNaN(e.Min[0]) && math.IsNaN(e.Min[1]) &&
		math.IsNaN(e.Max[0]) && math.IsNaN(e.Max[1])
}

// Merge combines extrema elementwise: the minimum of all minima and the
// maximum of all maxima, ignoring NaN so empty layers never poison the
// aggregate. Merging nothing, or only empties, yields the empty sentinel.
func Merge(list ...Extrema) Extrema {
	out := Empty()
	for _, e := range list {
		for i := 0; i < 2; i++ {
			out.Min[i] = nanMin(out.Min[i], e.Min[i])
			out.Max[i] = nanMax(out.Max[i], e.Max[i])
		}
	}
	return out
}

func nanMin(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	default:
		return math.Min(a, b)
	}
}

func nanMax(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	default:
		return math.Max(a, b)
	}
}

// extremaCoords computes the bounding extent of a coordinate matrix under
// the layer transform. Rows beyond the first two columns are ignored by
// callers' validation, never here.
func extremaCoords(coords layer.Matrix, t layer.Transform) Extrema {
	if coords.IsEmpty() {
		return Empty()
	}
	m, offset := linearMatrixAndOffset(t)

	out := Extrema{
		Min: [2]float64{math.Inf(1), math.Inf(1)},
		Max: [2]float64{math.Inf(-1), math.Inf(-1)},
	}
	for i := 0; i < coords.Rows; i++ {
		r, c := coords.At(i, 0), coords.At(i, 1)
		p := [2]float64{
			m[0][0]*r + m[0][1]*c + offset[0],
			m[1][0]*r + m[1][1]*c + offset[1],
		}
		for ax := 0; ax < 2; ax++ {
			out.Min[ax] = math.Min(out.Min[ax], p[ax])
			out.Max[ax] = math.Max(out.Max[ax], p[ax])
		}
	}
	return out
}
