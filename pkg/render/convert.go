package render

import (
	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Supported reports whether the kind has a converter. Labels render
// through the image converter.
func Supported(k layer.Kind) bool {
	switch k {
	case layer.KindImage, layer.KindLabels, layer.KindPoints, layer.KindShapes, layer.KindVectors:
		return true
	default:
		return false
	}
}

// Convert dispatches a layer to its kind's converter and returns the
// layer's SVG fragment together with its transformed extrema.
func Convert(l layer.Layer) (*svg.Element, Extrema, error) {
	if err := l.Validate(); err != nil {
		return nil, Empty(), err
	}

	switch l.Kind {
	case layer.KindImage, layer.KindLabels:
		return Image(l.Image)
	case layer.KindPoints:
		return Points(l.Points)
	case layer.KindShapes:
		return Shapes(l.Shapes)
	case layer.KindVectors:
		return Vectors(l.Vectors)
	default:
		return nil, Empty(), errors.New(errors.ErrCodeUnsupportedKind,
			"no converter for layer kind %d", int(l.Kind))
	}
}

// ConvertAll converts layers in order and merges their extrema. Any
// conversion error aborts the whole batch; no partial output is returned.
func ConvertAll(layers []layer.Layer) ([]*svg.Element, Extrema, error) {
	fragments := make([]*svg.Element, 0, len(layers))
	ext := Empty()
	for _, l := range layers {
		frag, e, err := Convert(l)
		if err != nil {
			return nil, Empty(), err
		}
		fragments = append(fragments, frag)
		ext = Merge(ext, e)
	}
	return fragments, ext, nil
}
