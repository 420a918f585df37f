package render

import (
	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Vectors converts a vectors layer into a group of line elements, one
// per (origin, direction) pair. The endpoint is origin + length*direction,
// and the extrema account for the projected endpoints, not just origins.
//
// Length and EdgeWidth are taken as-is: a zero length collapses every
// line onto its origin. The documented defaults come from
// layer.NewVectorsMeta, not from coercion here.
func Vectors(vl *layer.VectorsLayer) (*svg.Element, Extrema, error) {
	field, meta := vl.Field, vl.Meta

	if field.N > 0 && field.Dim != 2 {
		return nil, Empty(), errors.New(errors.ErrCodeDimensionality,
			"vectors must be 2 dimensional to save as svg, got %d spatial dimensions", field.Dim)
	}

	edgeColor, err := broadcastColors(meta.EdgeColor, field.N, layer.Black, "edge_color")
	if err != nil {
		return nil, Empty(), err
	}

	length := meta.Length
	edgeWidth := meta.EdgeWidth

	// Both origins and projected endpoints bound the layer.
	ends := layer.Matrix{Rows: field.N * 2, Cols: 2, Data: make([]float64, 0, field.N*4)}
	for i := 0; i < field.N; i++ {
		ends.Data = append(ends.Data, field.Origin(i)...)
	}
	for i := 0; i < field.N; i++ {
		o, d := field.Origin(i), field.Direction(i)
		ends.Data = append(ends.Data, o[0]+length*d[0], o[1]+length*d[1])
	}
	ext := extremaCoords(ends, meta.Transform)

	group := svg.New("g", svg.Attr{Name: "transform", Value: composeTransform(meta.Transform)})
	widthAttr := svg.Num(edgeWidth)
	opacity := svg.Num(meta.Opacity)
	for i := 0; i < field.N; i++ {
		o, d := field.Origin(i), field.Direction(i)
		group.Append(svg.New("line",
			svg.Attr{Name: "x1", Value: svg.Num(o[1])},
			svg.Attr{Name: "y1", Value: svg.Num(o[0])},
			svg.Attr{Name: "x2", Value: svg.Num(o[1] + length*d[1])},
			svg.Attr{Name: "y2", Value: svg.Num(o[0] + length*d[0])},
			svg.Attr{Name: "stroke-width", Value: widthAttr},
			svg.Attr{Name: "opacity", Value: opacity},
			svg.Attr{Name: "stroke", Value: rgbString(edgeColor[i])},
		))
	}
	return group, ext, nil
}
