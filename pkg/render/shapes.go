package render

import (
	"sort"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/render/shape"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Shapes converts a shapes layer into a group of shape elements ordered
// by ascending z-index (stable: input order breaks ties).
//
// An empty shape list yields an empty group and the NaN extrema sentinel
// so the layer stays neutral during aggregation.
func Shapes(sl *layer.ShapesLayer) (*svg.Element, Extrema, error) {
	paths, meta := sl.Paths, sl.Meta
	n := len(paths)

	for _, p := range paths {
		if p.Cols != 2 {
			return nil, Empty(), errors.New(errors.ErrCodeDimensionality,
				"shapes must be 2 dimensional to save as svg, got %d columns", p.Cols)
		}
	}

	faceColor, err := broadcastColors(meta.FaceColor, n, layer.White, "face_color")
	if err != nil {
		return nil, Empty(), err
	}
	edgeColor, err := broadcastColors(meta.EdgeColor, n, layer.Black, "edge_color")
	if err != nil {
		return nil, Empty(), err
	}
	edgeWidth, err := broadcastFloats(meta.EdgeWidth, n, 1, "edge_width")
	if err != nil {
		return nil, Empty(), err
	}
	zIndex, err := broadcastInts(meta.ZIndex, n, 0, "z_index")
	if err != nil {
		return nil, Empty(), err
	}
	shapeType, err := broadcastShapeKinds(meta.ShapeType, n, layer.ShapeRectangle, "shape_type")
	if err != nil {
		return nil, Empty(), err
	}

	ext := Empty()
	if n > 0 {
		ext = extremaCoords(concat(paths), meta.Transform)
	}

	opacity := svg.Num(meta.Opacity)
	elements := make([]*svg.Element, n)
	for i := 0; i < n; i++ {
		enc, err := shape.ForKind(shapeType[i])
		if err != nil {
			return nil, Empty(), err
		}
		el, err := enc(paths[i], shape.Props{
			StrokeWidth: svg.Num(edgeWidth[i]),
			Opacity:     opacity,
			Fill:        rgbString(faceColor[i]),
			Stroke:      rgbString(edgeColor[i]),
		})
		if err != nil {
			return nil, Empty(), err
		}
		elements[i] = el
	}

	// Composite bottom to top: ascending z-index, input order on ties.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return zIndex[order[a]] < zIndex[order[b]] })

	group := svg.New("g", svg.Attr{Name: "transform", Value: composeTransform(meta.Transform)})
	for _, i := range order {
		group.Append(elements[i])
	}
	return group, ext, nil
}

// concat stacks the vertex matrices of all shapes into one matrix.
func concat(paths []layer.Matrix) layer.Matrix {
	total := 0
	for _, p := range paths {
		total += p.Rows
	}
	out := layer.Matrix{Cols: 2, Rows: total, Data: make([]float64, 0, total*2)}
	for _, p := range paths {
		out.Data = append(out.Data, p.Data...)
	}
	return out
}
