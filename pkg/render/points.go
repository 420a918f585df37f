package render

import (
	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Points converts a points layer into a group of circle elements, one
// per point, wrapped in the layer's composed transform.
//
// Any shear or anisotropic scaling in the transform applies to the group
// as a whole, so heavily transformed markers are no longer perfect
// circles. That matches the host's on-screen rendering.
func Points(pl *layer.PointsLayer) (*svg.Element, Extrema, error) {
	coords, meta := pl.Coords, pl.Meta
	n := coords.Rows

	if n > 0 && coords.Cols != 2 {
		return nil, Empty(), errors.New(errors.ErrCodeDimensionality,
			"points must be 2 dimensional to save as svg, got %d columns", coords.Cols)
	}

	size, err := pointSizes(meta.Size, n)
	if err != nil {
		return nil, Empty(), err
	}

	faceColor, err := broadcastColors(meta.FaceColor, n, layer.White, "face_color")
	if err != nil {
		return nil, Empty(), err
	}

	strokeSource := meta.BorderColor
	if strokeSource == nil {
		strokeSource = meta.EdgeColor
	}
	strokeColor, err := broadcastColors(strokeSource, n, layer.Black, "border_color")
	if err != nil {
		return nil, Empty(), err
	}

	widthSource := meta.BorderWidth
	if widthSource == nil {
		widthSource = meta.EdgeWidth
	}
	strokeWidth, err := broadcastFloats(widthSource, n, 1, "border_width")
	if err != nil {
		return nil, Empty(), err
	}
	if meta.BorderWidthRelative || meta.EdgeWidthRelative {
		for i := range strokeWidth {
			strokeWidth[i] *= size[i]
		}
	}

	ext := extremaCoords(coords, meta.Transform)

	group := svg.New("g", svg.Attr{Name: "transform", Value: composeTransform(meta.Transform)})
	opacity := svg.Num(meta.Opacity)
	for i := 0; i < n; i++ {
		group.Append(svg.New("circle",
			svg.Attr{Name: "cx", Value: svg.Num(coords.At(i, 1))},
			svg.Attr{Name: "cy", Value: svg.Num(coords.At(i, 0))},
			svg.Attr{Name: "r", Value: svg.Num(size[i] / 2)},
			svg.Attr{Name: "stroke", Value: rgbString(strokeColor[i])},
			svg.Attr{Name: "fill", Value: rgbString(faceColor[i])},
			svg.Attr{Name: "stroke-width", Value: svg.Num(strokeWidth[i])},
			svg.Attr{Name: "opacity", Value: opacity},
		))
	}

	return group, ext, nil
}

// pointSizes resolves the per-point size driver. A nil matrix defaults to
// size 1 per point; a matrix with multiple columns carries legacy
// per-axis sizes and is averaged across axes into a scalar radius driver.
func pointSizes(size *layer.Matrix, n int) ([]float64, error) {
	if size == nil {
		return broadcastFloats(nil, n, 1, "size")
	}
	if size.Cols > 1 {
		averaged := make([]float64, size.Rows)
		for i := 0; i < size.Rows; i++ {
			sum := 0.0
			for j := 0; j < size.Cols; j++ {
				sum += size.At(i, j)
			}
			averaged[i] = sum / float64(size.Cols)
		}
		return broadcastFloats(averaged, n, 1, "size")
	}
	return broadcastFloats(size.Data, n, 1, "size")
}
