// Package shape converts single shape-vertex matrices into SVG elements.
//
// Vertices arrive in the host's (row, col) order and are flipped to SVG's
// (x, y) before encoding. Ellipses and rectangles recover a rotation angle
// from their first edge; rotated shapes are de-rotated about their
// centroid to get an axis-aligned box, and the rotation is re-applied as
// a rotate(angle cx cy) transform attribute.
package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// Props carries the resolved style attributes for one shape. Values are
// final attribute strings; empty fields are omitted.
type Props struct {
	StrokeWidth string
	Opacity     string
	Fill        string
	Stroke      string
}

// apply appends the style attributes in canonical order.
func (p Props) apply(el *svg.Element) {
	if p.StrokeWidth != "" {
		el.Set("stroke-width", p.StrokeWidth)
	}
	if p.Opacity != "" {
		el.Set("opacity", p.Opacity)
	}
	if p.Fill != "" {
		el.Set("fill", p.Fill)
	}
	if p.Stroke != "" {
		el.Set("stroke", p.Stroke)
	}
}

// Encoder converts one vertex matrix and style set into an SVG element.
type Encoder func(data layer.Matrix, props Props) (*svg.Element, error)

// ForKind returns the encoder for a shape kind. The dispatch is a closed
// enum switch; every layer.ShapeKind has a case.
func ForKind(k layer.ShapeKind) (Encoder, error) {
	switch k {
	case layer.ShapeEllipse:
		return Ellipse, nil
	case layer.ShapeLine:
		return Line, nil
	case layer.ShapePath:
		return Path, nil
	case layer.ShapePolygon:
		return Polygon, nil
	case layer.ShapeRectangle:
		return Rectangle, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedKind, "unknown shape kind %d", int(k))
	}
}

// xy is a vertex in SVG (x, y) order.
type xy struct{ x, y float64 }

// toXY flips a (row, col) vertex matrix into (x, y) vertices.
func toXY(data layer.Matrix) []xy {
	out := make([]xy, data.Rows)
	for i := 0; i < data.Rows; i++ {
		out[i] = xy{x: data.At(i, 1), y: data.At(i, 0)}
	}
	return out
}

// boxGeometry recovers the rotation of a 4-vertex box from its first
// edge, de-rotates the vertices about the centroid, and returns the
// axis-aligned vertices, the centroid, and the rotate(...) transform to
// re-apply (empty when the box is already axis aligned).
func boxGeometry(data layer.Matrix) (coords []xy, cen xy, transform string) {
	coords = toXY(data)

	for _, p := range coords {
		cen.x += p.x
		cen.y += p.y
	}
	cen.x /= float64(len(coords))
	cen.y /= float64(len(coords))

	off := xy{coords[1].x - coords[0].x, coords[1].y - coords[0].y}
	angle := -math.Atan2(off.x, -off.y)
	if angle == 0 {
		return coords, cen, ""
	}

	// De-rotate about the centroid back to axis aligned.
	c, s := math.Cos(angle), math.Sin(angle)
	for i, p := range coords {
		dx, dy := p.x-cen.x, p.y-cen.y
		coords[i] = xy{
			x: cen.x + c*dx - s*dy,
			y: cen.y + s*dx + c*dy,
		}
	}

	transform = fmt.Sprintf("rotate(%s %s %s)",
		svg.Num(degrees(-angle)), svg.Num(cen.x), svg.Num(cen.y))
	return coords, cen, transform
}

// Ellipse encodes a 4-vertex bounding box as an ellipse element.
func Ellipse(data layer.Matrix, props Props) (*svg.Element, error) {
	if data.Rows != 4 || data.Cols != 2 {
		return nil, errors.New(errors.ErrCodeDimensionality,
			"ellipse must have shape (4, 2), got (%d, %d)", data.Rows, data.Cols)
	}

	coords, cen, transform := boxGeometry(data)
	size := xy{math.Abs(coords[2].x - coords[0].x), math.Abs(coords[2].y - coords[0].y)}

	el := svg.New("ellipse",
		svg.Attr{Name: "cx", Value: svg.Num(cen.x)},
		svg.Attr{Name: "cy", Value: svg.Num(cen.y)},
		svg.Attr{Name: "rx", Value: svg.Num(size.x / 2)},
		svg.Attr{Name: "ry", Value: svg.Num(size.y / 2)},
	)
	props.apply(el)
	if transform != "" {
		el.Set("transform", transform)
	}
	return el, nil
}

// Rectangle encodes a 4-vertex box as a rect element.
func Rectangle(data layer.Matrix, props Props) (*svg.Element, error) {
	if data.Rows != 4 || data.Cols != 2 {
		return nil, errors.New(errors.ErrCodeDimensionality,
			"rectangle must have shape (4, 2), got (%d, %d)", data.Rows, data.Cols)
	}

	coords, _, transform := boxGeometry(data)
	minX, minY := coords[0].x, coords[0].y
	for _, p := range coords[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
	}
	size := xy{math.Abs(coords[2].x - coords[0].x), math.Abs(coords[2].y - coords[0].y)}

	el := svg.New("rect",
		svg.Attr{Name: "x", Value: svg.Num(minX)},
		svg.Attr{Name: "y", Value: svg.Num(minY)},
		svg.Attr{Name: "width", Value: svg.Num(size.x)},
		svg.Attr{Name: "height", Value: svg.Num(size.y)},
	)
	props.apply(el)
	if transform != "" {
		el.Set("transform", transform)
	}
	return el, nil
}

// Line encodes exactly two vertices as a line element.
func Line(data layer.Matrix, props Props) (*svg.Element, error) {
	if data.Rows != 2 || data.Cols != 2 {
		return nil, errors.New(errors.ErrCodeDimensionality,
			"line must have shape (2, 2), got (%d, %d)", data.Rows, data.Cols)
	}

	el := svg.New("line",
		svg.Attr{Name: "x1", Value: svg.Num(data.At(0, 1))},
		svg.Attr{Name: "y1", Value: svg.Num(data.At(0, 0))},
		svg.Attr{Name: "x2", Value: svg.Num(data.At(1, 1))},
		svg.Attr{Name: "y2", Value: svg.Num(data.At(1, 0))},
	)
	props.apply(el)
	return el, nil
}

// Path encodes an open vertex sequence as a polyline. Paths are never
// fill-able: fill is forced to none regardless of the style properties.
func Path(data layer.Matrix, props Props) (*svg.Element, error) {
	if data.Cols != 2 {
		return nil, errors.New(errors.ErrCodeDimensionality,
			"path must be 2 dimensional, got %d columns", data.Cols)
	}

	el := svg.New("polyline", svg.Attr{Name: "points", Value: pointList(data)})
	props.Fill = "none"
	props.apply(el)
	return el, nil
}

// Polygon encodes a closed vertex sequence as a polygon element.
func Polygon(data layer.Matrix, props Props) (*svg.Element, error) {
	if data.Cols != 2 {
		return nil, errors.New(errors.ErrCodeDimensionality,
			"polygon must be 2 dimensional, got %d columns", data.Cols)
	}

	el := svg.New("polygon", svg.Attr{Name: "points", Value: pointList(data)})
	props.apply(el)
	return el, nil
}

// pointList formats vertices as the "x,y x,y ..." list used by polyline
// and polygon elements, swapping axes from (row, col).
func pointList(data layer.Matrix) string {
	parts := make([]string, data.Rows)
	for i := 0; i < data.Rows; i++ {
		parts[i] = svg.Num(data.At(i, 1)) + "," + svg.Num(data.At(i, 0))
	}
	return strings.Join(parts, " ")
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
