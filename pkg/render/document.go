package render

import (
	"math"
	"strings"

	"github.com/layerviz/layersvg/pkg/svg"
)

const documentHeader = "<?xml version=\"1.0\" standalone=\"no\"?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\"\n" +
	"\"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"

// Document wraps layer fragments into a standalone SVG document string.
//
// The merged extrema determine the canvas: NaN entries (everything was
// empty) sanitize to zero, the canvas size is max-min with degenerate
// zero axes coerced to 1, and a group translation moves the minimum
// corner to the origin. Fragments keep their input order.
func Document(fragments []*svg.Element, ext Extrema) string {
	corner := [2]float64{nanToNum(ext.Min[0]), nanToNum(ext.Min[1])}
	shape := [2]float64{
		nanToNum(ext.Max[0]) - corner[0],
		nanToNum(ext.Max[1]) - corner[1],
	}
	// A zero-sized viewbox renders nothing in most viewers.
	for i := range shape {
		if shape[i] == 0 {
			shape[i] = 1
		}
	}

	root := svg.New("svg",
		svg.Attr{Name: "height", Value: svg.Num(shape[0])},
		svg.Attr{Name: "width", Value: svg.Num(shape[1])},
		svg.Attr{Name: "version", Value: "1.1"},
		svg.Attr{Name: "xmlns", Value: "http://www.w3.org/2000/svg"},
		svg.Attr{Name: "xmlns:xlink", Value: "http://www.w3.org/1999/xlink"},
	)

	group := svg.New("g", svg.Attr{
		Name:  "transform",
		Value: "translate(" + svg.Num(-corner[1]) + " " + svg.Num(-corner[0]) + ")",
	})
	group.Append(fragments...)
	root.Append(group)

	var sb strings.Builder
	sb.WriteString(documentHeader)
	sb.WriteString(root.String())
	return sb.String()
}

func nanToNum(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
