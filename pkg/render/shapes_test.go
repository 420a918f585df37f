package render

import (
	"testing"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

// unitSquare returns the vertices of an axis-aligned 1x1 rectangle with
// its top-left corner at (row, col), ordered bottom-left first.
func unitSquare(row, col float64) layer.Matrix {
	return layer.NewMatrix([][]float64{
		{row + 1, col},
		{row, col},
		{row, col + 1},
		{row + 1, col + 1},
	})
}

func TestShapesZIndexOrdering(t *testing.T) {
	paths := []layer.Matrix{
		unitSquare(0, 0),
		unitSquare(0, 10),
		unitSquare(0, 20),
	}
	meta := layer.NewShapesMeta()
	meta.ZIndex = []int{2, 0, 1}

	group, _, err := Shapes(&layer.ShapesLayer{Paths: paths, Meta: meta})
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}

	children := group.Children()
	if len(children) != 3 {
		t.Fatalf("got %d shapes, want 3", len(children))
	}

	// Ascending z-index composites shape 1, then 2, then 0.
	wantX := []string{"10", "20", "0"}
	for i, el := range children {
		if el.Tag != "rect" {
			t.Fatalf("child %d tag = %q, want rect", i, el.Tag)
		}
		if got, _ := el.Get("x"); got != wantX[i] {
			t.Errorf("child %d x = %q, want %q", i, got, wantX[i])
		}
	}
}

func TestShapesStableTieBreak(t *testing.T) {
	paths := []layer.Matrix{
		unitSquare(0, 0),
		unitSquare(0, 10),
		unitSquare(0, 20),
	}
	group, _, err := Shapes(&layer.ShapesLayer{Paths: paths, Meta: layer.NewShapesMeta()})
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}
	wantX := []string{"0", "10", "20"}
	for i, el := range group.Children() {
		if got, _ := el.Get("x"); got != wantX[i] {
			t.Errorf("child %d x = %q, want %q (input order on equal z)", i, got, wantX[i])
		}
	}
}

func TestShapesDefaultStyling(t *testing.T) {
	group, ext, err := Shapes(&layer.ShapesLayer{
		Paths: []layer.Matrix{unitSquare(0, 0)},
		Meta:  layer.NewShapesMeta(),
	})
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}

	want := Extrema{Min: [2]float64{0, 0}, Max: [2]float64{1, 1}}
	if !extremaEqual(ext, want) {
		t.Errorf("extrema = %+v, want %+v", ext, want)
	}

	rect := group.Children()[0]
	for _, attr := range []struct{ name, want string }{
		{"fill", "rgb(255,255,255)"},
		{"stroke", "rgb(0,0,0)"},
		{"stroke-width", "1"},
		{"opacity", "1"},
	} {
		if got, _ := rect.Get(attr.name); got != attr.want {
			t.Errorf("%s = %q, want %q", attr.name, got, attr.want)
		}
	}
}

func TestShapesMixedKinds(t *testing.T) {
	triangle := layer.NewMatrix([][]float64{{0, 0}, {0, 4}, {4, 2}})
	segment := layer.NewMatrix([][]float64{{0, 0}, {3, 3}})

	meta := layer.NewShapesMeta()
	meta.ShapeType = []layer.ShapeKind{layer.ShapePolygon, layer.ShapeLine}

	group, _, err := Shapes(&layer.ShapesLayer{Paths: []layer.Matrix{triangle, segment}, Meta: meta})
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}
	tags := []string{"polygon", "line"}
	for i, el := range group.Children() {
		if el.Tag != tags[i] {
			t.Errorf("child %d tag = %q, want %q", i, el.Tag, tags[i])
		}
	}
}

func TestShapesEmptyLayer(t *testing.T) {
	group, ext, err := Shapes(&layer.ShapesLayer{Meta: layer.NewShapesMeta()})
	if err != nil {
		t.Fatalf("Shapes: %v", err)
	}
	if len(group.Children()) != 0 {
		t.Errorf("empty layer produced %d shapes", len(group.Children()))
	}
	if !ext.IsEmpty() {
		t.Errorf("empty layer extrema = %+v, want NaN sentinel", ext)
	}
}

func TestShapesRejectsHigherDimensions(t *testing.T) {
	bad := layer.NewMatrix([][]float64{{0, 0, 0}, {1, 1, 1}})
	_, _, err := Shapes(&layer.ShapesLayer{Paths: []layer.Matrix{bad}, Meta: layer.NewShapesMeta()})
	if errors.GetCode(err) != errors.ErrCodeDimensionality {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDimensionality)
	}
}
