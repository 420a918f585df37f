package render

import (
	"testing"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

func TestVectorsLineAttributes(t *testing.T) {
	field := layer.NewVectorField([][2][]float64{
		{{0, 0}, {1, 0}},
		{{5, 5}, {0, 2}},
	})
	meta := layer.NewVectorsMeta()
	meta.Length = 3
	meta.EdgeWidth = 2
	meta.EdgeColor = []layer.RGBA{{1, 0, 0, 1}, {0, 0, 1, 1}}

	group, ext, err := Vectors(&layer.VectorsLayer{Field: field, Meta: meta})
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}

	// Endpoints are origin + length*direction: (3,0) and (5,11).
	want := Extrema{Min: [2]float64{0, 0}, Max: [2]float64{5, 11}}
	if !extremaEqual(ext, want) {
		t.Errorf("extrema = %+v, want %+v", ext, want)
	}

	lines := group.Children()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	checks := []struct {
		x1, y1, x2, y2, stroke string
	}{
		{"0", "0", "0", "3", "rgb(255,0,0)"},
		{"5", "5", "11", "5", "rgb(0,0,255)"},
	}
	for i, l := range lines {
		if l.Tag != "line" {
			t.Fatalf("child %d tag = %q, want line", i, l.Tag)
		}
		for _, attr := range []struct{ name, want string }{
			{"x1", checks[i].x1},
			{"y1", checks[i].y1},
			{"x2", checks[i].x2},
			{"y2", checks[i].y2},
			{"stroke-width", "2"},
			{"opacity", "1"},
			{"stroke", checks[i].stroke},
		} {
			got, ok := l.Get(attr.name)
			if !ok || got != attr.want {
				t.Errorf("line %d %s = %q, want %q", i, attr.name, got, attr.want)
			}
		}
	}
}

func TestVectorsConstructorDefaults(t *testing.T) {
	field := layer.NewVectorField([][2][]float64{{{0, 0}, {2, 0}}})

	group, _, err := Vectors(&layer.VectorsLayer{Field: field, Meta: layer.NewVectorsMeta()})
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}
	l := group.Children()[0]
	if got, _ := l.Get("y2"); got != "2" {
		t.Errorf("y2 = %q, want 2 (default length 1)", got)
	}
	if got, _ := l.Get("stroke-width"); got != "1" {
		t.Errorf("stroke-width = %q, want 1", got)
	}
}

func TestVectorsExplicitZeroLength(t *testing.T) {
	field := layer.NewVectorField([][2][]float64{
		{{3, 7}, {1, 0}},
		{{10, 2}, {0, 4}},
	})
	meta := layer.NewVectorsMeta()
	meta.Length = 0

	group, ext, err := Vectors(&layer.VectorsLayer{Field: field, Meta: meta})
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}

	// Zero length collapses every line onto its origin.
	for i, l := range group.Children() {
		x1, _ := l.Get("x1")
		y1, _ := l.Get("y1")
		x2, _ := l.Get("x2")
		y2, _ := l.Get("y2")
		if x1 != x2 || y1 != y2 {
			t.Errorf("line %d = (%s,%s)-(%s,%s), want endpoints at the origin point", i, x1, y1, x2, y2)
		}
	}

	want := Extrema{Min: [2]float64{3, 2}, Max: [2]float64{10, 7}}
	if !extremaEqual(ext, want) {
		t.Errorf("extrema = %+v, want origins only %+v", ext, want)
	}
}

func TestVectorsRejectsHigherDimensions(t *testing.T) {
	field := layer.NewVectorField([][2][]float64{{{0, 0, 0}, {1, 0, 0}}})
	_, _, err := Vectors(&layer.VectorsLayer{Field: field, Meta: layer.NewVectorsMeta()})
	if errors.GetCode(err) != errors.ErrCodeDimensionality {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDimensionality)
	}
}

func TestVectorsEmptyLayer(t *testing.T) {
	group, ext, err := Vectors(&layer.VectorsLayer{Meta: layer.NewVectorsMeta()})
	if err != nil {
		t.Fatalf("Vectors: %v", err)
	}
	if len(group.Children()) != 0 {
		t.Errorf("empty field produced %d lines", len(group.Children()))
	}
	if !ext.IsEmpty() {
		t.Errorf("empty field extrema = %+v, want NaN sentinel", ext)
	}
}
