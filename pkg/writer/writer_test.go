package writer

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

func pointsLayer() layer.Layer {
	coords := layer.NewMatrix([][]float64{{0, 0}, {10, 10}})
	return layer.NewPoints(coords, layer.NewPointsMeta())
}

func TestWriteAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out")

	got, err := Write(target, []layer.Layer{pointsLayer()})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got != target+".svg" {
		t.Errorf("materialized path = %q, want %q", got, target+".svg")
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "<svg ") {
		t.Errorf("output is not an SVG document: %.80q", data)
	}
}

func TestWriteKeepsSVGExtension(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.svg")

	got, err := Write(target, []layer.Layer{pointsLayer()})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got != target {
		t.Errorf("materialized path = %q, want %q", got, target)
	}
}

func TestWriteDeclinesForeignExtension(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.csv")

	_, err := Write(target, []layer.Layer{pointsLayer()})
	if !stderrors.Is(err, ErrNotHandled) {
		t.Fatalf("err = %v, want ErrNotHandled", err)
	}
	if errors.GetCode(err) != errors.ErrCodeExtensionMismatch {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeExtensionMismatch)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("declined write still produced a file")
	}
}

func TestWriteDeclinesEmptyLayerList(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "out.svg"), nil)
	if !stderrors.Is(err, ErrNotHandled) {
		t.Fatalf("err = %v, want ErrNotHandled", err)
	}
}

func TestWriteConversionErrorAbortsFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.svg")

	bad := layer.NewPoints(layer.NewMatrix([][]float64{{0, 0, 0}}), layer.NewPointsMeta())
	_, err := Write(target, []layer.Layer{pointsLayer(), bad})
	if errors.GetCode(err) != errors.ErrCodeDimensionality {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDimensionality)
	}
	if stderrors.Is(err, ErrNotHandled) {
		t.Error("contract violations must be hard failures, not fall-through signals")
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("aborted conversion still produced a file")
	}
}

func TestRenderDocument(t *testing.T) {
	doc, err := Render([]layer.Layer{pointsLayer()})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(doc, "<?xml") {
		t.Errorf("document missing XML declaration: %.60q", doc)
	}
	if !strings.Contains(doc, "<circle ") {
		t.Error("document missing converted geometry")
	}
}

func TestPerKindWriters(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name  string
		write func(path string) (string, error)
	}{
		{"image", func(p string) (string, error) {
			return WriteImage(p, []layer.Grid{layer.NewGrid([][]float64{{0, 1}, {1, 0}})}, layer.NewImageMeta())
		}},
		{"labels", func(p string) (string, error) {
			return WriteLabels(p, []layer.Grid{layer.NewGrid([][]float64{{0, 1}})}, layer.NewImageMeta())
		}},
		{"points", func(p string) (string, error) {
			return WritePoints(p, layer.NewMatrix([][]float64{{0, 0}}), layer.NewPointsMeta())
		}},
		{"shapes", func(p string) (string, error) {
			square := layer.NewMatrix([][]float64{{1, 0}, {0, 0}, {0, 1}, {1, 1}})
			return WriteShapes(p, []layer.Matrix{square}, layer.NewShapesMeta())
		}},
		{"vectors", func(p string) (string, error) {
			field := layer.NewVectorField([][2][]float64{{{0, 0}, {1, 1}}})
			return WriteVectors(p, field, layer.NewVectorsMeta())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.write(filepath.Join(dir, tt.name))
			if err != nil {
				t.Fatalf("write: %v", err)
			}
			if filepath.Ext(got) != ".svg" {
				t.Errorf("materialized path = %q, want .svg extension", got)
			}
			if _, err := os.Stat(got); err != nil {
				t.Errorf("output file missing: %v", err)
			}
		})
	}
}
