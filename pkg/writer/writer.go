// Package writer materializes converted layers as SVG files and handles
// destination negotiation: extension normalization, the fail-closed
// "not handled" signal for foreign extensions, and PNG/PDF conversion for
// downstream consumers.
package writer

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/render"
)

// ErrNotHandled signals that this writer declines the request so a caller
// can fall through to another handler. It is returned for foreign file
// extensions, unsupported layer kinds and empty layer lists; nothing is
// written in any of those cases. Check with errors.Is.
var ErrNotHandled = stderrors.New("destination not handled")

// Write converts layers into a single SVG document and writes it to path.
//
// A path without an extension gets ".svg" appended; a path with a foreign
// extension is declined with ErrNotHandled. Layer kinds are checked before
// any conversion work so an unsupported kind never produces partial output.
// Conversion errors (bad dimensionality and the like) abort the write and
// are returned as-is. The materialized path is returned on success.
func Write(path string, layers []layer.Layer) (string, error) {
	target, err := normalizeExtension(path)
	if err != nil {
		return "", err
	}
	if len(layers) == 0 {
		return "", errors.Wrap(errors.ErrCodeUnsupportedKind, ErrNotHandled, "no layers to write")
	}
	for _, l := range layers {
		if !render.Supported(l.Kind) {
			return "", errors.Wrap(errors.ErrCodeUnsupportedKind, ErrNotHandled,
				"layer kind %q has no converter", l.Kind)
		}
	}

	doc, err := Render(layers)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(target, []byte(doc), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "writing %s", target)
	}
	return target, nil
}

// Render converts layers into a standalone SVG document string without
// touching the filesystem.
func Render(layers []layer.Layer) (string, error) {
	fragments, ext, err := render.ConvertAll(layers)
	if err != nil {
		return "", err
	}
	return render.Document(fragments, ext), nil
}

// WriteImage writes a single image layer.
func WriteImage(path string, levels []layer.Grid, meta layer.ImageMeta) (string, error) {
	return Write(path, []layer.Layer{layer.NewImage(levels, meta)})
}

// WriteLabels writes a single labels layer.
func WriteLabels(path string, levels []layer.Grid, meta layer.ImageMeta) (string, error) {
	return Write(path, []layer.Layer{layer.NewLabels(levels, meta)})
}

// WritePoints writes a single points layer.
func WritePoints(path string, coords layer.Matrix, meta layer.PointsMeta) (string, error) {
	return Write(path, []layer.Layer{layer.NewPoints(coords, meta)})
}

// WriteShapes writes a single shapes layer.
func WriteShapes(path string, paths []layer.Matrix, meta layer.ShapesMeta) (string, error) {
	return Write(path, []layer.Layer{layer.NewShapes(paths, meta)})
}

// WriteVectors writes a single vectors layer.
func WriteVectors(path string, field layer.VectorField, meta layer.VectorsMeta) (string, error) {
	return Write(path, []layer.Layer{layer.NewVectors(field, meta)})
}

// normalizeExtension appends ".svg" to extension-less paths and declines
// paths claimed by other formats.
func normalizeExtension(path string) (string, error) {
	switch filepath.Ext(path) {
	case "":
		return path + ".svg", nil
	case ".svg":
		return path, nil
	default:
		return "", errors.Wrap(errors.ErrCodeExtensionMismatch, ErrNotHandled,
			"%s has a non-svg extension", path)
	}
}
