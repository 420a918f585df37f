// Package pkg provides the core libraries for layersvg scene rendering.
//
// # Overview
//
// layersvg converts visualization layers (images, labels, points, shapes,
// vectors) into standalone SVG documents. The pkg directory is organized
// around a small pipeline:
//
//	TOML scene / library caller
//	         ↓
//	    [layer] package (data arrays + metadata contracts)
//	         ↓
//	    [render] package (per-kind converters, transforms, extrema)
//	         ↓
//	    [writer] package (document assembly, files, PNG/PDF)
//
// # Main Packages
//
// [layer] - The data model: dense coordinate matrices, raster grids,
// vector fields, and per-kind metadata with documented defaults. All
// coordinates are in (row, col) order; the flip to SVG's (x, y) happens
// during rendering.
//
// [render] - Per-kind converters producing SVG fragments plus transformed
// bounding extrema, the affine transform composition, the NaN-safe extrema
// aggregation, and the final document assembler.
//
// [render/shape] - Encoders for the shape primitives (rectangle, ellipse,
// line, path, polygon), including de-rotation of rotated boxes.
//
// [svg] - A minimal ordered-attribute element tree so output is
// byte-for-byte deterministic.
//
// [colormap] - Named colormaps (gray, viridis, magma, ...) used to map
// scalar image intensities to colors.
//
// [scene] - TOML scene documents describing layers declaratively, used by
// the CLI.
//
// [writer] - Destination negotiation (extension normalization, the
// "not handled" fall-through signal), file writing, and PNG/PDF conversion
// via rsvg-convert.
//
// [cache] - A file-based artifact cache so repeated PNG/PDF exports of an
// unchanged scene skip the conversion step.
//
// [errors] - Structured errors with machine-readable codes shared by all
// of the above.
//
// # Quick Start
//
// Convert a points layer and write it as SVG:
//
//	import (
//	    "github.com/layerviz/layersvg/pkg/layer"
//	    "github.com/layerviz/layersvg/pkg/writer"
//	)
//
//	coords := layer.NewMatrix([][]float64{{0, 0}, {10, 20}})
//	path, err := writer.WritePoints("out", coords, layer.NewPointsMeta())
//	// path == "out.svg"
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/render/...   # Specific package
package pkg
