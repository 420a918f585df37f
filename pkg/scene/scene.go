// Package scene loads declarative layer descriptions from TOML documents.
//
// A scene is a list of [[layer]] tables. Every table names its kind and
// carries the kind's data and styling fields:
//
//	[[layer]]
//	kind = "points"
//	name = "detections"
//	data = [[0.0, 0.0], [10.0, 20.0]]
//	size = [16.0]
//	face_color = [[1.0, 0.0, 0.0, 1.0]]
//
//	[[layer]]
//	kind = "image"
//	file = "background.png"
//
// Image layers reference a PNG file (decoded as RGB) or carry inline
// scalar rows in data. Shapes layers list per-shape vertex matrices under
// shapes, vectors layers list [origin, direction] pairs under vectors.
// Colors are [r, g, b, a] channel arrays in the 0-1 range; a missing
// alpha defaults to opaque.
package scene

import (
	"image/png"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/layerviz/layersvg/pkg/errors"
	"github.com/layerviz/layersvg/pkg/layer"
)

type document struct {
	Layers []layerSpec `toml:"layer"`
}

// layerSpec is the union of all per-kind TOML fields. Decoding is loose;
// buildLayer enforces which fields a kind actually accepts.
type layerSpec struct {
	Kind    string         `toml:"kind"`
	Name    string         `toml:"name"`
	Opacity *float64       `toml:"opacity"`
	Xform   *transformSpec `toml:"transform"`

	// image / labels
	File           string      `toml:"file"`
	Data           [][]float64 `toml:"data"`
	ContrastLimits []float64   `toml:"contrast_limits"`
	Colormap       string      `toml:"colormap"`

	// points
	Size                []float64   `toml:"size"`
	FaceColor           [][]float64 `toml:"face_color"`
	BorderColor         [][]float64 `toml:"border_color"`
	BorderWidth         []float64   `toml:"border_width"`
	BorderWidthRelative bool        `toml:"border_width_relative"`

	// shapes
	Shapes    [][][]float64 `toml:"shapes"`
	EdgeColor [][]float64   `toml:"edge_color"`
	EdgeWidth []float64     `toml:"edge_width"`
	ZIndex    []int         `toml:"z_index"`
	ShapeType []string      `toml:"shape_type"`

	// vectors
	Vectors [][][]float64 `toml:"vectors"`
	Length  *float64      `toml:"length"`
}

type transformSpec struct {
	Scale     []float64   `toml:"scale"`
	Translate []float64   `toml:"translate"`
	Shear     float64     `toml:"shear"`
	Rotate    [][]float64 `toml:"rotate"`
	Affine    [][]float64 `toml:"affine"`
}

// Load reads a scene file and builds its layers. Relative image file
// references resolve against the scene file's directory.
func Load(path string) ([]layer.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading scene %s", path)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse builds layers from raw TOML. baseDir anchors relative file
// references; pass "" to resolve against the working directory.
func Parse(data []byte, baseDir string) ([]layer.Layer, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parsing scene")
	}
	if len(doc.Layers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "scene has no layers")
	}

	layers := make([]layer.Layer, 0, len(doc.Layers))
	for i, spec := range doc.Layers {
		l, err := buildLayer(spec, baseDir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "layer %d (%s)", i, spec.Kind)
		}
		layers = append(layers, l)
	}
	return layers, nil
}

func buildLayer(spec layerSpec, baseDir string) (layer.Layer, error) {
	kind, ok := layer.ParseKind(spec.Kind)
	if !ok {
		return layer.Layer{}, errors.New(errors.ErrCodeUnsupportedKind, "unknown layer kind %q", spec.Kind)
	}

	common, err := spec.common(kind)
	if err != nil {
		return layer.Layer{}, err
	}

	switch kind {
	case layer.KindImage, layer.KindLabels:
		return spec.imageLayer(kind, common, baseDir)
	case layer.KindPoints:
		return spec.pointsLayer(common)
	case layer.KindShapes:
		return spec.shapesLayer(common)
	case layer.KindVectors:
		return spec.vectorsLayer(common)
	default:
		return layer.Layer{}, errors.New(errors.ErrCodeUnsupportedKind, "unknown layer kind %q", spec.Kind)
	}
}

// common resolves the shared metadata fields. Anonymous layers get a
// generated name so downstream tables and logs can still address them.
func (s layerSpec) common(kind layer.Kind) (layer.Common, error) {
	name := s.Name
	if name == "" {
		name = kind.String() + "-" + uuid.NewString()[:8]
	}
	opacity := 1.0
	if s.Opacity != nil {
		opacity = *s.Opacity
	}
	tf, err := s.transform()
	if err != nil {
		return layer.Common{}, err
	}
	return layer.Common{Name: name, Opacity: opacity, Transform: tf}, nil
}

func (s layerSpec) transform() (layer.Transform, error) {
	tf := layer.NewTransform()
	if s.Xform == nil {
		return tf, nil
	}
	x := s.Xform
	if x.Scale != nil {
		if len(x.Scale) != 2 {
			return tf, errors.New(errors.ErrCodeInvalidScene, "transform scale needs 2 entries, got %d", len(x.Scale))
		}
		tf.Scale = [2]float64{x.Scale[0], x.Scale[1]}
	}
	if x.Translate != nil {
		if len(x.Translate) != 2 {
			return tf, errors.New(errors.ErrCodeInvalidScene, "transform translate needs 2 entries, got %d", len(x.Translate))
		}
		tf.Translate = [2]float64{x.Translate[0], x.Translate[1]}
	}
	tf.Shear = x.Shear
	if x.Rotate != nil {
		m, err := squareMatrix(x.Rotate, 2, "rotate")
		if err != nil {
			return tf, err
		}
		tf.Rotate = [2][2]float64{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
	}
	if x.Affine != nil {
		m, err := squareMatrix(x.Affine, 3, "affine")
		if err != nil {
			return tf, err
		}
		tf.Affine = [3][3]float64{
			{m[0][0], m[0][1], m[0][2]},
			{m[1][0], m[1][1], m[1][2]},
			{m[2][0], m[2][1], m[2][2]},
		}
	}
	return tf, nil
}

func squareMatrix(rows [][]float64, n int, field string) ([][]float64, error) {
	if len(rows) != n {
		return nil, errors.New(errors.ErrCodeInvalidScene, "transform %s needs %dx%d entries", field, n, n)
	}
	for _, r := range rows {
		if len(r) != n {
			return nil, errors.New(errors.ErrCodeInvalidScene, "transform %s needs %dx%d entries", field, n, n)
		}
	}
	return rows, nil
}

func (s layerSpec) imageLayer(kind layer.Kind, common layer.Common, baseDir string) (layer.Layer, error) {
	meta := layer.NewImageMeta()
	meta.Common = common
	if s.Colormap != "" {
		meta.Colormap = s.Colormap
	}
	if s.ContrastLimits != nil {
		if len(s.ContrastLimits) != 2 {
			return layer.Layer{}, errors.New(errors.ErrCodeInvalidScene,
				"contrast_limits needs 2 entries, got %d", len(s.ContrastLimits))
		}
		meta.ContrastLimits = [2]float64{s.ContrastLimits[0], s.ContrastLimits[1]}
	}

	var grid layer.Grid
	switch {
	case s.File != "" && s.Data != nil:
		return layer.Layer{}, errors.New(errors.ErrCodeInvalidScene, "image layer sets both file and data")
	case s.File != "":
		g, err := loadPNG(resolvePath(baseDir, s.File))
		if err != nil {
			return layer.Layer{}, err
		}
		grid = g
		meta.RGB = true
	case s.Data != nil:
		if err := rectangular(s.Data); err != nil {
			return layer.Layer{}, err
		}
		grid = layer.NewGrid(s.Data)
	default:
		return layer.Layer{}, errors.New(errors.ErrCodeInvalidScene, "image layer needs file or data")
	}

	if kind == layer.KindLabels {
		return layer.NewLabels([]layer.Grid{grid}, meta), nil
	}
	return layer.NewImage([]layer.Grid{grid}, meta), nil
}

func (s layerSpec) pointsLayer(common layer.Common) (layer.Layer, error) {
	if err := rectangular(s.Data); err != nil {
		return layer.Layer{}, err
	}
	meta := layer.NewPointsMeta()
	meta.Common = common
	if s.Size != nil {
		m := layer.Matrix{Rows: len(s.Size), Cols: 1, Data: s.Size}
		meta.Size = &m
	}
	var err error
	if meta.FaceColor, err = parseColors(s.FaceColor, "face_color"); err != nil {
		return layer.Layer{}, err
	}
	if meta.BorderColor, err = parseColors(s.BorderColor, "border_color"); err != nil {
		return layer.Layer{}, err
	}
	meta.BorderWidth = s.BorderWidth
	meta.BorderWidthRelative = s.BorderWidthRelative
	return layer.NewPoints(layer.NewMatrix(s.Data), meta), nil
}

func (s layerSpec) shapesLayer(common layer.Common) (layer.Layer, error) {
	meta := layer.NewShapesMeta()
	meta.Common = common
	var err error
	if meta.FaceColor, err = parseColors(s.FaceColor, "face_color"); err != nil {
		return layer.Layer{}, err
	}
	if meta.EdgeColor, err = parseColors(s.EdgeColor, "edge_color"); err != nil {
		return layer.Layer{}, err
	}
	meta.EdgeWidth = s.EdgeWidth
	meta.ZIndex = s.ZIndex
	if s.ShapeType != nil {
		meta.ShapeType = make([]layer.ShapeKind, len(s.ShapeType))
		for i, name := range s.ShapeType {
			k, ok := layer.ParseShapeKind(name)
			if !ok {
				return layer.Layer{}, errors.New(errors.ErrCodeInvalidScene, "unknown shape type %q", name)
			}
			meta.ShapeType[i] = k
		}
	}

	paths := make([]layer.Matrix, len(s.Shapes))
	for i, rows := range s.Shapes {
		if err := rectangular(rows); err != nil {
			return layer.Layer{}, err
		}
		paths[i] = layer.NewMatrix(rows)
	}
	return layer.NewShapes(paths, meta), nil
}

func (s layerSpec) vectorsLayer(common layer.Common) (layer.Layer, error) {
	meta := layer.NewVectorsMeta()
	meta.Common = common
	var err error
	if meta.EdgeColor, err = parseColors(s.EdgeColor, "edge_color"); err != nil {
		return layer.Layer{}, err
	}
	if len(s.EdgeWidth) > 0 {
		meta.EdgeWidth = s.EdgeWidth[0]
	}
	// Zero is a meaningful length (lines collapse onto their origins),
	// so only a missing key keeps the default.
	if s.Length != nil {
		meta.Length = *s.Length
	}

	vectors := make([][2][]float64, len(s.Vectors))
	for i, pair := range s.Vectors {
		if len(pair) != 2 || len(pair[0]) != len(pair[1]) {
			return layer.Layer{}, errors.New(errors.ErrCodeInvalidScene,
				"vector %d must be an [origin, direction] pair of equal length", i)
		}
		vectors[i] = [2][]float64{pair[0], pair[1]}
	}
	return layer.NewVectors(layer.NewVectorField(vectors), meta), nil
}

// parseColors converts [r, g, b] or [r, g, b, a] channel arrays. Missing
// alpha defaults to opaque.
func parseColors(raw [][]float64, field string) ([]layer.RGBA, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]layer.RGBA, len(raw))
	for i, c := range raw {
		switch len(c) {
		case 3:
			out[i] = layer.RGBA{c[0], c[1], c[2], 1}
		case 4:
			out[i] = layer.RGBA{c[0], c[1], c[2], c[3]}
		default:
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"%s entry %d needs 3 or 4 channels, got %d", field, i, len(c))
		}
	}
	return out, nil
}

// rectangular rejects jagged row data before it reaches NewMatrix, which
// would panic on short rows.
func rectangular(rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i, r := range rows {
		if len(r) != want {
			return errors.New(errors.ErrCodeInvalidScene,
				"row %d has %d entries, want %d", i, len(r), want)
		}
	}
	return nil
}

func resolvePath(baseDir, path string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// loadPNG decodes a PNG file into an RGBA grid with 0-255 samples.
func loadPNG(path string) (layer.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return layer.Grid{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "opening image %s", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return layer.Grid{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "decoding %s", path)
	}

	b := img.Bounds()
	g := layer.Grid{
		Rows:     b.Dy(),
		Cols:     b.Dx(),
		Channels: 4,
		Data:     make([]float64, 0, b.Dy()*b.Dx()*4),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, a := img.At(x, y).RGBA()
			g.Data = append(g.Data,
				float64(r>>8), float64(gr>>8), float64(bl>>8), float64(a>>8))
		}
	}
	return g, nil
}
