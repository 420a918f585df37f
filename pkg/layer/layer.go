// Package layer defines the data model consumed by the rendering core:
// the layer kinds, their payload arrays and the per-kind metadata
// contracts with documented defaults.
//
// A Layer is a closed tagged variant: the Kind selects exactly one of the
// payload pointers. Layers are transient values owned by the caller; the
// rendering core never retains them past a single conversion call.
package layer

import "github.com/layerviz/layersvg/pkg/errors"

// Kind identifies the type of visual content a layer carries.
type Kind int

const (
	KindImage Kind = iota
	KindLabels
	KindPoints
	KindShapes
	KindVectors
)

// String returns the kind name used in scene files and error messages.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindLabels:
		return "labels"
	case KindPoints:
		return "points"
	case KindShapes:
		return "shapes"
	case KindVectors:
		return "vectors"
	default:
		return "unknown"
	}
}

// ParseKind maps a layer type name to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "image":
		return KindImage, true
	case "labels":
		return KindLabels, true
	case "points":
		return KindPoints, true
	case "shapes":
		return KindShapes, true
	case "vectors":
		return KindVectors, true
	default:
		return 0, false
	}
}

// ImageLayer carries raster data. Levels holds the resolution pyramid for
// multiscale data; single-scale data has exactly one level.
type ImageLayer struct {
	Levels []Grid
	Meta   ImageMeta
}

// PointsLayer carries an (N, D) coordinate matrix.
type PointsLayer struct {
	Coords Matrix
	Meta   PointsMeta
}

// ShapesLayer carries one vertex matrix per shape.
type ShapesLayer struct {
	Paths []Matrix
	Meta  ShapesMeta
}

// VectorsLayer carries an (N, 2, D) origin/direction field.
type VectorsLayer struct {
	Field VectorField
	Meta  VectorsMeta
}

// Layer is one unit of visual content. Exactly one payload pointer is
// non-nil, selected by Kind; KindLabels shares the image payload.
type Layer struct {
	Kind    Kind
	Image   *ImageLayer
	Points  *PointsLayer
	Shapes  *ShapesLayer
	Vectors *VectorsLayer
}

// NewImage builds an image layer from pyramid levels and metadata.
func NewImage(levels []Grid, meta ImageMeta) Layer {
	return Layer{Kind: KindImage, Image: &ImageLayer{Levels: levels, Meta: meta}}
}

// NewLabels builds a labels layer. Labels render through the image
// converter, so the payload is an ImageLayer.
func NewLabels(levels []Grid, meta ImageMeta) Layer {
	return Layer{Kind: KindLabels, Image: &ImageLayer{Levels: levels, Meta: meta}}
}

// NewPoints builds a points layer.
func NewPoints(coords Matrix, meta PointsMeta) Layer {
	return Layer{Kind: KindPoints, Points: &PointsLayer{Coords: coords, Meta: meta}}
}

// NewShapes builds a shapes layer.
func NewShapes(paths []Matrix, meta ShapesMeta) Layer {
	return Layer{Kind: KindShapes, Shapes: &ShapesLayer{Paths: paths, Meta: meta}}
}

// NewVectors builds a vectors layer.
func NewVectors(field VectorField, meta VectorsMeta) Layer {
	return Layer{Kind: KindVectors, Vectors: &VectorsLayer{Field: field, Meta: meta}}
}

// Name returns the layer's metadata name, which may be empty.
func (l Layer) Name() string {
	switch l.Kind {
	case KindImage, KindLabels:
		if l.Image != nil {
			return l.Image.Meta.Name
		}
	case KindPoints:
		if l.Points != nil {
			return l.Points.Meta.Name
		}
	case KindShapes:
		if l.Shapes != nil {
			return l.Shapes.Meta.Name
		}
	case KindVectors:
		if l.Vectors != nil {
			return l.Vectors.Meta.Name
		}
	}
	return ""
}

// Validate checks that the layer's payload matches its kind.
func (l Layer) Validate() error {
	switch l.Kind {
	case KindImage, KindLabels:
		if l.Image == nil {
			return errors.New(errors.ErrCodeInternal, "%s layer has no image payload", l.Kind)
		}
		if len(l.Image.Levels) == 0 {
			return errors.New(errors.ErrCodeDimensionality, "%s layer has no pyramid levels", l.Kind)
		}
	case KindPoints:
		if l.Points == nil {
			return errors.New(errors.ErrCodeInternal, "points layer has no coordinate payload")
		}
	case KindShapes:
		if l.Shapes == nil {
			return errors.New(errors.ErrCodeInternal, "shapes layer has no path payload")
		}
	case KindVectors:
		if l.Vectors == nil {
			return errors.New(errors.ErrCodeInternal, "vectors layer has no field payload")
		}
	default:
		return errors.New(errors.ErrCodeUnsupportedKind, "unknown layer kind %d", int(l.Kind))
	}
	return nil
}
