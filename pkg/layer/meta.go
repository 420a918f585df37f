package layer

// Transform holds the spatial transform attached to a layer. All fields
// are optional in the host's metadata dictionary; the zero values of
// Scale, Rotate and Affine are treated as identity so that a zero
// Transform behaves as "no transform".
//
// Coordinates are in (row, col) order throughout; the axis flip to SVG's
// (x, y) happens during rendering, not here.
type Transform struct {
	Scale     [2]float64    // per-axis scale, default [1, 1]
	Translate [2]float64    // per-axis offset, default [0, 0]
	Shear     float64       // skew along y, as the tangent of the skew angle
	Rotate    [2][2]float64 // rotation matrix, default identity
	Affine    [3][3]float64 // homogeneous affine correction, default identity
}

// Identity2 is the 2x2 identity matrix.
func Identity2() [2][2]float64 { return [2][2]float64{{1, 0}, {0, 1}} }

// Identity3 is the 3x3 identity matrix.
func Identity3() [3][3]float64 { return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Scale:  [2]float64{1, 1},
		Rotate: Identity2(),
		Affine: Identity3(),
	}
}

// Normalized returns t with zero-valued matrix fields replaced by identity
// defaults. A Transform built as a bare literal therefore renders as a no-op
// instead of collapsing everything to the origin.
func (t Transform) Normalized() Transform {
	if t.Scale == ([2]float64{}) {
		t.Scale = [2]float64{1, 1}
	}
	if t.Rotate == ([2][2]float64{}) {
		t.Rotate = Identity2()
	}
	if t.Affine == ([3][3]float64{}) {
		t.Affine = Identity3()
	}
	return t
}

// Common holds metadata shared by every layer kind.
type Common struct {
	Name      string
	Opacity   float64 // default 1
	Transform Transform
}

// ImageMeta is the metadata contract for image and labels layers.
type ImageMeta struct {
	Common
	Multiscale     bool       // data is a resolution pyramid; only the coarsest level is rendered
	RGB            bool       // samples are already RGB(A) bytes, skip colormapping
	ContrastLimits [2]float64 // intensity window, default [0, 1]
	Colormap       string     // colormap name, default "gray"
}

// NewImageMeta returns image metadata with documented defaults.
func NewImageMeta() ImageMeta {
	return ImageMeta{
		Common:         Common{Opacity: 1, Transform: NewTransform()},
		ContrastLimits: [2]float64{0, 1},
		Colormap:       "gray",
	}
}

// PointsMeta is the metadata contract for points layers.
//
// BorderColor/BorderWidth are the current host field names; EdgeColor and
// EdgeWidth are accepted as fallbacks for metadata produced by older hosts.
// Border fields win when both are set.
type PointsMeta struct {
	Common
	Size *Matrix // per-point sizes; Cols > 1 carries legacy per-axis sizes that are averaged

	FaceColor   []RGBA // per-point fill, default opaque white
	BorderColor []RGBA // per-point stroke, default opaque black
	EdgeColor   []RGBA // legacy alias for BorderColor

	BorderWidth []float64 // per-point stroke width; len 1 broadcasts; default 1
	EdgeWidth   []float64 // legacy alias for BorderWidth

	BorderWidthRelative bool // multiply stroke width by point size
	EdgeWidthRelative   bool // legacy alias for BorderWidthRelative
}

// NewPointsMeta returns points metadata with documented defaults.
func NewPointsMeta() PointsMeta {
	return PointsMeta{Common: Common{Opacity: 1, Transform: NewTransform()}}
}

// ShapeKind enumerates the supported shape primitives.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
	ShapeLine
	ShapePath
	ShapePolygon
)

// String returns the shape kind name used in scene files and error messages.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeEllipse:
		return "ellipse"
	case ShapeLine:
		return "line"
	case ShapePath:
		return "path"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// ParseShapeKind maps a shape type name to its ShapeKind.
func ParseShapeKind(s string) (ShapeKind, bool) {
	switch s {
	case "rectangle":
		return ShapeRectangle, true
	case "ellipse":
		return ShapeEllipse, true
	case "line":
		return ShapeLine, true
	case "path":
		return ShapePath, true
	case "polygon":
		return ShapePolygon, true
	default:
		return 0, false
	}
}

// ShapesMeta is the metadata contract for shapes layers. All slices are
// per-shape and default when nil or too short: missing fills are opaque
// white, missing edges opaque black, missing widths 1, missing z-indices 0
// and missing shape types rectangle.
type ShapesMeta struct {
	Common
	FaceColor []RGBA
	EdgeColor []RGBA
	EdgeWidth []float64
	ZIndex    []int
	ShapeType []ShapeKind
}

// NewShapesMeta returns shapes metadata with documented defaults.
func NewShapesMeta() ShapesMeta {
	return ShapesMeta{Common: Common{Opacity: 1, Transform: NewTransform()}}
}

// VectorsMeta is the metadata contract for vectors layers.
//
// EdgeWidth and Length are rendered as given: an explicit zero length
// collapses every line onto its origin, and a zero width hides the
// strokes. Use NewVectorsMeta to get the documented defaults.
type VectorsMeta struct {
	Common
	EdgeColor []RGBA  // per-vector stroke, default opaque black
	EdgeWidth float64 // stroke width shared by all vectors, default 1
	Length    float64 // multiplier applied to every direction, default 1
}

// NewVectorsMeta returns vectors metadata with documented defaults.
func NewVectorsMeta() VectorsMeta {
	return VectorsMeta{
		Common:    Common{Opacity: 1, Transform: NewTransform()},
		EdgeWidth: 1,
		Length:    1,
	}
}
