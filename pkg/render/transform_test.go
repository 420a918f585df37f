package render

import (
	"fmt"
	"math"
	"testing"

	"github.com/layerviz/layersvg/pkg/layer"
)

func TestComposeTransformIdentity(t *testing.T) {
	got := composeTransform(layer.NewTransform())
	want := "matrix(1 0 0 1 0 0) translate(0 0) rotate(0) skewY(0) scale(1 1)"
	if got != want {
		t.Errorf("composeTransform(identity) = %q, want %q", got, want)
	}
}

func TestComposeTransformZeroValue(t *testing.T) {
	// The zero Transform must normalize to identity, not collapse space.
	if got, want := composeTransform(layer.Transform{}), composeTransform(layer.NewTransform()); got != want {
		t.Errorf("zero transform = %q, want identity %q", got, want)
	}
}

func TestComposeTransformAxisSwap(t *testing.T) {
	tr := layer.NewTransform()
	tr.Scale = [2]float64{2, 3}      // rows scale 2, cols scale 3
	tr.Translate = [2]float64{5, -5} // rows +5, cols -5

	got := composeTransform(tr)
	want := "matrix(1 0 0 1 0 0) translate(-5 5) rotate(0) skewY(0) scale(3 2)"
	if got != want {
		t.Errorf("composeTransform = %q, want %q", got, want)
	}
}

// applyTransformString parses the fixed operator layout emitted by
// composeTransform and applies it to an (x, y) point the way an SVG
// renderer would: right-to-left.
func applyTransformString(t *testing.T, tf string, x, y float64) (float64, float64) {
	t.Helper()
	var a, b, c, d, e, f, tx, ty, rot, skew, sx, sy float64
	_, err := fmt.Sscanf(tf,
		"matrix(%g %g %g %g %g %g) translate(%g %g) rotate(%g) skewY(%g) scale(%g %g)",
		&a, &b, &c, &d, &e, &f, &tx, &ty, &rot, &skew, &sx, &sy)
	if err != nil {
		t.Fatalf("cannot parse transform %q: %v", tf, err)
	}

	// scale
	x, y = sx*x, sy*y
	// skewY
	y += x * math.Tan(skew*math.Pi/180)
	// rotate
	rad := rot * math.Pi / 180
	x, y = math.Cos(rad)*x-math.Sin(rad)*y, math.Sin(rad)*x+math.Cos(rad)*y
	// translate
	x, y = x+tx, y+ty
	// matrix
	return a*x + c*y + e, b*x + d*y + f
}

func rotation2(deg float64) [2][2]float64 {
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	return [2][2]float64{{c, -s}, {s, c}}
}

// The transform string, interpreted right-to-left, must agree with the
// linear map used for extrema computation.
func TestTransformStringMatchesLinearMap(t *testing.T) {
	identity := layer.NewTransform()

	scaled := layer.NewTransform()
	scaled.Scale = [2]float64{2, 3}

	translated := layer.NewTransform()
	translated.Translate = [2]float64{5, -5}

	combined := layer.NewTransform()
	combined.Scale = [2]float64{2, 3}
	combined.Shear = 0.5
	combined.Rotate = rotation2(30)
	combined.Translate = [2]float64{1, 2}
	combined.Affine = [3][3]float64{{1, 0, 5}, {0.2, 1, -3}, {0, 0, 1}}

	tests := []struct {
		name string
		tr   layer.Transform
	}{
		{"identity", identity},
		{"pure scale", scaled},
		{"pure translate", translated},
		{"rotate shear scale affine", combined},
	}

	points := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {3, -2}, {-7.5, 4.25}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := composeTransform(tt.tr)
			m, off := linearMatrixAndOffset(tt.tr)

			for _, p := range points {
				// row/col result of the linear map, flipped to (x, y)
				wantX := m[1][0]*p[0] + m[1][1]*p[1] + off[1]
				wantY := m[0][0]*p[0] + m[0][1]*p[1] + off[0]

				gotX, gotY := applyTransformString(t, tf, p[1], p[0])
				if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
					t.Errorf("point (row=%v, col=%v): transform string gives (%v, %v), linear map gives (%v, %v)",
						p[0], p[1], gotX, gotY, wantX, wantY)
				}
			}
		})
	}
}

func TestLinearMatrixAndOffsetDefaults(t *testing.T) {
	m, off := linearMatrixAndOffset(layer.NewTransform())
	if m != [2][2]float64{{1, 0}, {0, 1}} {
		t.Errorf("identity matrix = %v", m)
	}
	if off != [2]float64{0, 0} {
		t.Errorf("identity offset = %v", off)
	}
}

func TestLinearMatrixCompositionOrder(t *testing.T) {
	// scale then shear: M = Sh*S, so M[0][1] = shear*scale_col
	tr := layer.NewTransform()
	tr.Scale = [2]float64{2, 3}
	tr.Shear = 0.5

	m, _ := linearMatrixAndOffset(tr)
	want := [2][2]float64{{2, 1.5}, {0, 3}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(m[i][j]-want[i][j]) > 1e-12 {
				t.Fatalf("matrix = %v, want %v", m, want)
			}
		}
	}
}
