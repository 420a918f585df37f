package render

import (
	"fmt"
	"math"

	"github.com/layerviz/layersvg/pkg/layer"
	"github.com/layerviz/layersvg/pkg/svg"
)

// composeTransform renders a layer transform as an SVG transform list.
//
// Internally coordinates are (row, col); SVG uses (x=col, y=row), so
// vectors are reversed and the affine 2x2 block is permuted before
// formatting. The conceptual pipeline applies scale, shear, rotate,
// translate, then the affine correction; SVG evaluates transform lists
// right-to-left, so the operators are emitted in reverse.
func composeTransform(t layer.Transform) string {
	t = t.Normalized()

	// reversed into (x, y) order
	sx, sy := t.Scale[1], t.Scale[0]
	tx, ty := t.Translate[1], t.Translate[0]

	rotate := degrees(math.Atan2(t.Rotate[0][1], t.Rotate[1][1]))

	// The host's shear is the skew along SVG's y axis, but skewY wants
	// degrees. Skew along x is achievable as skewY plus a rotation of
	// the same amount, so a single scalar suffices here.
	skewY := degrees(math.Atan2(t.Shear, 1))

	// Affine entries after converting row-column to y-x: flip the rows,
	// then the first two columns of the matrix:
	//   a c e      b d f      d b f
	//   b d f  ->  a c e  ->  c a e
	a, b := t.Affine[1][1], t.Affine[0][1]
	c, d := t.Affine[1][0], t.Affine[0][0]
	e, f := t.Affine[1][2], t.Affine[0][2]

	return fmt.Sprintf("matrix(%s %s %s %s %s %s) translate(%s %s) rotate(%s) skewY(%s) scale(%s %s)",
		svg.Num(a), svg.Num(b), svg.Num(c), svg.Num(d), svg.Num(e), svg.Num(f),
		svg.Num(tx), svg.Num(ty),
		svg.Num(rotate),
		svg.Num(skewY),
		svg.Num(sx), svg.Num(sy),
	)
}

// linearMatrixAndOffset reduces a layer transform to a single linear map
// plus offset in (row, col) space, combining the affine's 2x2 block and
// translation with rotate*shear*scale in that composition order. A point
// transforms as p' = M*p + offset.
func linearMatrixAndOffset(t layer.Transform) (m [2][2]float64, offset [2]float64) {
	t = t.Normalized()

	rs := matMul2(t.Rotate, [2][2]float64{{1, t.Shear}, {0, 1}})
	rss := matMul2(rs, [2][2]float64{{t.Scale[0], 0}, {0, t.Scale[1]}})

	linear := [2][2]float64{
		{t.Affine[0][0], t.Affine[0][1]},
		{t.Affine[1][0], t.Affine[1][1]},
	}
	m = matMul2(linear, rss)

	tr := matVec2(linear, t.Translate)
	offset = [2]float64{tr[0] + t.Affine[0][2], tr[1] + t.Affine[1][2]}
	return m, offset
}

func matMul2(a, b [2][2]float64) [2][2]float64 {
	return [2][2]float64{
		{a[0][0]*b[0][0] + a[0][1]*b[1][0], a[0][0]*b[0][1] + a[0][1]*b[1][1]},
		{a[1][0]*b[0][0] + a[1][1]*b[1][0], a[1][0]*b[0][1] + a[1][1]*b[1][1]},
	}
}

func matVec2(m [2][2]float64, v [2]float64) [2]float64 {
	return [2]float64{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
