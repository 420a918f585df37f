package layer

// Matrix is a dense row-major matrix of coordinates. Rows are entries
// (points, vertices) and columns are axes in (row, col) order, matching
// the host application's convention.
type Matrix struct {
	Rows, Cols int
	Data       []float64 // len == Rows*Cols
}

// NewMatrix builds a Matrix from a slice of equally sized rows.
// Jagged input keeps the first row's width and panics on shorter rows,
// so callers validating user input should pre-check row lengths.
func NewMatrix(rows [][]float64) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}
	cols := len(rows[0])
	m := Matrix{Rows: len(rows), Cols: cols, Data: make([]float64, 0, len(rows)*cols)}
	for _, r := range rows {
		m.Data = append(m.Data, r[:cols]...)
	}
	return m
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

// Row returns a view of row i. The returned slice aliases the matrix data.
func (m Matrix) Row(i int) []float64 { return m.Data[i*m.Cols : (i+1)*m.Cols] }

// IsEmpty reports whether the matrix holds no entries.
func (m Matrix) IsEmpty() bool { return m.Rows == 0 }

// Grid is a dense row-major raster. Channels is 1 for scalar intensity
// data (arbitrary value range, interpreted through contrast limits and a
// colormap) or 3/4 for RGB(A) samples in the 0-255 range.
type Grid struct {
	Rows, Cols, Channels int
	Data                 []float64 // len == Rows*Cols*Channels
}

// NewGrid builds a single-channel Grid from a slice of equally sized rows.
func NewGrid(rows [][]float64) Grid {
	if len(rows) == 0 {
		return Grid{Channels: 1}
	}
	cols := len(rows[0])
	g := Grid{Rows: len(rows), Cols: cols, Channels: 1, Data: make([]float64, 0, len(rows)*cols)}
	for _, r := range rows {
		g.Data = append(g.Data, r[:cols]...)
	}
	return g
}

// At returns the sample at row i, column j, channel c.
func (g Grid) At(i, j, c int) float64 {
	return g.Data[(i*g.Cols+j)*g.Channels+c]
}

// VectorField is a dense (N, 2, Dim) array of vectors. Each vector is an
// origin coordinate followed by a direction, both of Dim components in
// (row, col) order.
type VectorField struct {
	N, Dim int
	Data   []float64 // len == N*2*Dim
}

// NewVectorField builds a VectorField from origin/direction pairs.
func NewVectorField(vectors [][2][]float64) VectorField {
	if len(vectors) == 0 {
		return VectorField{}
	}
	dim := len(vectors[0][0])
	f := VectorField{N: len(vectors), Dim: dim, Data: make([]float64, 0, len(vectors)*2*dim)}
	for _, v := range vectors {
		f.Data = append(f.Data, v[0][:dim]...)
		f.Data = append(f.Data, v[1][:dim]...)
	}
	return f
}

// Origin returns a view of vector i's origin coordinate.
func (f VectorField) Origin(i int) []float64 {
	return f.Data[i*2*f.Dim : i*2*f.Dim+f.Dim]
}

// Direction returns a view of vector i's direction.
func (f VectorField) Direction(i int) []float64 {
	return f.Data[i*2*f.Dim+f.Dim : (i+1)*2*f.Dim]
}

// RGBA is a color with red, green, blue and alpha channels in [0, 1].
type RGBA [4]float64

// Predefined colors used as metadata defaults.
var (
	White = RGBA{1, 1, 1, 1}
	Black = RGBA{0, 0, 0, 1}
)
