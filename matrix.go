package image3d

import (
	"fmt"
	"math"
	"strconv"
)

// AffineTransform represents a 4x4 matrix acting on homogeneous coordinates (x, y, z, 1). The first index is the row;
// points are treated as column vectors, so translation lives in the last column (i.e. matrix[0][3], matrix[1][3], matrix[2][3]).
// The bottom row is not constrained to [0, 0, 0, 1]; composing and applying are plain 4x4 matrix operations.
//
// An AffineTransform is a value; every function that "changes" it returns a new one.
type AffineTransform [4][4]float64

// NewAffineTransform creates an AffineTransform from a row-major slice of rows. Anything other than exactly 4 rows of
// 4 values is a programming error, and NewAffineTransform panics.
func NewAffineTransform(rows [][]float64) AffineTransform {
	if len(rows) != 4 {
		panic(fmt.Sprintf("image3d: affine transform needs 4 rows, got %d", len(rows)))
	}
	var t AffineTransform
	for r, row := range rows {
		if len(row) != 4 {
			panic(fmt.Sprintf("image3d: affine transform row %d has %d columns, want 4", r, len(row)))
		}
		copy(t[r][:], row)
	}
	return t
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply computes matrix * [x, y, z, 1] and returns the first three components as a new Vector.
func (t AffineTransform) Apply(p Vector) Vector {
	return Vector{
		X: t[0][0]*p.X + t[0][1]*p.Y + t[0][2]*p.Z + t[0][3],
		Y: t[1][0]*p.X + t[1][1]*p.Y + t[1][2]*p.Z + t[1][3],
		Z: t[2][0]*p.X + t[2][1]*p.Y + t[2][2]*p.Z + t[2][3],
	}
}

// ComposeWith returns a transform that applies t first, and then next; that is, the matrix product next * t.
// ComposeWith(next).Apply(p) == next.Apply(t.Apply(p)).
func (t AffineTransform) ComposeWith(next AffineTransform) AffineTransform {
	return next.Mult(t)
}

// Mult returns the plain matrix product t * other. Note that, as points are column vectors, the result applies
// other first and t second; ComposeWith is usually what you want.
func (t AffineTransform) Mult(other AffineTransform) AffineTransform {
	var result AffineTransform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += t[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// ApplyPolygon returns a copy of the Polygon with every vertex transformed; vertex order is preserved.
func (t AffineTransform) ApplyPolygon(polygon Polygon) Polygon {
	vertices := make([]Vector, len(polygon.Vertices))
	for i, v := range polygon.Vertices {
		vertices[i] = t.Apply(v)
	}
	return Polygon{Vertices: vertices}
}

// Equals returns true if the transform equals the provided other transform, within a small epsilon.
func (t AffineTransform) Equals(other AffineTransform) bool {
	eps := 1e-9 // epsilon floating point error value
	for i := 0; i < len(t); i++ {
		for j := 0; j < len(t[i]); j++ {
			if math.Abs(t[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityTransform = Identity()

// IsIdentity returns true if the transform is (within epsilon) the identity.
func (t AffineTransform) IsIdentity() bool {
	return t.Equals(identityTransform)
}

// Row returns the indiced row of the transform.
func (t AffineTransform) Row(rowIndex int) [4]float64 {
	return t[rowIndex]
}

// Column returns the indiced column of the transform.
func (t AffineTransform) Column(columnIndex int) [4]float64 {
	return [4]float64{t[0][columnIndex], t[1][columnIndex], t[2][columnIndex], t[3][columnIndex]}
}

// Translation returns the translation component (the last column) of the transform.
func (t AffineTransform) Translation() Vector {
	return Vector{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

func (t AffineTransform) String() string {
	s := "{"
	for i, y := range t {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(t)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// IsZero returns true if the transform is zero'd out (all values are 0), as an unset AffineTransform field is.
func (t AffineTransform) IsZero() bool {
	for i := 0; i < len(t); i++ {
		for j := 0; j < len(t[i]); j++ {
			if t[i][j] != 0 {
				return false
			}
		}
	}
	return true
}
