package image3d

import (
	"math"
	"strconv"
)

// VecX represents a unit vector along the world X axis.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector along the world Y axis.
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector along the world Z axis.
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D point or direction in world units. Vectors are plain values; any Vector function that
// alters the Vector returns a modified copy, so method-chaining is cheap and the receiver is never touched.
// The homogeneous fourth coordinate (1) is implicit and only appears when an AffineTransform is applied.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector with each component multiplied by the scalar provided.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Equals returns true if each component of the Vector is within a small epsilon of the other Vector's.
func (vec Vector) Equals(other Vector) bool {
	eps := 1e-9
	return math.Abs(vec.X-other.X) <= eps &&
		math.Abs(vec.Y-other.Y) <= eps &&
		math.Abs(vec.Z-other.Z) <= eps
}

// IsZero returns true if all components are 0.
func (vec Vector) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// XY drops the Z component, returning the Vector as a screen-space Point2.
func (vec Vector) XY() Point2 {
	return Point2{X: vec.X, Y: vec.Y}
}

func (vec Vector) String() string {
	return "{" + strconv.FormatFloat(vec.X, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Y, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Z, 'f', -1, 64) + "}"
}

// Point2 is a 2D point on the drawing surface, in canvas pixels (Y grows downwards).
type Point2 struct {
	X, Y float64
}
