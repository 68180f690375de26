package image3d

import (
	"fmt"
	"math"
	"strings"
)

// Axis indexes one of the three spatial rows / columns of an AffineTransform.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// RotationPlane is the plane, spanned by two axes, that interactive rotation happens in.
type RotationPlane int

const (
	PlaneXY RotationPlane = iota // Rotation in the XY plane (around Z)
	PlaneXZ                      // Rotation in the XZ plane (around Y)
	PlaneYZ                      // Rotation in the YZ plane (around X)
)

// Axes returns the two axes spanning the plane, in ascending order.
func (p RotationPlane) Axes() (Axis, Axis) {
	switch p {
	case PlaneXZ:
		return AxisX, AxisZ
	case PlaneYZ:
		return AxisY, AxisZ
	}
	return AxisX, AxisY
}

func (p RotationPlane) String() string {
	a, b := p.Axes()
	return a.String() + b.String()
}

// ParsePlane parses a plane by its axis names, in either case ("xy", "XZ", "yz"). The empty string is PlaneXY.
func ParsePlane(name string) (RotationPlane, bool) {
	if name == "" {
		return PlaneXY, true
	}
	for _, p := range []RotationPlane{PlaneXY, PlaneXZ, PlaneYZ} {
		if strings.EqualFold(p.String(), name) {
			return p, true
		}
	}
	return PlaneXY, false
}

// Translate returns the identity transform with the last column's first three rows set to dx, dy, and dz.
func Translate(dx, dy, dz float64) AffineTransform {
	t := Identity()
	t[AxisX][3] = dx
	t[AxisY][3] = dy
	t[AxisZ][3] = dz
	return t
}

// Scale returns a transform scaling each axis by kx, ky, and kz. 1, 1, 1 is the identity.
func Scale(kx, ky, kz float64) AffineTransform {
	t := Identity()
	t[AxisX][AxisX] = kx
	t[AxisY][AxisY] = ky
	t[AxisZ][AxisZ] = kz
	return t
}

// Rotate returns a transform rotating by angle (in radians) in the plane spanned by the two axes given. The axes are ordered
// so that a < b, after which the 2D rotation block is written into the identity; rotating (1, 0, 0) by Pi/2 in the XY plane
// gives (0, 1, 0).
func Rotate(angle float64, a, b Axis) AffineTransform {
	a, b = orderAxes(a, b)
	s, c := math.Sincos(angle)
	t := Identity()
	t[a][a] = c
	t[a][b] = -s
	t[b][a] = s
	t[b][b] = c
	return t
}

// RotatePlane is a convenience for Rotate(angle, plane.Axes()).
func RotatePlane(angle float64, plane RotationPlane) AffineTransform {
	a, b := plane.Axes()
	return Rotate(angle, a, b)
}

// RotateDegenerate builds the rotation block by multiplying the identity's cells instead of assigning them. Since the
// off-diagonal cells of the identity are 0, they stay 0, and the result is a per-axis rescale by cos(angle) rather than a
// rotation. This reproduces the distorted look of earlier releases of the viewer and is only used when the
// "degenerate" rotation mode is configured.
func RotateDegenerate(angle float64, a, b Axis) AffineTransform {
	a, b = orderAxes(a, b)
	s, c := math.Sincos(angle)
	t := Identity()
	t[a][a] *= c
	t[a][b] *= -s
	t[b][a] *= s
	t[b][b] *= c
	return t
}

func orderAxes(a, b Axis) (Axis, Axis) {
	if a < AxisX || a > AxisZ || b < AxisX || b > AxisZ {
		panic(fmt.Sprintf("image3d: invalid rotation axes %s, %s", a, b))
	}
	if a == b {
		panic(fmt.Sprintf("image3d: rotation plane needs two distinct axes, got %s twice", a))
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// Chain composes the transforms given from left to right, so that they apply in the order listed:
// Chain(t1, t2, t3).Apply(p) == t3.Apply(t2.Apply(t1.Apply(p))). Chain() returns the identity.
func Chain(transforms ...AffineTransform) AffineTransform {
	result := Identity()
	for _, t := range transforms {
		result = result.ComposeWith(t)
	}
	return result
}
