package image3d

import "fmt"

// Polygon is an ordered, fixed-arity list of vertices. The order defines the outline used for stroking and filling,
// and it is preserved by every transform stage. The generated meshes use quads, but any arity of 3 or more works.
type Polygon struct {
	Vertices []Vector
}

// NewPolygon creates a new Polygon from the vertices given. Fewer than 3 vertices is a programming error and panics.
func NewPolygon(vertices ...Vector) Polygon {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("image3d: polygon needs at least 3 vertices, got %d", len(vertices)))
	}
	return Polygon{Vertices: append([]Vector(nil), vertices...)}
}

// PolygonFromAxes builds a Polygon out of per-axis coordinate arrays. The arrays must be of equal length (and at least 3
// long); mismatched arrays panic.
func PolygonFromAxes(xs, ys, zs []float64) Polygon {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		panic(fmt.Sprintf("image3d: mismatched vertex arrays (%d, %d, %d)", len(xs), len(ys), len(zs)))
	}
	vertices := make([]Vector, len(xs))
	for i := range xs {
		vertices[i] = Vector{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return NewPolygon(vertices...)
}

// Len returns the number of vertices in the Polygon.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// XPoints returns the X coordinates of the Polygon's vertices, in order.
func (p Polygon) XPoints() []float64 {
	xs := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		xs[i] = v.X
	}
	return xs
}

// YPoints returns the Y coordinates of the Polygon's vertices, in order.
func (p Polygon) YPoints() []float64 {
	ys := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		ys[i] = v.Y
	}
	return ys
}

// ZPoints returns the Z coordinates of the Polygon's vertices, in order.
func (p Polygon) ZPoints() []float64 {
	zs := make([]float64, len(p.Vertices))
	for i, v := range p.Vertices {
		zs[i] = v.Z
	}
	return zs
}

// DepthSum returns the sum of the Z coordinates of the Polygon's vertices; this is the depth metric used for sorting.
func (p Polygon) DepthSum() float64 {
	sum := 0.0
	for _, v := range p.Vertices {
		sum += v.Z
	}
	return sum
}

// Clone returns a deep copy of the Polygon.
func (p Polygon) Clone() Polygon {
	return Polygon{Vertices: append([]Vector(nil), p.Vertices...)}
}

// Transformed returns a copy of the Polygon with the transform applied to every vertex.
func (p Polygon) Transformed(t AffineTransform) Polygon {
	return t.ApplyPolygon(p)
}

// Points returns the Polygon's vertices projected onto the screen plane (Z dropped).
func (p Polygon) Points() []Point2 {
	points := make([]Point2, len(p.Vertices))
	for i, v := range p.Vertices {
		points[i] = v.XY()
	}
	return points
}

// Polygon2D is a screen-mapped polygon ready to be handed to a Sink.
type Polygon2D struct {
	Points []Point2
	Depth  float64 // Summed Z the polygon was sorted by
}
