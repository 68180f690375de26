package image3d

import "math"

// Mesh is an unordered collection of Polygons covering a tessellated surface, along with the radius it was generated with
// (the pipeline sizes its foreshortening and auto-fit padding from it).
// A Mesh is treated as read-only once generated; pipeline runs work on transformed copies.
type Mesh struct {
	Polygons []Polygon
	Radius   float64
}

// GenerateMesh tessellates a sphere of the given radius into quads. alpha runs over [0, Pi) in max(nAlpha+1, 1) steps and beta
// over [0, 2*Pi) in max(nBeta+1, 1) steps, and each (alpha, beta) cell emits one quad with the corners (alpha, beta),
// (alpha, beta+dBeta), (alpha+dAlpha, beta+dBeta), (alpha+dAlpha, beta), in that order.
//
// Points are "polarized": the upper hemisphere is pushed up by radius/2 and the lower one down by radius/2, which splits the
// sphere into two separate caps. Quads touching the poles have two coincident vertices; this is expected.
func GenerateMesh(radius float64, nAlpha, nBeta int) Mesh {

	rows := max(nAlpha+1, 1)
	cols := max(nBeta+1, 1)

	dAlpha := math.Pi / float64(rows)
	dBeta := 2 * math.Pi / float64(cols)

	mesh := Mesh{
		Polygons: make([]Polygon, 0, rows*cols),
		Radius:   radius,
	}

	for i := 0; i < rows; i++ {
		alpha := float64(i) * dAlpha
		nextAlpha := alpha + dAlpha

		for j := 0; j < cols; j++ {
			beta := float64(j) * dBeta
			nextBeta := beta + dBeta

			mesh.Polygons = append(mesh.Polygons, Polygon{Vertices: []Vector{
				spherePoint(radius, alpha, beta),
				spherePoint(radius, alpha, nextBeta),
				spherePoint(radius, nextAlpha, nextBeta),
				spherePoint(radius, nextAlpha, beta),
			}})
		}
	}

	return mesh

}

const equatorEpsilon = 1e-9

func spherePoint(radius, alpha, beta float64) Vector {
	sinAlpha, cosAlpha := math.Sincos(alpha)
	sinBeta, cosBeta := math.Sincos(beta)

	// cos(Pi/2) is not exactly 0 in floating point; the equator belongs to the lower cap.
	z := radius * cosAlpha
	if z > equatorEpsilon*math.Abs(radius) {
		z += radius / 2
	} else {
		z -= radius / 2
	}

	return Vector{
		X: radius * sinAlpha * cosBeta,
		Y: radius * sinAlpha * sinBeta,
		Z: z,
	}
}

// Clone returns a deep copy of the Mesh.
func (mesh Mesh) Clone() Mesh {
	polygons := make([]Polygon, len(mesh.Polygons))
	for i, p := range mesh.Polygons {
		polygons[i] = p.Clone()
	}
	return Mesh{Polygons: polygons, Radius: mesh.Radius}
}

// Transformed returns a copy of the Mesh with the transform applied to every vertex of every polygon.
func (mesh Mesh) Transformed(t AffineTransform) Mesh {
	polygons := make([]Polygon, len(mesh.Polygons))
	for i, p := range mesh.Polygons {
		polygons[i] = t.ApplyPolygon(p)
	}
	return Mesh{Polygons: polygons, Radius: mesh.Radius}
}

// VertexCount returns the total number of vertices across all polygons (shared corners are counted once per polygon).
func (mesh Mesh) VertexCount() int {
	count := 0
	for _, p := range mesh.Polygons {
		count += p.Len()
	}
	return count
}

// Bounds returns the 3D bounding box of the Mesh.
func (mesh Mesh) Bounds() BoundingBox {
	return BoundsOf(mesh.Polygons)
}
