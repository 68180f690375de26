package image3d

import "math"

// BoundingBox represents an axis-aligned box spanning from Min to Max. The zero-extent "empty" box (see NewEmptyBoundingBox)
// has Min greater than Max on every axis, so extending it by any point yields a box around exactly that point.
type BoundingBox struct {
	Min, Max Vector
}

// NewEmptyBoundingBox returns an inverted, empty BoundingBox that any call to Extend will snap to.
func NewEmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		Max: Vector{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
	}
}

// BoundsOf returns the BoundingBox around every vertex of the polygons provided. With no vertices, the box is empty.
func BoundsOf(polygons []Polygon) BoundingBox {
	box := NewEmptyBoundingBox()
	for _, p := range polygons {
		for _, v := range p.Vertices {
			box = box.Extend(v)
		}
	}
	return box
}

// Extend returns a copy of the BoundingBox grown to include the point given.
func (box BoundingBox) Extend(point Vector) BoundingBox {

	if box.Min.X > point.X {
		box.Min.X = point.X
	}

	if box.Min.Y > point.Y {
		box.Min.Y = point.Y
	}

	if box.Min.Z > point.Z {
		box.Min.Z = point.Z
	}

	if box.Max.X < point.X {
		box.Max.X = point.X
	}

	if box.Max.Y < point.Y {
		box.Max.Y = point.Y
	}

	if box.Max.Z < point.Z {
		box.Max.Z = point.Z
	}

	return box

}

// IsEmpty returns true if the box has never been extended.
func (box BoundingBox) IsEmpty() bool {
	return box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z
}

// Width returns the extent of the box along X.
func (box BoundingBox) Width() float64 {
	return box.Max.X - box.Min.X
}

// Height returns the extent of the box along Y.
func (box BoundingBox) Height() float64 {
	return box.Max.Y - box.Min.Y
}

// Depth returns the extent of the box along Z.
func (box BoundingBox) Depth() float64 {
	return box.Max.Z - box.Min.Z
}

// Center returns the point halfway between Min and Max.
func (box BoundingBox) Center() Vector {
	return box.Min.Add(box.Max).Scale(0.5)
}

// Pad returns a copy of the box grown by dx on both X sides and dy on both Y sides.
func (box BoundingBox) Pad(dx, dy float64) BoundingBox {
	box.Min.X -= dx
	box.Max.X += dx
	box.Min.Y -= dy
	box.Max.Y += dy
	return box
}
