// Package scanline rasterizes outlines and filled polygons onto integer grids through a plot callback. The terminal and
// microcontroller display sinks share it; neither backend has a path rasterizer of its own.
package scanline

import (
	"image"
	"math"
	"sort"

	"github.com/anastasia/image3d"
)

// Line plots every cell of the line from (x0, y0) to (x1, y1), both ends included, using Bresenham's algorithm.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}

}

// Outline plots the closed outline through the points, rounding each point to the nearest cell. Every edge is clipped to
// the clip rectangle first, so only cells inside it are visited however far the points reach.
func Outline(points []image3d.Point2, clip image.Rectangle, plot func(x, y int)) {
	if len(points) == 0 || clip.Empty() {
		return
	}
	minX, minY := float64(clip.Min.X), float64(clip.Min.Y)
	maxX, maxY := float64(clip.Max.X-1), float64(clip.Max.Y-1)
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		x0, y0, x1, y1, ok := ClipSegment(a.X, a.Y, b.X, b.Y, minX, minY, maxX, maxY)
		if !ok {
			continue
		}
		Line(round(x0), round(y0), round(x1), round(y1), plot)
	}
}

// ClipSegment clips the segment from (x0, y0) to (x1, y1) to the box [minX, maxX] x [minY, maxY] (Liang-Barsky). It
// returns false if no part of the segment lies in the box, or if any coordinate is NaN.
func ClipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {

	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return 0, 0, 0, 0, false
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true

}

// Fill plots every cell of the clip rectangle whose center lies inside the polygon, using the even-odd rule. Degenerate
// polygons (fewer than three points, zero area, or non-finite coordinates) plot nothing.
func Fill(points []image3d.Point2, clip image.Rectangle, plot func(x, y int)) {

	if len(points) < 3 || clip.Empty() {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return
		}
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Bounds are narrowed in floating point before converting, so huge coordinates never overflow an int.
	yStart := int(math.Max(math.Floor(minY), float64(clip.Min.Y)))
	yEnd := int(math.Min(math.Ceil(maxY), float64(clip.Max.Y-1)))
	xMin, xMax := float64(clip.Min.X), float64(clip.Max.X-1)

	crossings := make([]float64, 0, len(points))

	for y := yStart; y <= yEnd; y++ {

		sampleY := float64(y) + 0.5
		crossings = crossings[:0]

		for i := range points {
			p1 := points[i]
			p2 := points[(i+1)%len(points)]
			if (p1.Y <= sampleY && p2.Y > sampleY) || (p2.Y <= sampleY && p1.Y > sampleY) {
				crossings = append(crossings, p1.X+(sampleY-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}

		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			start := math.Max(math.Ceil(crossings[i]-0.5), xMin)
			end := math.Min(math.Floor(crossings[i+1]-0.5), xMax)
			for x := int(start); x <= int(end) && start <= end; x++ {
				plot(x, y)
			}
		}

	}

}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
