package image3d

import (
	"math"
	"time"
)

// Orientation is the fixed axonometric re-orientation applied to every mesh before any user rotation: no turn in the XY
// plane, followed by a quarter turn in the YZ plane, which stands the polar axis up on screen.
var Orientation = Chain(
	Rotate(0, AxisX, AxisY),
	Rotate(math.Pi/2, AxisY, AxisZ),
)

// Pipeline turns a Mesh and an InteractionState into the ordered list of screen-space polygons to draw. It holds no
// per-frame state; Render is a pure function of its arguments, and one Pipeline may be reused for any number of frames.
type Pipeline struct {
	Config      Config
	Orientation AffineTransform
}

// NewPipeline creates a new Pipeline rendering according to the configuration given.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		Config:      cfg,
		Orientation: Orientation,
	}
}

// FrameStats reports on a rendered frame.
type FrameStats struct {
	Polygons int
	Filled   bool
	Duration time.Duration
}

// ModelTransform returns the orientation and interactive rotation composed into one transform, which is what Render
// applies to every vertex of the mesh.
func (p *Pipeline) ModelTransform(state InteractionState) AffineTransform {

	var rotation AffineTransform

	switch p.Config.RotationMode {
	case RotationAngle:
		rotation = RotatePlane(state.Angle, p.Config.Plane())
	default:
		rotation = state.Rotation
		if rotation.IsZero() {
			rotation = Identity()
		}
	}

	return p.Orientation.ComposeWith(rotation)

}

// ScreenTransform returns the fixed-center screen mapping for a canvas of the given size: the origin moves to the canvas
// center, then the zoom scales around the center, then the pan offset is added.
func (p *Pipeline) ScreenTransform(state InteractionState, width, height float64) AffineTransform {

	cx, cy := width/2, height/2

	return Chain(
		Translate(cx, cy, 0),
		ZoomTransform(state.Zoom, cx, cy),
		PanTransform(state.PanX, state.PanY),
	)

}

// ZoomTransform scales uniformly by zoom around the point (cx, cy, 0), which it leaves in place. Zoom factors are clamped
// to [MinZoom, MaxZoom].
func ZoomTransform(zoom, cx, cy float64) AffineTransform {
	zoom = clampZoom(zoom)
	return Chain(
		Translate(-cx, -cy, 0),
		Scale(zoom, zoom, zoom),
		Translate(cx, cy, 0),
	)
}

// PanTransform is a pure screen-space translation by (dx, dy).
func PanTransform(dx, dy float64) AffineTransform {
	return Translate(dx, dy, 0)
}

// AutoFitTransform maps the padded 2D bounds of the polygons onto [0, width] x [0, height], flipping Y so that world-up is
// screen-up and flattening Z to 0. The bounds are padded by 0.5*radius horizontally and 0.1*radius vertically. An extent
// of zero maps to the middle of the canvas on that axis.
func AutoFitTransform(polygons []Polygon, radius, width, height float64) AffineTransform {

	box := BoundsOf(polygons)
	if box.IsEmpty() {
		return AffineTransform{
			{0, 0, 0, width / 2},
			{0, 0, 0, height / 2},
			{0, 0, 0, 0},
			{0, 0, 0, 1},
		}
	}

	box = box.Pad(0.5*radius, 0.1*radius)

	sx, tx := 0.0, width/2
	if w := box.Width(); w > 0 {
		sx = width / w
		tx = -box.Min.X * sx
	}

	sy, ty := 0.0, height/2
	if h := box.Height(); h > 0 {
		sy = -height / h
		ty = height - box.Min.Y*sy
	}

	return AffineTransform{
		{sx, 0, 0, tx},
		{0, sy, 0, ty},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	}

}

// Foreshorten approximates perspective without a projective transform: with the eye at zUser = 3*radius and the screen
// plane at zScreen = 1.5*radius, x and y are multiplied by (zUser-zScreen)/(zUser-z) and z is shifted by -zScreen.
// A point level with the eye keeps its x and y.
func Foreshorten(polygon Polygon, radius float64) Polygon {

	zUser := 3 * radius
	zScreen := 1.5 * radius

	vertices := make([]Vector, len(polygon.Vertices))

	for i, v := range polygon.Vertices {
		coeff := 1.0
		if d := zUser - v.Z; d != 0 {
			coeff = (zUser - zScreen) / d
		}
		vertices[i] = Vector{X: v.X * coeff, Y: v.Y * coeff, Z: v.Z - zScreen}
	}

	return Polygon{Vertices: vertices}

}

// Render runs the full pipeline over the mesh: orientation and interactive rotation (one composed transform), optional
// foreshortening, depth sorting, and screen mapping. The mesh is not modified.
func (p *Pipeline) Render(mesh Mesh, state InteractionState, width, height float64) []Polygon2D {

	model := p.ModelTransform(state)
	polygons := p.mapPolygons(mesh.Polygons, model.ApplyPolygon)

	if p.Config.Foreshortening {
		radius := mesh.Radius
		polygons = p.mapPolygons(polygons, func(polygon Polygon) Polygon {
			return Foreshorten(polygon, radius)
		})
	}

	polygons = SortByDepth(polygons)

	depths := make([]float64, len(polygons))
	for i, polygon := range polygons {
		depths[i] = polygon.DepthSum()
	}

	autoFit := p.Config.ScreenPolicy == ScreenAutoFit

	var screen AffineTransform
	if autoFit {
		screen = AutoFitTransform(polygons, mesh.Radius, width, height)
	} else {
		screen = p.ScreenTransform(state, width, height)
	}

	polygons = p.mapPolygons(polygons, screen.ApplyPolygon)

	out := make([]Polygon2D, len(polygons))
	for i, polygon := range polygons {
		points := polygon.Points()
		if autoFit {
			// Rounding in the fit can overshoot the canvas edge by an ulp or so.
			for j := range points {
				points[j].X = clamp(points[j].X, 0, width)
				points[j].Y = clamp(points[j].Y, 0, height)
			}
		}
		out[i] = Polygon2D{Points: points, Depth: depths[i]}
	}

	return out

}

// Draw clears the sink and emits the polygons in order, stroking each one and also filling it if fill is true.
func Draw(sink Sink, polygons []Polygon2D, fill bool, width, height float64) {
	sink.Clear(width, height)
	for _, polygon := range polygons {
		sink.StrokePolygon(polygon.Points)
		if fill {
			sink.FillPolygon(polygon.Points)
		}
	}
}

// Frame renders the mesh and draws the result to the sink in one go.
func (p *Pipeline) Frame(mesh Mesh, state InteractionState, width, height float64, sink Sink) FrameStats {
	start := time.Now()
	polygons := p.Render(mesh, state, width, height)
	Draw(sink, polygons, state.FillEnabled, width, height)
	return FrameStats{
		Polygons: len(polygons),
		Filled:   state.FillEnabled,
		Duration: time.Since(start),
	}
}
