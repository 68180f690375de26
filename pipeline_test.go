package image3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkRender(b *testing.B) {

	b.ReportAllocs()

	pipeline := NewPipeline(DefaultConfig())
	mesh := GenerateMesh(200, 30, 30)
	state := NewInteractionState()

	for i := 0; i < b.N; i++ {
		pipeline.Render(mesh, state, 960, 720)
	}

}

func BenchmarkRenderParallel(b *testing.B) {

	b.ReportAllocs()

	cfg := DefaultConfig()
	cfg.Parallelism = 4
	pipeline := NewPipeline(cfg)
	mesh := GenerateMesh(200, 60, 60)
	state := NewInteractionState()

	for i := 0; i < b.N; i++ {
		pipeline.Render(mesh, state, 960, 720)
	}

}

func TestOrientation(t *testing.T) {
	// The polar axis (Z) ends up along -Y in world space, which is screen-up once mapped.
	assertVector(t, NewVector(0, -1, 0), Orientation.Apply(NewVector(0, 0, 1)))
	assertVector(t, NewVector(1, 0, 0), Orientation.Apply(NewVector(1, 0, 0)))
}

func TestZoomFixedPoint(t *testing.T) {

	center := NewVector(480, 360, 0)

	for _, zoom := range []float64{MinZoom, 0.01, 0.5, 1, 1.05, 3, 1000} {
		assertVector(t, center, ZoomTransform(zoom, center.X, center.Y).Apply(center), "zoom %v moved the center", zoom)
	}

	// The center stays put through the full fixed-center mapping too, as long as there's no pan.
	pipeline := NewPipeline(DefaultConfig())
	state := NewInteractionState()
	state.Zoom = 2.5
	assertVector(t, center, pipeline.ScreenTransform(state, 960, 720).Apply(NewVectorZero()))

	// Zoom scales distances from the center.
	assertVector(t, NewVector(480+20, 360, 0), ZoomTransform(2, 480, 360).Apply(NewVector(490, 360, 0)))

}

func TestPanPurity(t *testing.T) {

	polygon := GenerateMesh(30, 4, 4).Polygons[5]
	panned := PanTransform(-73, 12.5).ApplyPolygon(polygon)

	for i := range polygon.Vertices {
		for j := range polygon.Vertices {
			assert.InDelta(t,
				polygon.Vertices[i].Distance(polygon.Vertices[j]),
				panned.Vertices[i].Distance(panned.Vertices[j]),
				tolerance,
			)
		}
		assert.InDelta(t, polygon.Vertices[i].Z, panned.Vertices[i].Z, tolerance)
	}

}

func TestFixedCenterMapping(t *testing.T) {

	pipeline := NewPipeline(DefaultConfig())
	state := NewInteractionState()
	state.Zoom = 2
	state.PanX, state.PanY = 10, -20

	// World (5, 5) -> centered (485, 365) -> zoomed (490, 370) -> panned (500, 350).
	assertVector(t, NewVector(500, 350, 0), pipeline.ScreenTransform(state, 960, 720).Apply(NewVector(5, 5, 0)))

}

func TestAutoFitContainment(t *testing.T) {

	cfg := DefaultConfig()
	cfg.ScreenPolicy = ScreenAutoFit

	for _, foreshorten := range []bool{false, true} {

		cfg.Foreshortening = foreshorten
		pipeline := NewPipeline(cfg)
		mesh := GenerateMesh(cfg.RadiusFor(640, 480), 12, 12)

		state := NewInteractionState()
		state = ApplyIntent(cfg, state, RotatePositive)
		state = ApplyIntent(cfg, state, ZoomIn)
		state = ApplyIntent(cfg, state, PanLeft)

		polygons := pipeline.Render(mesh, state, 640, 480)
		require.NotEmpty(t, polygons)

		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, p := range polygons {
			for _, pt := range p.Points {
				assert.True(t, pt.X >= 0 && pt.X <= 640, "x %v out of canvas", pt.X)
				assert.True(t, pt.Y >= 0 && pt.Y <= 480, "y %v out of canvas", pt.Y)
				minX = math.Min(minX, pt.X)
				maxX = math.Max(maxX, pt.X)
			}
		}

		// The padding keeps the geometry off the canvas edges.
		assert.Greater(t, minX, 0.0)
		assert.Less(t, maxX, 640.0)

	}

}

func TestAutoFitDegenerateExtent(t *testing.T) {

	line := []Polygon{NewPolygon(NewVector(-5, 0, 0), NewVector(5, 0, 0), NewVector(0, 0, 0))}
	tf := AutoFitTransform(line, 0, 100, 50)

	p := tf.Apply(NewVector(3, 0, 7))
	assert.InDelta(t, 25.0, p.Y, tolerance, "a zero-height box maps to the middle row")
	assert.Equal(t, 0.0, p.Z)

	empty := AutoFitTransform(nil, 10, 100, 50)
	assertVector(t, NewVector(50, 25, 0), empty.Apply(NewVector(1, 2, 3)))

}

func TestForeshorten(t *testing.T) {

	radius := 10.0
	polygon := NewPolygon(NewVector(4, 4, 0), NewVector(4, 4, 15), NewVector(4, 4, 30), NewVector(4, 4, -15))
	out := Foreshorten(polygon, radius)

	// z = 0: coefficient (30 - 15) / 30.
	assertVector(t, NewVector(2, 2, -15), out.Vertices[0])
	// z = zScreen: coefficient 1.
	assertVector(t, NewVector(4, 4, 0), out.Vertices[1])
	// z = zUser: guarded, coefficient 1.
	assertVector(t, NewVector(4, 4, 15), out.Vertices[2])
	// Farther away shrinks.
	assertVector(t, NewVector(4.0/3, 4.0/3, -30), out.Vertices[3])

}

func TestRenderSortsAndKeepsMesh(t *testing.T) {

	pipeline := NewPipeline(DefaultConfig())
	mesh := GenerateMesh(100, 10, 10)
	before := mesh.Clone()

	state := NewInteractionState()
	state = ApplyIntent(pipeline.Config, state, RotatePositive)

	polygons := pipeline.Render(mesh, state, 800, 600)

	require.Len(t, polygons, len(mesh.Polygons))
	for i := 1; i < len(polygons); i++ {
		assert.LessOrEqual(t, polygons[i-1].Depth, polygons[i].Depth)
	}

	assert.Equal(t, before, mesh, "Render must not modify the base mesh")

}

func TestParallelMatchesSequential(t *testing.T) {

	cfg := DefaultConfig()
	cfg.Foreshortening = true
	sequential := NewPipeline(cfg)

	cfg.Parallelism = 7
	parallel := NewPipeline(cfg)

	mesh := GenerateMesh(150, 40, 40)
	require.Greater(t, len(mesh.Polygons), minParallelPolygons)

	state := NewInteractionState()
	state = ApplyIntent(cfg, state, SelectPlane(PlaneXZ))
	state = ApplyIntent(cfg, state, RotateNegative)

	assert.Equal(t, sequential.Render(mesh, state, 960, 720), parallel.Render(mesh, state, 960, 720))

}

func TestParallelPanicReachesCaller(t *testing.T) {

	cfg := DefaultConfig()
	cfg.Parallelism = 4
	pipeline := NewPipeline(cfg)
	mesh := GenerateMesh(100, 30, 30)

	assert.PanicsWithError(t, "transforming polygons 0 to 241: bad vertex", func() {
		pipeline.mapPolygons(mesh.Polygons, func(polygon Polygon) Polygon {
			if len(polygon.Vertices) > 0 && polygon.Vertices[0] == mesh.Polygons[0].Vertices[0] {
				panic("bad vertex")
			}
			return polygon
		})
	})

}

func TestRotationModes(t *testing.T) {

	mesh := GenerateMesh(100, 6, 6)

	matrixCfg := DefaultConfig()
	angleCfg := DefaultConfig()
	angleCfg.RotationMode = RotationAngle

	state := NewInteractionState()
	for i := 0; i < 3; i++ {
		state = ApplyIntent(matrixCfg, state, RotatePositive)
	}

	// With a single plane in play, accumulating the matrix and accumulating the angle agree.
	assert.True(t, NewPipeline(matrixCfg).ModelTransform(state).Equals(NewPipeline(angleCfg).ModelTransform(state)))

	// A zero rotation (an InteractionState built by hand) counts as none.
	bare := InteractionState{Zoom: 1}
	assert.True(t, NewPipeline(matrixCfg).ModelTransform(bare).Equals(Orientation))

	degenerateCfg := DefaultConfig()
	degenerateCfg.RotationMode = RotationDegenerate
	degenerate := NewInteractionState()
	for i := 0; i < 9; i++ {
		degenerate = ApplyIntent(degenerateCfg, degenerate, RotatePositive)
	}
	// Nine 10 degree steps scale X and Y by cos(10 deg)^9 instead of turning them.
	scale := math.Pow(math.Cos(ToRadians(10)), 9)
	assert.InDelta(t, scale, degenerate.Rotation[0][0], tolerance)
	assert.InDelta(t, 0.0, degenerate.Rotation[0][1], tolerance)

	assert.NotPanics(t, func() { NewPipeline(degenerateCfg).Render(mesh, degenerate, 640, 480) })

}

func TestAnglePlaneIsFixed(t *testing.T) {

	cfg := DefaultConfig()
	cfg.RotationMode = RotationAngle
	pipeline := NewPipeline(cfg)

	state := NewInteractionState()
	for i := 0; i < 9; i++ {
		state = ApplyIntent(cfg, state, RotatePositive)
	}
	before := pipeline.ModelTransform(state)

	// Switching planes only changes where later steps go; the accumulated angle stays in the configured plane.
	for _, plane := range []RotationPlane{PlaneYZ, PlaneXZ, PlaneXY} {
		state = ApplyIntent(cfg, state, SelectPlane(plane))
		assert.True(t, pipeline.ModelTransform(state).Equals(before), "selecting %v moved the mesh", plane)
	}

	assert.True(t, before.Equals(Orientation.ComposeWith(Rotate(math.Pi/2, AxisX, AxisY))))

	cfg.AnglePlane = "yz"
	yz := NewPipeline(cfg).ModelTransform(state)
	assert.True(t, yz.Equals(Orientation.ComposeWith(Rotate(math.Pi/2, AxisY, AxisZ))))

}

func TestZoomClampedAtBothEnds(t *testing.T) {

	cfg := DefaultConfig()
	pipeline := NewPipeline(cfg)

	state := NewInteractionState()
	for i := 0; i < 15000; i++ {
		state = ApplyIntent(cfg, state, ZoomIn)
	}
	assert.Equal(t, MaxZoom, state.Zoom)

	for _, polygon := range pipeline.Render(GenerateMesh(100, 4, 4), state, 640, 480) {
		for _, p := range polygon.Points {
			assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0), "x of %v", p)
			assert.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0), "y of %v", p)
		}
	}

	assert.True(t, ZoomTransform(math.Inf(1), 0, 0).Equals(Scale(MaxZoom, MaxZoom, MaxZoom)))
	assert.True(t, ZoomTransform(0, 0, 0).Equals(Scale(MinZoom, MinZoom, MinZoom)))

}

func TestDrawOrder(t *testing.T) {

	polygons := []Polygon2D{
		{Points: []Point2{{0, 0}, {1, 0}, {1, 1}}},
		{Points: []Point2{{2, 2}, {3, 2}, {3, 3}}},
	}

	sink := NewRecordingSink()
	Draw(sink, polygons, true, 10, 20)

	require.Len(t, sink.Calls, 5)
	assert.Equal(t, SinkCall{Kind: SinkClear, Width: 10, Height: 20}, sink.Calls[0])
	assert.Equal(t, SinkStroke, sink.Calls[1].Kind)
	assert.Equal(t, SinkFill, sink.Calls[2].Kind)
	assert.Equal(t, polygons[0].Points, sink.Calls[2].Points)
	assert.Equal(t, SinkStroke, sink.Calls[3].Kind)
	assert.Equal(t, polygons[1].Points, sink.Calls[4].Points)

	sink.Reset()
	Draw(sink, polygons, false, 10, 20)
	assert.Equal(t, 2, sink.Count(SinkStroke))
	assert.Equal(t, 0, sink.Count(SinkFill))

	sink.Reset()
	Draw(sink, nil, true, 10, 20)
	assert.Equal(t, 1, sink.Count(SinkClear))
	assert.Len(t, sink.Calls, 1)

}

func TestFrameStats(t *testing.T) {

	pipeline := NewPipeline(DefaultConfig())
	mesh := GenerateMesh(100, 5, 5)
	sink := NewRecordingSink()

	stats := pipeline.Frame(mesh, NewInteractionState(), 640, 480, sink)

	assert.Equal(t, len(mesh.Polygons), stats.Polygons)
	assert.True(t, stats.Filled)
	assert.Equal(t, len(mesh.Polygons), sink.Count(SinkStroke))
	assert.Equal(t, len(mesh.Polygons), sink.Count(SinkFill))

}
