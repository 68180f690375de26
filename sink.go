package image3d

import "errors"

// ErrEmptyFrame is returned when a sink is asked for its output before anything was drawn.
var ErrEmptyFrame = errors.New("nothing has been drawn yet")

// Sink is a drawing surface the pipeline emits polygons to. Polygons arrive in painting order (farthest first), and may be
// degenerate (coincident vertices, zero area); implementations must draw those without failing.
type Sink interface {
	// Clear wipes the surface, which is width x height pixels, ahead of a new frame.
	Clear(width, height float64)
	// StrokePolygon draws the closed outline through the points, in order.
	StrokePolygon(points []Point2)
	// FillPolygon fills the interior of the closed outline through the points.
	FillPolygon(points []Point2)
}

// SinkCallKind identifies a recorded Sink call.
type SinkCallKind int

const (
	SinkClear SinkCallKind = iota
	SinkStroke
	SinkFill
)

func (k SinkCallKind) String() string {
	switch k {
	case SinkClear:
		return "clear"
	case SinkStroke:
		return "stroke"
	case SinkFill:
		return "fill"
	}
	return "unknown"
}

// SinkCall is one recorded call to a RecordingSink.
type SinkCall struct {
	Kind          SinkCallKind
	Width, Height float64  // Set for SinkClear
	Points        []Point2 // Set for SinkStroke and SinkFill
}

// RecordingSink is a Sink that remembers every call made to it, in order. It is used for headless rendering and tests.
type RecordingSink struct {
	Calls []SinkCall
}

// NewRecordingSink creates a new, empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (r *RecordingSink) Clear(width, height float64) {
	r.Calls = append(r.Calls, SinkCall{Kind: SinkClear, Width: width, Height: height})
}

func (r *RecordingSink) StrokePolygon(points []Point2) {
	r.Calls = append(r.Calls, SinkCall{Kind: SinkStroke, Points: append([]Point2(nil), points...)})
}

func (r *RecordingSink) FillPolygon(points []Point2) {
	r.Calls = append(r.Calls, SinkCall{Kind: SinkFill, Points: append([]Point2(nil), points...)})
}

// Count returns how many calls of the given kind were recorded.
func (r *RecordingSink) Count(kind SinkCallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets every recorded call.
func (r *RecordingSink) Reset() {
	r.Calls = r.Calls[:0]
}
