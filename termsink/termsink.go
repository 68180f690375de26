// Package termsink draws frames into the cells of a tcell.Screen.
package termsink

import (
	"image"

	"github.com/anastasia/image3d"
	"github.com/anastasia/image3d/scanline"
	"github.com/gdamore/tcell/v2"
)

const (
	StrokeRune = '*'
	FillRune   = ' '
)

// Sink is an image3d.Sink drawing onto a tcell.Screen. The canvas passed to Clear is stretched over the whole screen, so a
// canvas of cols x rows*2 keeps the sphere round on terminals whose cells are about twice as tall as wide.
//
// Sink does not call Show; the host does once the frame is complete.
type Sink struct {
	Screen tcell.Screen

	strokeStyle, fillStyle, backgroundStyle tcell.Style

	scaleX, scaleY float64
	cols, rows     int

	// Cells of the most recent outline; the fill that follows it leaves them alone.
	outline map[[2]int]struct{}
}

// New creates a Sink drawing to the screen given, in the colors of the configuration given.
func New(screen tcell.Screen, cfg image3d.Config) *Sink {
	stroke, fill, background := cfg.Colors()
	return &Sink{
		Screen:          screen,
		strokeStyle:     tcell.StyleDefault.Foreground(tcellColor(stroke)).Background(tcellColor(fill)),
		fillStyle:       tcell.StyleDefault.Background(tcellColor(fill)),
		backgroundStyle: tcell.StyleDefault.Background(tcellColor(background)),
		scaleX:          1,
		scaleY:          1,
		outline:         map[[2]int]struct{}{},
	}
}

func tcellColor(c image3d.Color) tcell.Color {
	n := c.ToNRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func (s *Sink) Clear(width, height float64) {
	s.cols, s.rows = s.Screen.Size()
	s.scaleX, s.scaleY = 1, 1
	if width > 0 {
		s.scaleX = float64(s.cols) / width
	}
	if height > 0 {
		s.scaleY = float64(s.rows) / height
	}
	s.Screen.Fill(' ', s.backgroundStyle)
}

func (s *Sink) toCells(points []image3d.Point2) []image3d.Point2 {
	cells := make([]image3d.Point2, len(points))
	for i, p := range points {
		cells[i] = image3d.Point2{X: p.X * s.scaleX, Y: p.Y * s.scaleY}
	}
	return cells
}

func (s *Sink) bounds() image.Rectangle {
	return image.Rect(0, 0, s.cols, s.rows)
}

func (s *Sink) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.Screen.SetContent(x, y, r, nil, style)
}

func (s *Sink) StrokePolygon(points []image3d.Point2) {
	clear(s.outline)
	scanline.Outline(s.toCells(points), s.bounds(), func(x, y int) {
		s.outline[[2]int{x, y}] = struct{}{}
		s.set(x, y, StrokeRune, s.strokeStyle)
	})
}

func (s *Sink) FillPolygon(points []image3d.Point2) {
	scanline.Fill(s.toCells(points), s.bounds(), func(x, y int) {
		if _, ok := s.outline[[2]int{x, y}]; ok {
			return
		}
		s.set(x, y, FillRune, s.fillStyle)
	})
}

// DrawText writes a line of text at the cell given, in the stroke color.
func (s *Sink) DrawText(x, y int, text string) {
	for i, r := range text {
		s.set(x+i, y, r, s.strokeStyle)
	}
}
