// Package ebitensink draws frames onto an offscreen *ebiten.Image, which the host then blits to the screen each tick.
package ebitensink

import (
	"image"
	"image/color"
	"strings"

	"github.com/anastasia/image3d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var whiteSubImage *ebiten.Image

func init() {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Sink is an image3d.Sink rendering into an offscreen ebiten image. The image is only redrawn when the pipeline runs, so
// the host can draw it every tick without re-running anything.
type Sink struct {
	Stroke, Fill, Background image3d.Color
	LineWidth                float32
	AntiAlias                bool

	target    *ebiten.Image
	path      vector.Path
	vertices  []ebiten.Vertex
	indices   []uint16
	triOpts   *ebiten.DrawTrianglesOptions
	textImage *ebiten.Image
}

// New creates a new Sink using the colors of the configuration given.
func New(cfg image3d.Config) *Sink {
	stroke, fill, background := cfg.Colors()
	return &Sink{
		Stroke:     stroke,
		Fill:       fill,
		Background: background,
		LineWidth:  1,
		AntiAlias:  true,
		triOpts: &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.EvenOdd,
			AntiAlias: true,
		},
	}
}

// SetColors swaps the sink's colors for those of the configuration given.
func (s *Sink) SetColors(cfg image3d.Config) {
	s.Stroke, s.Fill, s.Background = cfg.Colors()
}

// Image returns the offscreen image holding the last frame; it is nil until the first Clear.
func (s *Sink) Image() *ebiten.Image {
	return s.target
}

func (s *Sink) Clear(width, height float64) {
	w, h := int(width), int(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.target == nil || s.target.Bounds().Dx() != w || s.target.Bounds().Dy() != h {
		if s.target != nil {
			s.target.Deallocate()
		}
		s.target = ebiten.NewImage(w, h)
	}
	s.target.Fill(s.Background.ToNRGBA())
}

func (s *Sink) StrokePolygon(points []image3d.Point2) {
	if s.target == nil || len(points) < 2 {
		return
	}
	c := s.Stroke.ToNRGBA()
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.LineWidth, c, s.AntiAlias)
	}
}

func (s *Sink) FillPolygon(points []image3d.Point2) {

	if s.target == nil || len(points) < 3 {
		return
	}

	s.path.Reset()
	s.path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	s.path.Close()

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	r, g, b, a := s.Fill.ToRGBA64()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(r * a)
		s.vertices[i].ColorG = float32(g * a)
		s.vertices[i].ColorB = float32(b * a)
		s.vertices[i].ColorA = float32(a)
	}

	s.triOpts.AntiAlias = s.AntiAlias
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage, s.triOpts)

}

// DrawText draws text onto screen at the position given, with a one pixel shadow so it reads over any background.
func (s *Sink) DrawText(screen *ebiten.Image, txt string, x, y float64, clr image3d.Color) {

	size := text.BoundString(basicfont.Face7x13, txt).Size()
	lines := strings.Count(txt, "\n") + 1

	if s.textImage == nil || size.X > s.textImage.Bounds().Dx() || size.Y+13 > s.textImage.Bounds().Dy() {
		if s.textImage != nil {
			s.textImage.Deallocate()
		}
		s.textImage = ebiten.NewImage(size.X+1, max(size.Y, lines*13)+13)
	}

	s.textImage.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, 13)
	text.DrawWithOptions(s.textImage, txt, basicfont.Face7x13, opt)

	shadow := &ebiten.DrawImageOptions{}
	shadow.ColorScale.Scale(0, 0, 0, clr.A)
	shadow.GeoM.Translate(x+1, y+1)
	screen.DrawImage(s.textImage, shadow)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.ScaleWithColor(clr.ToNRGBA())
	dr.GeoM.Translate(x, y)
	screen.DrawImage(s.textImage, dr)

}
