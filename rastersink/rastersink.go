// Package rastersink draws frames into an in-memory image with golang.org/x/image/vector, for headless snapshots.
package rastersink

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/anastasia/image3d"
	"golang.org/x/image/vector"
)

// Sink is an image3d.Sink backed by an *image.RGBA. Strokes are drawn as one thick quad per edge; fills use the
// rasterizer's non-zero winding over the polygon path.
type Sink struct {
	Stroke, Fill, Background image3d.Color
	LineWidth                float64

	img        *image.RGBA
	rasterizer *vector.Rasterizer
}

// New creates a Sink using the colors of the configuration given. The image is (re)allocated on Clear.
func New(cfg image3d.Config) *Sink {
	stroke, fill, background := cfg.Colors()
	return &Sink{
		Stroke:     stroke,
		Fill:       fill,
		Background: background,
		LineWidth:  1,
	}
}

// Image returns the image drawn into so far; it is nil before the first Clear.
func (s *Sink) Image() *image.RGBA {
	return s.img
}

func (s *Sink) Clear(width, height float64) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if s.img == nil || s.img.Bounds().Dx() != w || s.img.Bounds().Dy() != h {
		s.img = image.NewRGBA(image.Rect(0, 0, w, h))
		s.rasterizer = vector.NewRasterizer(w, h)
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Background.ToRGBA()), image.Point{}, draw.Src)
}

func (s *Sink) StrokePolygon(points []image3d.Point2) {
	if s.img == nil || len(points) < 2 {
		return
	}
	half := s.LineWidth / 2
	s.rasterizer.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal, scaled to half the line width.
		nx, ny := -dy/length*half, dx/length*half
		s.rasterizer.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		s.rasterizer.LineTo(float32(b.X+nx), float32(b.Y+ny))
		s.rasterizer.LineTo(float32(b.X-nx), float32(b.Y-ny))
		s.rasterizer.LineTo(float32(a.X-nx), float32(a.Y-ny))
		s.rasterizer.ClosePath()
	}
	s.rasterizer.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Stroke.ToRGBA()), image.Point{})
}

func (s *Sink) FillPolygon(points []image3d.Point2) {
	if s.img == nil || len(points) < 3 {
		return
	}
	s.rasterizer.Reset(s.img.Bounds().Dx(), s.img.Bounds().Dy())
	s.rasterizer.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.rasterizer.LineTo(float32(p.X), float32(p.Y))
	}
	s.rasterizer.ClosePath()
	s.rasterizer.Draw(s.img, s.img.Bounds(), image.NewUniform(s.Fill.ToRGBA()), image.Point{})
}

// WritePNG encodes the current image as a PNG.
func (s *Sink) WritePNG(w io.Writer) error {
	if s.img == nil {
		return image3d.ErrEmptyFrame
	}
	return EncodePNG(w, s.img)
}

// EncodePNG encodes the image as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
