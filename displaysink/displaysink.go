// Package displaysink draws frames onto small pixel displays through the tinygo.org/x/drivers Displayer interface, the
// way SPI/I2C panels (ST7789, SSD1306, ILI9341 ...) are driven. Framebuffer is an in-memory Displayer for headless use.
package displaysink

import (
	"image"
	"image/color"

	"github.com/anastasia/image3d"
	"github.com/anastasia/image3d/scanline"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// rectFiller is implemented by displays that can fill rectangles faster than pixel by pixel.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Sink is an image3d.Sink drawing onto a drivers.Displayer. The canvas passed to Clear is scaled onto the whole display.
// Pixels are only pushed to the panel by Flush.
type Sink struct {
	Display drivers.Displayer
	Font    tinyfont.Fonter

	stroke, fill, background color.RGBA

	scaleX, scaleY float32
	width, height  int16
}

// New creates a Sink drawing to the display given, in the colors of the configuration given.
func New(display drivers.Displayer, cfg image3d.Config) *Sink {
	stroke, fill, background := cfg.Colors()
	return &Sink{
		Display:    display,
		Font:       &proggy.TinySZ8pt7b,
		stroke:     stroke.ToRGBA(),
		fill:       fill.ToRGBA(),
		background: background.ToRGBA(),
		scaleX:     1,
		scaleY:     1,
	}
}

func (s *Sink) Clear(width, height float64) {

	s.width, s.height = s.Display.Size()
	s.scaleX, s.scaleY = 1, 1
	if width > 0 {
		s.scaleX = float32(s.width) / float32(width)
	}
	if height > 0 {
		s.scaleY = float32(s.height) / float32(height)
	}

	if filler, ok := s.Display.(rectFiller); ok {
		if err := filler.FillRectangle(0, 0, s.width, s.height, s.background); err == nil {
			return
		}
	}

	for y := int16(0); y < s.height; y++ {
		for x := int16(0); x < s.width; x++ {
			s.Display.SetPixel(x, y, s.background)
		}
	}

}

func (s *Sink) toPixels(points []image3d.Point2) []image3d.Point2 {
	pixels := make([]image3d.Point2, len(points))
	for i, p := range points {
		pixels[i] = image3d.Point2{X: p.X * float64(s.scaleX), Y: p.Y * float64(s.scaleY)}
	}
	return pixels
}

func (s *Sink) bounds() image.Rectangle {
	return image.Rect(0, 0, int(s.width), int(s.height))
}

func (s *Sink) setPixel(c color.RGBA) func(x, y int) {
	return func(x, y int) {
		if x < 0 || y < 0 || x >= int(s.width) || y >= int(s.height) {
			return
		}
		s.Display.SetPixel(int16(x), int16(y), c)
	}
}

func (s *Sink) StrokePolygon(points []image3d.Point2) {
	scanline.Outline(s.toPixels(points), s.bounds(), s.setPixel(s.stroke))
}

func (s *Sink) FillPolygon(points []image3d.Point2) {
	pixels := s.toPixels(points)
	scanline.Fill(pixels, s.bounds(), s.setPixel(s.fill))
	// The fill covers the inner half of the outline; draw it again so the edges stay visible on small panels.
	scanline.Outline(pixels, s.bounds(), s.setPixel(s.stroke))
}

// Status writes a line of text along the bottom edge of the display, in the stroke color.
func (s *Sink) Status(text string) {
	_, h := s.Display.Size()
	tinyfont.WriteLine(s.Display, s.Font, 1, h-2, text, s.stroke)
}

// Flush pushes the drawn pixels to the panel.
func (s *Sink) Flush() error {
	return s.Display.Display()
}

// Framebuffer is a drivers.Displayer backed by an *image.RGBA.
type Framebuffer struct {
	Image *image.RGBA
}

// NewFramebuffer creates a Framebuffer of the given size in pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Image: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (fb *Framebuffer) Size() (x, y int16) {
	b := fb.Image.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.Image.SetRGBA(int(x), int(y), c)
}

func (fb *Framebuffer) Display() error { return nil }

func (fb *Framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	rect := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Intersect(fb.Image.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			fb.Image.SetRGBA(px, py, c)
		}
	}
	return nil
}
