package colors

// package colors contains functions to quickly generate image3d.Color instances by name (i.e. "White()", "Black()", etc),
// plus the named schemes the hosts cycle through.

import "github.com/anastasia/image3d"

// Transparent generates an image3d.Color instance of the provided name.
func Transparent() image3d.Color {
	return image3d.NewColor(0, 0, 0, 0)
}

// White generates an image3d.Color instance of the provided name.
func White() image3d.Color {
	return image3d.NewColor(1, 1, 1, 1)
}

// Black generates an image3d.Color instance of the provided name.
func Black() image3d.Color {
	return image3d.NewColor(0, 0, 0, 1)
}

// Gray generates an image3d.Color instance of the provided name.
func Gray() image3d.Color {
	return image3d.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates an image3d.Color instance of the provided name.
func LightGray() image3d.Color {
	return image3d.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray generates an image3d.Color instance of the provided name.
func DarkGray() image3d.Color {
	return image3d.NewColor(0.2, 0.2, 0.2, 1)
}

// DarkestGray generates an image3d.Color instance of the provided name.
func DarkestGray() image3d.Color {
	return image3d.NewColor(0.05, 0.05, 0.05, 1)
}

// Red generates an image3d.Color instance of the provided name.
func Red() image3d.Color {
	return image3d.NewColor(1, 0, 0, 1)
}

// Orange generates an image3d.Color instance of the provided name.
func Orange() image3d.Color {
	return image3d.NewColor(1, 0.5, 0, 1)
}

// SkyBlue generates an image3d.Color instance of the provided name.
func SkyBlue() image3d.Color {
	return image3d.NewColor(0, 0.5, 1, 1)
}

// Scheme is a stroke / fill / background triple.
type Scheme struct {
	Name                     string
	Stroke, Fill, Background image3d.Color
}

// Schemes lists the built-in schemes; the first one matches the default config (black outlines, white fill and paper).
var Schemes = []Scheme{
	{Name: "paper", Stroke: Black(), Fill: White(), Background: White()},
	{Name: "blueprint", Stroke: White(), Fill: SkyBlue(), Background: DarkGray()},
	{Name: "night", Stroke: Orange(), Fill: DarkestGray(), Background: Black()},
	{Name: "pencil", Stroke: DarkGray(), Fill: LightGray(), Background: White()},
}

// SchemeByName returns the scheme with the given name, and false if there is none.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range Schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}

// Apply returns a copy of the config with the scheme's colors set.
func (s Scheme) Apply(cfg image3d.Config) image3d.Config {
	cfg.StrokeColor = s.Stroke.Hex()
	cfg.FillColor = s.Fill.Hex()
	cfg.BackgroundColor = s.Background.Hex()
	return cfg
}
