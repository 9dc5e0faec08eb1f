// Package theme defines the color palettes shared by the frontends.
package theme

type Color struct {
	R, G, B uint8
}

// Palette is the set of colors a frontend needs to draw one frame.
type Palette struct {
	Name       string
	Tile1      Color
	Tile2      Color
	Snake      Color
	Food       Color
	Background Color
	Text       Color
	Accent     Color
}

const Default = "classic"

var palettes = []Palette{
	{
		Name:       "classic",
		Tile1:      Color{170, 215, 81},
		Tile2:      Color{162, 209, 73},
		Snake:      Color{78, 124, 246},
		Food:       Color{231, 71, 29},
		Background: Color{87, 138, 52},
		Text:       Color{255, 255, 255},
		Accent:     Color{255, 214, 0},
	},
	{
		Name:       "ocean",
		Tile1:      Color{144, 202, 249},
		Tile2:      Color{129, 190, 242},
		Snake:      Color{13, 71, 161},
		Food:       Color{255, 112, 67},
		Background: Color{21, 101, 192},
		Text:       Color{255, 255, 255},
		Accent:     Color{255, 241, 118},
	},
	{
		Name:       "sunset",
		Tile1:      Color{255, 204, 128},
		Tile2:      Color{255, 193, 107},
		Snake:      Color{142, 36, 170},
		Food:       Color{211, 47, 47},
		Background: Color{230, 81, 0},
		Text:       Color{255, 255, 255},
		Accent:     Color{255, 235, 59},
	},
	{
		Name:       "midnight",
		Tile1:      Color{38, 50, 56},
		Tile2:      Color{33, 44, 49},
		Snake:      Color{0, 230, 118},
		Food:       Color{255, 82, 82},
		Background: Color{18, 24, 27},
		Text:       Color{236, 239, 241},
		Accent:     Color{100, 255, 218},
	},
}

// Names lists the palettes in display order.
func Names() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

func Lookup(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Next returns the palette after name, wrapping around. Unknown names give
// the first palette.
func Next(name string) Palette {
	for i, p := range palettes {
		if p.Name == name {
			return palettes[(i+1)%len(palettes)]
		}
	}
	return palettes[0]
}

// Tile returns the checkerboard color for cell (x, y).
func (p Palette) Tile(x, y int) Color {
	if (x+y)%2 == 0 {
		return p.Tile1
	}
	return p.Tile2
}
