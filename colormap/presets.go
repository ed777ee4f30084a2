package colormap

import "image/color"

// Preset constructors. Each call returns a fresh, independent Map so a
// shared default can never be mutated behind another entity's back.

// Default returns the map used by entities that were not given one: Jet.
func Default() *Map {
	return Jet()
}

// Jet returns the classic blue→cyan→green→yellow→red ramp.
func Jet() *Map {
	m, _ := New([]color.Color{
		color.RGBA{0, 0, 143, 255},
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{128, 0, 0, 255},
	})

	return m
}

// Viridis returns the matplotlib viridis ramp.
func Viridis() *Map {
	m, _ := New([]color.Color{
		color.RGBA{68, 1, 84, 255},
		color.RGBA{72, 35, 116, 255},
		color.RGBA{64, 67, 135, 255},
		color.RGBA{52, 94, 141, 255},
		color.RGBA{41, 120, 142, 255},
		color.RGBA{32, 144, 140, 255},
		color.RGBA{34, 167, 132, 255},
		color.RGBA{68, 190, 112, 255},
		color.RGBA{121, 209, 81, 255},
		color.RGBA{189, 222, 38, 255},
		color.RGBA{253, 231, 37, 255},
	})

	return m
}

// Plasma returns the matplotlib plasma ramp.
func Plasma() *Map {
	m, _ := New([]color.Color{
		color.RGBA{13, 8, 135, 255},
		color.RGBA{75, 3, 161, 255},
		color.RGBA{125, 3, 168, 255},
		color.RGBA{168, 34, 150, 255},
		color.RGBA{203, 70, 121, 255},
		color.RGBA{229, 107, 93, 255},
		color.RGBA{248, 148, 65, 255},
		color.RGBA{253, 195, 40, 255},
		color.RGBA{240, 249, 33, 255},
	})

	return m
}
