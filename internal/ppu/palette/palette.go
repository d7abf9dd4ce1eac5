// Package palette maps the 2-bit shades of the DMG to colours.
package palette

import "image/color"

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette represents a palette. A palette is an array of 4 RGB values,
// one for each shade from lightest to darkest.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// Get returns the palette at index, falling back to Greyscale for an
// unknown index.
func Get(index int) Palette {
	if index < 0 || index >= len(Palettes) {
		return Palettes[Greyscale]
	}
	return Palettes[index]
}

// RGBA returns the colour of shade.
func (p Palette) RGBA(shade uint8) color.RGBA {
	c := p.Colors[shade&3]
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}
}

// Register is the value of one of the palette registers types.BGP,
// types.OBP0 or types.OBP1, which assign a shade to each colour
// number:
//
//	Bit 7-6 - Shade for Color Number 3
//	Bit 5-4 - Shade for Color Number 2
//	Bit 3-2 - Shade for Color Number 1
//	Bit 1-0 - Shade for Color Number 0
type Register uint8

// Shade returns the shade assigned to colour.
func (r Register) Shade(colour uint8) uint8 {
	return uint8(r) >> (colour * 2) & 3
}
