// Package lcd decodes the LCD control and status registers.
package lcd

import "github.com/thelolagemann/dmgboy/internal/types"

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the types.LCDC register as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress is the start address of the window tile
	// map, 0x9800 or 0x9C00.
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileDataAddress is the start address of the tile data, 0x8000
	// or 0x8800. Tiles at 0x8800 are addressed by a signed index from
	// 0x9000.
	TileDataAddress uint16
	// BackgroundTileMapAddress is the start address of the background
	// tile map, 0x9800 or 0x9C00.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, 8 or 16.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit. When
	// reset, the background and window are blank.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller holding value.
func NewController(value uint8) *Controller {
	c := &Controller{}
	c.Write(value)
	return c
}

// Write decodes value into the controller.
func (c *Controller) Write(value uint8) {
	c.Enabled = value&types.Bit7 != 0
	c.WindowTileMapAddress = tileMap(value & types.Bit6)
	c.WindowEnabled = value&types.Bit5 != 0
	c.TileDataAddress = 0x8800
	if value&types.Bit4 != 0 {
		c.TileDataAddress = 0x8000
	}
	c.BackgroundTileMapAddress = tileMap(value & types.Bit3)
	c.SpriteSize = 8
	if value&types.Bit2 != 0 {
		c.SpriteSize = 16
	}
	c.SpriteEnabled = value&types.Bit1 != 0
	c.BackgroundEnabled = value&types.Bit0 != 0
}

// Read encodes the controller back into its register value.
func (c *Controller) Read() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == 0x9C00 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.TileDataAddress == 0x8000 {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == 0x9C00 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return c.TileDataAddress == 0x8800
}

func tileMap(bit uint8) uint16 {
	if bit != 0 {
		return 0x9C00
	}
	return 0x9800
}
