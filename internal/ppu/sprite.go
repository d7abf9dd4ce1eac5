package ppu

// Sprite is a decoded entry of OAM.
type Sprite struct {
	// Y is the vertical position plus 16.
	Y uint8
	// X is the horizontal position plus 8.
	X      uint8
	TileID uint8
	spriteAttributes
}

// spriteAttributes represents the attributes of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	priority bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number  (0=OBP0, 1=OBP1)
	useSecondPalette bool
}

// Update decodes byte i of the sprite's 4 byte OAM entry.
func (s *Sprite) Update(i uint16, value uint8) {
	switch i & 3 {
	case 0:
		s.Y = value
	case 1:
		s.X = value
	case 2:
		s.TileID = value
	case 3:
		s.priority = value&0x80 == 0
		s.flipY = value&0x40 != 0
		s.flipX = value&0x20 != 0
		s.useSecondPalette = value&0x10 != 0
	}
}

// covers reports whether the sprite, height pixels tall, is on line.
func (s *Sprite) covers(line uint8, height uint8) bool {
	top := int(s.Y) - 16
	return int(line) >= top && int(line) < top+int(height)
}
