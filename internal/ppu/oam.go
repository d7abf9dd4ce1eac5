package ppu

// OAM (Object Attribute Memory) is the memory used to store the
// attributes of the sprites. It is 160 bytes long and is located at
// 0xFE00-0xFE9F in the memory map. It is divided in 40 entries of 4 bytes
// each, each entry representing a sprite.
type OAM struct {
	raw     [160]uint8
	Sprites [40]Sprite
}

// Read returns the byte at offset into OAM.
func (o *OAM) Read(offset uint16) uint8 {
	return o.raw[offset]
}

// Write stores the byte at offset and decodes it into its sprite.
func (o *OAM) Write(offset uint16, value uint8) {
	o.raw[offset] = value
	o.Sprites[offset>>2].Update(offset, value)
}
