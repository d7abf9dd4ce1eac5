package lcd

// Mode represents a mode of the LCD, as reported in bits 0-1 of
// types.STAT.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access OAM but not the display RAM.
	OAM
	// VRAM is the VRAM mode. The CPU can access the display RAM but not OAM.
	VRAM
)

// Cycles returns how long the LCD stays in the mode, the three
// modes of a visible line add up to one 456 cycle line.
func (m Mode) Cycles() int {
	switch m {
	case OAM:
		return 80
	case VRAM:
		return 172
	case HBlank:
		return 204
	}
	return 456
}

func (m Mode) String() string {
	return [...]string{"hblank", "vblank", "oam", "vram"}[m&3]
}
