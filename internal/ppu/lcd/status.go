package lcd

import "github.com/thelolagemann/dmgboy/internal/types"

// Status represents the LCD status register. It contains information about the
// current state of the LCD controller. Its value is stored in the types.STAT
// register as follows:
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see below) (Read Only)
//		0: During H-Blank
//		1: During V-Blank
//		2: During Searching OAM-RAM
//		3: During Transferring Data to LCD Driver
type Status struct {
	// CoincidenceInterrupt is set when the LYC=LY coincidence interrupt is
	// enabled.
	CoincidenceInterrupt bool
	// OAMInterrupt is set when the OAM interrupt is enabled.
	OAMInterrupt bool
	// VBlankInterrupt is set when the V-Blank interrupt is enabled.
	VBlankInterrupt bool
	// HBlankInterrupt is set when the H-Blank interrupt is enabled.
	HBlankInterrupt bool
	// Coincidence is set when the LYC=LY coincidence flag is set.
	Coincidence bool
	// Mode is the current mode of the LCD controller.
	Mode Mode
}

// Write sets the interrupt enable bits, bits 0-2 are read only.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = value&types.Bit6 != 0
	s.OAMInterrupt = value&types.Bit5 != 0
	s.VBlankInterrupt = value&types.Bit4 != 0
	s.HBlankInterrupt = value&types.Bit3 != 0
}

// Read returns the value of the status register, bit 7 always reads
// as 1.
func (s *Status) Read() uint8 {
	value := types.Bit7 | uint8(s.Mode)
	if s.CoincidenceInterrupt {
		value |= types.Bit6
	}
	if s.OAMInterrupt {
		value |= types.Bit5
	}
	if s.VBlankInterrupt {
		value |= types.Bit4
	}
	if s.HBlankInterrupt {
		value |= types.Bit3
	}
	if s.Coincidence {
		value |= types.Bit2
	}
	return value
}

// InterruptLine reports whether any enabled STAT interrupt condition
// currently holds. The interrupt fires on the line's rising edge.
func (s *Status) InterruptLine() bool {
	switch {
	case s.CoincidenceInterrupt && s.Coincidence:
		return true
	case s.HBlankInterrupt && s.Mode == HBlank:
		return true
	case s.VBlankInterrupt && s.Mode == VBlank:
		return true
	case s.OAMInterrupt && s.Mode == OAM:
		return true
	}
	return false
}
