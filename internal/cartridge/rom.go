package cartridge

import (
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// ROMCartridge represents a ROM cartridge. This cartridge type is the simplest
// cartridge type, with no MBC and at most a single 8kB RAM bank.
type ROMCartridge struct {
	baseCartridge
	ram []byte
}

// NewROMCartridge returns a plain 32kB ROM cartridge, without
// parsing rom for a header. Useful for small test programs.
func NewROMCartridge(rom []byte) *ROMCartridge {
	return newROMCartridge(rom, Header{}, log.NewNullLogger())
}

func newROMCartridge(rom []byte, header Header, l log.Logger) *ROMCartridge {
	return &ROMCartridge{
		baseCartridge: baseCartridge{rom: rom, header: header, log: l},
		ram:           make([]byte, ramSize(header)),
	}
}

// Read returns the value at the given address.
func (r *ROMCartridge) Read(address uint16) (uint8, bool) {
	switch {
	case address < types.ROMX.End:
		return r.readROM(int(address)), true
	case types.CartRAM.Contains(address):
		offset := int(types.CartRAM.Offset(address))
		if offset >= len(r.ram) {
			return 0xFF, true
		}
		return r.ram[offset], true
	}
	return 0, false
}

// Write writes the value to the RAM, writes to the ROM are claimed
// but have no effect.
func (r *ROMCartridge) Write(address uint16, value uint8) bool {
	switch {
	case address < types.ROMX.End:
		r.log.Debugf("cartridge: write to ROM ignored: 0x%04X, value: 0x%02X", address, value)
		return true
	case types.CartRAM.Contains(address):
		offset := int(types.CartRAM.Offset(address))
		if offset < len(r.ram) {
			r.ram[offset] = value
		}
		return true
	}
	return false
}
