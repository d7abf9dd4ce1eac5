// Package cartridge provides the game cartridges of the DMG. The
// cartridge holds the game ROM, any external RAM, and the bank
// controller that maps them into the address space.
package cartridge

import (
	"fmt"

	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// Cartridge represents a game cartridge plugged into the bus. The
// cartridge is offered every access before any other region, and
// reports whether it claimed it.
type Cartridge interface {
	// Read returns the byte at address, and false if the cartridge
	// does not answer to address.
	Read(address uint16) (uint8, bool)
	// Write handles a write to address, returning false if the
	// cartridge does not answer to address.
	Write(address uint16, value uint8) bool

	Header() Header
	Title() string
}

type baseCartridge struct {
	rom    []byte
	header Header
	log    log.Logger
}

func (c *baseCartridge) Header() Header {
	return c.header
}

// Title returns the title stored in the cartridge header.
func (c *baseCartridge) Title() string {
	return c.header.Title
}

// readROM returns the byte at offset in the ROM, reading past the
// end of a short ROM yields 0xFF like an open bus.
func (c *baseCartridge) readROM(offset int) uint8 {
	if offset >= len(c.rom) {
		return 0xFF
	}
	return c.rom[offset]
}

// New parses the header of rom and returns the cartridge able to
// map it. Cartridge types without a bank controller implementation
// return an error.
func New(rom []byte, l log.Logger) (Cartridge, error) {
	if l == nil {
		l = log.NewNullLogger()
	}
	header := parseHeader(rom)
	l.Infof("cartridge: %s", header.String())
	if len(rom) >= 0x150 && !header.Valid() {
		l.Infof("cartridge: header checksum mismatch (0x%02X)", header.HeaderChecksum)
	}

	switch header.CartridgeType {
	case ROM, ROMRAM, ROMRAMBATT:
		return newROMCartridge(rom, header, l), nil
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return newMemoryBankedCartridge1(rom, header, l), nil
	}

	return nil, fmt.Errorf("cartridge: unsupported type %s", header.CartridgeType)
}

// ramSize returns the external RAM size the cartridge exposes.
func ramSize(header Header) int {
	switch header.CartridgeType {
	case ROMRAM, ROMRAMBATT:
		if header.RAMSize == 0 {
			return types.CartRAM.Size()
		}
	}
	return int(header.RAMSize)
}
