// Package boot provides a boot ROM implementation for the Game Boy. Whilst
// this package is not strictly required for the emulator to function, it
// can be used to emulate the boot process of the Game Boy.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Size is the length of a DMG boot ROM.
const Size = 256

// ROM represents a boot ROM for the Game Boy. When the Game Boy first
// powers on, the boot ROM is mapped over the cartridge at 0x0000 -
// 0x00FF.
//
// The boot ROM initializes the hardware, sets the stack pointer and
// scrolls the logo. Once done it unmaps itself by writing to the
// types.BDIS register, and the cartridge becomes visible at the same
// addresses for the rest of the run.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM loads a boot ROM and calculates its MD5 checksum. An
// error is returned if b is not exactly Size bytes long.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d", len(b))
	}

	bootChecksum := md5.Sum(b)

	raw := make([]byte, Size)
	copy(raw, b)
	return &ROM{
		raw:      raw,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}, nil
}

// Read returns the byte at the given address. Addresses outside the
// boot ROM read as 0xFF.
func (b *ROM) Read(addr uint16) byte {
	if int(addr) >= len(b.raw) {
		return 0xFF
	}
	return b.raw[addr]
}

// Contains reports whether the boot ROM covers addr.
func (b *ROM) Contains(addr uint16) bool {
	return b != nil && int(addr) < len(b.raw)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

// knownBootROMChecksums maps the checksum of each known 256 byte
// boot ROM to the model it shipped in.
var knownBootROMChecksums = map[string]string{
	DMG0: "Game Boy (DMG-0)",
	DMG:  "Game Boy (DMG-01)",
	MGB:  "Game Boy Pocket",
	SGB:  "Super Game Boy",
	SGB2: "Super Game Boy 2",
}

const (
	// DMG0 is the checksum of the early DMG boot ROM, only found in
	// very early Japanese units. On a failed logo check it flashes
	// the screen instead of hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the boot ROM found in most DMG-01 units.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A
	// rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the Super Game Boy boot ROM.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by the same byte as MGB does from DMG.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
)
