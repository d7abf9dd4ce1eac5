package cartridge

import (
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// MemoryModel selects how the 2 bit bank register of an MBC1 is used.
type MemoryModel uint8

const (
	// ROM16MRAM8K uses the 2 bit register as the upper bits of the
	// ROM bank, with a single 8kB RAM bank.
	ROM16MRAM8K MemoryModel = iota
	// ROM4MRAM32K uses the 2 bit register to select one of four 8kB
	// RAM banks.
	ROM4MRAM32K
)

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// MemoryBankedCartridge1 represents a MemoryBankedCartridge1 cartridge. The
// bank controller is programmed by writes to the ROM address space:
//
//	0x0000 - 0x1FFF - RAM enable (0x0A in the lower nibble enables)
//	0x2000 - 0x3FFF - ROM bank number, lower 5 bits (0 selects 1)
//	0x4000 - 0x5FFF - RAM bank number, or upper 2 bits of ROM bank
//	0x6000 - 0x7FFF - memory model select
type MemoryBankedCartridge1 struct {
	baseCartridge

	ram        []byte
	ramEnabled bool

	romBank  uint8 // 5 bits
	bankHigh uint8 // 2 bits
	model    MemoryModel
}

func newMemoryBankedCartridge1(rom []byte, header Header, l log.Logger) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		baseCartridge: baseCartridge{rom: rom, header: header, log: l},
		ram:           make([]byte, ramSize(header)),
		romBank:       1,
	}
}

// Read returns the value from the cartridges ROM or RAM, depending on the bank
// selected.
func (m *MemoryBankedCartridge1) Read(address uint16) (uint8, bool) {
	switch {
	case types.ROM0.Contains(address):
		return m.readROM(int(address)), true // first bank is always fixed
	case types.ROMX.Contains(address):
		return m.readROM(m.romOffset() + int(types.ROMX.Offset(address))), true
	case types.CartRAM.Contains(address):
		if !m.ramEnabled {
			return 0xFF, true
		}
		offset := m.ramOffset(address)
		if offset >= len(m.ram) {
			m.log.Debugf("mbc1: read beyond RAM: 0x%04X (bank %d)", address, m.ramBank())
			return 0xFF, true
		}
		return m.ram[offset], true
	}

	return 0, false
}

// Write switches the ROM or RAM bank, or writes to the selected RAM bank.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) bool {
	switch {
	case address < 0x2000:
		m.ramEnabled = value&0x0F == 0x0A
	case address < 0x4000:
		// ROM bank number (lower 5 bits), 0 is treated as 1
		m.romBank = value & 0x1F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case address < 0x6000:
		m.bankHigh = value & 0x03
	case address < 0x8000:
		m.model = MemoryModel(value & 0x01)
	case types.CartRAM.Contains(address):
		if !m.ramEnabled {
			m.log.Debugf("mbc1: write to disabled RAM: 0x%04X, value: 0x%02X", address, value)
			return true
		}
		if offset := m.ramOffset(address); offset < len(m.ram) {
			m.ram[offset] = value
		}
	default:
		return false
	}
	return true
}

// ROMBank returns the bank currently mapped at 0x4000 - 0x7FFF.
func (m *MemoryBankedCartridge1) ROMBank() int {
	bank := int(m.romBank)
	if m.model == ROM16MRAM8K {
		bank |= int(m.bankHigh) << 5
	}
	if banks := len(m.rom) / romBankSize; banks > 0 {
		bank %= banks
	}
	return bank
}

func (m *MemoryBankedCartridge1) ramBank() int {
	if m.model == ROM4MRAM32K {
		return int(m.bankHigh)
	}
	return 0
}

// Model returns the selected memory model.
func (m *MemoryBankedCartridge1) Model() MemoryModel {
	return m.model
}

func (m *MemoryBankedCartridge1) romOffset() int {
	return m.ROMBank() * romBankSize
}

func (m *MemoryBankedCartridge1) ramOffset(address uint16) int {
	return m.ramBank()*ramBankSize + int(types.CartRAM.Offset(address))
}
