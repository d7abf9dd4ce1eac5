// Package apu provides the sound registers of the Game Boy. Sample
// synthesis is not emulated: the registers store what is written,
// read back through the hardware's masks, and report each channel's
// status in types.NR52 as its length timer runs out.
package apu

import (
	"github.com/thelolagemann/dmgboy/internal/cpu"
	"github.com/thelolagemann/dmgboy/internal/types"
)

const (
	frameSequencerRate   = 512
	frameSequencerPeriod = cpu.ClockSpeed / frameSequencerRate

	registerStart = types.NR10
	registerEnd   = types.WaveRAMEnd
)

// readMasks are OR'd into the stored value of types.NR10 - 0xFF2F
// when read, write only bits and unused registers read as 1.
var readMasks = [0x20]uint8{
	0x80, 0x3F, 0x00, 0xFF, 0xBF, // NR10 - NR14
	0xFF, 0x3F, 0x00, 0xFF, 0xBF, // NR20 - NR24
	0x7F, 0xFF, 0x9F, 0xFF, 0xBF, // NR30 - NR34
	0xFF, 0xFF, 0x00, 0x00, 0xBF, // NR40 - NR44
	0x00, 0x00, 0x70,             // NR50 - NR52
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// APU represents the GameBoy's audio processing unit. It comprises 4
// channels: 2 pulse channels, a wave channel and a noise channel. Each
// channel has is controlled by a set of 5 registers, NRx0 - NRx4.
type APU struct {
	enabled bool

	// registers holds the last value written to types.NR10 - types.WaveRAMEnd.
	registers [registerEnd - registerStart + 1]uint8
	channels  [4]*channel

	frameSequencerCounter int
	frameSequencerStep    uint8
}

// NewAPU returns a new APU, powered off.
func NewAPU() *APU {
	return &APU{
		channels: [4]*channel{
			newChannel(types.Bit0, 64),
			newChannel(types.Bit1, 64),
			newChannel(types.Bit2, 256),
			newChannel(types.Bit3, 64),
		},
	}
}

// Enabled reports whether the APU is powered on.
func (a *APU) Enabled() bool {
	return a.enabled
}

// Read returns a sound register or a byte of wave RAM.
func (a *APU) Read(address uint16) (uint8, bool) {
	if address < registerStart || address > registerEnd {
		return 0, false
	}
	offset := address - registerStart
	switch {
	case address == types.NR52:
		value := readMasks[offset]
		if a.enabled {
			value |= types.Bit7
		}
		for _, ch := range a.channels {
			if ch.isEnabled() {
				value |= ch.channelBit
			}
		}
		return value, true
	case address >= types.WaveRAMStart:
		return a.registers[offset], true
	}
	return a.registers[offset] | readMasks[offset], true
}

// Write writes a sound register or a byte of wave RAM. While the APU
// is powered off, only types.NR52 and wave RAM can be written.
func (a *APU) Write(address uint16, value uint8) bool {
	if address < registerStart || address > registerEnd {
		return false
	}
	offset := address - registerStart
	switch {
	case address >= types.WaveRAMStart:
		a.registers[offset] = value
		return true
	case address == types.NR52:
		a.setPower(value&types.Bit7 != 0)
		return true
	case !a.enabled || address > types.NR52:
		return true
	}

	a.registers[offset] = value
	if address < types.NR50 {
		a.writeChannel(a.channels[offset/5], uint8(offset/5), uint8(offset%5), value)
	}
	return true
}

// writeChannel applies the side effects of writing register NRxn.
func (a *APU) writeChannel(ch *channel, x, n, value uint8) {
	switch n {
	case 0:
		if x == 2 {
			ch.setDAC(value&types.Bit7 != 0)
		}
	case 1:
		if x == 2 {
			ch.setLength(value)
		} else {
			ch.setLength(value & 0x3F)
		}
	case 2:
		if x != 2 {
			ch.setDAC(value&0xF8 != 0)
		}
	case 4:
		ch.setNRx4(value)
	}
}

// setPower powers the APU on or off. Powering off clears every
// register up to types.NR51.
func (a *APU) setPower(on bool) {
	if a.enabled && !on {
		for i := types.NR10; i < types.NR52; i++ {
			a.registers[i-registerStart] = 0
		}
		for _, ch := range a.channels {
			ch.reset()
		}
	}
	if !a.enabled && on {
		a.frameSequencerCounter = 0
		a.frameSequencerStep = 0
	}
	a.enabled = on
}

// Advance runs the frame sequencer, which clocks the length timers at
// 256 Hz.
func (a *APU) Advance(cycles int) {
	if !a.enabled {
		return
	}
	a.frameSequencerCounter += cycles
	for a.frameSequencerCounter >= frameSequencerPeriod {
		a.frameSequencerCounter -= frameSequencerPeriod
		if a.frameSequencerStep%2 == 0 {
			for _, ch := range a.channels {
				ch.lengthStep()
			}
		}
		a.frameSequencerStep = (a.frameSequencerStep + 1) & 7
	}
}
