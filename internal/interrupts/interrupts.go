// Package interrupts provides the interrupt request and enable
// registers of the Game Boy, and the fixed priority in which the
// five interrupt sources are serviced.
package interrupts

import (
	"fmt"

	"github.com/thelolagemann/dmgboy/internal/types"
)

// Source identifies one of the five interrupt sources. The value is
// both the bit index in the IF/IE registers and the priority, where
// a lower value is serviced first.
type Source uint8

const (
	// VBlank is requested every time the PPU enters VBlank mode.
	VBlank Source = iota
	// LCD is requested by the STAT register (types.STAT), when one
	// of its enabled conditions is met.
	LCD
	// Timer is requested when TIMA (types.TIMA) overflows.
	Timer
	// Serial is requested when a serial transfer completes.
	Serial
	// Joypad is requested when any of the P1 (types.P1) input bits
	// go from high to low. It also wakes the CPU from STOP.
	Joypad
)

// Sources lists every interrupt source in priority order.
var Sources = [...]Source{VBlank, LCD, Timer, Serial, Joypad}

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4).
	JoypadFlag = types.Bit4
)

// Flag returns the bit of the source in the IF and IE registers.
func (s Source) Flag() uint8 {
	return 1 << s
}

// Vector returns the address the CPU jumps to when servicing s.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCD:
		return "LCD"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return fmt.Sprintf("Source(%d)", uint8(s))
}

// Service holds the interrupt request and enable registers.
//
// When an interrupt is requested, the corresponding bit in the
// Flag register is set. When an interrupt is enabled, the
// corresponding bit in the Enable register is set. The CPU
// services the lowest numbered source that is both requested and
// enabled, clearing its request bit as it does so.
//
// The IME lives in the CPU, the Service only arbitrates.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the given interrupt by setting its bit in
// the Flag register.
func (s *Service) Request(src Source) {
	s.Flag |= src.Flag()
}

// Requested reports whether src has been requested, whether or not
// it is enabled.
func (s *Service) Requested(src Source) bool {
	return s.Flag&src.Flag() != 0
}

// Clear clears the request bit of src.
func (s *Service) Clear(src Source) {
	s.Flag &^= src.Flag()
}

// Pending returns the highest priority source that is both
// requested and enabled, without clearing it.
func (s *Service) Pending() (Source, bool) {
	if !s.HasInterrupts() {
		return 0, false
	}
	pending := s.Enable & s.Flag
	for _, src := range Sources {
		if pending&src.Flag() != 0 {
			return src, true
		}
	}
	return 0, false
}

// Take returns the highest priority source that is both requested
// and enabled, and clears its request bit.
func (s *Service) Take() (Source, bool) {
	src, ok := s.Pending()
	if ok {
		s.Clear(src)
	}
	return src, ok
}

// ReadFlag returns IF as seen on the bus, the upper 3 bits are
// always set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag sets IF, only the lower 5 bits are stored.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F
}
