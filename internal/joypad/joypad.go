// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State represents the state of the joypad. Select either
// action or direction buttons by writing to the register,
// and then read out bits 0-3 to get the state of the buttons.
//
//	Bit 7 - Not used
//	Bit 6 - Not used
//	Bit 5 - P15 Select Button Keys      (0=Select)
//	Bit 4 - P14 Select Direction Keys   (0=Select)
//	Bit 3 - P13 Input Down  or Start    (0=Pressed) (Read Only)
//	Bit 2 - P12 Input Up    or Select   (0=Pressed) (Read Only)
//	Bit 1 - P11 Input Left  or Button B (0=Pressed) (Read Only)
//	Bit 0 - P10 Input Right or Button A (0=Pressed) (Read Only)
type State struct {
	// State is the current state of the joypad. It is used to
	// hold the state of the buttons, the lower 4 bits are
	// used for the action buttons, and the upper 4 bits are
	// used for the direction buttons. A 1 in a bit indicates
	// that the button is pressed.
	State uint8

	// selected holds bits 4 and 5 of the last write to types.P1.
	selected uint8

	irq *interrupts.Service
}

// New returns a new joypad state with nothing selected.
func New(irq *interrupts.Service) *State {
	return &State{
		selected: types.Bit4 | types.Bit5,
		irq:      irq,
	}
}

// Read returns types.P1, with a 0 for each pressed button in the
// selected groups.
func (s *State) Read(address uint16) (uint8, bool) {
	if address != types.P1 {
		return 0, false
	}
	return 0xC0 | s.selected | s.lines(), true
}

// lines returns the input lines P10-P13, low for each pressed button
// in the selected groups.
func (s *State) lines() uint8 {
	pressed := uint8(0)
	if s.selected&types.Bit4 == 0 {
		pressed |= s.State >> 4 & 0xF
	}
	if s.selected&types.Bit5 == 0 {
		pressed |= s.State & 0xF
	}
	return ^pressed & 0xF
}

// Write selects the button groups, only bits 4 and 5 are writable.
func (s *State) Write(address uint16, value uint8) bool {
	if address != types.P1 {
		return false
	}
	s.selected = value & (types.Bit4 | types.Bit5)
	return true
}

// Advance does nothing, the joypad is driven by Press and Release.
func (s *State) Advance(int) {}

// Press presses a button. The joypad interrupt is requested when an
// input line goes from high to low, so a button that is already held
// or not in a selected group raises nothing.
func (s *State) Press(button Button) {
	before := s.lines()
	s.State |= types.Bit0 << button
	if before&^s.lines() != 0 {
		s.irq.Request(interrupts.Joypad)
	}
}

// Release releases a button.
func (s *State) Release(button Button) {
	s.State &^= types.Bit0 << button
}
