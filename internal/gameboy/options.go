package gameboy

import (
	"io"

	"github.com/thelolagemann/dmgboy/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance. Options are applied before the hardware is
// assembled.
type Opt func(gb *GameBoy)

// Debug logs every executed instruction and interrupt at debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// Strict makes accesses to the unusable and unmapped I/O areas fail
// with a bus.BusError instead of reading 0xFF.
func Strict() Opt {
	return func(gb *GameBoy) {
		gb.strict = true
	}
}

// SerialOutput writes every byte sent over the serial port to w,
// which is how test ROMs report their results.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOutput = w
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. With a boot ROM
// the emulator starts at 0x0000 with every register cleared, and
// without one it starts at 0x0100 with the registers set to the
// values upon completion of the boot ROM.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}
