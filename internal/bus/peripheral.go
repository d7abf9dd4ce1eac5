package bus

// Peripheral is a device that owns a slice of the I/O port space.
// The bus offers every I/O access to its peripherals in a fixed
// order, and the first one to claim the address handles it.
type Peripheral interface {
	// Read returns the value at address, and false if the
	// peripheral does not answer to address.
	Read(address uint16) (uint8, bool)
	// Write handles a write to address, returning false if the
	// peripheral does not answer to address.
	Write(address uint16, value uint8) bool
	// Advance moves the peripheral forward by the given number of
	// clock cycles. A peripheral may request interrupts here.
	Advance(cycles int)
}

// Video is the picture unit as seen by the bus. Besides its
// registers, it owns video RAM and sprite attribute memory.
type Video interface {
	Peripheral

	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, value uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, value uint8)

	// AddCycles stalls the picture unit for the given number of
	// clock cycles.
	AddCycles(cycles int)
	// TurnOff powers the LCD off until it is re-enabled via LCDC.
	TurnOff()
}

// Cartridge is the game cartridge as seen by the bus. It is offered
// every access before any other region.
type Cartridge interface {
	Read(address uint16) (uint8, bool)
	Write(address uint16, value uint8) bool
}
