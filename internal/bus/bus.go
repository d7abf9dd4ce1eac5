// Package bus provides the address-space router of the Game Boy. The
// bus owns work RAM, high RAM and the interrupt registers, and
// forwards every other access to the cartridge, the picture unit or
// one of the I/O peripherals.
package bus

import (
	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// DMACycles is the number of clock cycles the picture unit is
// stalled for by an OAM DMA transfer (160 machine cycles).
const DMACycles = 640

// Bus routes the 16-bit address space of the Game Boy.
//
// Every access is first offered to the cartridge. Unclaimed
// addresses are dispatched by the fixed memory map:
//
//	0x0000 - 0x00FF - boot ROM overlay, until types.BDIS is written
//	0x8000 - 0x9FFF - video RAM (picture unit)
//	0xC000 - 0xDFFF - work RAM
//	0xE000 - 0xFDFF - echo of work RAM
//	0xFE00 - 0xFE9F - sprite attribute memory (picture unit)
//	0xFF00 - 0xFF4B - I/O ports (peripherals, then IF)
//	0xFF80 - 0xFFFE - high RAM
//	0xFFFF          - interrupt enable register
type Bus struct {
	cart Cartridge

	bootROM *boot.ROM
	booting bool

	video Video
	// peripherals in the order they are offered I/O accesses
	io  []Peripheral
	irq *interrupts.Service

	wRAM [0x2000]uint8
	hRAM [0x7F]uint8
	dma  uint8

	strict bool
	err    error

	Log log.Logger
}

// New returns a new Bus. The picture unit is offered I/O accesses
// first, followed by the given peripherals in order.
func New(cart Cartridge, video Video, irq *interrupts.Service, peripherals ...Peripheral) *Bus {
	b := &Bus{
		cart:  cart,
		video: video,
		irq:   irq,
		io:    []Peripheral{video},
		Log:   log.NewNullLogger(),
	}
	for _, p := range peripherals {
		if p != nil {
			b.io = append(b.io, p)
		}
	}
	return b
}

// SetBootROM maps rom over the start of the cartridge until BDIS is
// written. A nil rom disables the overlay.
func (b *Bus) SetBootROM(rom *boot.ROM) {
	b.bootROM = rom
	b.booting = rom != nil
}

// Booting reports whether the boot ROM is still mapped.
func (b *Bus) Booting() bool {
	return b.booting
}

// SetStrict makes accesses to the unusable ranges a BusError,
// rather than a logged anomaly.
func (b *Bus) SetStrict(strict bool) {
	b.strict = strict
}

// Err returns the first BusError raised since the last call, and
// clears it.
func (b *Bus) Err() error {
	err := b.err
	b.err = nil
	return err
}

func (b *Bus) fault(err *BusError) {
	if b.err == nil {
		b.err = err
	}
}

// Read returns the byte visible at address.
func (b *Bus) Read(address uint16) uint8 {
	if b.booting && b.bootROM.Contains(address) {
		return b.bootROM.Read(address)
	}
	if b.cart != nil {
		if v, ok := b.cart.Read(address); ok {
			return v
		}
	}

	switch {
	case types.VRAM.Contains(address):
		return b.video.ReadVRAM(address)
	case types.WRAM.Contains(address):
		return b.wRAM[types.WRAM.Offset(address)]
	case types.Echo.Contains(address):
		return b.wRAM[types.Echo.Offset(address)]
	case types.OAM.Contains(address):
		return b.video.ReadOAM(address)
	case types.Unusable.Contains(address), types.UnmappedIO.Contains(address):
		return b.unusable(Read, address, 0)
	case types.IO.Contains(address):
		return b.readIO(address)
	case types.HRAM.Contains(address):
		return b.hRAM[types.HRAM.Offset(address)]
	case address == types.IE:
		return b.irq.Enable
	}

	b.fault(&BusError{Address: address, Access: Read})
	return 0xFF
}

// Write writes value to address.
func (b *Bus) Write(address uint16, value uint8) {
	if b.cart != nil && b.cart.Write(address, value) {
		return
	}

	switch {
	case address == types.BDIS:
		// any write unmaps the boot ROM for the rest of the run
		if b.booting {
			b.Log.Debugf("bus: boot ROM disabled")
		}
		b.booting = false
	case types.VRAM.Contains(address):
		b.video.WriteVRAM(address, value)
	case types.WRAM.Contains(address):
		b.wRAM[types.WRAM.Offset(address)] = value
	case types.Echo.Contains(address):
		b.wRAM[types.Echo.Offset(address)] = value
	case types.OAM.Contains(address):
		b.video.WriteOAM(address, value)
	case types.Unusable.Contains(address), types.UnmappedIO.Contains(address):
		b.unusable(Write, address, value)
	case types.IO.Contains(address):
		b.writeIO(address, value)
	case types.HRAM.Contains(address):
		b.hRAM[types.HRAM.Offset(address)] = value
	case address == types.IE:
		b.irq.Enable = value
	default:
		b.fault(&BusError{Address: address, Access: Write, Value: value})
	}
}

func (b *Bus) unusable(access Access, address uint16, value uint8) uint8 {
	if b.strict {
		b.fault(&BusError{Address: address, Access: access, Value: value})
		return 0xFF
	}
	if access == Write {
		b.Log.Debugf("bus: write to unusable area: 0x%04X, value: 0x%02X", address, value)
	} else {
		b.Log.Debugf("bus: read from unusable area: 0x%04X", address)
	}
	return 0xFF
}

func (b *Bus) readIO(address uint16) uint8 {
	if address == types.DMA {
		return b.dma
	}
	for _, p := range b.io {
		if v, ok := p.Read(address); ok {
			return v
		}
	}
	if address == types.IF {
		return b.irq.ReadFlag()
	}

	b.Log.Debugf("bus: read from unknown IO port: 0x%04X", address)
	return 0xFF
}

func (b *Bus) writeIO(address uint16, value uint8) {
	if address == types.DMA {
		b.dma = value
		b.transferOAM(value)
		return
	}
	for _, p := range b.io {
		if p.Write(address, value) {
			return
		}
	}
	if address == types.IF {
		b.irq.WriteFlag(value)
		return
	}

	b.Log.Debugf("bus: write to IO port not implemented: 0x%04X, value: 0x%02X", address, value)
}

// transferOAM copies 160 bytes from the page selected by value into
// sprite attribute memory.
func (b *Bus) transferOAM(value uint8) {
	source := uint16(value) << 8
	for i := uint16(0); i < uint16(types.OAM.Size()); i++ {
		b.video.WriteOAM(types.OAM.Start+i, b.Read(source+i))
	}
	b.video.AddCycles(DMACycles)
}

// Advance moves every peripheral forward by the given number of
// clock cycles.
func (b *Bus) Advance(cycles int) {
	for _, p := range b.io {
		p.Advance(cycles)
	}
}

// PendingInterrupt returns the highest priority interrupt that is
// requested and enabled, without clearing it.
func (b *Bus) PendingInterrupt() (interrupts.Source, bool) {
	return b.irq.Pending()
}

// TakeInterrupt returns the highest priority interrupt that is
// requested and enabled, and clears its request bit.
func (b *Bus) TakeInterrupt() (interrupts.Source, bool) {
	return b.irq.Take()
}

// Requested reports whether src is requested, regardless of IE.
func (b *Bus) Requested(src interrupts.Source) bool {
	return b.irq.Requested(src)
}

// StopLCD powers the picture unit off, used by the STOP instruction.
func (b *Bus) StopLCD() {
	b.video.TurnOff()
}
