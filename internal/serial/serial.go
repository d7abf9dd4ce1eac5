// Package serial provides the serial port of the Game Boy, used to
// link two systems together. Only the internal clock is driven, as
// there is never a second system to provide an external one.
package serial

import (
	"io"

	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

const (
	// ticksPerBit is the number of cycles taken to shift one bit with
	// the internal 8192 Hz clock.
	ticksPerBit = 512
	// TransferCycles is the duration of a whole byte transfer.
	TransferCycles = 8 * ticksPerBit

	transferStart = types.Bit7 | types.Bit0
)

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, it has a mix of the incoming data and the outgoing data.
// each bit, the leftmost bit of data is sent to the attached device, and
// shifted out of data, and the incoming bit is shifted into data.
//
// example:
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Bit 1  : data = o6 o5 o4 o3 o2 o1 o0 i0
//	...
//	Bit 8  : data = i0 i1 i2 i3 i4 i5 i6 i7
//
// Where o0-o7 are the outgoing bits, and i0-i7 are the incoming bits.
type Controller struct {
	data    uint8 // types.SB
	control uint8 // types.SC, bits 0 and 7

	count    uint8 // the number of bits that have been transferred.
	cycles   int   // cycles until the next bit is shifted.
	outgoing uint8 // the byte being sent.

	AttachedDevice Device // the device that is attached to this controller.
	// Output receives every byte shifted out by a completed transfer.
	Output io.Writer

	irq *interrupts.Service
	log log.Logger
}

// NewController creates a new Controller. By default, the Controller is
// attached to a nullDevice, which acts as if there is no device attached.
// This is the same as if the link cable is not plugged in, every
// incoming bit reads as 1.
func NewController(irq *interrupts.Service, l log.Logger) *Controller {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
		log:            l,
	}
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// Read returns SB, or SC with its unused bits set.
func (c *Controller) Read(address uint16) (uint8, bool) {
	switch address {
	case types.SB:
		return c.data, true
	case types.SC:
		return c.control | 0x7E, true
	}
	return 0, false
}

// Write writes SB or SC. Setting bits 7 and 0 of SC starts a transfer
// on the internal clock.
func (c *Controller) Write(address uint16, value uint8) bool {
	switch address {
	case types.SB:
		c.data = value
	case types.SC:
		c.control = value & transferStart
		if c.transferring() {
			c.count = 0
			c.cycles = ticksPerBit
			c.outgoing = c.data
		}
	default:
		return false
	}
	return true
}

// Advance shifts the bits that are due after cycles.
func (c *Controller) Advance(cycles int) {
	if !c.transferring() {
		return
	}
	c.cycles -= cycles
	for c.cycles <= 0 && c.transferring() {
		c.shift()
		c.cycles += ticksPerBit
	}
}

func (c *Controller) transferring() bool {
	return c.control&transferStart == transferStart
}

// shift exchanges one bit with the attached device, completing the
// transfer after the eighth.
func (c *Controller) shift() {
	in := c.AttachedDevice.Send()
	c.AttachedDevice.Receive(c.data&types.Bit7 != 0)

	c.data <<= 1
	if in {
		c.data |= 1
	}

	c.count++
	if c.count < 8 {
		return
	}

	c.control &^= types.Bit7
	c.irq.Request(interrupts.Serial)
	if c.Output != nil {
		if _, err := c.Output.Write([]byte{c.outgoing}); err != nil {
			c.log.Errorf("serial: writing output: %v", err)
		}
	}
}
