// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

// bits maps the clock select of TAC to the bit of the system counter
// whose falling edge increments TIMA.
//
//	00 - bit 9, 4096 Hz
//	01 - bit 3, 262144 Hz
//	10 - bit 5, 65536 Hz
//	11 - bit 7, 16384 Hz
var bits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// reloadDelay is the number of cycles TIMA reads as 0 after it
// overflows, before TMA is loaded and the interrupt requested.
const reloadDelay = 4

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	// counter is the 16-bit system counter, DIV is its upper byte.
	counter uint16

	tima uint8
	tma  uint8
	tac  uint8

	// reloading counts down the cycles until TMA is loaded into TIMA
	// after an overflow.
	reloading int

	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Read returns the value of a timer register.
func (c *Controller) Read(address uint16) (uint8, bool) {
	switch address {
	case types.DIV:
		return uint8(c.counter >> 8), true
	case types.TIMA:
		return c.tima, true
	case types.TMA:
		return c.tma, true
	case types.TAC:
		return c.tac | 0xF8, true
	}
	return 0, false
}

// Write writes to a timer register. Writing any value to DIV resets
// the whole system counter, which can itself tick TIMA.
func (c *Controller) Write(address uint16, value uint8) bool {
	switch address {
	case types.DIV:
		c.setCounter(0)
	case types.TIMA:
		// a write during the reload delay cancels the reload
		c.tima = value
		c.reloading = 0
	case types.TMA:
		c.tma = value
	case types.TAC:
		before := c.signal()
		c.tac = value & 0x07
		c.edge(before)
	default:
		return false
	}
	return true
}

// Advance moves the system counter forward by cycles.
func (c *Controller) Advance(cycles int) {
	for i := 0; i < cycles; i++ {
		if c.reloading > 0 {
			c.reloading--
			if c.reloading == 0 {
				c.tima = c.tma
				c.irq.Request(interrupts.Timer)
			}
		}
		c.setCounter(c.counter + 1)
	}
}

// Enabled reports whether TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// signal is the input to the TIMA edge detector: the selected counter
// bit, gated by the enable bit.
func (c *Controller) signal() bool {
	return c.Enabled() && c.counter&bits[c.tac&0x03] != 0
}

func (c *Controller) setCounter(value uint16) {
	before := c.signal()
	c.counter = value
	c.edge(before)
}

// edge increments TIMA on a falling edge of signal.
func (c *Controller) edge(before bool) {
	if !before || c.signal() {
		return
	}
	c.tima++
	if c.tima == 0 {
		c.reloading = reloadDelay
	}
}
