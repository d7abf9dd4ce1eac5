package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

// shiftDevice sends the bits of out, most significant first, and
// records the bits it receives.
type shiftDevice struct {
	out uint8
	in  uint8
}

func (d *shiftDevice) Send() bool {
	bit := d.out&types.Bit7 != 0
	d.out <<= 1
	return bit
}

func (d *shiftDevice) Receive(bit bool) {
	d.in <<= 1
	if bit {
		d.in |= 1
	}
}

func TestController_Transfer(t *testing.T) {
	irq := interrupts.NewService()
	var out bytes.Buffer
	c := NewController(irq, nil)
	c.Output = &out

	c.Write(types.SB, 'H')
	c.Write(types.SC, 0x81)
	sc, _ := c.Read(types.SC)
	assert.Equal(t, uint8(0xFF), sc)

	c.Advance(TransferCycles - 4)
	assert.False(t, irq.Requested(interrupts.Serial))
	assert.Empty(t, out.Bytes())

	c.Advance(4)
	assert.True(t, irq.Requested(interrupts.Serial))
	sb, _ := c.Read(types.SB)
	assert.Equal(t, uint8(0xFF), sb, "no device shifts in ones")
	sc, _ = c.Read(types.SC)
	assert.Equal(t, uint8(0x7F), sc)
	assert.Equal(t, "H", out.String())

	// completed transfers stay idle
	c.Advance(TransferCycles)
	assert.Equal(t, "H", out.String())
}

func TestController_Device(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq, nil)
	d := &shiftDevice{out: 0xA5}
	c.Attach(d)

	c.Write(types.SB, 0x3C)
	c.Write(types.SC, 0x81)
	c.Advance(TransferCycles)

	sb, _ := c.Read(types.SB)
	assert.Equal(t, uint8(0xA5), sb)
	assert.Equal(t, uint8(0x3C), d.in)
}

func TestController_ExternalClock(t *testing.T) {
	irq := interrupts.NewService()
	c := NewController(irq, nil)
	c.Write(types.SB, 0x12)
	c.Write(types.SC, 0x80)
	c.Advance(TransferCycles * 2)

	sb, _ := c.Read(types.SB)
	assert.Equal(t, uint8(0x12), sb)
	assert.False(t, irq.Requested(interrupts.Serial))
	_, ok := c.Read(types.DIV)
	assert.False(t, ok)
}
