package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
)

// testVideo is a picture unit that only stores memory and registers.
type testVideo struct {
	vram   [0x2000]uint8
	oam    [0xA0]uint8
	regs   map[uint16]uint8
	stall  int
	off    bool
	ticked int
}

func newTestVideo() *testVideo {
	return &testVideo{regs: map[uint16]uint8{0xFF40: 0x91}}
}

func (v *testVideo) Read(address uint16) (uint8, bool) {
	val, ok := v.regs[address]
	return val, ok
}

func (v *testVideo) Write(address uint16, value uint8) bool {
	if _, ok := v.regs[address]; ok {
		v.regs[address] = value
		return true
	}
	return false
}

func (v *testVideo) Advance(cycles int)                    { v.ticked += cycles }
func (v *testVideo) ReadVRAM(address uint16) uint8         { return v.vram[address-0x8000] }
func (v *testVideo) WriteVRAM(address uint16, value uint8) { v.vram[address-0x8000] = value }
func (v *testVideo) ReadOAM(address uint16) uint8          { return v.oam[address-0xFE00] }
func (v *testVideo) WriteOAM(address uint16, value uint8)  { v.oam[address-0xFE00] = value }
func (v *testVideo) AddCycles(cycles int)                  { v.stall += cycles }
func (v *testVideo) TurnOff()                              { v.off = true }

// register is a peripheral answering to a single address.
type register struct {
	address uint16
	value   uint8
	ticked  int
}

func (r *register) Read(address uint16) (uint8, bool) {
	return r.value, address == r.address
}

func (r *register) Write(address uint16, value uint8) bool {
	if address != r.address {
		return false
	}
	r.value = value
	return true
}

func (r *register) Advance(cycles int) { r.ticked += cycles }

func newTestBus(rom []byte, peripherals ...Peripheral) (*Bus, *testVideo) {
	video := newTestVideo()
	return New(cartridge.NewROMCartridge(rom), video, interrupts.NewService(), peripherals...), video
}

func TestBus_WorkRAM(t *testing.T) {
	b, _ := newTestBus(nil)

	t.Run("echo mirrors work RAM", func(t *testing.T) {
		b.Write(0xC010, 0x42)
		assert.Equal(t, uint8(0x42), b.Read(0xE010))
	})
	t.Run("writes through echo", func(t *testing.T) {
		b.Write(0xFDFF, 0x24)
		assert.Equal(t, uint8(0x24), b.Read(0xDDFF))
	})
	t.Run("high RAM", func(t *testing.T) {
		b.Write(0xFF80, 0x01)
		b.Write(0xFFFE, 0x02)
		assert.Equal(t, uint8(0x01), b.Read(0xFF80))
		assert.Equal(t, uint8(0x02), b.Read(0xFFFE))
	})
	assert.NoError(t, b.Err())
}

func TestBus_Routing(t *testing.T) {
	timer := &register{address: 0xFF07, value: 0xF8}
	shadow := &register{address: 0xFF07, value: 0x00}
	b, video := newTestBus([]byte{0x00, 0xC3, 0x50, 0x01}, timer, shadow)

	t.Run("cartridge", func(t *testing.T) {
		assert.Equal(t, uint8(0xC3), b.Read(0x0001))
	})
	t.Run("video", func(t *testing.T) {
		b.Write(0x8000, 0x3C)
		b.Write(0xFE00, 0x10)
		assert.Equal(t, uint8(0x3C), video.vram[0])
		assert.Equal(t, uint8(0x10), b.Read(0xFE00))
		assert.Equal(t, uint8(0x91), b.Read(0xFF40))
	})
	t.Run("first peripheral wins", func(t *testing.T) {
		assert.Equal(t, uint8(0xF8), b.Read(0xFF07))
		b.Write(0xFF07, 0x05)
		assert.Equal(t, uint8(0x05), timer.value)
		assert.Equal(t, uint8(0x00), shadow.value)
	})
	t.Run("interrupt registers", func(t *testing.T) {
		b.Write(0xFF0F, 0x05)
		b.Write(0xFFFF, 0x1F)
		assert.Equal(t, uint8(0xE5), b.Read(0xFF0F))
		assert.Equal(t, uint8(0x1F), b.Read(0xFFFF))
	})
	t.Run("unknown io port", func(t *testing.T) {
		assert.Equal(t, uint8(0xFF), b.Read(0xFF03))
	})
	t.Run("unusable", func(t *testing.T) {
		b.Write(0xFEA0, 0x01)
		assert.Equal(t, uint8(0xFF), b.Read(0xFEA0))
		assert.Equal(t, uint8(0xFF), b.Read(0xFF7F))
		assert.NoError(t, b.Err())
	})
	t.Run("advance", func(t *testing.T) {
		b.Advance(4)
		assert.Equal(t, 4, video.ticked)
		assert.Equal(t, 4, timer.ticked)
		assert.Equal(t, 4, shadow.ticked)
	})
	t.Run("stop", func(t *testing.T) {
		b.StopLCD()
		assert.True(t, video.off)
	})
}

func TestBus_Strict(t *testing.T) {
	b, _ := newTestBus(nil)
	b.SetStrict(true)

	b.Read(0xFEA0)
	err := b.Err()
	var busErr *BusError
	require.True(t, errors.As(err, &busErr))
	assert.Equal(t, uint16(0xFEA0), busErr.Address)
	assert.Equal(t, Read, busErr.Access)

	b.Write(0xFF4C, 0x12)
	err = b.Err()
	require.True(t, errors.As(err, &busErr))
	assert.Equal(t, Write, busErr.Access)
	assert.Equal(t, "bus: unmapped write to 0xFF4C (value 0x12)", err.Error())

	assert.NoError(t, b.Err(), "errors are cleared once returned")
}

func TestBus_NoCartridge(t *testing.T) {
	b := New(nil, newTestVideo(), interrupts.NewService())

	assert.Equal(t, uint8(0xFF), b.Read(0x0100))
	var busErr *BusError
	require.ErrorAs(t, b.Err(), &busErr)
	assert.Equal(t, uint16(0x0100), busErr.Address)

	b.Write(0x2000, 0x01)
	require.ErrorAs(t, b.Err(), &busErr)
	assert.Equal(t, Write, busErr.Access)
}

func TestBus_BootROM(t *testing.T) {
	image := make([]byte, boot.Size)
	for i := range image {
		image[i] = 0xAA
	}
	rom, err := boot.LoadBootROM(image)
	require.NoError(t, err)

	cart := make([]byte, 0x200)
	cart[0x0000] = 0x11
	cart[0x0100] = 0x22
	b, _ := newTestBus(cart)
	b.SetBootROM(rom)

	assert.True(t, b.Booting())
	assert.Equal(t, uint8(0xAA), b.Read(0x0000))
	assert.Equal(t, uint8(0x22), b.Read(0x0100), "overlay only covers 256 bytes")

	b.Write(0xFF50, 0x01)
	assert.False(t, b.Booting())
	assert.Equal(t, uint8(0x11), b.Read(0x0000))

	// the overlay never comes back
	b.Write(0xFF50, 0x00)
	assert.Equal(t, uint8(0x11), b.Read(0x0000))
}

func TestBus_DMA(t *testing.T) {
	b, video := newTestBus(nil)
	for i := uint16(0); i < 0xA0; i++ {
		b.Write(0xC100+i, uint8(i))
	}

	b.Write(0xFF46, 0xC1)

	for i := 0; i < 0xA0; i++ {
		assert.Equal(t, uint8(i), video.oam[i])
	}
	assert.Equal(t, DMACycles, video.stall)
	assert.Equal(t, uint8(0xC1), b.Read(0xFF46))
}

func TestBus_Interrupts(t *testing.T) {
	b, _ := newTestBus(nil)
	b.Write(0xFFFF, 0x05)
	b.Write(0xFF0F, 0x05)

	src, ok := b.PendingInterrupt()
	require.True(t, ok)
	assert.Equal(t, interrupts.VBlank, src)

	src, _ = b.TakeInterrupt()
	assert.Equal(t, interrupts.VBlank, src)
	src, _ = b.TakeInterrupt()
	assert.Equal(t, interrupts.Timer, src)
	_, ok = b.TakeInterrupt()
	assert.False(t, ok)

	b.Write(0xFF0F, 0x10)
	assert.True(t, b.Requested(interrupts.Joypad))
	_, ok = b.PendingInterrupt()
	assert.False(t, ok, "joypad is not enabled")
}
