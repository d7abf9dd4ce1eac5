package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/ppu/lcd"
	"github.com/thelolagemann/dmgboy/internal/types"
)

func newTestPPU() (*PPU, *interrupts.Service) {
	irq := interrupts.NewService()
	return New(irq, nil), irq
}

func readReg(t *testing.T, p *PPU, address uint16) uint8 {
	t.Helper()
	v, ok := p.Read(address)
	assert.True(t, ok, "0x%04X", address)
	return v
}

func TestPPU_Reset(t *testing.T) {
	p, _ := newTestPPU()
	assert.Equal(t, uint8(0x91), readReg(t, p, types.LCDC))
	assert.Equal(t, uint8(0x86), readReg(t, p, types.STAT), "mode 2, coincidence at line 0")
	assert.Equal(t, uint8(0xFC), readReg(t, p, types.BGP))

	_, ok := p.Read(types.DMA)
	assert.False(t, ok)
	assert.False(t, p.Write(types.DMA, 0xC0))
}

func TestPPU_Modes(t *testing.T) {
	p, irq := newTestPPU()

	p.Advance(79)
	assert.Equal(t, lcd.OAM, p.Mode)
	p.Advance(1)
	assert.Equal(t, lcd.VRAM, p.Mode)
	p.Advance(172)
	assert.Equal(t, lcd.HBlank, p.Mode)
	p.Advance(204)
	assert.Equal(t, lcd.OAM, p.Mode)
	assert.Equal(t, uint8(1), readReg(t, p, types.LY))

	p.Advance(LineCycles * 143)
	assert.Equal(t, uint8(144), readReg(t, p, types.LY))
	assert.Equal(t, lcd.VBlank, p.Mode)
	assert.True(t, irq.Requested(interrupts.VBlank))
	assert.Equal(t, uint64(1), p.Frames())

	p.Advance(LineCycles * 9)
	assert.Equal(t, uint8(153), readReg(t, p, types.LY))
	p.Advance(LineCycles)
	assert.Equal(t, uint8(0), readReg(t, p, types.LY))
	assert.Equal(t, lcd.OAM, p.Mode)

	p.Advance(FrameCycles)
	assert.Equal(t, uint64(2), p.Frames())
}

func TestPPU_WriteLY(t *testing.T) {
	p, _ := newTestPPU()
	p.Advance(LineCycles*10 + 100)
	assert.Equal(t, uint8(10), readReg(t, p, types.LY))

	p.Write(types.LY, 0x50)
	assert.Equal(t, uint8(0), readReg(t, p, types.LY))
	assert.Equal(t, lcd.OAM, p.Mode)
	p.Advance(79)
	assert.Equal(t, lcd.OAM, p.Mode)
}

func TestPPU_STAT(t *testing.T) {
	p, irq := newTestPPU()

	p.Write(types.STAT, 0xFF)
	assert.Equal(t, uint8(0xFE), readReg(t, p, types.STAT))
	p.Write(types.STAT, 0x78)
	assert.Equal(t, uint8(0xFE), readReg(t, p, types.STAT), "bits 0-2 are read only")

	irq.Flag = 0
	p.Write(types.STAT, 0x40)
	p.Write(types.LYC, 2)
	assert.False(t, irq.Requested(interrupts.LCD))

	p.Advance(LineCycles * 2)
	assert.True(t, irq.Requested(interrupts.LCD))
	assert.NotZero(t, readReg(t, p, types.STAT)&types.Bit2)

	irq.Flag = 0
	p.Write(types.STAT, 0x08)
	p.Advance(LineCycles - 1)
	assert.True(t, irq.Requested(interrupts.LCD), "hblank interrupt")
}

func TestPPU_PowerOff(t *testing.T) {
	p, _ := newTestPPU()
	p.Advance(LineCycles*5 + 300)

	p.Write(types.LCDC, 0x11)
	assert.Equal(t, uint8(0), readReg(t, p, types.LY))
	assert.Equal(t, uint8(0x80), readReg(t, p, types.STAT)&0x83)
	p.Advance(FrameCycles)
	assert.Equal(t, uint8(0), readReg(t, p, types.LY))
	assert.Equal(t, uint64(0), p.Frames())

	p.Write(types.LCDC, 0x91)
	assert.Equal(t, lcd.OAM, p.Mode)
	p.Advance(LineCycles)
	assert.Equal(t, uint8(1), readReg(t, p, types.LY))

	p.TurnOff()
	assert.Equal(t, uint8(0x11), readReg(t, p, types.LCDC))
	assert.Equal(t, uint8(0), readReg(t, p, types.LY))
}

func TestPPU_Stall(t *testing.T) {
	p, _ := newTestPPU()
	p.AddCycles(640)
	p.Advance(640)
	assert.Equal(t, lcd.OAM, p.Mode)
	p.Advance(80)
	assert.Equal(t, lcd.VRAM, p.Mode)
}

func TestPPU_Memory(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteVRAM(0x9FFF, 0x12)
	assert.Equal(t, uint8(0x12), p.ReadVRAM(0x9FFF))

	p.WriteOAM(0xFE00, 0x20)
	p.WriteOAM(0xFE01, 0x18)
	p.WriteOAM(0xFE02, 0x05)
	p.WriteOAM(0xFE03, 0xF0)
	assert.Equal(t, uint8(0xF0), p.ReadOAM(0xFE03))
	s := p.oam.Sprites[0]
	assert.Equal(t, uint8(0x20), s.Y)
	assert.Equal(t, uint8(0x18), s.X)
	assert.Equal(t, uint8(0x05), s.TileID)
	assert.False(t, s.priority)
	assert.True(t, s.flipY)
	assert.True(t, s.flipX)
	assert.True(t, s.useSecondPalette)
}

// writeTile fills tile id at 0x8000 with a single colour.
func writeTile(p *PPU, id uint8, colour uint8) {
	for row := uint16(0); row < 8; row++ {
		var low, high uint8
		if colour&1 != 0 {
			low = 0xFF
		}
		if colour&2 != 0 {
			high = 0xFF
		}
		address := 0x8000 + uint16(id)*16 + row*2
		p.WriteVRAM(address, low)
		p.WriteVRAM(address+1, high)
	}
}

func renderFrame(p *PPU) *Frame {
	p.Advance(FrameCycles)
	return p.Framebuffer()
}

func TestPPU_RenderBackground(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(types.BGP, 0xE4) // identity palette
	writeTile(p, 1, 3)
	p.WriteVRAM(0x9800, 1) // top left tile

	f := renderFrame(p)
	assert.Equal(t, uint8(3), f[0][0])
	assert.Equal(t, uint8(3), f[7][7])
	assert.Equal(t, uint8(0), f[0][8])
	assert.Equal(t, uint8(0), f[8][0])

	// scrolling moves the tile up and left
	p.Write(types.SCX, 4)
	p.Write(types.SCY, 4)
	f = renderFrame(p)
	assert.Equal(t, uint8(3), f[3][3])
	assert.Equal(t, uint8(0), f[4][4])

	// the map wraps around after 256 pixels
	p.Write(types.SCX, 252)
	p.Write(types.SCY, 0)
	f = renderFrame(p)
	assert.Equal(t, uint8(0), f[0][3])
	assert.Equal(t, uint8(3), f[0][4])
	assert.Equal(t, uint8(3), f[0][11])
	assert.Equal(t, uint8(0), f[0][12])
}

func TestPPU_RenderSignedTiles(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(types.BGP, 0xE4)
	p.Write(types.LCDC, 0x81) // tile data at 0x8800
	for row := uint16(0); row < 8; row++ {
		p.WriteVRAM(0x8800+row*2, 0xFF)   // tile -128, colour 1
		p.WriteVRAM(0x9000+row*2+1, 0xFF) // tile 0, colour 2
	}
	p.WriteVRAM(0x9800, 0x80)
	p.WriteVRAM(0x9801, 0x00)

	f := renderFrame(p)
	assert.Equal(t, uint8(1), f[0][0])
	assert.Equal(t, uint8(2), f[0][8])
}

func TestPPU_RenderWindow(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(types.BGP, 0xE4)
	writeTile(p, 2, 2)
	for i := uint16(0); i < 0x400; i++ {
		p.WriteVRAM(0x9C00+i, 2)
	}
	p.Write(types.LCDC, 0xF1) // window on, map at 0x9C00
	p.Write(types.WY, 100)
	p.Write(types.WX, 87)

	f := renderFrame(p)
	assert.Equal(t, uint8(0), f[99][100])
	assert.Equal(t, uint8(0), f[100][79])
	assert.Equal(t, uint8(2), f[100][80])
	assert.Equal(t, uint8(2), f[143][159])
}

func TestPPU_RenderSprites(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(types.BGP, 0xE4)
	p.Write(types.OBP0, 0xE4)
	p.Write(types.OBP1, 0x00)
	p.Write(types.LCDC, 0x93)
	writeTile(p, 1, 1)
	writeTile(p, 4, 3)
	p.WriteVRAM(0x9800, 1) // background colour 1 at (0,0)-(7,7)
	p.WriteVRAM(0x9802, 1) // and at (16,0)-(23,7)

	sprite := func(i uint16, y, x, tile, attrs uint8) {
		base := 0xFE00 + i*4
		p.WriteOAM(base, y)
		p.WriteOAM(base+1, x)
		p.WriteOAM(base+2, tile)
		p.WriteOAM(base+3, attrs)
	}
	sprite(0, 16, 8, 4, 0x00)       // (0,0), above background
	sprite(1, 16+20, 8+20, 4, 0x80) // behind background, over colour 0
	sprite(2, 16+40, 8+40, 4, 0x10) // second palette
	sprite(3, 16+2, 8+18, 4, 0x80)  // behind the colour 1 background
	sprite(4, 16+2, 8+4, 4, 0x10)   // overlaps sprite 0

	f := renderFrame(p)
	assert.Equal(t, uint8(3), f[0][0])
	assert.Equal(t, uint8(3), f[20][20])
	assert.Equal(t, uint8(0), f[40][40])
	assert.Equal(t, uint8(1), f[3][20], "behind background colour 1")
	assert.Equal(t, uint8(3), f[3][24], "over background colour 0")
	assert.Equal(t, uint8(3), f[2][4], "sprite 0 has the lower X")
	assert.Equal(t, uint8(0), f[2][9], "sprite 4 beyond sprite 0")
}

func TestPPU_RenderSpriteLimit(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(types.OBP0, 0xE4)
	p.Write(types.LCDC, 0x83)
	writeTile(p, 1, 3)
	for i := uint16(0); i < 12; i++ {
		base := 0xFE00 + i*4
		p.WriteOAM(base, 16)
		p.WriteOAM(base+1, uint8(8+i*10))
		p.WriteOAM(base+2, 1)
	}

	f := renderFrame(p)
	assert.Equal(t, uint8(3), f[0][90])
	assert.Equal(t, uint8(0), f[0][100], "only 10 sprites per line")
}
