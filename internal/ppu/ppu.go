// Package ppu provides the picture processing unit of the DMG. It
// owns video RAM and OAM, runs the LCD mode state machine that the
// CPU synchronises against, and renders each line into a framebuffer
// of 2-bit shades.
package ppu

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/ppu/lcd"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// LineCycles is the duration of one line, visible or not.
	LineCycles = 456
	// linesPerFrame counts the 144 visible lines and 10 VBlank lines.
	linesPerFrame = 154
	// FrameCycles is the duration of a whole frame.
	FrameCycles = LineCycles * linesPerFrame

	// lcdcReset is the value of types.LCDC when the boot ROM hands
	// over.
	lcdcReset = 0x91
)

// Frame is a screen of shades, 0 being the lightest and 3 the darkest.
type Frame [ScreenHeight][ScreenWidth]uint8

// PPU is the picture processing unit.
type PPU struct {
	*lcd.Controller
	*lcd.Status

	scy, scx uint8
	ly, lyc  uint8
	wy, wx   uint8

	bgp, obp0, obp1 palette.Register

	vRAM [0x2000]uint8
	oam  OAM

	// cycles spent in the current mode.
	cycles int
	// stall holds cycles the state machine is held for by AddCycles.
	stall int
	// statLine is the last state of the STAT interrupt line.
	statLine bool
	// windowLine is the line of the window to draw next, it only
	// advances on lines where the window was drawn.
	windowLine uint8

	back, front Frame
	frames      uint64

	irq *interrupts.Service
	log log.Logger
}

// New returns a PPU in the state the boot ROM leaves it, with the LCD
// on and at the start of line 0.
func New(irq *interrupts.Service, l log.Logger) *PPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	p := &PPU{
		Controller: lcd.NewController(lcdcReset),
		Status:     &lcd.Status{Mode: lcd.OAM},
		bgp:        0xFC,
		obp0:       0xFF,
		obp1:       0xFF,
		irq:        irq,
		log:        l,
	}
	p.updateCoincidence()
	return p
}

// Read returns the value of an LCD register. types.DMA is not
// handled here.
func (p *PPU) Read(address uint16) (uint8, bool) {
	switch address {
	case types.LCDC:
		return p.Controller.Read(), true
	case types.STAT:
		return p.Status.Read(), true
	case types.SCY:
		return p.scy, true
	case types.SCX:
		return p.scx, true
	case types.LY:
		return p.ly, true
	case types.LYC:
		return p.lyc, true
	case types.BGP:
		return uint8(p.bgp), true
	case types.OBP0:
		return uint8(p.obp0), true
	case types.OBP1:
		return uint8(p.obp1), true
	case types.WY:
		return p.wy, true
	case types.WX:
		return p.wx, true
	}
	return 0, false
}

// Write writes an LCD register.
func (p *PPU) Write(address uint16, value uint8) bool {
	switch address {
	case types.LCDC:
		wasEnabled := p.Enabled
		p.Controller.Write(value)
		switch {
		case wasEnabled && !p.Enabled:
			p.powerOff()
		case !wasEnabled && p.Enabled:
			p.restart()
		}
	case types.STAT:
		p.Status.Write(value)
		p.statUpdate()
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LY:
		// writing LY restarts the frame at line 0
		p.restart()
	case types.LYC:
		p.lyc = value
		p.updateCoincidence()
		p.statUpdate()
	case types.BGP:
		p.bgp = palette.Register(value)
	case types.OBP0:
		p.obp0 = palette.Register(value)
	case types.OBP1:
		p.obp1 = palette.Register(value)
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	default:
		return false
	}
	return true
}

// ReadVRAM returns the byte of video RAM at address.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	return p.vRAM[types.VRAM.Offset(address)]
}

// WriteVRAM writes the byte of video RAM at address.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	p.vRAM[types.VRAM.Offset(address)] = value
}

// ReadOAM returns the byte of OAM at address.
func (p *PPU) ReadOAM(address uint16) uint8 {
	return p.oam.Read(types.OAM.Offset(address))
}

// WriteOAM writes the byte of OAM at address.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	p.oam.Write(types.OAM.Offset(address), value)
}

// AddCycles holds the state machine for cycles.
func (p *PPU) AddCycles(cycles int) {
	p.stall += cycles
}

// TurnOff turns the LCD off, as if bit 7 of types.LCDC was reset.
func (p *PPU) TurnOff() {
	if p.Enabled {
		p.Enabled = false
		p.powerOff()
	}
}

// Frames returns the number of frames completed, a frame completes
// when the LCD enters VBlank.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Framebuffer returns the last completed frame.
func (p *PPU) Framebuffer() *Frame {
	return &p.front
}

// Advance runs the mode state machine for cycles. Nothing happens
// while the LCD is off.
func (p *PPU) Advance(cycles int) {
	if !p.Enabled {
		return
	}
	if p.stall > 0 {
		held := min(p.stall, cycles)
		p.stall -= held
		cycles -= held
	}

	p.cycles += cycles
	for p.Enabled && p.cycles >= p.Mode.Cycles() {
		p.cycles -= p.Mode.Cycles()
		p.nextMode()
	}
}

// nextMode moves the state machine on from the mode that just ended.
func (p *PPU) nextMode() {
	switch p.Mode {
	case lcd.OAM:
		p.Mode = lcd.VRAM
	case lcd.VRAM:
		p.renderScanline()
		p.Mode = lcd.HBlank
	case lcd.HBlank:
		p.setLY(p.ly + 1)
		if p.ly == ScreenHeight {
			p.Mode = lcd.VBlank
			p.irq.Request(interrupts.VBlank)
			p.front = p.back
			p.frames++
		} else {
			p.Mode = lcd.OAM
		}
	case lcd.VBlank:
		if p.ly+1 == linesPerFrame {
			p.setLY(0)
			p.windowLine = 0
			p.Mode = lcd.OAM
		} else {
			p.setLY(p.ly + 1)
		}
	}
	p.statUpdate()
}

func (p *PPU) setLY(ly uint8) {
	p.ly = ly
	p.updateCoincidence()
}

func (p *PPU) updateCoincidence() {
	p.Coincidence = p.ly == p.lyc
}

// statUpdate requests the LCD interrupt on a rising edge of the STAT
// interrupt line.
func (p *PPU) statUpdate() {
	line := p.Enabled && p.InterruptLine()
	if line && !p.statLine {
		p.irq.Request(interrupts.LCD)
	}
	p.statLine = line
}

// restart begins a frame from the OAM search of line 0.
func (p *PPU) restart() {
	p.cycles = 0
	p.windowLine = 0
	p.Mode = lcd.OAM
	p.setLY(0)
	p.statUpdate()
}

// powerOff resets LY and the mode, the screen goes blank.
func (p *PPU) powerOff() {
	p.log.Debugf("ppu: lcd off at line %d", p.ly)
	p.cycles = 0
	p.stall = 0
	p.Mode = lcd.HBlank
	p.setLY(0)
	p.statLine = false
	p.back = Frame{}
	p.front = Frame{}
}
