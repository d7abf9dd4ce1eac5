// Package gameboy assembles the hardware of the DMG into a runnable
// system.
package gameboy

import (
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/dmgboy/internal/apu"
	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/bus"
	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/cpu"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/serial"
	"github.com/thelolagemann/dmgboy/internal/timer"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// stepCycles is the number of clock cycles covered by one call to
// cpu.CPU.Step.
const stepCycles = 4

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *bus.Bus
	PPU        *ppu.PPU
	APU        *apu.APU
	Timer      *timer.Controller
	Joypad     *joypad.State
	Serial     *serial.Controller
	Interrupts *interrupts.Service
	Cartridge  cartridge.Cartridge
	BootROM    *boot.ROM

	log.Logger

	bootROM      []byte
	debug        bool
	strict       bool
	serialOutput io.Writer
}

// NewGameBoy returns a new GameBoy running rom. An error is returned
// if the cartridge type is not supported or the boot ROM is invalid.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{}
	for _, opt := range opts {
		opt(g)
	}
	if g.Logger == nil {
		g.Logger = log.NewNullLogger()
	}

	cart, err := cartridge.New(rom, log.WithComponent(g.Logger, "cartridge"))
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}
	g.Cartridge = cart

	g.Interrupts = interrupts.NewService()
	g.PPU = ppu.New(g.Interrupts, log.WithComponent(g.Logger, "ppu"))
	g.APU = apu.NewAPU()
	g.Timer = timer.NewController(g.Interrupts)
	g.Joypad = joypad.New(g.Interrupts)
	g.Serial = serial.NewController(g.Interrupts, log.WithComponent(g.Logger, "serial"))
	g.Serial.Output = g.serialOutput

	g.Bus = bus.New(cart, g.PPU, g.Interrupts, g.APU, g.Timer, g.Joypad, g.Serial)
	g.Bus.Log = log.WithComponent(g.Logger, "bus")
	g.Bus.SetStrict(g.strict)

	g.CPU = cpu.NewCPU(g.Bus, log.WithComponent(g.Logger, "cpu"))
	g.CPU.Trace = g.debug

	if g.bootROM != nil {
		if g.BootROM, err = boot.LoadBootROM(g.bootROM); err != nil {
			return nil, fmt.Errorf("gameboy: %w", err)
		}
		g.Bus.SetBootROM(g.BootROM)
		g.Infof("gameboy: boot ROM %s (%s)", g.BootROM.Model(), g.BootROM.Checksum())
	} else {
		g.CPU.SkipBoot()
		// the boot ROM leaves the APU powered on
		g.APU.Write(types.NR52, 0x80)
	}

	return g, nil
}

// Title returns the title of the loaded cartridge.
func (g *GameBoy) Title() string {
	return g.Cartridge.Title()
}

// Step advances the system by one 4 cycle quantum. The returned error
// is a *cpu.DecodeError or *bus.BusError, after which the run should
// be abandoned.
func (g *GameBoy) Step() error {
	return g.CPU.Step()
}

// Frame steps the emulation until the PPU has finished rendering the
// current frame. While the LCD is off, it returns after a frame's
// worth of cycles instead.
func (g *GameBoy) Frame() error {
	frames := g.PPU.Frames()
	for cycles := 0; g.PPU.Frames() == frames; cycles += stepCycles {
		if !g.PPU.Enabled && cycles >= ppu.FrameCycles {
			return nil
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Run emulates frames frames, or until ctx is done when frames is 0
// or less.
func (g *GameBoy) Run(ctx context.Context, frames int) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Frame(); err != nil {
			g.Errorf("gameboy: stopped at frame %d: %v", g.PPU.Frames(), err)
			return err
		}
	}
	return nil
}

// Press presses a button.
func (g *GameBoy) Press(button joypad.Button) {
	g.Joypad.Press(button)
}

// Release releases a button.
func (g *GameBoy) Release(button joypad.Button) {
	g.Joypad.Release(button)
}

// Framebuffer returns the last frame completed by the PPU.
func (g *GameBoy) Framebuffer() *ppu.Frame {
	return g.PPU.Framebuffer()
}

// FrameHash returns a hash of the last completed frame, used to
// compare runs without storing whole frames.
func (g *GameBoy) FrameHash() uint64 {
	frame := g.PPU.Framebuffer()
	d := xxhash.New()
	for y := range frame {
		d.Write(frame[y][:])
	}
	return d.Sum64()
}
