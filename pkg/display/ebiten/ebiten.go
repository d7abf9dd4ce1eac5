//go:build ebiten

// Package ebiten provides a display driver built on ebiten.
package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/display"
	"github.com/thelolagemann/dmgboy/pkg/utils"
)

var keyMap = map[ebiten.Key]joypad.Button{
	ebiten.KeyK:          joypad.ButtonA,
	ebiten.KeyJ:          joypad.ButtonB,
	ebiten.KeySpace:      joypad.ButtonSelect,
	ebiten.KeyEnter:      joypad.ButtonStart,
	ebiten.KeyArrowRight: joypad.ButtonRight,
	ebiten.KeyArrowLeft:  joypad.ButtonLeft,
	ebiten.KeyArrowUp:    joypad.ButtonUp,
	ebiten.KeyArrowDown:  joypad.ButtonDown,
}

type driver struct {
	scale   int
	palette int
}

func init() {
	d := &driver{}
	display.Install("ebiten", d, []display.DriverOption{
		{Name: "scale", Default: 4, Value: &d.scale, Description: "window scale"},
		{Name: "palette", Default: palette.Greyscale, Value: &d.palette, Description: "palette (0 grey, 1 green, 2 red, 3 yellow)"},
	})
}

// game implements ebiten.Game, emulating one frame per tick.
type game struct {
	ctx     context.Context
	emu     display.Emulator
	palette int
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, button := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			g.emu.Press(button)
		} else if inpututil.IsKeyJustReleased(key) {
			g.emu.Release(button)
		}
	}
	// C cycles the palette
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.palette = (g.palette + 1) % len(palette.Palettes)
	}
	return g.emu.Frame()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(utils.FrameImage(g.emu.Framebuffer(), palette.Get(g.palette)).Pix)
}

func (g *game) Layout(_, _ int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

// Run opens a window and emulates a frame every tick until the
// window is closed.
func (d *driver) Run(ctx context.Context, emu display.Emulator) error {
	ebiten.SetWindowTitle("dmgboy | " + emu.Title())
	ebiten.SetWindowSize(ppu.ScreenWidth*d.scale, ppu.ScreenHeight*d.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	return ebiten.RunGame(&game{ctx: ctx, emu: emu, palette: d.palette})
}
