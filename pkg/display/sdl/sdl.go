//go:build sdl2

// Package sdl provides a display driver built on SDL2.
package sdl

import (
	"context"
	"time"

	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/display"
	"github.com/thelolagemann/dmgboy/pkg/utils"
	"github.com/veandco/go-sdl2/sdl"
)

var keyMap = map[sdl.Keycode]joypad.Button{
	sdl.K_k:      joypad.ButtonA,
	sdl.K_j:      joypad.ButtonB,
	sdl.K_SPACE:  joypad.ButtonSelect,
	sdl.K_RETURN: joypad.ButtonStart,
	sdl.K_RIGHT:  joypad.ButtonRight,
	sdl.K_LEFT:   joypad.ButtonLeft,
	sdl.K_UP:     joypad.ButtonUp,
	sdl.K_DOWN:   joypad.ButtonDown,
}

type driver struct {
	scale   int
	palette int
}

func init() {
	d := &driver{}
	display.Install("sdl", d, []display.DriverOption{
		{Name: "scale", Default: 4, Value: &d.scale, Description: "window scale"},
		{Name: "palette", Default: palette.Greyscale, Value: &d.palette, Description: "palette (0 grey, 1 green, 2 red, 3 yellow)"},
	})
}

// Run opens a window and emulates frames paced to display.FrameTime
// until the window is closed.
func (d *driver) Run(ctx context.Context, emu display.Emulator) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"dmgboy | "+emu.Title(),
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth*d.scale),
		int32(ppu.ScreenHeight*d.scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	// ABGR8888 matches the byte order of image.RGBA on little endian hosts
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth,
		ppu.ScreenHeight,
	)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	pal := palette.Get(d.palette)
	ticker := time.NewTicker(display.FrameTime)
	defer ticker.Stop()

	for {
		if d.handleEvents(emu) {
			return nil
		}
		if err := emu.Frame(); err != nil {
			return err
		}

		pixels, _, err := texture.Lock(nil)
		if err != nil {
			return err
		}
		copy(pixels, utils.FrameImage(emu.Framebuffer(), pal).Pix)
		texture.Unlock()

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// handleEvents forwards key events to emu, reporting whether the
// window was closed.
func (d *driver) handleEvents(emu display.Emulator) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			button, ok := keyMap[e.Keysym.Sym]
			if !ok || e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				emu.Press(button)
			} else {
				emu.Release(button)
			}
		}
	}
	return false
}
