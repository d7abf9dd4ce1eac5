package utils

import (
	"image"
	"image/png"
	"os"

	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"golang.org/x/image/draw"
)

// FrameImage converts the shades of frame into an image using pal.
func FrameImage(frame *ppu.Frame, pal palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := range frame {
		for x, shade := range frame[y] {
			img.SetRGBA(x, y, pal.RGBA(shade))
		}
	}
	return img
}

// Scale returns img enlarged by factor using nearest neighbour
// sampling, which keeps the pixels sharp.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SavePNG encodes img as a PNG file at filename.
func SavePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
