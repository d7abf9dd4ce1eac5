package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
)

var rom = []byte{0x00, 0xC3, 0x50, 0x01}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain", func(t *testing.T) {
		name := filepath.Join(dir, "test.gb")
		require.NoError(t, os.WriteFile(name, rom, 0o644))
		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		name := filepath.Join(dir, "test.gb.gz")
		require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o644))
		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})

	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("test.gb")
		require.NoError(t, err)
		_, err = f.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		name := filepath.Join(dir, "test.zip")
		require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o644))
		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, rom, data)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.gb"))
		assert.Error(t, err)
	})
}

func TestFrameImage(t *testing.T) {
	frame := &ppu.Frame{}
	frame[0][0] = 3
	frame[143][159] = 1

	img := FrameImage(frame, palette.Get(palette.Greyscale))
	assert.Equal(t, image.Rect(0, 0, 160, 144), img.Bounds())
	assert.Equal(t, color.RGBA{A: 0xFF}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}, img.RGBAAt(159, 143))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, img.RGBAAt(1, 0))

	scaled := Scale(img, 2)
	assert.Equal(t, image.Rect(0, 0, 320, 288), scaled.Bounds())
	assert.Equal(t, img.RGBAAt(0, 0), scaled.RGBAAt(1, 1))
	assert.Equal(t, img.RGBAAt(1, 0), scaled.RGBAAt(2, 0))
}

func TestSavePNG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, SavePNG(name, FrameImage(&ppu.Frame{}, palette.Get(palette.Green))))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 160, cfg.Width)
}
