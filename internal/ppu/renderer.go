package ppu

import "sort"

// maxSpritesPerLine is the number of sprites the OAM search selects
// for a line.
const maxSpritesPerLine = 10

// renderScanline draws line LY into the back buffer.
func (p *PPU) renderScanline() {
	// colour numbers before palette lookup, sprites use them to
	// resolve their priority
	var colours [ScreenWidth]uint8
	line := &p.back[p.ly]

	if p.BackgroundEnabled {
		y := p.ly + p.scy
		for x := 0; x < ScreenWidth; x++ {
			colours[x] = p.tilePixel(p.BackgroundTileMapAddress, uint8(x)+p.scx, y)
		}
		p.renderWindow(&colours)
	}
	for x, colour := range colours {
		line[x] = p.bgp.Shade(colour)
	}
	if !p.BackgroundEnabled {
		*line = [ScreenWidth]uint8{}
	}

	if p.SpriteEnabled {
		p.renderSprites(line, &colours)
	}
}

// renderWindow draws the window over the background when it is
// enabled and visible on the current line.
func (p *PPU) renderWindow(colours *[ScreenWidth]uint8) {
	if !p.WindowEnabled || p.ly < p.wy || p.wx > 166 {
		return
	}
	start := int(p.wx) - 7
	for x := max(start, 0); x < ScreenWidth; x++ {
		colours[x] = p.tilePixel(p.WindowTileMapAddress, uint8(x-start), p.windowLine)
	}
	p.windowLine++
}

// tilePixel returns the colour number at (x, y) of the 256x256 map
// starting at mapAddress.
func (p *PPU) tilePixel(mapAddress uint16, x, y uint8) uint8 {
	tileID := p.vRAM[mapAddress-0x8000+uint16(y/8)*32+uint16(x/8)]
	address := p.tileAddress(tileID) + uint16(y%8)*2
	return pixel(p.vRAM[address], p.vRAM[address+1], 7-x%8)
}

// tileAddress returns the offset into VRAM of a background or window
// tile, addressed either unsigned from 0x8000 or signed from 0x9000.
func (p *PPU) tileAddress(tileID uint8) uint16 {
	if p.UsingSignedTileData() {
		return 0x1000 + uint16(int16(int8(tileID))*16)
	}
	return uint16(tileID) * 16
}

// pixel combines bit of the two bit planes of a tile row.
func pixel(low, high, bit uint8) uint8 {
	return (low>>bit)&1 | (high>>bit)&1<<1
}

// renderSprites selects up to 10 sprites on the current line and
// draws them over the line. Among overlapping sprites the one with
// the lower X wins, then the one earlier in OAM.
func (p *PPU) renderSprites(line *[ScreenWidth]uint8, colours *[ScreenWidth]uint8) {
	height := p.SpriteSize
	visible := make([]*Sprite, 0, maxSpritesPerLine)
	for i := range p.oam.Sprites {
		if s := &p.oam.Sprites[i]; s.covers(p.ly, height) {
			visible = append(visible, s)
			if len(visible) == maxSpritesPerLine {
				break
			}
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].X < visible[j].X
	})

	var drawn [ScreenWidth]bool
	for _, s := range visible {
		row := p.ly - (s.Y - 16)
		if s.flipY {
			row = height - 1 - row
		}
		tileID := s.TileID
		if height == 16 {
			tileID &^= 1
		}
		address := uint16(tileID)*16 + uint16(row)*2
		low, high := p.vRAM[address], p.vRAM[address+1]

		for px := uint8(0); px < 8; px++ {
			x := int(s.X) - 8 + int(px)
			if x < 0 || x >= ScreenWidth || drawn[x] {
				continue
			}
			bit := 7 - px
			if s.flipX {
				bit = px
			}
			colour := pixel(low, high, bit)
			if colour == 0 {
				continue
			}
			drawn[x] = true
			if !s.priority && colours[x] != 0 {
				continue
			}
			obp := p.obp0
			if s.useSecondPalette {
				obp = p.obp1
			}
			line[x] = obp.Shade(colour)
		}
	}
}
