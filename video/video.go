// Package video produces the 256x240 RGB framebuffer from PPU state.
// Rendering happens once per frame, at vertical blank, rather than
// dot by dot: the whole background (with the frame's scroll offset)
// is drawn first, then sprites in reverse OAM order so earlier
// entries overlay later ones.
package video

import (
	"gintendo/cartridge"
	"gintendo/ppu"
)

// viewport bounds a rectangle of nametable pixel space, in screen
// pixels: x1/y1 inclusive, x2/y2 exclusive.
type viewport struct {
	x1, y1, x2, y2 int
}

// Render draws one frame. The returned flag reports whether an opaque
// sprite-0 pixel landed on an opaque background pixel, for the caller
// to latch into PPUSTATUS.
func Render(p *ppu.PPU, f *Frame) bool {
	// Which background pixels are non-transparent, for sprite-0
	// hit detection.
	opaque := make([]bool, Width*Height)

	if p.ShowBackground() {
		renderBackground(p, f, opaque)
	} else {
		backdrop := SystemPalette[p.PaletteRAM()[0]]
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				f.SetPixel(x, y, backdrop)
			}
		}
	}

	hit := false
	if p.ShowSprites() {
		// Later OAM entries draw first so earlier ones end up
		// on top.
		for i := 63; i >= 0; i-- {
			if drawSprite(p, f, opaque, i) && i == 0 {
				hit = true
			}
		}
	}

	return hit
}

func renderBackground(p *ppu.PPU, f *Frame, opaque []bool) {
	sx, sy := p.ScrollOffsets()
	scrollX, scrollY := int(sx), int(sy)

	// The primary nametable is the PPUCTRL-selected one; the
	// secondary is whichever physical bank the mirroring pairs it
	// against, supplying the pixels that scroll in at the wrap.
	vram := p.VRAM()
	main, second := vram[:0x400], vram[0x400:0x800]
	if mirroredBase(p) != 0 {
		main, second = second, main
	}

	renderSlice(p, f, opaque, main, viewport{scrollX, scrollY, Width, Height}, -scrollX, -scrollY)
	if scrollX > 0 {
		renderSlice(p, f, opaque, second, viewport{0, 0, scrollX, Height}, Width-scrollX, 0)
	} else if scrollY > 0 {
		renderSlice(p, f, opaque, second, viewport{0, 0, Width, scrollY}, 0, Height-scrollY)
	}
}

// mirroredBase locates the PPUCTRL-selected nametable in physical
// VRAM: 0 for the first 1KiB bank, 0x400 for the second.
func mirroredBase(p *ppu.PPU) uint16 {
	base := p.NametableBase()
	vramIndex := base - 0x2000
	table := vramIndex / 0x400

	switch p.Mirroring() {
	case cartridge.Vertical: // 2000/2800 -> bank 0, 2400/2C00 -> bank 1
		if table%2 == 0 {
			return 0
		}
		return 0x400
	default: // horizontal: 2000/2400 -> bank 0, 2800/2C00 -> bank 1
		if table < 2 {
			return 0
		}
		return 0x400
	}
}

// renderSlice draws the part of one nametable that falls inside view,
// shifted onto the screen by (shiftX, shiftY).
func renderSlice(p *ppu.PPU, f *Frame, opaque []bool, nametable []uint8, view viewport, shiftX, shiftY int) {
	patternBase := p.BackgroundPatternBase()
	attr := nametable[0x3C0:0x400]

	for i := 0; i < 0x3C0; i++ {
		col, row := i%32, i/32
		tile := p.TileData(patternBase, nametable[i])
		palette := backgroundPalette(p.PaletteRAM(), attr, col, row)

		for y := 0; y < 8; y++ {
			upper, lower := tile[y], tile[y+8]

			for x := 7; x >= 0; x-- {
				value := (1&lower)<<1 | (1 & upper)
				upper >>= 1
				lower >>= 1

				px, py := col*8+x, row*8+y
				if px < view.x1 || px >= view.x2 || py < view.y1 || py >= view.y2 {
					continue
				}

				screenX, screenY := px+shiftX, py+shiftY
				f.SetPixel(screenX, screenY, SystemPalette[palette[value]])
				if value != 0 && screenX >= 0 && screenX < Width && screenY >= 0 && screenY < Height {
					opaque[screenY*Width+screenX] = true
				}
			}
		}
	}
}

// backgroundPalette picks the 4-color palette for a background tile
// from the attribute table: one byte per 4x4 tile block, two bits per
// 2x2 quadrant. Entry 0 is always the universal backdrop color.
func backgroundPalette(pal, attr []uint8, col, row int) [4]uint8 {
	attrByte := attr[row/4*8+col/4]

	var idx uint8
	switch {
	case col%4/2 == 0 && row%4/2 == 0:
		idx = attrByte & 0x03
	case col%4/2 == 1 && row%4/2 == 0:
		idx = (attrByte >> 2) & 0x03
	case col%4/2 == 0 && row%4/2 == 1:
		idx = (attrByte >> 4) & 0x03
	default:
		idx = (attrByte >> 6) & 0x03
	}

	start := 1 + int(idx)*4
	return [4]uint8{pal[0], pal[start], pal[start+1], pal[start+2]}
}

// spritePalette picks one of the four sprite palettes at $3F11+.
// Entry 0 is unused: sprite color 0 is transparent.
func spritePalette(pal []uint8, idx uint8) [4]uint8 {
	start := 0x11 + int(idx)*4
	return [4]uint8{0, pal[start], pal[start+1], pal[start+2]}
}

// drawSprite draws OAM entry i and reports whether any of its opaque
// pixels covered an opaque background pixel.
func drawSprite(p *ppu.PPU, f *Frame, opaque []bool, i int) bool {
	s := p.SpriteAt(i)
	tile := p.TileData(p.SpritePatternBase(), s.TileID)
	palette := spritePalette(p.PaletteRAM(), s.Palette)

	overlap := false
	for y := 0; y < 8; y++ {
		upper, lower := tile[y], tile[y+8]

		for x := 7; x >= 0; x-- {
			value := (1&lower)<<1 | (1 & upper)
			upper >>= 1
			lower >>= 1
			if value == 0 {
				continue // transparent
			}

			px, py := int(s.X)+x, int(s.Y)+y
			if s.FlipH {
				px = int(s.X) + 7 - x
			}
			if s.FlipV {
				py = int(s.Y) + 7 - y
			}

			f.SetPixel(px, py, SystemPalette[palette[value]])
			if px < Width && py < Height && opaque[py*Width+px] {
				overlap = true
			}
		}
	}

	return overlap
}
