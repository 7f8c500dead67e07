// Package ppu implements the PPU hardware in the NES: the 2KiB of
// nametable VRAM, palette RAM and OAM, the eight memory mapped
// registers the CPU talks to, and the dot/scanline counter that
// enters vertical blank and raises NMI once per frame.
// https://www.nesdev.org/wiki/PPU
package ppu

import (
	"fmt"

	"gintendo/cartridge"
)

const (
	VRAMSize    = 2048
	OAMSize     = 256
	PaletteSize = 32
)

// Frame timing. A scanline is 341 dots and a frame is 262 scanlines;
// vblank begins on the transition to scanline 241 and ends when the
// counter wraps back to scanline 0.
const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	vblankScanline    = 241
)

// PPU memory map regions.
const (
	PatternTable0 = 0x0000
	PatternTable1 = 0x1000
	Nametable0    = 0x2000
	PaletteRAM    = 0x3F00
)

// CHR is the PPU's window onto the cartridge's pattern table memory,
// served by the active mapper.
type CHR interface {
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
}

type PPU struct {
	chr       CHR
	mirroring cartridge.Mirroring

	vram    [VRAMSize]uint8
	palette [PaletteSize]uint8
	oam     [OAMSize]uint8
	oamAddr uint8

	ctrl   uint8
	mask   uint8
	status uint8

	addr             addrReg
	scrollX, scrollY uint8
	w                bool // shared PPUSCROLL/PPUADDR write toggle

	// For reads from PPUDATA that are delayed by one access
	buffer uint8

	scanline int
	dot      int
	nmi      bool
}

func New(chr CHR, m cartridge.Mirroring) *PPU {
	return &PPU{chr: chr, mirroring: m}
}

// Tick advances the dot counter by n PPU dots (the bus runs us at
// three dots per CPU cycle). It returns true exactly once per frame,
// on the transition into vertical blank.
func (p *PPU) Tick(n int) bool {
	frame := false

	p.dot += n
	for p.dot >= dotsPerScanline {
		p.dot -= dotsPerScanline
		p.scanline++

		switch {
		case p.scanline == vblankScanline:
			p.status |= StatusVBlank
			if p.ctrl&CtrlGenerateNMI != 0 {
				p.nmi = true
			}
			frame = true
		case p.scanline >= scanlinesPerFrame:
			p.scanline = 0
			p.status &^= StatusVBlank | StatusSprite0Hit
			p.nmi = false
		}
	}

	return frame
}

// NMIPending reports whether the PPU's NMI line is asserted. The bus
// edge detects this to fire the interrupt once per vblank.
func (p *PPU) NMIPending() bool {
	return p.nmi
}

// SetSprite0Hit latches the sprite-0-hit status bit. The host calls
// this when the renderer reports an opaque sprite-0 pixel landing on
// an opaque background pixel; the bit clears itself when the frame
// wraps.
func (p *PPU) SetSprite0Hit() {
	p.status |= StatusSprite0Hit
}

// ReadStatus returns PPUSTATUS and performs its read side effects:
// vblank is cleared and the scroll/address write toggle resets. The
// low five bits carry stale PPU bus contents, for which the data
// buffer is a close stand-in.
func (p *PPU) ReadStatus() uint8 {
	res := (p.status & 0xE0) | (p.buffer & 0x1F)
	p.status &^= StatusVBlank
	p.w = false
	return res
}

// WriteCtrl sets PPUCTRL. Enabling NMI generation while vblank is
// already in progress fires the interrupt immediately.
func (p *PPU) WriteCtrl(val uint8) {
	prev := p.ctrl
	p.ctrl = val
	if prev&CtrlGenerateNMI == 0 && val&CtrlGenerateNMI != 0 && p.status&StatusVBlank != 0 {
		p.nmi = true
	}
}

func (p *PPU) WriteMask(val uint8) {
	p.mask = val
}

// WriteScroll sets the scroll offsets: X on the first write, Y on the
// second, sharing the write toggle with PPUADDR.
func (p *PPU) WriteScroll(val uint8) {
	if !p.w {
		p.scrollX = val
	} else {
		p.scrollY = val
	}
	p.w = !p.w
}

// WriteAddr feeds one byte of the VRAM address: high byte on the
// first write, low byte on the second, sharing the write toggle with
// PPUSCROLL.
func (p *PPU) WriteAddr(val uint8) {
	p.addr.set(val, !p.w)
	p.w = !p.w
}

// ReadData reads through PPUADDR and advances it by the PPUCTRL
// selected stride. CHR and nametable reads return the previously
// buffered byte, refilling the buffer from the new address; palette
// reads skip the buffer, which is refilled from the VRAM the palette
// region shadows.
func (p *PPU) ReadData() uint8 {
	addr := p.addr.get()
	p.addr.add(p.vramIncrement())

	switch {
	case addr < Nametable0:
		res := p.buffer
		p.buffer = p.chr.ChrRead(addr)
		return res
	case addr < PaletteRAM:
		res := p.buffer
		p.buffer = p.vram[p.mirror(addr)]
		return res
	default:
		p.buffer = p.vram[p.mirror(addr-0x1000)]
		return p.palette[paletteIndex(addr)]
	}
}

// WriteData writes through PPUADDR and advances it by the PPUCTRL
// selected stride.
func (p *PPU) WriteData(val uint8) {
	addr := p.addr.get()
	p.addr.add(p.vramIncrement())

	switch {
	case addr < Nametable0:
		p.chr.ChrWrite(addr, val)
	case addr < PaletteRAM:
		p.vram[p.mirror(addr)] = val
	default:
		p.palette[paletteIndex(addr)] = val
	}
}

func (p *PPU) WriteOAMAddr(val uint8) {
	p.oamAddr = val
}

// WriteOAMData stores one byte at OAMADDR and increments it.
func (p *PPU) WriteOAMData(val uint8) {
	p.oam[p.oamAddr] = val
	p.oamAddr++
}

// ReadOAMData returns the byte at OAMADDR without incrementing it.
func (p *PPU) ReadOAMData() uint8 {
	return p.oam[p.oamAddr]
}

// WriteOAMDMA copies a full 256-byte block into OAM, starting at
// OAMADDR and wrapping.
func (p *PPU) WriteOAMDMA(block [OAMSize]uint8) {
	for _, b := range block {
		p.WriteOAMData(b)
	}
}

func (p *PPU) vramIncrement() uint16 {
	if p.ctrl&CtrlVRAMAddIncrement != 0 {
		return ctrlIncrDown
	}
	return ctrlIncrAcross
}

// mirror maps a nametable address ($2000-$3EFF, with $3000-$3EFF
// folded down) onto the 2KiB of physical VRAM.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (p *PPU) mirror(addr uint16) uint16 {
	a := (addr & 0x2FFF) - Nametable0
	table := a / 0x400

	switch p.mirroring {
	case cartridge.Vertical:
		if table >= 2 {
			return a - 0x800
		}
	case cartridge.Horizontal:
		switch table {
		case 1, 2:
			return a - 0x400
		case 3:
			return a - 0x800
		}
	}

	return a
}

// paletteIndex maps a $3F00-$3FFF address to its slot in palette RAM.
// $3F10/$3F14/$3F18/$3F1C alias the background entries at
// $3F00/$3F04/$3F08/$3F0C.
func paletteIndex(addr uint16) uint16 {
	i := (addr - PaletteRAM) % PaletteSize
	if i >= 0x10 && i%4 == 0 {
		i -= 0x10
	}
	return i
}

// Renderer view accessors. The renderer borrows these read-only
// during the vblank callback; it never holds on to them.

func (p *PPU) VRAM() []uint8 {
	return p.vram[:]
}

func (p *PPU) PaletteRAM() []uint8 {
	return p.palette[:]
}

func (p *PPU) OAM() []uint8 {
	return p.oam[:]
}

func (p *PPU) Mirroring() cartridge.Mirroring {
	return p.mirroring
}

func (p *PPU) ScrollOffsets() (x, y uint8) {
	return p.scrollX, p.scrollY
}

// NametableBase returns the base address of the primary nametable
// selected by PPUCTRL bits 0-1.
func (p *PPU) NametableBase() uint16 {
	return Nametable0 + 0x400*uint16(p.ctrl&0x03)
}

func (p *PPU) BackgroundPatternBase() uint16 {
	if p.ctrl&CtrlBackgroundPatternAddr != 0 {
		return PatternTable1
	}
	return PatternTable0
}

func (p *PPU) SpritePatternBase() uint16 {
	if p.ctrl&CtrlSpritePatternAddr != 0 {
		return PatternTable1
	}
	return PatternTable0
}

func (p *PPU) ShowBackground() bool {
	return p.mask&MaskShowBackground != 0
}

func (p *PPU) ShowSprites() bool {
	return p.mask&MaskShowSprites != 0
}

// TileData fetches the 16 bytes of one 8x8 tile (two bit planes) from
// a pattern table.
func (p *PPU) TileData(base uint16, tile uint8) [16]uint8 {
	var out [16]uint8
	start := base + uint16(tile)*16
	for i := range out {
		out[i] = p.chr.ChrRead(start + uint16(i))
	}
	return out
}

func (p *PPU) Scanline() int {
	return p.scanline
}

func (p *PPU) Dot() int {
	return p.dot
}

func (p *PPU) String() string {
	return fmt.Sprintf("scanline:%d dot:%d status:%02x addr:%04x", p.scanline, p.dot, p.status, p.addr.get())
}
