// Package bus implements the NES CPU address space: the 2KiB of
// internal RAM and its mirrors, the PPU's memory mapped registers,
// OAM DMA, the controller ports and the cartridge PRG window. The bus
// also owns the master cycle counter, clocking the PPU at three dots
// per CPU cycle and edge-detecting its NMI line.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"log"

	"gintendo/joypad"
	"gintendo/mappers"
	"gintendo/ppu"
)

const (
	ramSize    = 0x800  // 2KB built in RAM
	prgRAMSize = 0x2000 // cartridge save RAM, when the header advertises it

	ramMirrorsEnd = 0x1FFF
	ppuMirrorsEnd = 0x3FFF
	ioRegsEnd     = 0x401F
	expansionEnd  = 0x5FFF
	prgRAMStart   = 0x6000
	prgRAMEnd     = 0x7FFF
	prgROMStart   = 0x8000
)

const (
	oamDMA     = 0x4014 // Triggers DMA from CPU memory to OAM
	joypadPort = 0x4016
	joypad2    = 0x4017
)

// FrameFunc is the host's per-frame callback, invoked at the vblank
// NMI edge with the PPU to render from and the first controller to
// poll input into. The callback must not hold on to either.
type FrameFunc func(p *ppu.PPU, pad *joypad.Joypad)

type Bus struct {
	ram    [ramSize]uint8
	prgRAM [prgRAMSize]uint8
	mapper mappers.Mapper
	ppu    *ppu.PPU
	pads   [2]*joypad.Joypad

	cycles  uint64
	strict  bool
	onFrame FrameFunc

	prevNMI    bool
	nmiPending bool
}

// New wires a bus around the cartridge's mapper. With strict set,
// writes into the PRG ROM window are fatal; otherwise they are logged
// and dropped (some test ROMs scribble over ROM and expect to live).
func New(m mappers.Mapper, strict bool) *Bus {
	return &Bus{
		mapper: m,
		ppu:    ppu.New(m, m.Mirroring()),
		pads:   [2]*joypad.Joypad{joypad.New(), joypad.New()},
		strict: strict,
	}
}

// OnFrame registers the host's per-frame callback.
func (b *Bus) OnFrame(f FrameFunc) {
	b.onFrame = f
}

// PPU returns the bus-owned PPU.
func (b *Bus) PPU() *ppu.PPU {
	return b.ppu
}

// Joypad returns controller port n (0 or 1).
func (b *Bus) Joypad(n int) *joypad.Joypad {
	return b.pads[n]
}

// Cycles returns the number of CPU cycles since power on.
func (b *Bus) Cycles() uint64 {
	return b.cycles
}

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorsEnd:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return b.ram[addr&0x07FF]
	case addr <= ppuMirrorsEnd:
		// The eight PPU registers mirror through 0x3FFF.
		switch 0x2000 | addr&0x0007 {
		case 0x2002:
			return b.ppu.ReadStatus()
		case 0x2004:
			return b.ppu.ReadOAMData()
		case 0x2007:
			return b.ppu.ReadData()
		default:
			// Write-only registers read as open bus.
			return 0
		}
	case addr == joypadPort:
		return b.pads[0].Read()
	case addr == joypad2:
		// Second controller port; nothing drives it.
		return 0
	case addr <= ioRegsEnd:
		return 0 // APU and I/O stubs
	case addr <= expansionEnd:
		return 0
	case addr <= prgRAMEnd:
		if !b.mapper.HasSRAM() {
			return 0
		}
		return b.prgRAM[addr-prgRAMStart]
	default:
		return b.mapper.PrgRead(addr - prgROMStart)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= ramMirrorsEnd:
		b.ram[addr&0x07FF] = val
	case addr <= ppuMirrorsEnd:
		switch 0x2000 | addr&0x0007 {
		case 0x2000:
			b.ppu.WriteCtrl(val)
		case 0x2001:
			b.ppu.WriteMask(val)
		case 0x2002:
			// PPUSTATUS is read-only.
		case 0x2003:
			b.ppu.WriteOAMAddr(val)
		case 0x2004:
			b.ppu.WriteOAMData(val)
		case 0x2005:
			b.ppu.WriteScroll(val)
		case 0x2006:
			b.ppu.WriteAddr(val)
		case 0x2007:
			b.ppu.WriteData(val)
		}
	case addr == oamDMA:
		b.dma(val)
	case addr == joypadPort:
		// The strobe line is wired to both controller ports.
		b.pads[0].WriteStrobe(val)
		b.pads[1].WriteStrobe(val)
	case addr <= ioRegsEnd:
		// APU stubs
	case addr <= expansionEnd:
	case addr <= prgRAMEnd:
		if b.mapper.HasSRAM() {
			b.prgRAM[addr-prgRAMStart] = val
		}
	default:
		if err := b.mapper.PrgWrite(addr-prgROMStart, val); err != nil {
			if b.strict {
				log.Fatalf("bus: write of %02x to %04x: %v", val, addr, err)
			}
			log.Printf("bus: ignoring write of %02x to %04x: %v", val, addr, err)
		}
	}
}

// dma copies a 256-byte page from CPU address space into OAM through
// the PPU's DMA port, then stalls the CPU: 513 cycles, or 514 when
// the transfer starts on an odd cycle.
func (b *Bus) dma(page uint8) {
	base := uint16(page) << 8
	var block [256]uint8
	for i := range block {
		block[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAMDMA(block)

	b.tick(513 + b.cycles%2)
}

// Tick advances the master clock by one instruction's cycle count,
// running the PPU three dots per cycle. The vblank NMI edge is
// detected here: the host frame callback runs once per edge, and the
// interrupt stays pending until the CPU collects it with TakeNMI.
func (b *Bus) Tick(cycles uint8) {
	b.tick(uint64(cycles))
}

func (b *Bus) tick(cycles uint64) {
	b.cycles += cycles
	b.ppu.Tick(int(cycles) * 3)

	nmi := b.ppu.NMIPending()
	if nmi && !b.prevNMI {
		b.nmiPending = true
		if b.onFrame != nil {
			b.onFrame(b.ppu, b.pads[0])
		}
	}
	b.prevNMI = nmi
}

// TakeNMI reports a pending NMI and clears it, so the CPU services
// each vblank interrupt exactly once.
func (b *Bus) TakeNMI() bool {
	pending := b.nmiPending
	b.nmiPending = false
	return pending
}
