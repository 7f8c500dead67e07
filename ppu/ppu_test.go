package ppu

import (
	"testing"

	"gintendo/cartridge"
)

// chrRAM is a writable 8KiB pattern table for driving the PPU without
// a cartridge.
type chrRAM struct {
	mem [0x2000]uint8
}

func (c *chrRAM) ChrRead(addr uint16) uint8       { return c.mem[addr] }
func (c *chrRAM) ChrWrite(addr uint16, val uint8) { c.mem[addr] = val }

func newTestPPU(m cartridge.Mirroring) (*PPU, *chrRAM) {
	chr := &chrRAM{}
	return New(chr, m), chr
}

// writeAddr feeds a full 16-bit address through the two-write PPUADDR
// protocol.
func writeAddr(p *PPU, addr uint16) {
	p.WriteAddr(uint8(addr >> 8))
	p.WriteAddr(uint8(addr))
}

func TestStatusReadClearsVBlank(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	p.Tick(vblankScanline * dotsPerScanline)

	if got := p.ReadStatus(); got&StatusVBlank == 0 {
		t.Errorf("first status read = %02x, want vblank set", got)
	}
	if got := p.ReadStatus(); got&StatusVBlank != 0 {
		t.Errorf("second status read = %02x, want vblank cleared", got)
	}
}

func TestStatusReadResetsWriteToggle(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)

	// One PPUADDR write leaves the toggle waiting for the low
	// byte; a status read must put it back to expecting the high
	// byte, so the next two writes form a fresh address.
	p.WriteAddr(0x3F)
	p.ReadStatus()
	writeAddr(p, 0x2155)
	p.WriteData(0xAB)

	p.ReadStatus()
	writeAddr(p, 0x2155)
	p.ReadData() // prefetch
	if got := p.ReadData(); got != 0xAB {
		t.Errorf("read %02x from $2155, want AB", got)
	}
}

func TestDataReadIsBuffered(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	writeAddr(p, 0x2000)
	p.WriteData(0x11)
	p.WriteData(0x22)

	writeAddr(p, 0x2000)
	if got := p.ReadData(); got == 0x11 {
		t.Errorf("first read returned live data %02x, want stale buffer", got)
	}
	if got := p.ReadData(); got != 0x11 {
		t.Errorf("second read = %02x, want 11 (buffered from first)", got)
	}
	if got := p.ReadData(); got != 0x22 {
		t.Errorf("third read = %02x, want 22", got)
	}
}

func TestDataReadCHRIsBuffered(t *testing.T) {
	p, chr := newTestPPU(cartridge.Vertical)
	chr.mem[0x0100] = 0x5A

	writeAddr(p, 0x0100)
	p.ReadData()
	if got := p.ReadData(); got != 0x5A {
		t.Errorf("buffered CHR read = %02x, want 5A", got)
	}
}

func TestPaletteReadIsNotBuffered(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	writeAddr(p, 0x3F01)
	p.WriteData(0x17)

	writeAddr(p, 0x3F01)
	if got := p.ReadData(); got != 0x17 {
		t.Errorf("palette read = %02x, want 17 with no prefetch", got)
	}
}

func TestPaletteMirrorAliases(t *testing.T) {
	cases := []struct{ write, read uint16 }{
		{0x3F10, 0x3F00},
		{0x3F14, 0x3F04},
		{0x3F18, 0x3F08},
		{0x3F1C, 0x3F0C},
		{0x3F20, 0x3F00}, // whole palette mirrors every 32 bytes
	}

	for i, tc := range cases {
		p, _ := newTestPPU(cartridge.Vertical)
		writeAddr(p, tc.write)
		p.WriteData(0x2A)

		writeAddr(p, tc.read)
		if got := p.ReadData(); got != 0x2A {
			t.Errorf("%d: read %02x via %04x after write via %04x, want 2A", i, got, tc.read, tc.write)
		}
	}
}

func TestVRAMIncrementStride(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)

	writeAddr(p, 0x2000)
	p.WriteData(0x01) // addr -> 0x2001

	p.WriteCtrl(CtrlVRAMAddIncrement)
	writeAddr(p, 0x2000)
	p.WriteData(0x02) // addr -> 0x2020
	p.WriteData(0x03) // addr -> 0x2040

	p.WriteCtrl(0)
	writeAddr(p, 0x2020)
	p.ReadData()
	if got := p.ReadData(); got != 0x03 {
		t.Errorf("mem[$2020] = %02x, want 03 (stride 32 write)", got)
	}
}

func TestNametableMirroring(t *testing.T) {
	cases := []struct {
		mode cartridge.Mirroring
		addr uint16
		want uint16
	}{
		// Vertical: tables 2 and 3 fold onto 0 and 1.
		{cartridge.Vertical, 0x2000, 0x0000},
		{cartridge.Vertical, 0x2400, 0x0400},
		{cartridge.Vertical, 0x2800, 0x0000},
		{cartridge.Vertical, 0x2C00, 0x0400},
		// Horizontal: {0,1} share the first bank, {2,3} the second.
		{cartridge.Horizontal, 0x2000, 0x0000},
		{cartridge.Horizontal, 0x2400, 0x0000},
		{cartridge.Horizontal, 0x2800, 0x0400},
		{cartridge.Horizontal, 0x2C00, 0x0400},
		// $3000-$3EFF folds down onto $2000-$2EFF first.
		{cartridge.Vertical, 0x3000, 0x0000},
		{cartridge.Horizontal, 0x3C00, 0x0400},
	}

	for i, tc := range cases {
		p, _ := newTestPPU(tc.mode)
		if got := p.mirror(tc.addr); got != tc.want {
			t.Errorf("%d: mirror(%04x) under %v = %04x, want %04x", i, tc.addr, tc.mode, got, tc.want)
		}
	}
}

func TestTickScanlineAndFrameWrap(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)

	if frame := p.Tick(dotsPerScanline - 1); frame || p.Scanline() != 0 {
		t.Errorf("scanline = %d after %d dots, want 0", p.Scanline(), dotsPerScanline-1)
	}
	if frame := p.Tick(1); frame || p.Scanline() != 1 || p.Dot() != 0 {
		t.Errorf("scanline,dot = %d,%d, want 1,0", p.Scanline(), p.Dot())
	}

	// Run up to vblank: exactly one frame signal, vblank set.
	frames := 0
	for p.Scanline() < vblankScanline {
		if p.Tick(dotsPerScanline) {
			frames++
		}
	}
	if frames != 1 {
		t.Errorf("frame signaled %d times reaching scanline 241, want 1", frames)
	}
	if p.ReadStatus()&StatusVBlank == 0 {
		t.Errorf("vblank not set on scanline %d", p.Scanline())
	}

	// And through the end of the frame: counters wrap, flags clear.
	p.SetSprite0Hit()
	for p.Scanline() != 0 {
		p.Tick(dotsPerScanline)
	}
	if got := p.ReadStatus(); got&(StatusVBlank|StatusSprite0Hit) != 0 {
		t.Errorf("status = %02x after frame wrap, want vblank and sprite-0 clear", got)
	}
}

func TestTickRaisesNMIOnlyWhenEnabled(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	p.Tick(vblankScanline * dotsPerScanline)
	if p.NMIPending() {
		t.Errorf("NMI raised with PPUCTRL bit 7 clear")
	}

	p, _ = newTestPPU(cartridge.Vertical)
	p.WriteCtrl(CtrlGenerateNMI)
	p.Tick(vblankScanline * dotsPerScanline)
	if !p.NMIPending() {
		t.Errorf("NMI not raised at vblank with PPUCTRL bit 7 set")
	}

	for p.Scanline() != 0 {
		p.Tick(dotsPerScanline)
	}
	if p.NMIPending() {
		t.Errorf("NMI still asserted after frame wrap")
	}
}

func TestWriteCtrlDuringVBlankRaisesNMI(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	p.Tick(vblankScanline * dotsPerScanline)

	p.WriteCtrl(CtrlGenerateNMI)
	if !p.NMIPending() {
		t.Errorf("enabling NMI mid-vblank did not raise it")
	}
}

func TestOAMDataAutoIncrementsOnWrite(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)
	p.WriteOAMAddr(0xFE)
	p.WriteOAMData(0x01)
	p.WriteOAMData(0x02)
	p.WriteOAMData(0x03) // wraps to 0x00

	if p.oam[0xFE] != 0x01 || p.oam[0xFF] != 0x02 || p.oam[0x00] != 0x03 {
		t.Errorf("oam[FE,FF,00] = %02x,%02x,%02x, want 01,02,03", p.oam[0xFE], p.oam[0xFF], p.oam[0x00])
	}

	p.WriteOAMAddr(0xFE)
	if got := p.ReadOAMData(); got != 0x01 {
		t.Errorf("ReadOAMData = %02x, want 01", got)
	}
	if got := p.ReadOAMData(); got != 0x01 {
		t.Errorf("second ReadOAMData = %02x, want 01 (reads don't increment)", got)
	}
}

func TestOAMDMAWrapsFromOAMAddr(t *testing.T) {
	p, _ := newTestPPU(cartridge.Vertical)

	var block [OAMSize]uint8
	for i := range block {
		block[i] = uint8(i)
	}

	p.WriteOAMAddr(0x10)
	p.WriteOAMDMA(block)

	for k := 0; k < OAMSize; k++ {
		if got := p.oam[(0x10+k)&0xFF]; got != uint8(k) {
			t.Fatalf("oam[%02x] = %02x, want %02x", (0x10+k)&0xFF, got, k)
		}
	}
}

func TestAddrDataRoundTrip(t *testing.T) {
	// Writing v to PPUADDR high, v' low, then a data byte, should
	// read back through the same address after a latch reset.
	const hi, lo = 0x21, 0x08
	p, _ := newTestPPU(cartridge.Horizontal)

	p.WriteAddr(hi)
	p.WriteAddr(lo)
	p.WriteData(hi)

	p.ReadStatus()
	p.WriteAddr(hi)
	p.WriteAddr(lo)
	p.ReadData()
	if got := p.ReadData(); got != hi {
		t.Errorf("round trip through $%02x%02x = %02x, want %02x", hi, lo, got, hi)
	}
}
