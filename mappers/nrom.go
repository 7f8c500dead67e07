package mappers

import (
	"gintendo/cartridge"
)

func init() {
	Register(0, newNROM)
}

// nrom is mapper 0: no banking hardware at all. A 16KiB PRG image
// mirrors into the upper half of the $8000-$FFFF window; CHR is ROM
// unless the cartridge shipped without CHR banks.
type nrom struct {
	cart *cartridge.Cartridge
}

func newNROM(c *cartridge.Cartridge) Mapper {
	return &nrom{cart: c}
}

func (m *nrom) Name() string {
	return "NROM"
}

func (m *nrom) PrgRead(addr uint16) uint8 {
	return m.cart.PrgRead(addr)
}

func (m *nrom) PrgWrite(addr uint16, val uint8) error {
	return ErrWriteToROM
}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.cart.ChrRead(addr)
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	m.cart.ChrWrite(addr, val)
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.cart.Mirroring
}

func (m *nrom) HasSRAM() bool {
	return m.cart.HasSRAM
}
