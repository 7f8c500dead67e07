package mappers

import (
	"gintendo/cartridge"
)

// Dummy is a fully writable mapper for tests: 32KiB of PRG RAM,
// 8KiB of CHR RAM and a settable mirroring mode.
type Dummy struct {
	PRG [0x8000]uint8
	CHR [0x2000]uint8
	MM  cartridge.Mirroring // tests can set as needed
}

func NewDummy() *Dummy {
	return &Dummy{}
}

func (d *Dummy) Name() string {
	return "dummy mapper"
}

func (d *Dummy) PrgRead(addr uint16) uint8 {
	return d.PRG[addr]
}

func (d *Dummy) PrgWrite(addr uint16, val uint8) error {
	d.PRG[addr] = val
	return nil
}

func (d *Dummy) ChrRead(addr uint16) uint8 {
	return d.CHR[addr]
}

func (d *Dummy) ChrWrite(addr uint16, val uint8) {
	d.CHR[addr] = val
}

func (d *Dummy) Mirroring() cartridge.Mirroring {
	return d.MM
}

func (d *Dummy) HasSRAM() bool {
	return true
}
