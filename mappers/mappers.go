// Package mappers implements and registers mappers that are
// referenced numerically by iNES ROM files.
package mappers

import (
	"errors"
	"fmt"

	"gintendo/cartridge"
)

// ErrWriteToROM is returned by PrgWrite on mappers whose PRG window
// is plain ROM. The bus decides whether that's fatal.
var ErrWriteToROM = errors.New("mappers: write to PRG ROM")

// Mapper is the cartridge's side of the system bus: the PRG window
// the CPU sees at $8000-$FFFF (addresses here are relative to $8000)
// and the CHR pattern tables the PPU sees.
type Mapper interface {
	Name() string
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8) error
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
	// HasSRAM reports whether the cartridge exposes save RAM at
	// $6000-$7FFF.
	HasSRAM() bool
}

// A global registry of mapper constructors, keyed by mapper id.
var allMappers = map[uint8]func(*cartridge.Cartridge) Mapper{}

func Register(id uint8, f func(*cartridge.Cartridge) Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: can't re-register mapper id %d", id))
	}
	allMappers[id] = f
}

// Get returns a mapper for the cartridge, or an error if its mapper
// id has no registered implementation.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	f, ok := allMappers[c.MapperID]
	if !ok {
		return nil, fmt.Errorf("mappers: unknown mapper id %d", c.MapperID)
	}
	return f(c), nil
}
