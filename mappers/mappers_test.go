package mappers

import (
	"errors"
	"testing"

	"gintendo/cartridge"
)

func testCart(prgBanks int) *cartridge.Cartridge {
	return &cartridge.Cartridge{
		PRG:       make([]uint8, prgBanks*16384),
		CHR:       make([]uint8, 8192),
		Mirroring: cartridge.Vertical,
	}
}

func TestGetNROM(t *testing.T) {
	m, err := Get(testCart(2))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Name() != "NROM" {
		t.Errorf("Name() = %q, want NROM", m.Name())
	}
	if m.Mirroring() != cartridge.Vertical {
		t.Errorf("Mirroring() = %v, want vertical", m.Mirroring())
	}
	if m.HasSRAM() {
		t.Errorf("HasSRAM() = true for a cart without the save RAM flag")
	}
}

func TestNROMHasSRAM(t *testing.T) {
	c := testCart(2)
	c.HasSRAM = true

	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !m.HasSRAM() {
		t.Errorf("HasSRAM() = false, want the header flag passed through")
	}
}

func TestGetUnknownMapper(t *testing.T) {
	c := testCart(2)
	c.MapperID = 5
	if _, err := Get(c); err == nil {
		t.Errorf("Get succeeded for unregistered mapper id 5")
	}
}

func TestNROMPrgMirroring(t *testing.T) {
	c := testCart(1) // 16KiB image mirrors into the upper bank
	c.PRG[0x0105] = 0xAB

	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got := m.PrgRead(0x0105); got != 0xAB {
		t.Errorf("PrgRead(lower bank) = %02x, want AB", got)
	}
	if got := m.PrgRead(0x4105); got != 0xAB {
		t.Errorf("PrgRead(upper bank) = %02x, want AB (mirror)", got)
	}
}

func TestNROMPrgWriteRejected(t *testing.T) {
	m, err := Get(testCart(2))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := m.PrgWrite(0, 0xFF); !errors.Is(err, ErrWriteToROM) {
		t.Errorf("PrgWrite = %v, want ErrWriteToROM", err)
	}
}
