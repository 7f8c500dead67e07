package ppu

import "testing"

func TestAddrReg(t *testing.T) {
	cases := []struct {
		inputs []uint8  // we'll feed byte/hi pairs...
		his    []bool   // (true means high byte)
		wants  []uint16 // and check the value after each
	}{
		{
			[]uint8{0x0F, 0x0B, 0x10, 0x02},
			[]bool{true, false, true, false},
			[]uint16{0x0F00, 0x0F0B, 0x100B, 0x1002},
		},
		{
			[]uint8{0x1F, 0xB0},
			[]bool{true, false},
			[]uint16{0x1F00, 0x1FB0},
		},
		{
			// High byte writes mask down to the 14-bit space.
			[]uint8{0xFF, 0xFF},
			[]bool{true, false},
			[]uint16{0x3F00, 0x3FFF},
		},
	}

	for i, tc := range cases {
		var ar addrReg
		for j, x := range tc.inputs {
			ar.set(x, tc.his[j])
			if got := ar.get(); got != tc.wants[j] {
				t.Errorf("%d: Got %04x, want %04x", i, got, tc.wants[j])
			}
		}
	}
}

func TestAddrRegAddWraps(t *testing.T) {
	cases := []struct {
		start uint16
		n     uint16
		want  uint16
	}{
		{0x2000, 1, 0x2001},
		{0x2000, 32, 0x2020},
		{0x3FFF, 1, 0x0000},
		{0x3FF0, 32, 0x0010},
	}

	for i, tc := range cases {
		ar := addrReg{high: uint8(tc.start >> 8), low: uint8(tc.start)}
		ar.add(tc.n)
		if got := ar.get(); got != tc.want {
			t.Errorf("%d: %04x + %d = %04x, want %04x", i, tc.start, tc.n, got, tc.want)
		}
	}
}
