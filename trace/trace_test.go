package trace_test

import (
	"testing"

	"gintendo/trace"
)

type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read(addr uint16) uint8 { return b.mem[addr] }

func TestLineLDXDEXDEY(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[100] = 0xA2
	bus.mem[101] = 0x01
	bus.mem[102] = 0xCA
	bus.mem[103] = 0x88
	bus.mem[104] = 0x00

	cases := []struct {
		snap trace.Snapshot
		want string
	}{
		{
			trace.Snapshot{PC: 0x0064, A: 1, X: 2, Y: 3, P: 0x24, SP: 0xFD},
			"0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD",
		},
		{
			trace.Snapshot{PC: 0x0066, A: 1, X: 1, Y: 3, P: 0x24, SP: 0xFD},
			"0066  CA        DEX                             A:01 X:01 Y:03 P:24 SP:FD",
		},
		{
			trace.Snapshot{PC: 0x0067, A: 1, X: 0, Y: 3, P: 0x26, SP: 0xFD},
			"0067  88        DEY                             A:01 X:00 Y:03 P:26 SP:FD",
		},
	}

	for i, tc := range cases {
		if got := trace.Line(bus, tc.snap); got != tc.want {
			t.Errorf("%d:\ngot  %q\nwant %q", i, got, tc.want)
		}
	}
}

func TestLineIndirectYMemAccess(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[100] = 0x11 // ORA ($33),Y
	bus.mem[101] = 0x33
	bus.mem[0x33] = 0x00
	bus.mem[0x34] = 0x04
	bus.mem[0x400] = 0xAA

	snap := trace.Snapshot{PC: 0x0064, P: 0x24, SP: 0xFD}
	want := "0064  11 33     ORA ($33),Y = 0400 @ 0400 = AA  A:00 X:00 Y:00 P:24 SP:FD"
	if got := trace.Line(bus, snap); got != want {
		t.Errorf("\ngot  %q\nwant %q", got, want)
	}
}
