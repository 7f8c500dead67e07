// Package trace renders one disassembled CPU instruction, in the
// fixed-width format golden execution logs use:
//
//	0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD
//
// Formatting, not execution: Line reads through Bus to show operand
// addresses and their current values, but never writes and never
// advances the CPU. It is used by test fixtures, not by the hot
// emulation loop.
package trace

import (
	"fmt"
	"strings"

	"gintendo/cpu"
)

// Bus is the read side of cpu.Bus — all Line needs to resolve operand
// addresses and show their contents.
type Bus interface {
	Read(addr uint16) uint8
}

// Snapshot is the register state to render alongside the instruction
// at PC. Capture it before the instruction executes.
type Snapshot struct {
	PC      uint16
	A, X, Y uint8
	P, SP   uint8
}

// Line disassembles and formats the instruction at snap.PC.
func Line(bus Bus, snap Snapshot) string {
	begin := snap.PC
	opByte := bus.Read(begin)
	name, mode, length, ok := cpu.Lookup(opByte)
	if !ok {
		name, mode, length = "???", cpu.Implicit, 1
	}

	hexBytes := []uint8{opByte}
	var operand string

	switch length {
	case 1:
		if mode == cpu.Accumulator {
			operand = "A "
		}
	case 2:
		arg := bus.Read(begin + 1)
		hexBytes = append(hexBytes, arg)
		operand = operand2(bus, mode, begin, arg, snap.X, snap.Y)
	case 3:
		lo := bus.Read(begin + 1)
		hi := bus.Read(begin + 2)
		hexBytes = append(hexBytes, lo, hi)
		operand = operand3(bus, name, mode, lo, hi, snap.X, snap.Y)
	}

	hexParts := make([]string, len(hexBytes))
	for i, b := range hexBytes {
		hexParts[i] = fmt.Sprintf("%02x", b)
	}
	hexStr := strings.Join(hexParts, " ")

	asm := strings.TrimRight(fmt.Sprintf("%04x  %-8s %4s %s", begin, hexStr, name, operand), " ")
	line := fmt.Sprintf("%-47s A:%02x X:%02x Y:%02x P:%02x SP:%02x",
		asm, snap.A, snap.X, snap.Y, snap.P, snap.SP)

	return strings.ToUpper(line)
}

// operand2 formats the operand string for a 2-byte instruction.
func operand2(bus Bus, mode uint8, begin uint16, arg, x, y uint8) string {
	switch mode {
	case cpu.Immediate:
		return fmt.Sprintf("#$%02x", arg)
	case cpu.ZeroPage:
		addr := uint16(arg)
		return fmt.Sprintf("$%02x = %02x", addr, bus.Read(addr))
	case cpu.ZeroPageX:
		addr := uint16(arg + x)
		return fmt.Sprintf("$%02x,X @ %02x = %02x", arg, addr, bus.Read(addr))
	case cpu.ZeroPageY:
		addr := uint16(arg + y)
		return fmt.Sprintf("$%02x,Y @ %02x = %02x", arg, addr, bus.Read(addr))
	case cpu.IndirectX:
		ptr := arg + x
		addr := zpRead16(bus, ptr)
		return fmt.Sprintf("($%02x,X) @ %02x = %04x = %02x", arg, ptr, addr, bus.Read(addr))
	case cpu.IndirectY:
		addr := zpRead16(bus, arg)
		base := addr + uint16(y)
		return fmt.Sprintf("($%02x),Y = %04x @ %04x = %02x", arg, addr, base, bus.Read(base))
	case cpu.Relative:
		target := begin + 2 + uint16(int8(arg))
		return fmt.Sprintf("$%04x", target)
	default:
		return ""
	}
}

// operand3 formats the operand string for a 3-byte instruction.
func operand3(bus Bus, name string, mode uint8, lo, hi, x, y uint8) string {
	address := uint16(hi)<<8 | uint16(lo)

	if mode == cpu.Indirect {
		return fmt.Sprintf("($%04x) = %04x", address, jmpIndirectTarget(bus, address))
	}
	if name == "JMP" || name == "JSR" {
		return fmt.Sprintf("$%04x", address)
	}

	switch mode {
	case cpu.Absolute:
		return fmt.Sprintf("$%04x = %02x", address, bus.Read(address))
	case cpu.AbsoluteX:
		addr := address + uint16(x)
		return fmt.Sprintf("$%04x,X @ %04x = %02x", address, addr, bus.Read(addr))
	case cpu.AbsoluteY:
		addr := address + uint16(y)
		return fmt.Sprintf("$%04x,Y @ %04x = %02x", address, addr, bus.Read(addr))
	default:
		return ""
	}
}

// jmpIndirectTarget resolves a JMP ($nnnn) operand, preserving the
// page-boundary bug where a low byte of 0xFF wraps the high-byte
// fetch back to the start of the same page.
func jmpIndirectTarget(bus Bus, ptr uint16) uint16 {
	if ptr&0x00FF == 0x00FF {
		lo := uint16(bus.Read(ptr))
		hi := uint16(bus.Read(ptr & 0xFF00))
		return hi<<8 | lo
	}
	lo := uint16(bus.Read(ptr))
	hi := uint16(bus.Read(ptr + 1))
	return hi<<8 | lo
}

func zpRead16(bus Bus, zp uint8) uint16 {
	lo := uint16(bus.Read(uint16(zp)))
	hi := uint16(bus.Read(uint16(zp + 1)))
	return hi<<8 | lo
}
