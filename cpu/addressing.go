package cpu

// operandAddr resolves the effective address for mode, given PC
// pointing at the first operand byte. It must not be called for
// Implicit or Accumulator, which carry no addressable operand.
//
// Indexed modes that can cross a page boundary record the fact in
// c.pageCrossed; Step turns that into a cycle penalty for the
// mnemonics that care (see pageCrossSensitive).
func (c *CPU) operandAddr(mode uint8) uint16 {
	switch mode {
	case ZeroPage:
		return uint16(c.Bus.Read(c.PC))
	case ZeroPageX:
		return uint16(c.Bus.Read(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.Bus.Read(c.PC) + c.Y)
	case Absolute:
		return c.read16(c.PC)
	case AbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		c.pageCrossed = pageDiffers(base, addr)
		return addr
	case AbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		c.pageCrossed = pageDiffers(base, addr)
		return addr
	case Indirect:
		// Only JMP uses this mode, and only JMP carries the
		// page-boundary bug: if the pointer's low byte is
		// 0xFF, the high byte wraps within the same page
		// instead of crossing into the next one.
		ptr := c.read16(c.PC)
		if ptr&0x00FF == 0x00FF {
			lo := uint16(c.Bus.Read(ptr))
			hi := uint16(c.Bus.Read(ptr & 0xFF00))
			return hi<<8 | lo
		}
		return c.read16(ptr)
	case IndirectX:
		zp := c.Bus.Read(c.PC) + c.X
		return c.zpRead16(zp)
	case IndirectY:
		zp := c.Bus.Read(c.PC)
		base := c.zpRead16(zp)
		addr := base + uint16(c.Y)
		c.pageCrossed = pageDiffers(base, addr)
		return addr
	default:
		panic("cpu: addressing mode has no operand address")
	}
}

// operandValue fetches the byte an instruction operates on, handling
// Immediate (which reads straight from PC) as well as every
// memory-indirected mode.
func (c *CPU) operandValue(mode uint8) uint8 {
	if mode == Immediate {
		return c.Bus.Read(c.PC)
	}
	return c.Bus.Read(c.operandAddr(mode))
}

// zpRead16 reads a little-endian 16-bit pointer out of zero page,
// wrapping the high byte back to $00 rather than spilling into page
// one — the documented behavior of IndirectX/IndirectY.
func (c *CPU) zpRead16(zp uint8) uint16 {
	lo := uint16(c.Bus.Read(uint16(zp)))
	hi := uint16(c.Bus.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

func pageDiffers(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
