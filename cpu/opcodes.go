package cpu

// Addressing modes, as enumerated in the MOS 6502 reference.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	Implicit = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // Indexed Indirect: (zp,X)
	IndirectY // Indirect Indexed: (zp),Y
)

// Lookup returns the static metadata for an opcode byte, for
// disassembly/tracing callers outside this package. ok is false for
// bytes with no legal-opcode table entry.
func Lookup(opByte uint8) (name string, mode uint8, bytes uint8, ok bool) {
	inst, found := opcodes[opByte]
	if !found {
		return "", 0, 0, false
	}
	return inst.Name, inst.Mode, inst.Bytes, true
}

// instruction describes one of the 256 possible opcode bytes:
// its mnemonic, addressing mode, total instruction length in bytes
// (opcode + operands) and base cycle count (page-crossing and
// branch-taken penalties are added at execution time). Exec is a
// method expression bound to the handler implementing the mnemonic.
type instruction struct {
	Name   string
	Mode   uint8
	Bytes  uint8
	Cycles uint8
	Exec   func(c *CPU, mode uint8)
}

// opcodes is the static, opcode-indexed table of all 151 legal 6502
// instructions. Opcode bytes absent from this table are unrecognized
// and handled by the CPU's error policy (see Step).
var opcodes = map[uint8]instruction{
	0x69: {"ADC", Immediate, 2, 2, (*CPU).adc},
	0x65: {"ADC", ZeroPage, 2, 3, (*CPU).adc},
	0x75: {"ADC", ZeroPageX, 2, 4, (*CPU).adc},
	0x6D: {"ADC", Absolute, 3, 4, (*CPU).adc},
	0x7D: {"ADC", AbsoluteX, 3, 4, (*CPU).adc},
	0x79: {"ADC", AbsoluteY, 3, 4, (*CPU).adc},
	0x61: {"ADC", IndirectX, 2, 6, (*CPU).adc},
	0x71: {"ADC", IndirectY, 2, 5, (*CPU).adc},

	0x29: {"AND", Immediate, 2, 2, (*CPU).and},
	0x25: {"AND", ZeroPage, 2, 3, (*CPU).and},
	0x35: {"AND", ZeroPageX, 2, 4, (*CPU).and},
	0x2D: {"AND", Absolute, 3, 4, (*CPU).and},
	0x3D: {"AND", AbsoluteX, 3, 4, (*CPU).and},
	0x39: {"AND", AbsoluteY, 3, 4, (*CPU).and},
	0x21: {"AND", IndirectX, 2, 6, (*CPU).and},
	0x31: {"AND", IndirectY, 2, 5, (*CPU).and},

	0x0A: {"ASL", Accumulator, 1, 2, (*CPU).asl},
	0x06: {"ASL", ZeroPage, 2, 5, (*CPU).asl},
	0x16: {"ASL", ZeroPageX, 2, 6, (*CPU).asl},
	0x0E: {"ASL", Absolute, 3, 6, (*CPU).asl},
	0x1E: {"ASL", AbsoluteX, 3, 7, (*CPU).asl},

	0x90: {"BCC", Relative, 2, 2, (*CPU).bcc},
	0xB0: {"BCS", Relative, 2, 2, (*CPU).bcs},
	0xF0: {"BEQ", Relative, 2, 2, (*CPU).beq},
	0x30: {"BMI", Relative, 2, 2, (*CPU).bmi},
	0xD0: {"BNE", Relative, 2, 2, (*CPU).bne},
	0x10: {"BPL", Relative, 2, 2, (*CPU).bpl},
	0x50: {"BVC", Relative, 2, 2, (*CPU).bvc},
	0x70: {"BVS", Relative, 2, 2, (*CPU).bvs},

	0x24: {"BIT", ZeroPage, 2, 3, (*CPU).bit},
	0x2C: {"BIT", Absolute, 3, 4, (*CPU).bit},

	0x00: {"BRK", Implicit, 1, 7, (*CPU).brk},

	0x18: {"CLC", Implicit, 1, 2, (*CPU).clc},
	0xD8: {"CLD", Implicit, 1, 2, (*CPU).cld},
	0x58: {"CLI", Implicit, 1, 2, (*CPU).cli},
	0xB8: {"CLV", Implicit, 1, 2, (*CPU).clv},

	0xC9: {"CMP", Immediate, 2, 2, (*CPU).cmp},
	0xC5: {"CMP", ZeroPage, 2, 3, (*CPU).cmp},
	0xD5: {"CMP", ZeroPageX, 2, 4, (*CPU).cmp},
	0xCD: {"CMP", Absolute, 3, 4, (*CPU).cmp},
	0xDD: {"CMP", AbsoluteX, 3, 4, (*CPU).cmp},
	0xD9: {"CMP", AbsoluteY, 3, 4, (*CPU).cmp},
	0xC1: {"CMP", IndirectX, 2, 6, (*CPU).cmp},
	0xD1: {"CMP", IndirectY, 2, 5, (*CPU).cmp},

	0xE0: {"CPX", Immediate, 2, 2, (*CPU).cpx},
	0xE4: {"CPX", ZeroPage, 2, 3, (*CPU).cpx},
	0xEC: {"CPX", Absolute, 3, 4, (*CPU).cpx},

	0xC0: {"CPY", Immediate, 2, 2, (*CPU).cpy},
	0xC4: {"CPY", ZeroPage, 2, 3, (*CPU).cpy},
	0xCC: {"CPY", Absolute, 3, 4, (*CPU).cpy},

	0xC6: {"DEC", ZeroPage, 2, 5, (*CPU).dec},
	0xD6: {"DEC", ZeroPageX, 2, 6, (*CPU).dec},
	0xCE: {"DEC", Absolute, 3, 6, (*CPU).dec},
	0xDE: {"DEC", AbsoluteX, 3, 7, (*CPU).dec},

	0xCA: {"DEX", Implicit, 1, 2, (*CPU).dex},
	0x88: {"DEY", Implicit, 1, 2, (*CPU).dey},

	0x49: {"EOR", Immediate, 2, 2, (*CPU).eor},
	0x45: {"EOR", ZeroPage, 2, 3, (*CPU).eor},
	0x55: {"EOR", ZeroPageX, 2, 4, (*CPU).eor},
	0x4D: {"EOR", Absolute, 3, 4, (*CPU).eor},
	0x5D: {"EOR", AbsoluteX, 3, 4, (*CPU).eor},
	0x59: {"EOR", AbsoluteY, 3, 4, (*CPU).eor},
	0x41: {"EOR", IndirectX, 2, 6, (*CPU).eor},
	0x51: {"EOR", IndirectY, 2, 5, (*CPU).eor},

	0xE6: {"INC", ZeroPage, 2, 5, (*CPU).inc},
	0xF6: {"INC", ZeroPageX, 2, 6, (*CPU).inc},
	0xEE: {"INC", Absolute, 3, 6, (*CPU).inc},
	0xFE: {"INC", AbsoluteX, 3, 7, (*CPU).inc},

	0xE8: {"INX", Implicit, 1, 2, (*CPU).inx},
	0xC8: {"INY", Implicit, 1, 2, (*CPU).iny},

	0x4C: {"JMP", Absolute, 3, 3, (*CPU).jmp},
	0x6C: {"JMP", Indirect, 3, 5, (*CPU).jmp},

	0x20: {"JSR", Absolute, 3, 6, (*CPU).jsr},

	0xA9: {"LDA", Immediate, 2, 2, (*CPU).lda},
	0xA5: {"LDA", ZeroPage, 2, 3, (*CPU).lda},
	0xB5: {"LDA", ZeroPageX, 2, 4, (*CPU).lda},
	0xAD: {"LDA", Absolute, 3, 4, (*CPU).lda},
	0xBD: {"LDA", AbsoluteX, 3, 4, (*CPU).lda},
	0xB9: {"LDA", AbsoluteY, 3, 4, (*CPU).lda},
	0xA1: {"LDA", IndirectX, 2, 6, (*CPU).lda},
	0xB1: {"LDA", IndirectY, 2, 5, (*CPU).lda},

	0xA2: {"LDX", Immediate, 2, 2, (*CPU).ldx},
	0xA6: {"LDX", ZeroPage, 2, 3, (*CPU).ldx},
	0xB6: {"LDX", ZeroPageY, 2, 4, (*CPU).ldx},
	0xAE: {"LDX", Absolute, 3, 4, (*CPU).ldx},
	0xBE: {"LDX", AbsoluteY, 3, 4, (*CPU).ldx},

	0xA0: {"LDY", Immediate, 2, 2, (*CPU).ldy},
	0xA4: {"LDY", ZeroPage, 2, 3, (*CPU).ldy},
	0xB4: {"LDY", ZeroPageX, 2, 4, (*CPU).ldy},
	0xAC: {"LDY", Absolute, 3, 4, (*CPU).ldy},
	0xBC: {"LDY", AbsoluteX, 3, 4, (*CPU).ldy},

	0x4A: {"LSR", Accumulator, 1, 2, (*CPU).lsr},
	0x46: {"LSR", ZeroPage, 2, 5, (*CPU).lsr},
	0x56: {"LSR", ZeroPageX, 2, 6, (*CPU).lsr},
	0x4E: {"LSR", Absolute, 3, 6, (*CPU).lsr},
	0x5E: {"LSR", AbsoluteX, 3, 7, (*CPU).lsr},

	0xEA: {"NOP", Implicit, 1, 2, (*CPU).nop},

	0x09: {"ORA", Immediate, 2, 2, (*CPU).ora},
	0x05: {"ORA", ZeroPage, 2, 3, (*CPU).ora},
	0x15: {"ORA", ZeroPageX, 2, 4, (*CPU).ora},
	0x0D: {"ORA", Absolute, 3, 4, (*CPU).ora},
	0x1D: {"ORA", AbsoluteX, 3, 4, (*CPU).ora},
	0x19: {"ORA", AbsoluteY, 3, 4, (*CPU).ora},
	0x01: {"ORA", IndirectX, 2, 6, (*CPU).ora},
	0x11: {"ORA", IndirectY, 2, 5, (*CPU).ora},

	0x48: {"PHA", Implicit, 1, 3, (*CPU).pha},
	0x08: {"PHP", Implicit, 1, 3, (*CPU).php},
	0x68: {"PLA", Implicit, 1, 4, (*CPU).pla},
	0x28: {"PLP", Implicit, 1, 4, (*CPU).plp},

	0x2A: {"ROL", Accumulator, 1, 2, (*CPU).rol},
	0x26: {"ROL", ZeroPage, 2, 5, (*CPU).rol},
	0x36: {"ROL", ZeroPageX, 2, 6, (*CPU).rol},
	0x2E: {"ROL", Absolute, 3, 6, (*CPU).rol},
	0x3E: {"ROL", AbsoluteX, 3, 7, (*CPU).rol},

	0x6A: {"ROR", Accumulator, 1, 2, (*CPU).ror},
	0x66: {"ROR", ZeroPage, 2, 5, (*CPU).ror},
	0x76: {"ROR", ZeroPageX, 2, 6, (*CPU).ror},
	0x6E: {"ROR", Absolute, 3, 6, (*CPU).ror},
	0x7E: {"ROR", AbsoluteX, 3, 7, (*CPU).ror},

	0x40: {"RTI", Implicit, 1, 6, (*CPU).rti},
	0x60: {"RTS", Implicit, 1, 6, (*CPU).rts},

	0xE9: {"SBC", Immediate, 2, 2, (*CPU).sbc},
	0xE5: {"SBC", ZeroPage, 2, 3, (*CPU).sbc},
	0xF5: {"SBC", ZeroPageX, 2, 4, (*CPU).sbc},
	0xED: {"SBC", Absolute, 3, 4, (*CPU).sbc},
	0xFD: {"SBC", AbsoluteX, 3, 4, (*CPU).sbc},
	0xF9: {"SBC", AbsoluteY, 3, 4, (*CPU).sbc},
	0xE1: {"SBC", IndirectX, 2, 6, (*CPU).sbc},
	0xF1: {"SBC", IndirectY, 2, 5, (*CPU).sbc},

	0x38: {"SEC", Implicit, 1, 2, (*CPU).sec},
	0xF8: {"SED", Implicit, 1, 2, (*CPU).sed},
	0x78: {"SEI", Implicit, 1, 2, (*CPU).sei},

	0x85: {"STA", ZeroPage, 2, 3, (*CPU).sta},
	0x95: {"STA", ZeroPageX, 2, 4, (*CPU).sta},
	0x8D: {"STA", Absolute, 3, 4, (*CPU).sta},
	0x9D: {"STA", AbsoluteX, 3, 5, (*CPU).sta},
	0x99: {"STA", AbsoluteY, 3, 5, (*CPU).sta},
	0x81: {"STA", IndirectX, 2, 6, (*CPU).sta},
	0x91: {"STA", IndirectY, 2, 6, (*CPU).sta},

	0x86: {"STX", ZeroPage, 2, 3, (*CPU).stx},
	0x96: {"STX", ZeroPageY, 2, 4, (*CPU).stx},
	0x8E: {"STX", Absolute, 3, 4, (*CPU).stx},

	0x84: {"STY", ZeroPage, 2, 3, (*CPU).sty},
	0x94: {"STY", ZeroPageX, 2, 4, (*CPU).sty},
	0x8C: {"STY", Absolute, 3, 4, (*CPU).sty},

	0xAA: {"TAX", Implicit, 1, 2, (*CPU).tax},
	0xA8: {"TAY", Implicit, 1, 2, (*CPU).tay},
	0xBA: {"TSX", Implicit, 1, 2, (*CPU).tsx},
	0x8A: {"TXA", Implicit, 1, 2, (*CPU).txa},
	0x9A: {"TXS", Implicit, 1, 2, (*CPU).txs},
	0x98: {"TYA", Implicit, 1, 2, (*CPU).tya},
}
