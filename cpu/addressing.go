package cpu

// AddressingMode identifies how an opcode's operand address is
// derived from the instruction stream and registers.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressingMode uint8

const (
	Implied AddressingMode = iota
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

// operandSize is how many operand bytes follow the opcode byte
// itself, per mode. Implied/Accumulator consume none.
func (m AddressingMode) operandSize() uint16 {
	switch m {
	case Implied, Accumulator:
		return 0
	case ZeroPage, ZeroPageX, ZeroPageY, Relative, IndirectX, IndirectY, Immediate:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// resolve computes the effective address for mode, reading whatever
// operand bytes it needs from PC (which must already point at the
// first operand byte) without advancing PC itself — unless the
// handler jumped, Tick advances PC past the operand bytes once the
// handler returns. Accumulator and Implied have no effective address and must
// not be passed here.
func (c *CPU) resolve(mode AddressingMode) uint16 {
	switch mode {
	case Immediate:
		return c.PC
	case ZeroPage:
		return uint16(c.bus.Read8(c.PC))
	case ZeroPageX:
		return uint16(c.bus.Read8(c.PC) + c.X)
	case ZeroPageY:
		return uint16(c.bus.Read8(c.PC) + c.Y)
	case Absolute:
		return c.bus.Read16(c.PC)
	case AbsoluteX:
		return c.bus.Read16(c.PC) + uint16(c.X)
	case AbsoluteY:
		return c.bus.Read16(c.PC) + uint16(c.Y)
	case Indirect:
		return c.readIndirectWrapped(c.bus.Read16(c.PC))
	case IndirectX:
		ptr := c.bus.Read8(c.PC) + c.X
		return c.bus.Read16ZeroPage(ptr)
	case IndirectY:
		base := c.bus.Read16ZeroPage(c.bus.Read8(c.PC))
		return base + uint16(c.Y)
	case Relative:
		return c.PC + 1 + uint16(int8(c.bus.Read8(c.PC)))
	default:
		panic("cpu: mode has no effective address")
	}
}

// readIndirectWrapped resolves the JMP ($xxFF) page-wrap quirk: when
// the pointer's low byte is $FF, the high byte is fetched from offset
// $00 of the *same* page rather than the start of the next one.
func (c *CPU) readIndirectWrapped(ptr uint16) uint16 {
	lo := uint16(c.bus.Read8(ptr))
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr &^ 0x00FF
	}
	hi := uint16(c.bus.Read8(hiAddr))
	return lo | hi<<8
}
