// Package trace renders a NESticle-style execution trace line from an
// immutable CPU snapshot, matching the canonical nestest reference log
// byte-for-byte. It performs no state mutation: every memory byte is
// read through cpu.CPU.Peek, and the effective address for display is
// computed directly from the decoded addressing mode rather than by
// cloning the CPU and letting it execute.
package trace

import (
	"fmt"
	"strings"

	"github.com/bdwalton/nescore/cpu"
)

const (
	opJMPAbsolute = 0x4C
	opJSRAbsolute = 0x20
)

// Line renders one trace line for the instruction about to execute.
// ok is false when the byte at cpu.PC has no opcode table entry, the
// caller's signal to stop tracing (mirroring trace(cpu) -> string |
// None).
func Line(c *cpu.CPU) (line string, ok bool) {
	code := c.Peek(c.PC)
	inst, found := cpu.Lookup(code)
	if !found {
		return "", false
	}

	return fmt.Sprintf("%04X %-10s %s %-27s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		c.PC,
		instructionBytes(c, inst),
		inst.Name,
		operandText(c, code, inst.Mode),
		c.A, c.X, c.Y, c.Status, c.SP,
	), true
}

// instructionBytes renders the opcode byte followed by its operand
// bytes, each space-prefixed, e.g. " A9 05".
func instructionBytes(c *cpu.CPU, inst cpu.Instruction) string {
	var sb strings.Builder
	for i := uint16(0); i < uint16(inst.Size); i++ {
		fmt.Fprintf(&sb, " %02X", c.Peek(c.PC+i))
	}
	return sb.String()
}

func peek16(c *cpu.CPU, addr uint16) uint16 {
	lo := uint16(c.Peek(addr))
	hi := uint16(c.Peek(addr + 1))
	return lo | hi<<8
}

// peek16ZeroPage mirrors cpu's zero-page wrap: the high byte is read
// from (ptr+1) mod 256, staying within the zero page.
func peek16ZeroPage(c *cpu.CPU, ptr uint8) uint16 {
	lo := uint16(c.Peek(uint16(ptr)))
	hi := uint16(c.Peek(uint16(ptr + 1)))
	return lo | hi<<8
}

// operandText formats the operand per addressing mode, with pc = PC+1
// (the address of the first operand byte, since the trace line is
// produced before PC advances past the instruction).
func operandText(c *cpu.CPU, code uint8, mode cpu.AddressingMode) string {
	pc := c.PC + 1

	switch mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", c.Peek(pc))
	case cpu.ZeroPage:
		addr := c.Peek(pc)
		return fmt.Sprintf("$%02X = %02X", addr, c.Peek(uint16(addr)))
	case cpu.ZeroPageX:
		addr := c.Peek(pc)
		eff := addr + c.X
		return fmt.Sprintf("$%02X,X @ %02X = %02X", addr, eff, c.Peek(uint16(eff)))
	case cpu.ZeroPageY:
		addr := c.Peek(pc)
		eff := addr + c.Y
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", addr, eff, c.Peek(uint16(eff)))
	case cpu.IndirectX:
		addr := c.Peek(pc)
		ptr := addr + c.X
		real := peek16ZeroPage(c, ptr)
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", addr, ptr, real, c.Peek(real))
	case cpu.IndirectY:
		addr := c.Peek(pc)
		base := peek16ZeroPage(c, addr)
		eff := base + uint16(c.Y)
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", addr, base, eff, c.Peek(eff))
	case cpu.Relative:
		offset := int8(c.Peek(pc))
		target := pc + 1 + uint16(offset)
		return fmt.Sprintf("$%04X", target)
	case cpu.Absolute:
		addr := peek16(c, pc)
		if code == opJMPAbsolute || code == opJSRAbsolute {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, c.Peek(addr))
	case cpu.AbsoluteX:
		base := peek16(c, pc)
		eff := base + uint16(c.X)
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, eff, c.Peek(eff))
	case cpu.AbsoluteY:
		base := peek16(c, pc)
		eff := base + uint16(c.Y)
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, eff, c.Peek(eff))
	case cpu.Indirect:
		ptr := peek16(c, pc)
		hiAddr := ptr + 1
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr &^ 0x00FF
		}
		eff := uint16(c.Peek(ptr)) | uint16(c.Peek(hiAddr))<<8
		return fmt.Sprintf("($%04X) = %04X", ptr, eff)
	default:
		return ""
	}
}
