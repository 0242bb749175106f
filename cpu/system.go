package cpu

// BRK sets the B flag and advances PC past the signature byte that
// conventionally follows it. This is a placeholder for the full
// interrupt-stacking behaviour BRK performs on real hardware (push
// PC+2, push status, load PC from the IRQ/BRK vector, set I) — real
// interrupt latency is out of scope here, and Tick already reports
// Halt for opcode $00 regardless of what the handler does.
func opBRK(c *CPU, mode AddressingMode) {
	c.PC++
	c.flagsOn(FlagBreak)
}

func opNOP(c *CPU, mode AddressingMode) {}
