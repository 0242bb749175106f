package cpu

func opAND(c *CPU, mode AddressingMode) {
	c.A &= c.bus.Read8(c.resolve(mode))
	c.setNZ(c.A)
}

func opEOR(c *CPU, mode AddressingMode) {
	c.A ^= c.bus.Read8(c.resolve(mode))
	c.setNZ(c.A)
}

func opORA(c *CPU, mode AddressingMode) {
	c.A |= c.bus.Read8(c.resolve(mode))
	c.setNZ(c.A)
}

// BIT tests bits of a memory value against A without altering A: Z
// comes from A&M, N and V are copied straight from bits 7 and 6 of M.
func opBIT(c *CPU, mode AddressingMode) {
	m := c.bus.Read8(c.resolve(mode))

	if c.A&m == 0 {
		c.flagsOn(FlagZero)
	} else {
		c.flagsOff(FlagZero)
	}
	c.flagsOff(FlagNegative | FlagOverflow)
	c.flagsOn(m & (FlagNegative | FlagOverflow))
}
