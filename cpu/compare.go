package cpu

// baseCompare computes a-b without storing the result: C is set when
// a >= b (no borrow), N/Z come from the byte-wise difference.
func (c *CPU) baseCompare(a, b uint8) {
	c.setNZ(a - b)
	if a >= b {
		c.flagsOn(FlagCarry)
	} else {
		c.flagsOff(FlagCarry)
	}
}

func opCMP(c *CPU, mode AddressingMode) {
	c.baseCompare(c.A, c.bus.Read8(c.resolve(mode)))
}

func opCPX(c *CPU, mode AddressingMode) {
	c.baseCompare(c.X, c.bus.Read8(c.resolve(mode)))
}

func opCPY(c *CPU, mode AddressingMode) {
	c.baseCompare(c.Y, c.bus.Read8(c.resolve(mode)))
}
