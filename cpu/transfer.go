package cpu

func opTAX(c *CPU, mode AddressingMode) {
	c.X = c.A
	c.setNZ(c.X)
}

func opTAY(c *CPU, mode AddressingMode) {
	c.Y = c.A
	c.setNZ(c.Y)
}

func opTSX(c *CPU, mode AddressingMode) {
	c.X = c.SP
	c.setNZ(c.X)
}

func opTXA(c *CPU, mode AddressingMode) {
	c.A = c.X
	c.setNZ(c.A)
}

// TXS does not touch the flags; SP is not a value register.
func opTXS(c *CPU, mode AddressingMode) {
	c.SP = c.X
}

func opTYA(c *CPU, mode AddressingMode) {
	c.A = c.Y
	c.setNZ(c.A)
}
