package cpu

func opLDA(c *CPU, mode AddressingMode) {
	c.A = c.bus.Read8(c.resolve(mode))
	c.setNZ(c.A)
}

func opLDX(c *CPU, mode AddressingMode) {
	c.X = c.bus.Read8(c.resolve(mode))
	c.setNZ(c.X)
}

func opLDY(c *CPU, mode AddressingMode) {
	c.Y = c.bus.Read8(c.resolve(mode))
	c.setNZ(c.Y)
}
