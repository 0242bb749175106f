package cpu

func opSTA(c *CPU, mode AddressingMode) {
	c.bus.Write8(c.resolve(mode), c.A)
}

func opSTX(c *CPU, mode AddressingMode) {
	c.bus.Write8(c.resolve(mode), c.X)
}

func opSTY(c *CPU, mode AddressingMode) {
	c.bus.Write8(c.resolve(mode), c.Y)
}
