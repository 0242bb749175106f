package cpu

func opINC(c *CPU, mode AddressingMode) {
	addr := c.resolve(mode)
	v := c.bus.Read8(addr) + 1
	c.bus.Write8(addr, v)
	c.setNZ(v)
}

func opINX(c *CPU, mode AddressingMode) {
	c.X++
	c.setNZ(c.X)
}

func opINY(c *CPU, mode AddressingMode) {
	c.Y++
	c.setNZ(c.Y)
}

func opDEC(c *CPU, mode AddressingMode) {
	addr := c.resolve(mode)
	v := c.bus.Read8(addr) - 1
	c.bus.Write8(addr, v)
	c.setNZ(v)
}

func opDEX(c *CPU, mode AddressingMode) {
	c.X--
	c.setNZ(c.X)
}

func opDEY(c *CPU, mode AddressingMode) {
	c.Y--
	c.setNZ(c.Y)
}
