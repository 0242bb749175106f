package cpu

func opPHA(c *CPU, mode AddressingMode) {
	c.push8(c.A)
}

// opPHP pushes the status byte with B and U both forced set, the NES
// convention for a software-initiated stack push.
func opPHP(c *CPU, mode AddressingMode) {
	c.push8(c.Status | FlagBreak | FlagUnused)
}

func opPLA(c *CPU, mode AddressingMode) {
	c.A = c.pop8()
	c.setNZ(c.A)
}

// opPLP restores the status byte but clears B and forces U set,
// mirroring opPHP's push convention.
func opPLP(c *CPU, mode AddressingMode) {
	c.Status = (c.pop8() &^ FlagBreak) | FlagUnused
}
