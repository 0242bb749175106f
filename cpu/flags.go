package cpu

func opSEC(c *CPU, mode AddressingMode) { c.flagsOn(FlagCarry) }
func opCLC(c *CPU, mode AddressingMode) { c.flagsOff(FlagCarry) }
func opSED(c *CPU, mode AddressingMode) { c.flagsOn(FlagDecimal) }
func opCLD(c *CPU, mode AddressingMode) { c.flagsOff(FlagDecimal) }
func opSEI(c *CPU, mode AddressingMode) { c.flagsOn(FlagInterrupt) }
func opCLI(c *CPU, mode AddressingMode) { c.flagsOff(FlagInterrupt) }
func opCLV(c *CPU, mode AddressingMode) { c.flagsOff(FlagOverflow) }
