package cpu

import "strings"

// Status flag bits, in register order (bit 0 -> bit 7).
// https://www.nesdev.org/obelisk-6502-guide/registers.html
const (
	FlagCarry      uint8 = 1 << 0 // C
	FlagZero       uint8 = 1 << 1 // Z
	FlagInterrupt  uint8 = 1 << 2 // I
	FlagDecimal    uint8 = 1 << 3 // D - stored, ignored by arithmetic
	FlagBreak      uint8 = 1 << 4 // B
	FlagUnused     uint8 = 1 << 5 // U - always reads as 1
	FlagOverflow   uint8 = 1 << 6 // V
	FlagNegative   uint8 = 1 << 7 // N
)

var flagLetters = []struct {
	mask uint8
	ch   byte
}{
	{FlagNegative, 'N'},
	{FlagOverflow, 'V'},
	{FlagUnused, 'U'},
	{FlagBreak, 'B'},
	{FlagDecimal, 'D'},
	{FlagInterrupt, 'I'},
	{FlagZero, 'Z'},
	{FlagCarry, 'C'},
}

// statusString renders a status byte as NVUBDIZC with unset bits
// shown as '.', high bit first.
func statusString(p uint8) string {
	var sb strings.Builder
	for _, f := range flagLetters {
		if p&f.mask != 0 {
			sb.WriteByte(f.ch)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
