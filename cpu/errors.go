package cpu

import "fmt"

// InvalidOpcodeError is returned by Tick and Run when the byte at PC
// does not appear in the opcode table. The CPU is left with PC
// pointing just past the offending byte so the caller can inspect
// state.
type InvalidOpcodeError struct {
	Code uint8
	At   uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode %#02x at %#04x", e.Code, e.At)
}
