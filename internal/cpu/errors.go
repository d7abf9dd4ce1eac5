package cpu

import "fmt"

// DecodeError is returned by Step when the opcode at PC has no
// defined behaviour. PC is left pointing at the opcode.
type DecodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: undefined opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
