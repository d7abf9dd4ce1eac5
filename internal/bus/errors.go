package bus

import "fmt"

// Access is the kind of memory access that failed.
type Access uint8

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// BusError is raised when an address falls outside every region of
// the memory map. It indicates a modeling gap, and the run should
// be aborted rather than continued with the wrong state.
type BusError struct {
	Address uint16
	Access  Access
	Value   uint8 // only meaningful for Write
}

func (e *BusError) Error() string {
	if e.Access == Write {
		return fmt.Sprintf("bus: unmapped write to 0x%04X (value 0x%02X)", e.Address, e.Value)
	}
	return fmt.Sprintf("bus: unmapped read from 0x%04X", e.Address)
}
