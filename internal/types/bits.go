package types

// Single bit masks, used throughout the hardware registers.
const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Region is a half-open range of the 16-bit address space.
type Region struct {
	Start uint16
	End   uint16 // exclusive, 0 means the end of the address space
}

// Contains reports whether address falls inside the region.
func (r Region) Contains(address uint16) bool {
	if r.End == 0 {
		return address >= r.Start
	}
	return address >= r.Start && address < r.End
}

// Offset returns the address relative to the start of the region.
func (r Region) Offset(address uint16) uint16 {
	return address - r.Start
}

// Size returns the number of bytes covered by the region.
func (r Region) Size() int {
	if r.End == 0 {
		return 0x10000 - int(r.Start)
	}
	return int(r.End) - int(r.Start)
}
