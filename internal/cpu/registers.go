package cpu

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// reg8 returns a pointer to the register selected by r. MemHL has
// no backing register and is handled by the callers.
func (c *CPU) reg8(r Reg8) *Register {
	switch r {
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	case RegA:
		return &c.A
	}
	return nil
}

// get8 returns the operand selected by r, reading memory at HL for
// MemHL.
func (c *CPU) get8(r Reg8) uint8 {
	if r == MemHL {
		return c.readByte(c.HL.Uint16())
	}
	return *c.reg8(r)
}

// set8 stores value in the operand selected by r, writing memory at
// HL for MemHL.
func (c *CPU) set8(r Reg8, value uint8) {
	if r == MemHL {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.reg8(r) = value
}

// get16 returns the value of the register pair selected by p.
func (c *CPU) get16(p Reg16) uint16 {
	switch p {
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHL:
		return c.HL.Uint16()
	case PairAF:
		return c.AF.Uint16()
	}
	return c.SP
}

// set16 stores value in the register pair selected by p. The lower
// nibble of F always reads back as zero.
func (c *CPU) set16(p Reg16, value uint16) {
	switch p {
	case PairBC:
		c.BC.SetUint16(value)
	case PairDE:
		c.DE.SetUint16(value)
	case PairHL:
		c.HL.SetUint16(value)
	case PairAF:
		c.AF.SetUint16(value)
		c.F &= 0xF0
	default:
		c.SP = value
	}
}
