package cpu

// alu applies op to the A register and n.
func (c *CPU) alu(op ALUOp, n uint8) {
	switch op {
	case ALUAdd:
		c.A = c.add(n, 0)
	case ALUAdc:
		c.A = c.add(n, c.carryIn())
	case ALUSub:
		c.A = c.sub(n, 0)
	case ALUSbc:
		c.A = c.sub(n, c.carryIn())
	case ALUAnd:
		c.and(n)
	case ALUXor:
		c.xor(n)
	case ALUOr:
		c.or(n)
	case ALUCp:
		c.sub(n, 0)
	}
}

// add returns A + n + carry.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n, carry uint8) uint8 {
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	carries := uint16(c.A) ^ uint16(n) ^ sum
	c.setFlags(uint8(sum) == 0, false, carries&0x10 != 0, carries&0x100 != 0)
	return uint8(sum)
}

// sub returns A - n - carry. CP discards the result and keeps the
// flags.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n, carry uint8) uint8 {
	diff := uint16(c.A) - uint16(n) - uint16(carry)
	borrows := uint16(c.A) ^ uint16(n) ^ diff
	c.setFlags(uint8(diff) == 0, true, borrows&0x10 != 0, borrows&0x100 != 0)
	return uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// increment returns n + 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0x0F == 0x0F, c.isFlagSet(FlagCarry))
	return result
}

// decrement returns n - 1.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0x0F == 0, c.isFlagSet(FlagCarry))
	return result
}

// addHL adds n to HL.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(FlagZero), false, hl&0x0FFF+n&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e, shared by ADD SP, e
// and LD HL, SP+e.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte.
//	C - Set if carry from bit 7 of the low byte.
func (c *CPU) addSPSigned(e uint8) uint16 {
	offset := uint16(int8(e))
	result := c.SP + offset
	carries := c.SP ^ offset ^ result
	c.setFlags(false, false, carries&0x10 != 0, carries&0x100 != 0)
	return result
}

// decimalAdjust corrects A to binary coded decimal after an addition
// or subtraction, using N, H and C from that operation.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or kept if a correction of 0x60 was applied.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.isFlagSet(FlagCarry)
	subtract := c.isFlagSet(FlagSubtract)

	if c.isFlagSet(FlagHalfCarry) || (!subtract && c.A&0x0F > 0x09) {
		correction |= 0x06
	}
	if carry || (!subtract && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, subtract, false, carry)
}

// rotate applies a CB rotate, shift or swap to n.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out, reset for SWAP.
func (c *CPU) rotate(op RotOp, n uint8) uint8 {
	var result, out uint8
	switch op {
	case RotRLC:
		out = n >> 7
		result = n<<1 | out
	case RotRRC:
		out = n & 1
		result = n>>1 | out<<7
	case RotRL:
		out = n >> 7
		result = n<<1 | c.carryIn()
	case RotRR:
		out = n & 1
		result = n>>1 | c.carryIn()<<7
	case RotSLA:
		out = n >> 7
		result = n << 1
	case RotSRA:
		out = n & 1
		result = n>>1 | n&0x80
	case RotSWAP:
		result = n<<4 | n>>4
	case RotSRL:
		out = n & 1
		result = n >> 1
	}
	c.setFlags(result == 0, false, false, out == 1)
	return result
}

// rotateA is the accumulator form of RLC, RRC, RL and RR, which always
// resets Z.
func (c *CPU) rotateA(op RotOp) {
	c.A = c.rotate(op, c.A)
	c.clearFlag(FlagZero)
}

// testBit tests bit b of n.
//
// Flags affected:
//
//	Z - Set if bit b of n is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(b, n uint8) {
	c.setFlags(n&(1<<b) == 0, false, true, c.isFlagSet(FlagCarry))
}
