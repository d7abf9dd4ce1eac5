package cpu

// execute runs a decoded instruction. The opcode fetch has already been
// charged; every operand fetch, memory access and internal delay is
// charged here.
func (c *CPU) execute(i Instruction) {
	switch i.Op {
	case OpNOP:
	case OpSTOP:
		// STOP is followed by a padding byte
		c.PC++
		c.state = Stopped
		c.bus.StopLCD()
	case OpHALT:
		c.state = Halted
	case OpDI:
		c.disablePending = true
	case OpEI:
		c.enablePending = true

	// loads
	case OpLD:
		c.set8(i.Dst, c.get8(i.Src))
	case OpLDImm:
		c.set8(i.Dst, c.readOperand())
	case OpLD16Imm:
		c.set16(i.Pair, c.readOperand16())
	case OpLDStore:
		c.writeByte(c.indirect(i.Ind), c.A)
	case OpLDLoad:
		c.A = c.readByte(c.indirect(i.Ind))
	case OpLDAbsSP:
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	case OpLDAbsStore:
		c.writeByte(c.readOperand16(), c.A)
	case OpLDAbsLoad:
		c.A = c.readByte(c.readOperand16())
	case OpLDHStore:
		c.writeByte(0xFF00|uint16(c.readOperand()), c.A)
	case OpLDHLoad:
		c.A = c.readByte(0xFF00 | uint16(c.readOperand()))
	case OpLDCStore:
		c.writeByte(0xFF00|uint16(c.C), c.A)
	case OpLDCLoad:
		c.A = c.readByte(0xFF00 | uint16(c.C))
	case OpLDSPHL:
		c.SP = c.HL.Uint16()
		c.tick(4)
	case OpLDHLSP:
		c.HL.SetUint16(c.addSPSigned(c.readOperand()))
		c.tick(4)

	// arithmetic
	case OpINC:
		c.set8(i.Dst, c.increment(c.get8(i.Dst)))
	case OpDEC:
		c.set8(i.Dst, c.decrement(c.get8(i.Dst)))
	case OpINC16:
		c.set16(i.Pair, c.get16(i.Pair)+1)
		c.tick(4)
	case OpDEC16:
		c.set16(i.Pair, c.get16(i.Pair)-1)
		c.tick(4)
	case OpADDHL:
		c.addHL(c.get16(i.Pair))
		c.tick(4)
	case OpADDSP:
		c.SP = c.addSPSigned(c.readOperand())
		c.tick(8)
	case OpALU:
		c.alu(i.ALU, c.get8(i.Src))
	case OpALUImm:
		c.alu(i.ALU, c.readOperand())

	// accumulator
	case OpRLCA:
		c.rotateA(RotRLC)
	case OpRRCA:
		c.rotateA(RotRRC)
	case OpRLA:
		c.rotateA(RotRL)
	case OpRRA:
		c.rotateA(RotRR)
	case OpDAA:
		c.decimalAdjust()
	case OpCPL:
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case OpSCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, true)
	case OpCCF:
		c.setFlags(c.isFlagSet(FlagZero), false, false, !c.isFlagSet(FlagCarry))

	// control flow
	case OpJP:
		c.jump(c.readOperand16(), true)
	case OpJPCond:
		c.jump(c.readOperand16(), c.condition(i.Cond))
	case OpJPHL:
		c.PC = c.HL.Uint16()
	case OpJR:
		c.jumpRelative(c.readOperand(), true)
	case OpJRCond:
		c.jumpRelative(c.readOperand(), c.condition(i.Cond))
	case OpCALL:
		c.call(c.readOperand16(), true)
	case OpCALLCond:
		c.call(c.readOperand16(), c.condition(i.Cond))
	case OpRET:
		c.ret()
	case OpRETCond:
		c.tick(4)
		if c.condition(i.Cond) {
			c.ret()
		}
	case OpRETI:
		c.ret()
		c.ime = true
	case OpRST:
		c.call(uint16(i.Bit)*8, true)
	case OpPUSH:
		c.tick(4)
		c.push16(c.get16(i.Pair))
	case OpPOP:
		c.set16(i.Pair, c.pop16())

	case OpPrefixCB:
		c.executeCB(DecodeCB(c.readOperand()))
	}
}

// executeCB runs an instruction from the CB table. Operations on (HL)
// read and write memory, except BIT which only reads.
func (c *CPU) executeCB(i Instruction) {
	if c.Trace {
		c.log.Debugf("      %s", i)
	}
	switch i.Op {
	case OpRotate:
		c.set8(i.Dst, c.rotate(i.Rot, c.get8(i.Dst)))
	case OpBIT:
		c.testBit(i.Bit, c.get8(i.Dst))
	case OpRES:
		c.set8(i.Dst, c.get8(i.Dst)&^(1<<i.Bit))
	case OpSET:
		c.set8(i.Dst, c.get8(i.Dst)|1<<i.Bit)
	}
}

// indirect returns the address selected by ind, post incrementing or
// decrementing HL for (HL+) and (HL-).
func (c *CPU) indirect(ind Indirect) uint16 {
	switch ind {
	case IndBC:
		return c.BC.Uint16()
	case IndDE:
		return c.DE.Uint16()
	}
	hl := c.HL.Uint16()
	if ind == IndHLInc {
		c.HL.SetUint16(hl + 1)
	} else {
		c.HL.SetUint16(hl - 1)
	}
	return hl
}

// jump sets PC to address when taken, with one internal cycle.
func (c *CPU) jump(address uint16, taken bool) {
	if taken {
		c.PC = address
		c.tick(4)
	}
}

// jumpRelative adds the signed offset e to PC when taken.
func (c *CPU) jumpRelative(e uint8, taken bool) {
	c.jump(c.PC+uint16(int8(e)), taken)
}

// call pushes PC and jumps to address when taken.
func (c *CPU) call(address uint16, taken bool) {
	if taken {
		c.tick(4)
		c.push16(c.PC)
		c.PC = address
	}
}

// ret pops PC from the stack.
func (c *CPU) ret() {
	c.PC = c.pop16()
	c.tick(4)
}
