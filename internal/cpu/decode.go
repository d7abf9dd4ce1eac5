package cpu

// Decode maps an opcode from the primary table to its instruction.
// Opcodes are split into the fields x (bits 7-6), y (bits 5-3) and
// z (bits 2-0), with y further split into p (bits 5-4) and q (bit 3).
// The eleven opcodes with no defined behaviour return false.
func Decode(opcode uint8) (Instruction, bool) {
	x, y, z := opcode>>6, opcode>>3&7, opcode&7
	p, q := y>>1, y&1

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				return Instruction{Op: OpNOP}, true
			case 1:
				return Instruction{Op: OpLDAbsSP}, true
			case 2:
				return Instruction{Op: OpSTOP}, true
			case 3:
				return Instruction{Op: OpJR}, true
			}
			return Instruction{Op: OpJRCond, Cond: Cond(y - 4)}, true
		case 1:
			if q == 0 {
				return Instruction{Op: OpLD16Imm, Pair: Reg16(p)}, true
			}
			return Instruction{Op: OpADDHL, Pair: Reg16(p)}, true
		case 2:
			if q == 0 {
				return Instruction{Op: OpLDStore, Ind: Indirect(p)}, true
			}
			return Instruction{Op: OpLDLoad, Ind: Indirect(p)}, true
		case 3:
			if q == 0 {
				return Instruction{Op: OpINC16, Pair: Reg16(p)}, true
			}
			return Instruction{Op: OpDEC16, Pair: Reg16(p)}, true
		case 4:
			return Instruction{Op: OpINC, Dst: Reg8(y)}, true
		case 5:
			return Instruction{Op: OpDEC, Dst: Reg8(y)}, true
		case 6:
			return Instruction{Op: OpLDImm, Dst: Reg8(y)}, true
		}
		return Instruction{Op: accumulatorOps[y]}, true
	case 1:
		if opcode == 0x76 {
			return Instruction{Op: OpHALT}, true
		}
		return Instruction{Op: OpLD, Dst: Reg8(y), Src: Reg8(z)}, true
	case 2:
		return Instruction{Op: OpALU, ALU: ALUOp(y), Src: Reg8(z)}, true
	}

	switch z {
	case 0:
		switch y {
		case 4:
			return Instruction{Op: OpLDHStore}, true
		case 5:
			return Instruction{Op: OpADDSP}, true
		case 6:
			return Instruction{Op: OpLDHLoad}, true
		case 7:
			return Instruction{Op: OpLDHLSP}, true
		}
		return Instruction{Op: OpRETCond, Cond: Cond(y)}, true
	case 1:
		if q == 0 {
			return Instruction{Op: OpPOP, Pair: stackPair(p)}, true
		}
		return Instruction{Op: [...]Op{OpRET, OpRETI, OpJPHL, OpLDSPHL}[p]}, true
	case 2:
		switch y {
		case 4:
			return Instruction{Op: OpLDCStore}, true
		case 5:
			return Instruction{Op: OpLDAbsStore}, true
		case 6:
			return Instruction{Op: OpLDCLoad}, true
		case 7:
			return Instruction{Op: OpLDAbsLoad}, true
		}
		return Instruction{Op: OpJPCond, Cond: Cond(y)}, true
	case 3:
		switch y {
		case 0:
			return Instruction{Op: OpJP}, true
		case 1:
			return Instruction{Op: OpPrefixCB}, true
		case 6:
			return Instruction{Op: OpDI}, true
		case 7:
			return Instruction{Op: OpEI}, true
		}
	case 4:
		if y < 4 {
			return Instruction{Op: OpCALLCond, Cond: Cond(y)}, true
		}
	case 5:
		if q == 0 {
			return Instruction{Op: OpPUSH, Pair: stackPair(p)}, true
		}
		if p == 0 {
			return Instruction{Op: OpCALL}, true
		}
	case 6:
		return Instruction{Op: OpALUImm, ALU: ALUOp(y)}, true
	case 7:
		return Instruction{Op: OpRST, Bit: y}, true
	}

	return Instruction{}, false
}

// DecodeCB maps an opcode from the CB prefixed table to its
// instruction. Every CB opcode is defined.
func DecodeCB(opcode uint8) Instruction {
	y, z := opcode>>3&7, Reg8(opcode&7)
	switch opcode >> 6 {
	case 0:
		return Instruction{Op: OpRotate, Rot: RotOp(y), Dst: z}
	case 1:
		return Instruction{Op: OpBIT, Bit: y, Dst: z}
	case 2:
		return Instruction{Op: OpRES, Bit: y, Dst: z}
	}
	return Instruction{Op: OpSET, Bit: y, Dst: z}
}

var accumulatorOps = [8]Op{OpRLCA, OpRRCA, OpRLA, OpRRA, OpDAA, OpCPL, OpSCF, OpCCF}

// stackPair maps the p field of PUSH and POP, where AF replaces SP.
func stackPair(p uint8) Reg16 {
	if p == 3 {
		return PairAF
	}
	return Reg16(p)
}
