package cpu

import "fmt"

// Op identifies the kind of a decoded instruction. The operand
// fields of Instruction that an Op uses are noted next to it.
type Op uint8

const (
	OpNOP  Op = iota
	OpSTOP    // STOP
	OpHALT    // HALT
	OpDI      // DI
	OpEI      // EI

	OpLD         // LD Dst, Src
	OpLDImm      // LD Dst, n
	OpLD16Imm    // LD Pair, nn
	OpLDStore    // LD (Ind), A
	OpLDLoad     // LD A, (Ind)
	OpLDAbsSP    // LD (nn), SP
	OpLDAbsStore // LD (nn), A
	OpLDAbsLoad  // LD A, (nn)
	OpLDHStore   // LDH (n), A
	OpLDHLoad    // LDH A, (n)
	OpLDCStore   // LD (C), A
	OpLDCLoad    // LD A, (C)
	OpLDSPHL     // LD SP, HL
	OpLDHLSP     // LD HL, SP+e

	OpINC    // INC Dst
	OpDEC    // DEC Dst
	OpINC16  // INC Pair
	OpDEC16  // DEC Pair
	OpADDHL  // ADD HL, Pair
	OpADDSP  // ADD SP, e
	OpALU    // ALU A, Src
	OpALUImm // ALU A, n

	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF

	OpJP       // JP nn
	OpJPCond   // JP Cond, nn
	OpJPHL     // JP HL
	OpJR       // JR e
	OpJRCond   // JR Cond, e
	OpCALL     // CALL nn
	OpCALLCond // CALL Cond, nn
	OpRET      // RET
	OpRETCond  // RET Cond
	OpRETI     // RETI
	OpRST      // RST Bit*8
	OpPUSH     // PUSH Pair
	OpPOP      // POP Pair
	OpPrefixCB // CB prefix, the next byte selects from the CB table

	OpRotate // Rot Dst
	OpBIT    // BIT Bit, Dst
	OpRES    // RES Bit, Dst
	OpSET    // SET Bit, Dst
)

// Reg8 selects an 8-bit operand, in opcode encoding order. MemHL is
// the byte in memory addressed by HL.
type Reg8 uint8

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	MemHL
	RegA
)

var reg8Names = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r Reg8) String() string { return reg8Names[r&7] }

// Reg16 selects a register pair. PairAF is only produced for PUSH
// and POP, where it takes the place of PairSP.
type Reg16 uint8

const (
	PairBC Reg16 = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var reg16Names = [...]string{"BC", "DE", "HL", "SP", "AF"}

func (r Reg16) String() string { return reg16Names[r] }

// Indirect selects the address register of LD (rr), A and LD A, (rr).
type Indirect uint8

const (
	IndBC Indirect = iota
	IndDE
	IndHLInc
	IndHLDec
)

var indirectNames = [...]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}

func (i Indirect) String() string { return indirectNames[i] }

// Cond is a branch condition.
type Cond uint8

const (
	CondNZ Cond = iota
	CondZ
	CondNC
	CondC
)

var condNames = [...]string{"NZ", "Z", "NC", "C"}

func (c Cond) String() string { return condNames[c] }

// ALUOp is an 8-bit arithmetic or logic operation on A.
type ALUOp uint8

const (
	ALUAdd ALUOp = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
)

var aluNames = [...]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

func (a ALUOp) String() string { return aluNames[a] }

// RotOp is a rotate, shift or swap from the CB table.
type RotOp uint8

const (
	RotRLC RotOp = iota
	RotRRC
	RotRL
	RotRR
	RotSLA
	RotSRA
	RotSWAP
	RotSRL
)

var rotNames = [...]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func (r RotOp) String() string { return rotNames[r] }

// Instruction is a decoded opcode. Decoding never reads memory, so
// immediate operands are fetched while the instruction executes.
type Instruction struct {
	Op   Op
	Dst  Reg8
	Src  Reg8
	Pair Reg16
	Ind  Indirect
	Cond Cond
	ALU  ALUOp
	Rot  RotOp
	// Bit is the bit index of BIT, RES and SET, or the vector index of
	// RST.
	Bit uint8
}

var simpleNames = map[Op]string{
	OpNOP: "NOP", OpSTOP: "STOP", OpHALT: "HALT", OpDI: "DI", OpEI: "EI",
	OpRLCA: "RLCA", OpRRCA: "RRCA", OpRLA: "RLA", OpRRA: "RRA",
	OpDAA: "DAA", OpCPL: "CPL", OpSCF: "SCF", OpCCF: "CCF",
	OpJPHL: "JP HL", OpRET: "RET", OpRETI: "RETI", OpPrefixCB: "PREFIX CB",
	OpLDAbsSP: "LD (nn), SP", OpLDAbsStore: "LD (nn), A", OpLDAbsLoad: "LD A, (nn)",
	OpLDHStore: "LDH (n), A", OpLDHLoad: "LDH A, (n)",
	OpLDCStore: "LD (C), A", OpLDCLoad: "LD A, (C)",
	OpLDSPHL: "LD SP, HL", OpLDHLSP: "LD HL, SP+e", OpADDSP: "ADD SP, e",
	OpJP: "JP nn", OpJR: "JR e", OpCALL: "CALL nn",
}

// String returns the mnemonic of the instruction, with immediate
// operands shown as n, nn or e.
func (i Instruction) String() string {
	if name, ok := simpleNames[i.Op]; ok {
		return name
	}
	switch i.Op {
	case OpLD:
		return fmt.Sprintf("LD %s, %s", i.Dst, i.Src)
	case OpLDImm:
		return fmt.Sprintf("LD %s, n", i.Dst)
	case OpLD16Imm:
		return fmt.Sprintf("LD %s, nn", i.Pair)
	case OpLDStore:
		return fmt.Sprintf("LD %s, A", i.Ind)
	case OpLDLoad:
		return fmt.Sprintf("LD A, %s", i.Ind)
	case OpINC:
		return fmt.Sprintf("INC %s", i.Dst)
	case OpDEC:
		return fmt.Sprintf("DEC %s", i.Dst)
	case OpINC16:
		return fmt.Sprintf("INC %s", i.Pair)
	case OpDEC16:
		return fmt.Sprintf("DEC %s", i.Pair)
	case OpADDHL:
		return fmt.Sprintf("ADD HL, %s", i.Pair)
	case OpALU:
		return fmt.Sprintf("%s %s", i.ALU, i.Src)
	case OpALUImm:
		return fmt.Sprintf("%s n", i.ALU)
	case OpJPCond:
		return fmt.Sprintf("JP %s, nn", i.Cond)
	case OpJRCond:
		return fmt.Sprintf("JR %s, e", i.Cond)
	case OpCALLCond:
		return fmt.Sprintf("CALL %s, nn", i.Cond)
	case OpRETCond:
		return fmt.Sprintf("RET %s", i.Cond)
	case OpRST:
		return fmt.Sprintf("RST %02XH", i.Bit*8)
	case OpPUSH:
		return fmt.Sprintf("PUSH %s", i.Pair)
	case OpPOP:
		return fmt.Sprintf("POP %s", i.Pair)
	case OpRotate:
		return fmt.Sprintf("%s %s", i.Rot, i.Dst)
	case OpBIT:
		return fmt.Sprintf("BIT %d, %s", i.Bit, i.Dst)
	case OpRES:
		return fmt.Sprintf("RES %d, %s", i.Bit, i.Dst)
	case OpSET:
		return fmt.Sprintf("SET %d, %s", i.Bit, i.Dst)
	}
	return fmt.Sprintf("Op(%d)", i.Op)
}
