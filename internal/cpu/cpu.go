// Package cpu provides the SM83 processor of the DMG: a fetch, decode
// and execute loop over the primary and CB prefixed opcode tables,
// interrupt dispatch, and the HALT and STOP low power states.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// quantum is the number of clock cycles covered by one Step.
	quantum = 4
)

// Bus is the view of the system the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	// Advance moves every peripheral forward by cycles.
	Advance(cycles int)

	// PendingInterrupt returns the highest priority interrupt that is
	// both requested and enabled, without acknowledging it.
	PendingInterrupt() (interrupts.Source, bool)
	// TakeInterrupt acknowledges and returns the highest priority
	// pending interrupt.
	TakeInterrupt() (interrupts.Source, bool)
	// Requested reports whether src is flagged in IF, regardless of IE.
	Requested(src interrupts.Source) bool
	StopLCD()
	// Err returns, and clears, the first fault raised since the last
	// call.
	Err() error
}

// State is the execution state of the CPU.
type State uint8

const (
	// Running fetches and executes instructions.
	Running State = iota
	// Halted waits for any pending interrupt.
	Halted
	// Stopped waits for a joypad interrupt request.
	Stopped
)

func (s State) String() string {
	switch s {
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "running"
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// ime is the interrupt master enable.
	ime bool
	// enablePending and disablePending hold the effect of EI and DI
	// until the instruction after them begins.
	enablePending  bool
	disablePending bool

	state State

	// cycles counts every clock cycle since power on.
	cycles uint64
	// debt is the number of cycles the last instruction cost beyond
	// the quantum it was executed in.
	debt int

	bus Bus
	log log.Logger

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// NewCPU creates a new CPU in its power on state, with every register
// zero and PC at 0x0000.
func NewCPU(b Bus, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &CPU{
		bus: b,
		log: l,
	}
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}
	return c
}

// SkipBoot puts the CPU in the state the DMG boot ROM leaves it in.
func (c *CPU) SkipBoot() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// Cycles returns the number of clock cycles consumed since power on.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// State returns the execution state of the CPU.
func (c *CPU) State() State {
	return c.state
}

// IME reports whether the interrupt master enable is set.
func (c *CPU) IME() bool {
	return c.ime
}

// Step advances the system by one 4 cycle quantum. The peripherals are
// always advanced first. While the cost of the previous instruction
// has not yet been paid off, Step does nothing else.
//
// When an instruction is due, a pending interrupt is dispatched if IME
// is set, the pending effect of EI or DI is applied, and then the
// instruction at PC is executed. Applying the EI latch after the
// interrupt check is what delays it by one instruction.
func (c *CPU) Step() error {
	c.bus.Advance(quantum)

	if c.debt > 0 {
		c.debt -= quantum
		return nil
	}

	switch c.state {
	case Halted:
		if _, ok := c.bus.PendingInterrupt(); !ok {
			c.cycles += quantum
			return nil
		}
		c.state = Running
	case Stopped:
		if !c.bus.Requested(interrupts.Joypad) {
			c.cycles += quantum
			return nil
		}
		c.state = Running
	}

	if c.ime {
		if src, ok := c.bus.TakeInterrupt(); ok {
			c.dispatch(src)
		}
	}

	if c.disablePending {
		c.disablePending = false
		c.ime = false
	}
	if c.enablePending {
		c.enablePending = false
		c.ime = true
	}

	err := c.executeNext()
	c.debt = max(c.debt-quantum, 0)
	if err != nil {
		return err
	}
	return c.bus.Err()
}

// dispatch services src: two wait states, PC pushed to the stack and a
// jump to the vector, 20 cycles in all.
func (c *CPU) dispatch(src interrupts.Source) {
	if c.Trace {
		c.log.Debugf("cpu: dispatching %s interrupt from 0x%04X", src, c.PC)
	}
	c.ime = false
	c.tick(8)
	c.push16(c.PC)
	c.PC = src.Vector()
	c.tick(4)
}

// executeNext fetches, decodes and executes the instruction at PC. An
// undefined opcode leaves the CPU untouched.
func (c *CPU) executeNext() error {
	pc := c.PC
	opcode := c.bus.Read(pc)
	instruction, ok := Decode(opcode)
	if !ok {
		return &DecodeError{Opcode: opcode, PC: pc}
	}
	c.tick(4)
	c.PC++

	if c.Trace {
		c.log.Debugf("%04X  %-14s %s", pc, instruction, c)
	}
	c.execute(instruction)
	return nil
}

// tick charges cycles to the instruction being executed.
func (c *CPU) tick(cycles int) {
	c.cycles += uint64(cycles)
	c.debt += cycles
}

// readByte reads the byte at address, taking 4 cycles.
func (c *CPU) readByte(address uint16) uint8 {
	c.tick(4)
	return c.bus.Read(address)
}

// writeByte writes value to address, taking 4 cycles.
func (c *CPU) writeByte(address uint16, value uint8) {
	c.tick(4)
	c.bus.Write(address, value)
}

// readOperand reads the byte at PC and increments PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the little endian word at PC.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// push16 pushes value onto the stack, high byte first.
func (c *CPU) push16(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop16 pops a value off the stack, low byte first.
func (c *CPU) pop16() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// String formats the registers in the layout used by trace logs.
func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X F:%02X BC:%04X DE:%04X HL:%04X SP:%04X",
		c.A, c.F, c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP)
}
