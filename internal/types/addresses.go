package types

// The memory map of the DMG. Every region is half-open, so End is
// the first address past the region.
var (
	// ROM0 is the fixed first bank of the cartridge ROM.
	ROM0 = Region{0x0000, 0x4000}
	// ROMX is the switchable cartridge ROM bank.
	ROMX = Region{0x4000, 0x8000}
	// VRAM is the video RAM owned by the picture unit.
	VRAM = Region{0x8000, 0xA000}
	// CartRAM is the switchable external RAM bank of the cartridge.
	CartRAM = Region{0xA000, 0xC000}
	// WRAM is the work RAM owned by the bus.
	WRAM = Region{0xC000, 0xE000}
	// Echo mirrors WRAM, reads and writes alias the same bytes.
	Echo = Region{0xE000, 0xFE00}
	// OAM is the sprite attribute memory owned by the picture unit.
	OAM = Region{0xFE00, 0xFEA0}
	// Unusable is the gap between OAM and the I/O ports. Reads
	// return 0xFF and writes are ignored.
	Unusable = Region{0xFEA0, 0xFF00}
	// IO is the range of mapped I/O ports.
	IO = Region{0xFF00, 0xFF4C}
	// UnmappedIO is the remainder of the I/O page that no
	// peripheral of the DMG answers to.
	UnmappedIO = Region{0xFF4C, 0xFF80}
	// HRAM is the high RAM owned by the bus.
	HRAM = Region{0xFF80, 0xFFFF}
)

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF4B & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 selects which group of keys is visible in its lower
	// nibble, and reads the state of the joypad.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte being shifted through the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//	Bit 7 - Transfer Start Flag (1=Transfer in progress)
	//	Bit 0 - Shift Clock (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is the upper byte of the 16-bit system counter. Writing
	// any value resets the whole counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC. When TIMA
	// overflows, it is reloaded from TMA and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC enables the timer and selects its frequency.
	//
	//	Bit 2   - Timer Enable
	//	Bit 1-0 - Input Clock Select
	//	          00: 4096 Hz, 01: 262144 Hz, 10: 65536 Hz, 11: 16384 Hz
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt request register.
	//
	//	Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//	Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//	Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//	Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//	Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	// NR52 is the sound on/off register. Only bit 7 is writable,
	// bits 0-3 report the status of each channel.
	NR52 HardwareAddress = 0xFF26
	// WaveRAMStart is the first byte of the 16 byte wave pattern RAM.
	WaveRAMStart HardwareAddress = 0xFF30
	// WaveRAMEnd is the last byte of the wave pattern RAM.
	WaveRAMEnd HardwareAddress = 0xFF3F

	// LCDC is the LCD control register.
	//
	//	Bit 7 - LCD Display Enable             (0=Off, 1=On)
	//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window Display Enable          (0=Off, 1=On)
	//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//	Bit 0 - BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register.
	//
	//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
	//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
	//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
	//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
	//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//	Bit 1-0 - Mode Flag       (Mode 0-3)            (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being drawn. Writing resets it.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY to drive the coincidence flag.
	LYC HardwareAddress = 0xFF45
	// DMA starts a 160 byte transfer into OAM from the page
	// selected by the written value.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is the first sprite palette.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the second sprite palette.
	OBP1 HardwareAddress = 0xFF49
	// WY is the Y position of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the X position of the window, plus 7.
	WX HardwareAddress = 0xFF4B

	// BDIS disables the boot ROM overlay. Any write to it unmaps the
	// boot ROM for the rest of the run.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt enable register, laid out like IF.
	IE HardwareAddress = 0xFFFF
)
