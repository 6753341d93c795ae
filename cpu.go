// cpu.go - 8080 register file, construction, and the fetch/execute tick

package engine

// CPU holds the full 8080 programmer-visible state: the seven 8-bit
// registers, the flag byte, the stack pointer and program counter, and
// the interrupt-enable latch. It operates against a Memory and
// PortBank supplied at construction and an OpcodeTable shared
// read-only across the CPU's lifetime.
type CPU struct {
	A, B, C, D, E, H, L byte
	F                   FlagRegister

	SP, PC uint16

	// IFF is the interrupt enable flip-flop. EI sets it, DI clears
	// it. A program can read it via DI/EI round-trips, but it does
	// not gate Interrupt(): the board's two video interrupts are
	// delivered regardless, matching the reference machine.
	IFF bool

	// Halted is set by HLT and cleared by the next serviced
	// interrupt. A halted CPU still ticks, but fetches nothing.
	Halted bool

	Mem   *Memory
	Ports *PortBank
	Table *OpcodeTable
}

// NewCPU builds a CPU wired to the given memory, port bank and opcode
// table, and resets it to its power-on state.
func NewCPU(mem *Memory, ports *PortBank, table *OpcodeTable) *CPU {
	c := &CPU{Mem: mem, Ports: ports, Table: table}
	c.Reset()
	return c
}

// Reset returns the CPU to its power-on state: every general register
// zero, flags at their fixed bits only, SP at the top of the arcade
// board's RAM, PC at the reset vector, and interrupts disabled. It
// does not touch memory or ports; callers that want a cold machine
// reset those separately.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.F = newFlagRegister()
	c.SP = 0xF000
	c.PC = 0
	c.IFF = false
	c.Halted = false
}

// HL returns the HL register pair, the 8080's de facto memory pointer.
func (c *CPU) HL() uint16 { return combine16(c.H, c.L) }
func (c *CPU) setHL(v uint16) { c.H, c.L = hi8(v), lo8(v) }

// BC and DE are the other general-purpose register pairs.
func (c *CPU) BC() uint16 { return combine16(c.B, c.C) }
func (c *CPU) setBC(v uint16) { c.B, c.C = hi8(v), lo8(v) }
func (c *CPU) DE() uint16 { return combine16(c.D, c.E) }
func (c *CPU) setDE(v uint16) { c.D, c.E = hi8(v), lo8(v) }

// reg reads one of the seven addressable 8-bit operands by its 3-bit
// register code: 000=B 001=C 010=D 011=E 100=H 101=L 110=M 111=A.
// Code 110 (M) dereferences HL rather than naming a register.
func (c *CPU) reg(code byte) byte {
	switch code & 0x7 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Mem.Get(c.HL())
	default:
		return c.A
	}
}

// setReg writes one of the seven addressable 8-bit operands.
func (c *CPU) setReg(code byte, v byte) {
	switch code & 0x7 {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.Mem.Set(c.HL(), v)
	default:
		c.A = v
	}
}

// regPair reads one of the four register pairs addressed by a 2-bit
// "RP" code, as used by LXI/INX/DCX/DAD/STAX/LDAX: 00=BC 01=DE 10=HL
// 11=SP.
func (c *CPU) regPair(code byte) uint16 {
	switch code & 0x3 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

// setRegPair writes one of the four RP-coded register pairs.
func (c *CPU) setRegPair(code byte, v uint16) {
	switch code & 0x3 {
	case 0:
		c.setBC(v)
	case 1:
		c.setDE(v)
	case 2:
		c.setHL(v)
	default:
		c.SP = v
	}
}

// pushPair reads one of the four pairs PUSH/POP address, where the
// SP slot of the RP encoding is replaced by the program status word
// (A high, flags low): 00=BC 01=DE 10=HL 11=PSW.
func (c *CPU) pushPair(code byte) uint16 {
	if code&0x3 == 3 {
		return combine16(c.A, c.F.Byte())
	}
	return c.regPair(code)
}

func (c *CPU) setPushPair(code byte, v uint16) {
	if code&0x3 == 3 {
		c.A = hi8(v)
		c.F.SetByte(lo8(v))
		return
	}
	c.setRegPair(code, v)
}

// condition evaluates one of the eight Jcc/Ccc/Rcc condition codes:
// 000=NZ 001=Z 010=NC 011=C 100=PO 101=PE 110=P 111=M.
func (c *CPU) condition(cc byte) bool {
	switch cc & 0x7 {
	case 0:
		return !c.F.IsSet(FlagZ)
	case 1:
		return c.F.IsSet(FlagZ)
	case 2:
		return !c.F.IsSet(FlagC)
	case 3:
		return c.F.IsSet(FlagC)
	case 4:
		return !c.F.IsSet(FlagP)
	case 5:
		return c.F.IsSet(FlagP)
	case 6:
		return !c.F.IsSet(FlagS)
	default:
		return c.F.IsSet(FlagS)
	}
}

// push16 implements the 8080's stack discipline: high byte at SP-1,
// low byte at SP-2, then SP -= 2.
func (c *CPU) push16(v uint16) {
	c.Mem.Set(c.SP-1, hi8(v))
	c.Mem.Set(c.SP-2, lo8(v))
	c.SP -= 2
}

// pop16 is push16's inverse: low byte at SP, high byte at SP+1, then
// SP += 2.
func (c *CPU) pop16() uint16 {
	lo := c.Mem.Get(c.SP)
	hi := c.Mem.Get(c.SP + 1)
	c.SP += 2
	return combine16(hi, lo)
}

// Tick fetches, decodes and executes exactly one instruction (or, if
// the CPU is halted, does nothing) and returns the number of 2MHz
// cycles it took. A decode error (an opcode the table has no entry
// for) is fatal; the caller's run loop should treat it as a crashed
// program, not retry it.
func (c *CPU) Tick() (int, error) {
	if c.Halted {
		return 4, nil
	}

	window := c.Mem.SliceLen(c.PC, 3)
	dop, length, err := Decode(c.Table, window)
	if err != nil {
		return 0, err
	}

	cycles, jumped := c.execute(dop)
	if !jumped {
		c.PC += uint16(length)
	}
	return cycles, nil
}

// Interrupt services a hardware interrupt by forcing an RST n: it
// wakes a halted CPU, pushes the return address and jumps to the
// handler at n*8. Unlike EI/DI, which exist for programs to test and
// set, IFF does not gate delivery here: the arcade board's two video
// interrupts are wired directly to the CPU's interrupt line and fire
// on schedule regardless of what the program running on it has set.
func (c *CPU) Interrupt(n byte) {
	c.Halted = false
	c.push16(c.PC)
	c.PC = uint16(n) * 8
}
