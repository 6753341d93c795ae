// cpu_exec.go - opcode dispatch and instruction semantics

package engine

import "fmt"

// execute carries out one decoded instruction. It returns the cycle
// count the opcode table assigns to the path actually taken, and
// whether the instruction already set PC itself (a jump, call, return
// or restart) so Tick must not also advance it past the instruction.
//
// Dispatch is grouped by the 8080's bit-field encoding rather than by
// one case per opcode: most of the instruction set is a small number
// of regular families (MOV's 01DDDSSS, the ALU-on-A block's 10FFFSSS,
// the register-pair block's 00RP----), and matching on the field
// masks directly is both shorter and a better map of the hardware
// than 244 individual cases would be.
func (c *CPU) execute(dop DecodedOp) (cycles int, jumped bool) {
	op := dop.Op.Opcode
	cycles = dop.Op.CyclesTaken

	switch {
	case op == 0x00: // NOP

	case op == 0x76: // HLT
		c.Halted = true

	case op&0xC0 == 0x40: // MOV dst,src (01DDDSSS)
		d := (op >> 3) & 0x7
		s := op & 0x7
		c.setReg(d, c.reg(s))

	case op&0xC0 == 0x80: // ALU-on-A group (10FFFSSS)
		f := (op >> 3) & 0x7
		c.aluOp(f, c.reg(op&0x7))

	case op&0xC7 == 0xC6: // immediate ALU-on-A (11FFF110)
		f := (op >> 3) & 0x7
		c.aluOp(f, dop.Arg1)

	case op&0xC7 == 0x04: // INR r
		r := (op >> 3) & 0x7
		result, _, ac := add8(c.reg(r), 1)
		c.setReg(r, result)
		c.F.updateFromResult(result)
		c.F.Set(FlagAC, ac)

	case op&0xC7 == 0x05: // DCR r
		r := (op >> 3) & 0x7
		result, _, ac := sub8(c.reg(r), 1)
		c.setReg(r, result)
		c.F.updateFromResult(result)
		c.F.Set(FlagAC, ac)

	case op&0xC7 == 0x06: // MVI r,d8
		r := (op >> 3) & 0x7
		c.setReg(r, dop.Arg1)

	case op == 0x07: // RLC
		result, carry := rotLeft(c.A, c.A&0x80 != 0)
		c.A = result
		c.F.Set(FlagC, carry)

	case op == 0x0F: // RRC
		result, carry := rotRight(c.A, c.A&0x01 != 0)
		c.A = result
		c.F.Set(FlagC, carry)

	case op == 0x17: // RAL
		result, carry := rotLeft(c.A, c.F.IsSet(FlagC))
		c.A = result
		c.F.Set(FlagC, carry)

	case op == 0x1F: // RAR
		result, carry := rotRight(c.A, c.F.IsSet(FlagC))
		c.A = result
		c.F.Set(FlagC, carry)

	case op == 0x27: // DAA
		c.daa()

	case op == 0x2F: // CMA
		c.A = ^c.A

	case op == 0x37: // STC
		c.F.Set(FlagC, true)

	case op == 0x3F: // CMC
		c.F.Flip(FlagC)

	// 0x22/0x2A/0x32/0x3A sit inside the 00RP0010/00RP1010 bit
	// pattern STAX/LDAX also use, but only for rp 00 and 01; these
	// four must be matched before the generic STAX/LDAX cases below.
	case op == 0x22: // SHLD a16
		addr := dop.Word16()
		c.Mem.Set(addr, c.L)
		c.Mem.Set(addr+1, c.H)

	case op == 0x2A: // LHLD a16
		addr := dop.Word16()
		c.L = c.Mem.Get(addr)
		c.H = c.Mem.Get(addr + 1)

	case op == 0x32: // STA a16
		c.Mem.Set(dop.Word16(), c.A)

	case op == 0x3A: // LDA a16
		c.A = c.Mem.Get(dop.Word16())

	case op&0xCF == 0x02: // STAX rp (00RP0010, rp 00/01 only)
		rp := (op >> 4) & 0x3
		c.Mem.Set(c.regPair(rp), c.A)

	case op&0xCF == 0x0A: // LDAX rp (00RP1010, rp 00/01 only)
		rp := (op >> 4) & 0x3
		c.A = c.Mem.Get(c.regPair(rp))

	case op&0xCF == 0x01: // LXI rp,d16
		rp := (op >> 4) & 0x3
		c.setRegPair(rp, dop.Word16())

	case op&0xCF == 0x03: // INX rp
		rp := (op >> 4) & 0x3
		c.setRegPair(rp, c.regPair(rp)+1)

	case op&0xCF == 0x0B: // DCX rp
		rp := (op >> 4) & 0x3
		c.setRegPair(rp, c.regPair(rp)-1)

	case op&0xCF == 0x09: // DAD rp
		rp := (op >> 4) & 0x3
		result, carry := add16(c.HL(), c.regPair(rp))
		c.setHL(result)
		c.F.Set(FlagC, carry)

	case op == 0xC3: // JMP a16
		c.PC = dop.Word16()
		jumped = true

	case op&0xC7 == 0xC2: // Jcc a16
		if c.condition((op >> 3) & 0x7) {
			c.PC = dop.Word16()
			jumped = true
		} else {
			cycles = dop.Op.CyclesNotTaken
		}

	case op == 0xCD: // CALL a16
		c.push16(c.PC + uint16(dop.Op.Length))
		c.PC = dop.Word16()
		jumped = true

	case op&0xC7 == 0xC4: // Ccc a16
		if c.condition((op >> 3) & 0x7) {
			c.push16(c.PC + uint16(dop.Op.Length))
			c.PC = dop.Word16()
			jumped = true
		} else {
			cycles = dop.Op.CyclesNotTaken
		}

	case op == 0xC9: // RET
		c.PC = c.pop16()
		jumped = true

	case op&0xC7 == 0xC0: // Rcc
		if c.condition((op >> 3) & 0x7) {
			c.PC = c.pop16()
			jumped = true
		} else {
			cycles = dop.Op.CyclesNotTaken
		}

	case op&0xC7 == 0xC7: // RST n
		n := (op >> 3) & 0x7
		c.push16(c.PC + uint16(dop.Op.Length))
		c.PC = uint16(n) * 8
		jumped = true

	case op&0xCF == 0xC1: // POP rp2 (BC/DE/HL/PSW)
		rp := (op >> 4) & 0x3
		c.setPushPair(rp, c.pop16())

	case op&0xCF == 0xC5: // PUSH rp2
		rp := (op >> 4) & 0x3
		c.push16(c.pushPair(rp))

	case op == 0xE9: // PCHL
		c.PC = c.HL()
		jumped = true

	case op == 0xE3: // XTHL
		lo := c.Mem.Get(c.SP)
		hi := c.Mem.Get(c.SP + 1)
		c.Mem.Set(c.SP, c.L)
		c.Mem.Set(c.SP+1, c.H)
		c.L, c.H = lo, hi

	case op == 0xEB: // XCHG
		c.H, c.D = c.D, c.H
		c.L, c.E = c.E, c.L

	case op == 0xF9: // SPHL
		c.SP = c.HL()

	case op == 0xDB: // IN d8
		c.A = c.Ports.In(dop.Arg1)

	case op == 0xD3: // OUT d8
		c.Ports.Out(dop.Arg1, c.A)

	case op == 0xF3: // DI
		c.IFF = false

	case op == 0xFB: // EI
		c.IFF = true

	default:
		panic(fmt.Sprintf("engine: opcode 0x%02X (%s) has a table entry but no dispatch case", op, dop.Op.Mnemonic))
	}

	return cycles, jumped
}

// aluOp applies one of the eight ALU-on-A operations selected by the
// 3-bit field both the register and immediate forms share: 0=ADD
// 1=ADC 2=SUB 3=SBB 4=ANA 5=XRA 6=ORA 7=CMP.
func (c *CPU) aluOp(f byte, val byte) {
	switch f & 0x7 {
	case 0: // ADD
		result, carry, ac := add8(c.A, val)
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, carry)
		c.F.Set(FlagAC, ac)
	case 1: // ADC
		result, carry, ac := add8c(c.A, val, c.F.IsSet(FlagC))
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, carry)
		c.F.Set(FlagAC, ac)
	case 2: // SUB
		result, carry, ac := sub8(c.A, val)
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, carry)
		c.F.Set(FlagAC, ac)
	case 3: // SBB
		result, carry, ac := sub8c(c.A, val, c.F.IsSet(FlagC))
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, carry)
		c.F.Set(FlagAC, ac)
	case 4: // ANA
		result := c.A & val
		ac := (c.A|val)&0x08 != 0 // 8080 hardware quirk: AC takes bit 3 of the operand OR, not a real carry
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, false)
		c.F.Set(FlagAC, ac)
	case 5: // XRA
		result := c.A ^ val
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, false)
		c.F.Set(FlagAC, false)
	case 6: // ORA
		result := c.A | val
		c.A = result
		c.F.updateFromResult(result)
		c.F.Set(FlagC, false)
		c.F.Set(FlagAC, false)
	case 7: // CMP
		result, carry, ac := sub8(c.A, val)
		c.F.updateFromResult(result) // A itself is untouched; only the flags record the comparison
		c.F.Set(FlagC, carry)
		c.F.Set(FlagAC, ac)
	}
}

// daa decimal-adjusts A after a BCD addition, in two independent
// nibble passes exactly as the 8080 hardware does it: a low-nibble
// correction followed by a high-nibble correction that also sees
// whatever the low-nibble pass just produced.
func (c *CPU) daa() {
	if c.A&0x0F > 9 || c.F.IsSet(FlagAC) {
		result, _, ac := add8(c.A, 0x06)
		c.A = result
		c.F.Set(FlagAC, ac)
	}
	if c.A>>4 > 9 || c.F.IsSet(FlagC) {
		result, carry, _ := add8(c.A, 0x60)
		c.A = result
		c.F.Set(FlagC, carry)
	}
	c.F.updateFromResult(c.A)
}
