package engine

import "testing"

func TestInterruptPushesPCAndJumpsToHandler(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xF000
	c.PC = 0x1234

	c.Interrupt(1) // RST 1 -> 0x0008

	if c.PC != 0x0008 {
		t.Fatalf("PC = 0x%04X after Interrupt(1); want 0x0008", c.PC)
	}
	if c.SP != 0xEFFE {
		t.Fatalf("SP = 0x%04X after Interrupt(1); want 0xEFFE", c.SP)
	}
	if c.Mem.Get(0xEFFE) != 0x34 || c.Mem.Get(0xEFFF) != 0x12 {
		t.Fatalf("saved PC on stack = 0x%02X,0x%02X; want 0x34,0x12", c.Mem.Get(0xEFFE), c.Mem.Get(0xEFFF))
	}
}

func TestInterruptIgnoresIFF(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xF000
	c.IFF = false // DI'd; the board's video interrupts fire anyway

	c.Interrupt(2) // RST 2 -> 0x0010

	if c.PC != 0x0010 {
		t.Fatalf("PC = 0x%04X after Interrupt(2) with IFF clear; want 0x0010 (delivered regardless)", c.PC)
	}
}

func TestInterruptWakesHaltedCPU(t *testing.T) {
	c := newTestCPU(t)
	c.SP = 0xF000
	c.Halted = true

	c.Interrupt(1)

	if c.Halted {
		t.Fatal("Interrupt should clear Halted")
	}
	if c.PC != 0x0008 {
		t.Fatalf("PC = 0x%04X after Interrupt(1) from halted state; want 0x0008", c.PC)
	}
}
