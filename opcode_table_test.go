package engine

import (
	"strings"
	"testing"
)

func TestLoadOpcodeTableBasic(t *testing.T) {
	src := "0x00\tNOP\t1\t4\n0xC2\tJMP NZ,a16\t3\t10\n0xC0\tRET NZ\t1\t11/5\n0x08\t-\t1\t4\n"
	table, err := LoadOpcodeTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadOpcodeTable: %v", err)
	}

	nop := table.Lookup(0x00)
	if nop == nil || nop.Mnemonic != "NOP" || nop.Length != 1 || nop.CyclesTaken != 4 || nop.CyclesNotTaken != 4 {
		t.Fatalf("Lookup(0x00) = %+v; want NOP length=1 cycles=4/4", nop)
	}

	jmp := table.Lookup(0xC2)
	if jmp == nil || jmp.Length != 3 {
		t.Fatalf("Lookup(0xC2) = %+v; want length=3", jmp)
	}

	ret := table.Lookup(0xC0)
	if ret == nil || ret.CyclesTaken != 11 || ret.CyclesNotTaken != 5 {
		t.Fatalf("Lookup(0xC0) cycles = %d/%d; want 11/5", ret.CyclesTaken, ret.CyclesNotTaken)
	}

	if table.Lookup(0x08) != nil {
		t.Fatal("Lookup(0x08) should be nil for a line marked \"-\"")
	}
	if table.Lookup(0xFF) != nil {
		t.Fatal("Lookup(0xFF) should be nil for an opcode absent from the table")
	}
}

func TestLoadOpcodeTableMalformedLine(t *testing.T) {
	_, err := LoadOpcodeTable(strings.NewReader("0x00\tNOP\t1\n"))
	if err == nil {
		t.Fatal("expected an error for a line with the wrong field count")
	}
}

func TestLoadOpcodeTableBadHex(t *testing.T) {
	_, err := LoadOpcodeTable(strings.NewReader("ZZ\tNOP\t1\t4\n"))
	if err == nil {
		t.Fatal("expected an error for an opcode field without a 0x prefix")
	}
}

func TestDefaultOpcodeTableCoversAllLegalOpcodes(t *testing.T) {
	table, err := DefaultOpcodeTable()
	if err != nil {
		t.Fatalf("DefaultOpcodeTable: %v", err)
	}

	legal := 0
	for op := 0; op < 256; op++ {
		if table.Lookup(byte(op)) != nil {
			legal++
		}
	}
	if legal != 244 {
		t.Fatalf("DefaultOpcodeTable has %d legal opcodes; want 244", legal)
	}
}
