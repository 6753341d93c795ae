package engine

import "testing"

func TestAdd8(t *testing.T) {
	cases := []struct {
		x, y               byte
		wantResult         byte
		wantCarry, wantAC  bool
	}{
		{0x00, 0x00, 0x00, false, false},
		{0x0F, 0x01, 0x10, false, true},
		{0xFF, 0x01, 0x00, true, true},
		{0x80, 0x80, 0x00, true, false},
	}
	for _, c := range cases {
		result, carry, ac := add8(c.x, c.y)
		if result != c.wantResult || carry != c.wantCarry || ac != c.wantAC {
			t.Errorf("add8(0x%02X, 0x%02X) = 0x%02X,%v,%v; want 0x%02X,%v,%v",
				c.x, c.y, result, carry, ac, c.wantResult, c.wantCarry, c.wantAC)
		}
	}
}

func TestSub8AuxiliaryCarry(t *testing.T) {
	// AC on SUB is set iff the low nibble of y exceeds the low nibble
	// of x, and C is set iff y > x, independent of each other.
	cases := []struct {
		x, y              byte
		wantCarry, wantAC bool
	}{
		{0x00, 0x01, true, true},
		{0x10, 0x01, false, true},
		{0x01, 0x00, false, false},
		{0x00, 0x00, false, false},
	}
	for _, c := range cases {
		_, carry, ac := sub8(c.x, c.y)
		if carry != c.wantCarry || ac != c.wantAC {
			t.Errorf("sub8(0x%02X, 0x%02X) carry=%v ac=%v; want carry=%v ac=%v",
				c.x, c.y, carry, ac, c.wantCarry, c.wantAC)
		}
	}
}

func TestAdd8cCarryPropagation(t *testing.T) {
	// 0xFF + 0x00 + carryIn=true must not silently drop the carry-in
	// to a naive add8(x, y+1) formulation.
	result, carry, _ := add8c(0xFF, 0x00, true)
	if result != 0x00 || !carry {
		t.Fatalf("add8c(0xFF, 0x00, true) = 0x%02X,%v; want 0x00,true", result, carry)
	}
}

func TestSub8cBorrowPropagation(t *testing.T) {
	result, carry, _ := sub8c(0x00, 0x00, true)
	if result != 0xFF || !carry {
		t.Fatalf("sub8c(0x00, 0x00, true) = 0x%02X,%v; want 0xFF,true", result, carry)
	}
}

func TestRotLeft(t *testing.T) {
	result, carryOut := rotLeft(0x80, false)
	if result != 0x00 || !carryOut {
		t.Fatalf("rotLeft(0x80, false) = 0x%02X,%v; want 0x00,true", result, carryOut)
	}
	result, carryOut = rotLeft(0x01, true)
	if result != 0x03 || carryOut {
		t.Fatalf("rotLeft(0x01, true) = 0x%02X,%v; want 0x03,false", result, carryOut)
	}
}

func TestRotRight(t *testing.T) {
	result, carryOut := rotRight(0x01, false)
	if result != 0x00 || !carryOut {
		t.Fatalf("rotRight(0x01, false) = 0x%02X,%v; want 0x00,true", result, carryOut)
	}
	result, carryOut = rotRight(0x80, true)
	if result != 0xC0 || carryOut {
		t.Fatalf("rotRight(0x80, true) = 0x%02X,%v; want 0xC0,false", result, carryOut)
	}
}

func TestCombineAndSplit16(t *testing.T) {
	w := combine16(0x12, 0x34)
	if w != 0x1234 {
		t.Fatalf("combine16(0x12, 0x34) = 0x%04X; want 0x1234", w)
	}
	if hi8(w) != 0x12 || lo8(w) != 0x34 {
		t.Fatalf("hi8/lo8(0x1234) = 0x%02X,0x%02X; want 0x12,0x34", hi8(w), lo8(w))
	}
}

func TestParityEven(t *testing.T) {
	cases := map[byte]bool{
		0x00: true,
		0x01: false,
		0x03: true,
		0xFF: true,
		0x0F: true,
		0x07: false,
	}
	for x, want := range cases {
		if got := parityEven(x); got != want {
			t.Errorf("parityEven(0x%02X) = %v; want %v", x, got, want)
		}
	}
}
