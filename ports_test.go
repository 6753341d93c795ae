package engine

import "testing"

func TestPortBankInOut(t *testing.T) {
	var p PortBank
	p.SetIn(1, 0x55)
	if got := p.In(1); got != 0x55 {
		t.Fatalf("In(1) = 0x%02X; want 0x55", got)
	}

	p.Out(4, 0xAA)
	v, dirty := p.ReadOut(4)
	if v != 0xAA || !dirty {
		t.Fatalf("ReadOut(4) = 0x%02X,%v; want 0xAA,true", v, dirty)
	}

	v, dirty = p.ReadOut(4)
	if v != 0xAA || dirty {
		t.Fatalf("second ReadOut(4) = 0x%02X,%v; want 0xAA,false (dirty cleared)", v, dirty)
	}
}

func TestPortBankSetInBit(t *testing.T) {
	var p PortBank
	p.SetIn(1, 0x00)
	p.SetInBit(1, 2, true)
	if p.In(1) != 0x04 {
		t.Fatalf("In(1) after SetInBit(1,2,true) = 0x%02X; want 0x04", p.In(1))
	}
	p.SetInBit(1, 2, false)
	if p.In(1) != 0x00 {
		t.Fatalf("In(1) after SetInBit(1,2,false) = 0x%02X; want 0x00", p.In(1))
	}
}

func TestPortIndexWraps(t *testing.T) {
	var p PortBank
	p.SetIn(8, 0x11) // port 8 aliases port 0 in an 8-port bank
	if got := p.In(0); got != 0x11 {
		t.Fatalf("In(0) after SetIn(8, ...) = 0x%02X; want 0x11 (ports wrap mod 8)", got)
	}
}

func TestPortBankReset(t *testing.T) {
	var p PortBank
	p.SetIn(0, 0xFF)
	p.Out(0, 0xFF)
	p.Reset()
	if p.In(0) != 0 {
		t.Fatalf("In(0) after Reset = 0x%02X; want 0", p.In(0))
	}
	v, dirty := p.ReadOut(0)
	if v != 0 || dirty {
		t.Fatalf("ReadOut(0) after Reset = 0x%02X,%v; want 0,false", v, dirty)
	}
}
