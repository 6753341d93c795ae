// arith.go - pure arithmetic primitives for the 8080 ALU

package engine

// add8 adds two 8-bit values and returns the wrapped result, the
// carry out of bit 7, and the auxiliary carry out of bit 3.
func add8(x, y byte) (result byte, carry, acarry bool) {
	sum := uint16(x) + uint16(y)
	result = byte(sum)
	carry = sum&0xFF00 != 0
	acarry = (x&0x0F)+(y&0x0F) > 0x0F
	return
}

// add16 adds two 16-bit values and returns the wrapped result and the
// carry out of bit 15.
func add16(x, y uint16) (result uint16, carry bool) {
	sum := uint32(x) + uint32(y)
	result = uint16(sum)
	carry = sum&0xFFFF0000 != 0
	return
}

// sub8 subtracts y from x. Carry is the borrow flag (set iff y > x);
// auxiliary carry is set iff the low nibble of y exceeds the low
// nibble of x. This matches 8080 hardware, not the naive "negate and
// add" formulation (which gives the wrong carry polarity on several
// edge cases - see DESIGN.md).
func sub8(x, y byte) (result byte, carry, acarry bool) {
	result = x - y
	carry = y > x
	acarry = x&0x0F < y&0x0F
	return
}

// add8c is add8 with an incoming carry folded in (ADC). It is not
// expressed as add8(x, y+carryIn) because that can drop a carry when
// y is 0xFF; the carry is added in the widened intermediate instead.
func add8c(x, y byte, carryIn bool) (result byte, carry, acarry bool) {
	cIn := uint16(0)
	if carryIn {
		cIn = 1
	}
	sum := uint16(x) + uint16(y) + cIn
	result = byte(sum)
	carry = sum&0xFF00 != 0
	acarry = (x&0x0F)+(y&0x0F)+byte(cIn) > 0x0F
	return
}

// sub8c is sub8 with an incoming borrow folded in (SBB), by the same
// widened-intermediate reasoning as add8c.
func sub8c(x, y byte, borrowIn bool) (result byte, carry, acarry bool) {
	bIn := 0
	if borrowIn {
		bIn = 1
	}
	diff := int(x) - int(y) - bIn
	result = byte(diff)
	carry = diff < 0
	acarry = int(x&0x0F)-int(y&0x0F)-bIn < 0
	return
}

// rotLeft rotates x left by one bit, injecting inject into bit 0
// instead of the bit ejected from bit 7. RLC passes the ejected bit 7
// back in (circular); RAL passes the current carry flag instead.
// Either way the returned carryOut is the bit actually ejected from
// bit 7, which becomes the new C flag.
func rotLeft(x byte, inject bool) (result byte, carryOut bool) {
	carryOut = x&0x80 != 0
	result = x << 1
	if inject {
		result |= 0x01
	}
	return
}

// rotRight rotates x right by one bit, injecting inject into bit 7
// instead of the bit ejected from bit 0. RRC passes the ejected bit 0
// back in (circular); RAR passes the current carry flag instead.
func rotRight(x byte, inject bool) (result byte, carryOut bool) {
	carryOut = x&0x01 != 0
	result = x >> 1
	if inject {
		result |= 0x80
	}
	return
}

// combine16 forms a 16-bit value from a high and low byte.
func combine16(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// hi8 returns the high byte of a 16-bit value.
func hi8(w uint16) byte {
	return byte(w >> 8)
}

// lo8 returns the low byte of a 16-bit value.
func lo8(w uint16) byte {
	return byte(w)
}

// parityEven reports whether the byte has an even number of set bits.
func parityEven(x byte) bool {
	n := 0
	for x != 0 {
		n += int(x & 1)
		x >>= 1
	}
	return n%2 == 0
}
