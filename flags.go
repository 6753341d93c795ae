// flags.go - the 8080 condition flag byte

package engine

// Flag identifies a single bit of the flag byte F.
type Flag byte

// Flag bit positions, MSB to LSB: S(7) Z(6) _(5) AC(4) _(3) P(2) _(1)=1 C(0).
const (
	FlagS  Flag = 0x80
	FlagZ  Flag = 0x40
	FlagAC Flag = 0x10
	FlagP  Flag = 0x04
	FlagC  Flag = 0x01

	flagReservedMask byte = 0xD7 // bits 3 and 5 forced to 0
	flagFixedOne     byte = 0x02 // bit 1 forced to 1
)

// FlagRegister is the 8080 flag byte. The zero value is not valid;
// use newFlagRegister or SetByte to establish the fixed bits.
type FlagRegister struct {
	bits byte
}

func newFlagRegister() FlagRegister {
	var f FlagRegister
	f.SetByte(0)
	return f
}

// IsSet reports whether the given flag bit is set.
func (f FlagRegister) IsSet(flag Flag) bool {
	return f.bits&byte(flag) != 0
}

// Set assigns the given flag bit.
func (f *FlagRegister) Set(flag Flag, on bool) {
	if on {
		f.bits |= byte(flag)
	} else {
		f.bits &^= byte(flag)
	}
}

// Flip toggles the given flag bit.
func (f *FlagRegister) Flip(flag Flag) {
	f.Set(flag, !f.IsSet(flag))
}

// Byte returns the flag register as it reads on the bus: reserved
// bits are already normalized by every write, so this is a plain
// accessor.
func (f FlagRegister) Byte() byte {
	return f.bits
}

// SetByte loads the flag register from a raw byte, forcing bit 1 to 1
// and bits 3 and 5 to 0 per the 8080's fixed flag layout.
func (f *FlagRegister) SetByte(v byte) {
	f.bits = (v & flagReservedMask) | flagFixedOne
}

// updateFromResult derives S, Z, P from an 8-bit result. C and AC are
// left untouched; callers set those explicitly per instruction family
// (see execute and aluOp in cpu_exec.go).
func (f *FlagRegister) updateFromResult(result byte) {
	f.Set(FlagS, result&0x80 != 0)
	f.Set(FlagZ, result == 0)
	f.Set(FlagP, parityEven(result))
}
