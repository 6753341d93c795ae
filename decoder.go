// decoder.go - turns a byte slice at PC into a decoded instruction

package engine

import "fmt"

// DecodedOp is a decoded instruction bound to concrete immediate
// bytes. It is transient: produced fresh by Decode on every tick and
// consumed immediately by the executor.
type DecodedOp struct {
	Op   *OpType
	Arg1 byte // present iff Op.Length >= 2
	Arg2 byte // present iff Op.Length == 3
}

// Word16 combines Arg1 and Arg2 into the 16-bit operand a 3-byte
// instruction forms, per the little-endian convention: Arg1 is the
// low byte (at pc+1), Arg2 is the high byte (at pc+2).
func (d DecodedOp) Word16() uint16 {
	return combine16(d.Arg2, d.Arg1)
}

// Decode reads one instruction from the start of program, which must
// be positioned at the program counter. It returns the decoded op and
// its length in bytes. An opcode with no table entry (undocumented
// 8080 "alternate") is a decode error.
func Decode(table *OpcodeTable, program []byte) (DecodedOp, int, error) {
	opcode := program[0]
	opType := table.Lookup(opcode)
	if opType == nil {
		return DecodedOp{}, 0, fmt.Errorf("undefined opcode 0x%02X", opcode)
	}

	dop := DecodedOp{Op: opType}
	if opType.Length >= 2 {
		dop.Arg1 = program[1]
	}
	if opType.Length == 3 {
		dop.Arg2 = program[2]
	}
	return dop, opType.Length, nil
}
