// assets.go - canonical opcode description bundled with the engine

package engine

import (
	"bytes"
	_ "embed"
)

//go:embed opcodes.txt
var opcodeTableSource []byte

// DefaultOpcodeTable parses the 8080 opcode description bundled with
// this module. Host programs that supply their own description (per
// the decoder's LoadOpcodeTable) never need this; it exists so
// cmd/diag and cmd/invaders, and the tests, have a ready-made table
// without each shipping a copy of the same file.
func DefaultOpcodeTable() (*OpcodeTable, error) {
	return LoadOpcodeTable(bytes.NewReader(opcodeTableSource))
}
