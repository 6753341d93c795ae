// debug.go - single-step execution and a register-dump snapshot

package engine

// RegisterInfo describes one CPU register for a debug front-end: its
// name, width, current value, and a loose grouping for display.
// Shaped after the Machine Monitor's register tables, trimmed down to
// what an 8080 actually has (no shadow set, no index registers).
type RegisterInfo struct {
	Name     string
	BitWidth int
	Value    uint64
	Group    string
}

// Registers snapshots every programmer-visible register for display.
func (c *CPU) Registers() []RegisterInfo {
	return []RegisterInfo{
		{Name: "A", BitWidth: 8, Value: uint64(c.A), Group: "general"},
		{Name: "F", BitWidth: 8, Value: uint64(c.F.Byte()), Group: "flags"},
		{Name: "B", BitWidth: 8, Value: uint64(c.B), Group: "general"},
		{Name: "C", BitWidth: 8, Value: uint64(c.C), Group: "general"},
		{Name: "D", BitWidth: 8, Value: uint64(c.D), Group: "general"},
		{Name: "E", BitWidth: 8, Value: uint64(c.E), Group: "general"},
		{Name: "H", BitWidth: 8, Value: uint64(c.H), Group: "general"},
		{Name: "L", BitWidth: 8, Value: uint64(c.L), Group: "general"},
		{Name: "SP", BitWidth: 16, Value: uint64(c.SP), Group: "general"},
		{Name: "PC", BitWidth: 16, Value: uint64(c.PC), Group: "general"},
		{Name: "IFF", BitWidth: 1, Value: boolToUint64(c.IFF), Group: "status"},
		{Name: "HALT", BitWidth: 1, Value: boolToUint64(c.Halted), Group: "status"},
	}
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Register looks up a single register by name, case-sensitively
// matching the names Registers() reports.
func (c *CPU) Register(name string) (uint64, bool) {
	for _, r := range c.Registers() {
		if r.Name == name {
			return r.Value, true
		}
	}
	return 0, false
}

// Step runs exactly one instruction and returns the cycles it took,
// regardless of the arcade board's 2 MHz budget loop. It exists for
// single-instruction debugging; the normal run loop is
// ArcadeMachine.Run.
func (c *CPU) Step() (int, error) {
	return c.Tick()
}

// Disassemble decodes, but does not execute, the instruction at PC,
// returning its mnemonic. It is the minimal debug-console primitive;
// it does not format operands into the mnemonic text.
func (c *CPU) Disassemble() (string, error) {
	window := c.Mem.SliceLen(c.PC, 3)
	dop, _, err := Decode(c.Table, window)
	if err != nil {
		return "", err
	}
	return dop.Op.Mnemonic, nil
}
