// machine.go - the arcade board: CPU plus the shift-register peripheral

package engine

const (
	cpuHz = 2_000_000

	portShiftAmount = 2 // OUT: low 3 bits select the shift amount
	portShiftedIn   = 3 // IN: the shifted 8 bits the game reads back
	portShiftData   = 4 // OUT: next byte fed into the 16-bit shift register

	framebufferBase = 0x2400
	framebufferSize = 0x1C00 // 7 KiB, [0x2400, 0x4000)
)

// Key names the discrete buttons the cabinet exposes. Only the
// buttons the spec wires up have entries; anything else (tilt,
// service, player 2) is outside scope.
type Key int

const (
	KeyCoin Key = iota
	KeyStartP1
	KeyFireP1
	KeyLeftP1
	KeyRightP1
)

// keyBit is where each key lives in the input port bank: (port, bit).
var keyBit = map[Key]struct {
	port byte
	bit  uint
}{
	KeyCoin:    {1, 0},
	KeyStartP1: {1, 2},
	KeyFireP1:  {1, 4},
	KeyLeftP1:  {1, 5},
	KeyRightP1: {1, 6},
}

// ArcadeMachine wraps a CPU with the one piece of bolted-on hardware
// the board needs beyond the processor itself: a 16-bit shift
// register fed and read through three of the I/O ports, used by
// the game to draw rotated sprites without a real multiply
// instruction.
type ArcadeMachine struct {
	CPU *CPU

	shiftRegister uint16
}

// NewArcadeMachine builds a machine around rom, loaded at address 0,
// with the cabinet's DIP-switch defaults seeded into the input ports.
func NewArcadeMachine(rom []byte, table *OpcodeTable) *ArcadeMachine {
	mem := &Memory{}
	mem.SetBlock(0, rom)

	ports := &PortBank{}
	// bit pattern taken from the reference board: port 0 idles with
	// its unused bits high, port 1 with the coin/start/fire bits
	// clear and bit 3 (always-1 on real cabinets) set.
	ports.SetIn(0, 0b00001110)
	ports.SetIn(1, 0b00001000)
	ports.SetIn(2, 0b00001000)

	cpu := NewCPU(mem, ports, table)

	return &ArcadeMachine{CPU: cpu}
}

// Run executes instructions for dt seconds of 2 MHz CPU time,
// servicing the shift-register peripheral after every instruction,
// and returns the number of cycles actually spent (it overshoots the
// budget by at most one instruction's cycle count, and undershoots it
// only when Tick returns an error).
func (m *ArcadeMachine) Run(dt float64) (int, error) {
	budget := cpuHz * dt
	spent := 0.0

	for budget > 0 {
		cycles, err := m.CPU.Tick()
		if err != nil {
			return int(spent), err
		}
		spent += float64(cycles)
		budget -= float64(cycles)
		m.updatePorts()
	}
	return int(spent), nil
}

// updatePorts mirrors the CPU's shift-register output ports into the
// shift register and republishes the shifted result on its input
// port, exactly when the program has actually touched one of them
// since the last tick.
func (m *ArcadeMachine) updatePorts() {
	dirty := false

	if v, wasDirty := m.CPU.Ports.ReadOut(portShiftData); wasDirty {
		m.shiftRegister = (m.shiftRegister >> 8) | (uint16(v) << 8)
		dirty = true
	}
	if _, wasDirty := m.CPU.Ports.ReadOut(portShiftAmount); wasDirty {
		dirty = true
	}

	if dirty {
		m.refreshShiftedValue()
	}
}

func (m *ArcadeMachine) refreshShiftedValue() {
	shiftAmount, _ := m.CPU.Ports.ReadOut(portShiftAmount)
	shiftBy := shiftAmount & 0x07
	shifted := byte(m.shiftRegister << shiftBy >> 8)
	m.CPU.Ports.SetIn(portShiftedIn, shifted)
}

// RenderBuffer returns the 7 KiB video RAM window the game draws into
// directly, without copying.
func (m *ArcadeMachine) RenderBuffer() []byte {
	return m.CPU.Mem.SliceLen(framebufferBase, framebufferSize)
}

// SignalHalfRender fires the mid-frame video interrupt (RST 1), which
// the game uses to redraw the top half of the screen before the CRT
// beam reaches it.
func (m *ArcadeMachine) SignalHalfRender() {
	m.CPU.Interrupt(1)
}

// SignalFinishRender fires the end-of-frame / VBlank interrupt (RST 2).
func (m *ArcadeMachine) SignalFinishRender() {
	m.CPU.Interrupt(2)
}

// ToggleInput sets or clears one cabinet button's input bit.
func (m *ArcadeMachine) ToggleInput(key Key, down bool) {
	b, ok := keyBit[key]
	if !ok {
		return
	}
	m.CPU.Ports.SetInBit(b.port, b.bit, down)
}
