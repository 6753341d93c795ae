// debugscript.go - an optional Lua console over the debug snapshot API

package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/retrocab/invaders8080"
)

// debugConsole is host-side sugar over CPU.Registers/Step and Mem.Get:
// a line-oriented Lua REPL a player can pop open with F1 to inspect or
// single-step the machine. It is scripting over the single-step and
// register-dump surface the core already exposes, not a new debugging
// capability living in the core itself.
type debugConsole struct {
	machine *engine.ArcadeMachine

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

func newDebugConsole(m *engine.ArcadeMachine) *debugConsole {
	return &debugConsole{machine: m}
}

// Toggle starts the console if it is stopped, or stops it if running.
func (d *debugConsole) Toggle() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		close(d.stop)
		d.running = false
		return
	}

	d.stop = make(chan struct{})
	d.running = true
	go d.run(d.stop)
}

func (d *debugConsole) run(stop chan struct{}) {
	fmt.Println("debug console: regs(), step(), mem(addr), quit()")

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("regs", L.NewFunction(d.luaRegs))
	L.SetGlobal("step", L.NewFunction(d.luaStep))
	L.SetGlobal("mem", L.NewFunction(d.luaMem))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-stop:
			return
		default:
		}

		line := scanner.Text()
		if line == "quit()" {
			return
		}
		if err := L.DoString(line); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (d *debugConsole) luaRegs(L *lua.LState) int {
	for _, r := range d.machine.CPU.Registers() {
		fmt.Printf("%-5s = 0x%0*X\n", r.Name, r.BitWidth/4, r.Value)
	}
	return 0
}

func (d *debugConsole) luaStep(L *lua.LState) int {
	cycles, err := d.machine.CPU.Step()
	if err != nil {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	L.Push(lua.LNumber(cycles))
	return 1
}

func (d *debugConsole) luaMem(L *lua.LState) int {
	addr := uint16(L.CheckNumber(1))
	L.Push(lua.LNumber(d.machine.CPU.Mem.Get(addr)))
	return 1
}
