// main.go - CPU diagnostic harness: runs the 8080 exerciser ROM under
// a minimal CP/M BIOS stub and reports pass/fail.

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/retrocab/invaders8080"
)

const (
	loadAddr = 0x0100
	bdosAddr = 0x0005
)

func main() {
	romPath := flag.String("rom", "", "path to the CPU diagnostic ROM")
	tablePath := flag.String("opcodes", "", "path to an opcode description file (defaults to the bundled table)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: diag -rom <path> [-opcodes <path>]")
		os.Exit(2)
	}

	ok, err := runDiagnostic(*romPath, *tablePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !ok {
		printResult("FAILED", 31)
		os.Exit(1)
	}
	printResult("PASSED", 32)
}

func printResult(word string, ansiColor int) {
	out := os.Stdout
	if term.IsTerminal(int(out.Fd())) {
		fmt.Fprintf(out, "\n\033[%dm%s\033[0m\n", ansiColor, word)
		return
	}
	fmt.Fprintln(out, word)
}

// runDiagnostic loads rom at 0x0100 behind a seeded jump at 0x0000,
// then runs the CPU instruction by instruction, intercepting CALL
// 0x0005 as the two CP/M BDOS functions the classic exerciser ROMs
// use for output: C=9 prints a '$'-terminated string from DE, C=2
// prints the single character in E.
func runDiagnostic(romPath, tablePath string) (bool, error) {
	rom, err := engine.LoadROM(romPath)
	if err != nil {
		return false, err
	}

	table, err := loadTable(tablePath)
	if err != nil {
		return false, err
	}

	mem := &engine.Memory{}
	mem.SetBlock(loadAddr, rom)
	// CP/M programs expect a warm-boot jump at 0x0000; running off
	// the end of the exerciser without printing success lands here.
	mem.Set(0, 0xC3)
	mem.Set(1, byte(loadAddr))
	mem.Set(2, byte(loadAddr>>8))

	ports := &engine.PortBank{}
	cpu := engine.NewCPU(mem, ports, table)
	cpu.PC = loadAddr

	var output []byte
	success := false

	for {
		if cpu.PC == bdosAddr {
			output = append(output, bdosCall(cpu)...)
			if containsString(output, "CPU IS OPERATIONAL") {
				success = true
			}
			if containsString(output, "FAILED") {
				os.Stdout.Write(output)
				return false, nil
			}
			continue
		}
		if cpu.PC == 0 {
			os.Stdout.Write(output)
			return success, nil
		}

		if _, err := cpu.Tick(); err != nil {
			os.Stdout.Write(output)
			return false, fmt.Errorf("diagnostic trapped at PC=0x%04X: %w", cpu.PC, err)
		}
	}
}

// bdosCall emulates the one BDOS entry point the exerciser ROMs call,
// returning any bytes it printed, and performs the RET the real CALL
// 0x0005 would have executed (pop the return address off the stack).
func bdosCall(cpu *engine.CPU) []byte {
	var out []byte

	switch cpu.C {
	case 9:
		addr := cpu.DE()
		for {
			b := cpu.Mem.Get(addr)
			if b == '$' {
				break
			}
			out = append(out, b)
			addr++
		}
	case 2:
		out = append(out, cpu.E)
	}

	lo := cpu.Mem.Get(cpu.SP)
	hi := cpu.Mem.Get(cpu.SP + 1)
	cpu.SP += 2
	cpu.PC = uint16(hi)<<8 | uint16(lo)

	return out
}

func containsString(haystack []byte, needle string) bool {
	n := len(needle)
	if n == 0 || len(haystack) < n {
		return false
	}
	for i := 0; i+n <= len(haystack); i++ {
		if string(haystack[i:i+n]) == needle {
			return true
		}
	}
	return false
}

func loadTable(path string) (*engine.OpcodeTable, error) {
	if path == "" {
		return engine.DefaultOpcodeTable()
	}
	return engine.LoadOpcodeTableFile(path)
}
