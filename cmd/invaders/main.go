// main.go - arcade front-end: wires the engine to a window and speakers

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
	"golang.org/x/sync/errgroup"

	"github.com/retrocab/invaders8080"
)

func main() {
	romPath := flag.String("rom", "", "path to the concatenated ROM image")
	tablePath := flag.String("opcodes", "", "path to an opcode description file (defaults to the bundled table)")
	mute := flag.Bool("mute", false, "disable the sound-port trigger player")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: invaders -rom <path> [-opcodes <path>] [-mute]")
		os.Exit(2)
	}

	if err := run(*romPath, *tablePath, *mute); err != nil {
		log.Fatal(err)
	}
}

func run(romPath, tablePath string, mute bool) error {
	rom, err := engine.LoadROM(romPath)
	if err != nil {
		return err
	}

	table, err := loadTable(tablePath)
	if err != nil {
		return err
	}

	machine := engine.NewArcadeMachine(rom, table)

	if err := clipboard.Init(); err != nil {
		// No system clipboard (headless CI, missing X11 libs, etc.) is
		// not fatal: crash dumps just won't be copyable.
		log.Printf("clipboard unavailable, crash dumps will only print: %v", err)
	}

	console := newDebugConsole(machine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	onCrash := func(err error) {
		dumpCrash(machine, err)
		cancel()
	}

	game := newVideoGame(machine, onCrash, console.Toggle)

	var g errgroup.Group

	if !mute {
		trig, err := newAudioTrigger()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.Go(func() error {
				err := watchSoundPorts(ctx, machine, trig)
				if err == context.Canceled {
					return nil
				}
				return err
			})
		}
	}

	ebiten.SetWindowSize(screenWidth*3, screenHeight*3)
	ebiten.SetWindowTitle("invaders8080")

	runErr := ebiten.RunGame(game)
	cancel()

	if err := g.Wait(); err != nil {
		log.Printf("audio watcher: %v", err)
	}

	return runErr
}

func loadTable(path string) (*engine.OpcodeTable, error) {
	if path == "" {
		return engine.DefaultOpcodeTable()
	}
	return engine.LoadOpcodeTableFile(path)
}

// dumpCrash prints a register snapshot on a CPU trap and, when a system
// clipboard is available, copies it too so a player can paste it
// straight into a bug report.
func dumpCrash(m *engine.ArcadeMachine, cause error) {
	var b strings.Builder
	fmt.Fprintf(&b, "machine halted: %v\n", cause)
	for _, r := range m.CPU.Registers() {
		fmt.Fprintf(&b, "%-5s = 0x%0*X\n", r.Name, r.BitWidth/4, r.Value)
	}

	text := b.String()
	fmt.Fprint(os.Stderr, text)
	clipboard.Write(clipboard.FmtText, []byte(text))
}
