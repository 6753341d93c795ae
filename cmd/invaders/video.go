// video.go - ebiten window that blits the arcade board's framebuffer

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/retrocab/invaders8080"
)

const (
	screenWidth  = 224
	screenHeight = 256
)

// keyBinding pairs a host key with the cabinet button it drives.
type keyBinding struct {
	ebitenKey ebiten.Key
	invKey    engine.Key
}

var keyBindings = []keyBinding{
	{ebiten.KeyC, engine.KeyCoin},
	{ebiten.Key1, engine.KeyStartP1},
	{ebiten.KeySpace, engine.KeyFireP1},
	{ebiten.KeyArrowLeft, engine.KeyLeftP1},
	{ebiten.KeyArrowRight, engine.KeyRightP1},
}

// videoGame is the ebiten.Game implementation driving one frame of
// cabinet emulation per Update/Draw pair. It owns nothing about the
// CPU beyond the ArcadeMachine pointer; frame pacing, not instruction
// semantics, is its job.
type videoGame struct {
	machine *engine.ArcadeMachine
	img     *ebiten.Image
	pixels  []byte // RGBA scratch buffer, reused across frames

	mu     sync.Mutex
	onCrash func(error)

	debugToggle func()
}

func newVideoGame(m *engine.ArcadeMachine, onCrash func(error), debugToggle func()) *videoGame {
	return &videoGame{
		machine:     m,
		img:         ebiten.NewImage(screenWidth, screenHeight),
		pixels:      make([]byte, screenWidth*screenHeight*4),
		onCrash:     onCrash,
		debugToggle: debugToggle,
	}
}

// Update advances the machine by one frame's worth of the two-stage
// video interrupt schedule: half a frame of CPU time, RST 1, the rest
// of the frame, RST 2.
func (g *videoGame) Update() error {
	const frameHalf = 1.0 / 120.0

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && g.debugToggle != nil {
		g.debugToggle()
	}

	if _, err := g.machine.Run(frameHalf); err != nil {
		g.crash(err)
		return err
	}
	g.machine.SignalHalfRender()

	if _, err := g.machine.Run(frameHalf); err != nil {
		g.crash(err)
		return err
	}
	g.machine.SignalFinishRender()

	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.ebitenKey) {
			g.machine.ToggleInput(kb.invKey, true)
		} else if inpututil.IsKeyJustReleased(kb.ebitenKey) {
			g.machine.ToggleInput(kb.invKey, false)
		}
	}

	return nil
}

func (g *videoGame) crash(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.onCrash != nil {
		g.onCrash(err)
	}
}

// Draw rotates the board's column-major 1bpp framebuffer into a plain
// RGBA image. Pixel (x, y), host top-left origin, maps to bit
// (255-y)%8 of byte x*32 + (255-y)/8 in the source buffer.
func (g *videoGame) Draw(screen *ebiten.Image) {
	buf := g.machine.RenderBuffer()

	for x := 0; x < screenWidth; x++ {
		for y := 0; y < screenHeight; y++ {
			flipped := screenHeight - 1 - y
			byteIdx := x*32 + flipped/8
			bit := uint(flipped % 8)
			on := buf[byteIdx]&(1<<bit) != 0

			off := (y*screenWidth + x) * 4
			var v byte
			if on {
				v = 0xFF
			}
			g.pixels[off] = v
			g.pixels[off+1] = v
			g.pixels[off+2] = v
			g.pixels[off+3] = 0xFF
		}
	}

	g.img.WritePixels(g.pixels)
	screen.DrawImage(g.img, nil)
}

func (g *videoGame) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}
