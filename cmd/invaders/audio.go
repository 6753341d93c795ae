// audio.go - coin/shot/UFO trigger player driven by output-port writes

package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/retrocab/invaders8080"
)

const (
	// Sound ports on the reference cabinet: port 3 carries the
	// "discrete sound" bits (UFO, shot, player death, invader hit),
	// port 5 carries the "extended sound" bits added on later
	// boards (invader marching steps, UFO hit). The core has no
	// opinion on these; it only exposes that something was written.
	soundPortA = 3
	soundPortB = 5

	sampleRate = 44100
)

// toneFor maps an output-port bit to a short tone frequency. There is
// no faithful per-bit sound in scope here (synthesizing the cabinet's
// actual sound effects is outside what the core exposes); this is
// deliberately a simple audible cue per bit, not a reimplementation of
// the arcade's discrete sound boards.
func toneFor(port byte, bit uint) float64 {
	base := 220.0
	if port == soundPortB {
		base = 330.0
	}
	return base * math.Pow(1.08, float64(bit))
}

// audioTrigger renders short sine-wave blips through an oto context,
// one player per blip; oto players are cheap and self-closing once
// drained, which keeps this free of any mixing logic.
type audioTrigger struct {
	ctx *oto.Context
}

func newAudioTrigger() (*audioTrigger, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready
	return &audioTrigger{ctx: ctx}, nil
}

func (a *audioTrigger) play(freq float64) {
	const dur = 80 * time.Millisecond
	n := int(float64(sampleRate) * dur.Seconds())

	buf := new(bytes.Buffer)
	buf.Grow(n * 4)
	for i := 0; i < n; i++ {
		envelope := 1.0 - float64(i)/float64(n) // short linear decay, avoids a click at cutoff
		s := float32(0.2 * envelope * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		binary.Write(buf, binary.LittleEndian, s)
	}

	p := a.ctx.NewPlayer(buf)
	p.Play()
}

// watchSoundPorts polls the machine's two sound ports once per tick
// until ctx is cancelled, playing a tone for each bit that transitions
// from off to on.
func watchSoundPorts(ctx context.Context, m *engine.ArcadeMachine, trig *audioTrigger) error {
	var prevA, prevB byte

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			a, dirtyA := m.CPU.Ports.ReadOut(soundPortA)
			if dirtyA {
				triggerRisingBits(trig, soundPortA, prevA, a)
				prevA = a
			}
			b, dirtyB := m.CPU.Ports.ReadOut(soundPortB)
			if dirtyB {
				triggerRisingBits(trig, soundPortB, prevB, b)
				prevB = b
			}
		}
	}
}

func triggerRisingBits(trig *audioTrigger, port byte, prev, cur byte) {
	rising := cur &^ prev
	for bit := uint(0); bit < 8; bit++ {
		if rising&(1<<bit) != 0 {
			trig.play(toneFor(port, bit))
		}
	}
}
