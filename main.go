package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zeozeozeo/godac/dac"
)

func main() {
	// parse arguments
	refHz := flag.Uint("ref", 100000000, "reference clock frequency in Hz")
	busHz := flag.Uint("bus", 1000000, "bus clock frequency in Hz")
	count := flag.Uint("n", 8, "transactions to run in headless mode")
	scope := flag.Bool("scope", false, "show the waveform viewer")
	flag.Parse()

	engine, err := dac.NewEngine(uint32(*refHz), uint32(*busHz))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("bus master ready, %d reference ticks per bus-clock period", engine.Divider.Ratio)

	ramp := newRampDriver()

	if *scope {
		runScope(engine, ramp)
		return
	}
	runHeadless(engine, ramp, int(*count))
}

// Manufactures a changing digital value and cycles the enable line
// through the ready handshake: a fresh transaction is presented every
// time the engine reports ready, enable is dropped as soon as the
// transaction has been accepted
type rampDriver struct {
	value   uint16
	pending bool
}

func newRampDriver() *rampDriver {
	return &rampDriver{}
}

func (ramp *rampDriver) Drive(engine *dac.Engine) {
	if engine.Ready && !ramp.pending {
		engine.Input = dac.Transaction{
			Command: dac.CMD_WRITE_UPDATE,
			Address: dac.ADDR_CHANNEL_A,
			Value:   ramp.value,
		}
		engine.Enable = true
		ramp.pending = true
		ramp.value = (ramp.value + 1) & dac.VALUE_MASK
	} else if !engine.Ready {
		// transaction accepted, release enable so the engine idles
		// until the next value is presented
		engine.Enable = false
		ramp.pending = false
	}
}

func runHeadless(engine *dac.Engine, ramp *rampDriver, count int) {
	ticksPerTransaction := int(engine.Divider.Ratio) * (dac.FRAME_BITS + 2)
	trace := dac.NewTrace((count + 1) * 2 * ticksPerTransaction)

	// a couple of extra idle periods per transaction for the
	// handshake turnaround
	for tick := 0; tick < (count+1)*2*ticksPerTransaction; tick++ {
		ramp.Drive(engine)
		engine.Step()
		trace.Capture(engine)
	}

	frames := trace.DecodeFrames()
	if len(frames) > count {
		frames = frames[:count]
	}
	for i, frame := range frames {
		log.Printf("frame %d: %#08x", i, frame)
	}
}

func runScope(engine *dac.Engine, ramp *rampDriver) {
	view := dac.NewScope(engine, int(engine.Divider.Ratio)*4)
	view.Drive = ramp.Drive

	ebiten.SetWindowSize(dac.SCOPE_WIDTH, dac.SCOPE_HEIGHT*2)
	ebiten.SetWindowTitle("godac bus master")
	if err := ebiten.RunGame(view); err != nil {
		log.Fatal(err)
	}
}
