package dac

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	SCOPE_WIDTH  = 640 // One pixel column per captured reference tick
	SCOPE_HEIGHT = 200
)

var scopeTraceColors = []color.RGBA{
	{85, 255, 85, 255},  // bus clock
	{255, 255, 85, 255}, // bus data
	{255, 85, 85, 255},  // select
	{85, 170, 255, 255}, // ready
}

// An Ebitengine logic analyzer view of the engine's output lines. Each
// frame it advances the engine by a fixed number of reference ticks and
// draws the captured waveform, newest samples on the right
type Scope struct {
	Engine       *Engine
	Trace        *Trace
	TicksPerDraw int           // Reference ticks simulated per rendered frame
	Drive        func(*Engine) // Called before every tick to feed the engine
}

// Returns a new scope over `engine`, simulating `ticksPerDraw`
// reference ticks per rendered frame
func NewScope(engine *Engine, ticksPerDraw int) *Scope {
	return &Scope{
		Engine:       engine,
		Trace:        NewTrace(SCOPE_WIDTH),
		TicksPerDraw: ticksPerDraw,
	}
}

func (scope *Scope) Update() error {
	for i := 0; i < scope.TicksPerDraw; i++ {
		if scope.Drive != nil {
			scope.Drive(scope.Engine)
		}
		scope.Engine.Step()
		scope.Trace.Capture(scope.Engine)
	}
	return nil
}

func (scope *Scope) Draw(screen *ebiten.Image) {
	samples := scope.Trace.Snapshot()
	if len(samples) > SCOPE_WIDTH {
		samples = samples[len(samples)-SCOPE_WIDTH:]
	}

	lanes := [4]func(Sample) bool{
		func(s Sample) bool { return s.Clock },
		func(s Sample) bool { return s.Data },
		func(s Sample) bool { return !s.Select }, // draw as "selected" level
		func(s Sample) bool { return s.Ready },
	}

	laneHeight := SCOPE_HEIGHT / len(lanes)
	swing := laneHeight - 16

	for lane, level := range lanes {
		base := lane*laneHeight + laneHeight - 8
		clr := scopeTraceColors[lane]
		prevY := base

		for x, sample := range samples {
			y := base
			if level(sample) {
				y = base - swing
			}

			screen.Set(x, y, clr)

			// vertical stroke on a level change
			if y != prevY {
				lo, hi := y, prevY
				if lo > hi {
					lo, hi = hi, lo
				}
				for yy := lo; yy <= hi; yy++ {
					screen.Set(x, yy, clr)
				}
			}
			prevY = y
		}
	}
}

func (scope *Scope) Layout(outsideWidth, outsideHeight int) (int, int) {
	return SCOPE_WIDTH, SCOPE_HEIGHT
}
