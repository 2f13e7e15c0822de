package dac

// Derives the serial bus clock timing from the reference clock with a
// single modulo counter. Both edge pulses pass through a one-tick
// register stage so the output stage never sees a combinational glitch
type ClockDivider struct {
	Ratio   uint32 // Reference ticks per bus-clock period, >= 2
	Counter uint32 // Free-running counter in [0, Ratio-1], gated by enable

	// Registered edge pulses, true for exactly one reference tick
	Rising  bool // Start of a new bus-clock period
	Falling bool // Midpoint of the bus-clock period

	// First pipeline stage: raw comparator outputs, registered into
	// Rising/Falling one tick later
	RawRising  bool
	RawFalling bool
}

// Advances the divider by one reference-clock tick. When `enabled` is
// false the counter and both pipeline stages are held in reset
func (div *ClockDivider) Step(enabled bool) {
	// second stage: expose last tick's raw edges
	div.Rising = div.RawRising
	div.Falling = div.RawFalling

	if !enabled {
		div.Counter = 0
		div.RawRising = false
		div.RawFalling = false
		return
	}

	// first stage: compare, then count modulo Ratio
	div.RawRising = div.Counter == div.Ratio-1
	div.RawFalling = div.Counter == div.Ratio/2-1

	if div.Counter == div.Ratio-1 {
		div.Counter = 0
	} else {
		div.Counter++
	}
}
