package dac

import "fmt"

// Highest serial clock frequency the DAC is rated for
const DEVICE_MAX_BUS_HZ = 50000000

// Engine phase. Transitions happen only on registered rising edges of
// the divided bus clock, never on arbitrary reference ticks
type Phase int

const (
	PHASE_IDLE     Phase = iota // Bus released, latch open, ready asserted
	PHASE_START                 // One bus-clock period to load the frame
	PHASE_TRANSMIT              // Shifting out the 32 frame bits
	PHASE_SETTLE                // Guard period, select held past the last bit
)

// Pure next-state function of the transaction state machine. `lastBit`
// is true when the bit counter sits at its terminal value. Out-of-range
// phases recover to PHASE_IDLE
func nextPhase(phase Phase, enable bool, lastBit bool) Phase {
	switch phase {
	case PHASE_IDLE:
		if enable {
			return PHASE_START
		}
		return PHASE_IDLE
	case PHASE_START:
		return PHASE_TRANSMIT
	case PHASE_TRANSMIT:
		if lastBit {
			return PHASE_SETTLE
		}
		return PHASE_TRANSMIT
	case PHASE_SETTLE:
		return PHASE_IDLE
	default:
		// undefined phase, fail safe
		return PHASE_IDLE
	}
}

// Write-only serial bus master for an 8-channel 12-bit DAC. One Engine
// owns the complete state of one bus; all of it advances in lockstep
// with the reference clock through Step
type Engine struct {
	// Caller inputs. Sampled by the transaction latch on every
	// reference tick spent in PHASE_IDLE, frozen otherwise
	Enable bool        // Request to begin a transaction when ready
	Input  Transaction // Command/address/value/config to transmit

	// Latched snapshot driving the current transaction
	LatchedEnable bool
	Latched       Transaction

	Divider    ClockDivider // Bus clock divider and edge generator
	Frame      Frame        // Shift register holding the remaining frame bits
	BitCounter uint32       // Rising edges counted while transmitting, [0, 31]
	Phase      Phase

	// Output lines, registered to the reference clock
	BusClock  bool // Serial bus clock line
	BusData   bool // Serial bus data line, MSB first
	BusSelect bool // Active low: false = selected, true = released
	Ready     bool // True exactly while Phase == PHASE_IDLE
}

// Returns a new bus master engine deriving the bus clock from the
// reference clock. The ratio refHz/busHz must be an integer >= 2 and
// busHz must not exceed the device's rated maximum
func NewEngine(refHz, busHz uint32) (*Engine, error) {
	if refHz == 0 || busHz == 0 {
		return nil, fmt.Errorf("dac: clock frequencies must be non-zero (ref %d, bus %d)", refHz, busHz)
	}
	if busHz > DEVICE_MAX_BUS_HZ {
		return nil, fmt.Errorf("dac: bus clock %d Hz exceeds the device maximum of %d Hz", busHz, DEVICE_MAX_BUS_HZ)
	}
	if refHz%busHz != 0 {
		return nil, fmt.Errorf("dac: reference clock %d Hz is not an integer multiple of bus clock %d Hz", refHz, busHz)
	}

	ratio := refHz / busHz
	if ratio < 2 {
		return nil, fmt.Errorf("dac: clock ratio %d is too small, need at least 2", ratio)
	}

	engine := &Engine{
		Divider:   ClockDivider{Ratio: ratio},
		Phase:     PHASE_IDLE,
		BusSelect: true,
		Ready:     true,
	}
	return engine, nil
}

// Advances the engine by one reference-clock tick
func (engine *Engine) Step() {
	// transaction latch: only samples while idle, so a running
	// transaction never observes a torn input set
	if engine.Phase == PHASE_IDLE {
		engine.LatchedEnable = engine.Enable
		engine.Latched = engine.Input
	}

	engine.Divider.Step(engine.LatchedEnable)

	// the state machine only advances on registered rising edges
	if engine.Divider.Rising {
		prev := engine.Phase
		engine.Phase = nextPhase(prev, engine.LatchedEnable, engine.BitCounter == FRAME_BITS-1)

		if prev == PHASE_IDLE && engine.Phase == PHASE_START {
			// the start period loads the frame before the first bit
			engine.Frame = AssembleFrame(engine.Latched)
		} else if prev == PHASE_TRANSMIT && engine.Phase == PHASE_TRANSMIT {
			engine.Frame.Shift()
			engine.BitCounter++
		}

		if engine.Phase != PHASE_TRANSMIT {
			engine.BitCounter = 0
		}
	}

	engine.registerOutputs()
}

// Output stage: derives the externally observable lines from the
// current phase and the shift register's leading bit
func (engine *Engine) registerOutputs() {
	switch engine.Phase {
	case PHASE_IDLE, PHASE_SETTLE:
		// no spurious clock edges while idle or settling
		engine.BusClock = false
	default:
		if engine.Divider.Rising {
			engine.BusClock = true
		} else if engine.Divider.Falling {
			engine.BusClock = false
		}
	}

	if engine.Phase == PHASE_TRANSMIT || engine.Phase == PHASE_SETTLE {
		engine.BusData = engine.Frame.Msb()
	} else {
		engine.BusData = false
	}

	// the bus stays selected through the settle period, releasing it
	// only once the engine is idle again
	engine.BusSelect = engine.Phase == PHASE_IDLE
	engine.Ready = engine.Phase == PHASE_IDLE
}

// Returns true while a transaction is in flight
func (engine *Engine) IsBusy() bool {
	return engine.Phase != PHASE_IDLE
}
