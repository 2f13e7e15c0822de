package dac

// A single reference-tick observation of the bus lines
type Sample struct {
	Clock  bool // Serial bus clock line
	Data   bool // Serial bus data line
	Select bool // Select line (active low, false = selected)
	Ready  bool // Engine ready flag
}

// Bounded waveform capture ring. The capacity is rounded up to a power
// of two so the write pointer can wrap with a mask
type Trace struct {
	Buffer   []Sample // Sample storage, length is a power of two
	Mask     uint32   // len(Buffer) - 1
	WritePtr uint32   // Total samples pushed, wraps the ring via Mask
}

// Returns a new trace holding at least `capacity` samples
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		panicFmt("trace: invalid capacity %d", capacity)
	}

	size := 1
	for size < capacity {
		size <<= 1
	}

	return &Trace{
		Buffer: make([]Sample, size),
		Mask:   uint32(size - 1),
	}
}

// Records the engine's output lines for the current tick
func (trace *Trace) Capture(engine *Engine) {
	trace.Push(Sample{
		Clock:  engine.BusClock,
		Data:   engine.BusData,
		Select: engine.BusSelect,
		Ready:  engine.Ready,
	})
}

// Pushes a sample, overwriting the oldest one when full
func (trace *Trace) Push(sample Sample) {
	trace.Buffer[trace.WritePtr&trace.Mask] = sample
	trace.WritePtr++
}

// Returns the amount of valid samples in the ring
func (trace *Trace) Len() int {
	if trace.WritePtr < uint32(len(trace.Buffer)) {
		return int(trace.WritePtr)
	}
	return len(trace.Buffer)
}

// Returns the captured samples ordered oldest to newest
func (trace *Trace) Snapshot() []Sample {
	length := trace.Len()
	samples := make([]Sample, length)

	start := trace.WritePtr - uint32(length)
	for i := 0; i < length; i++ {
		samples[i] = trace.Buffer[(start+uint32(i))&trace.Mask]
	}
	return samples
}

// Reconstructs the 32-bit frames on the bus the way the device sees
// them: while selected, the data line is sampled on every falling clock
// edge. The start period clocks out one idle bit before the frame, so
// the first sampled bit of each selection window is discarded
func (trace *Trace) DecodeFrames() []uint32 {
	var frames []uint32

	samples := trace.Snapshot()
	if len(samples) == 0 {
		return frames
	}

	var bits uint32
	var count int
	skip := true
	prev := samples[0]

	for _, cur := range samples[1:] {
		if cur.Select {
			// bus released, a partial frame is dropped
			bits = 0
			count = 0
			skip = true
		} else if prev.Clock && !cur.Clock {
			if skip {
				skip = false
			} else if count < FRAME_BITS {
				bits <<= 1
				if cur.Data {
					bits |= 1
				}
				count++
				if count == FRAME_BITS {
					frames = append(frames, bits)
				}
			}
		}
		prev = cur
	}
	return frames
}
