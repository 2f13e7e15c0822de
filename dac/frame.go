package dac

// A single command/address/value snapshot presented to the engine.
// Pure data, copied by value into the engine's latch
type Transaction struct {
	Command Command // 4-bit op-code
	Address Address // 4-bit channel selector
	Value   uint16  // 12-bit digital value, upper bits are ignored
	Config  uint8   // 8-bit device configuration payload
}

// The 32-bit serial frame of one transaction, consumed MSB first
type Frame struct {
	Bits uint32 // Remaining bits, the leading bit is the current output bit
}

// Composes the 32-bit frame for a latched transaction. Don't-care
// positions hold the idle level (0); the trailing byte carries the
// configuration payload only for the internal reference setup op-code
func AssembleFrame(tx Transaction) Frame {
	bits := uint32(tx.Command&CMD_MASK) << CMD_SHIFT
	bits |= uint32(tx.Address&ADDR_MASK) << ADDR_SHIFT
	bits |= uint32(tx.Value&VALUE_MASK) << VALUE_SHIFT

	if tx.Command == CMD_INTERNAL_REF {
		bits |= uint32(tx.Config) & CONFIG_MASK
	}

	return Frame{Bits: bits}
}

// Returns the current leading (output) bit
func (frame *Frame) Msb() bool {
	return frame.Bits&0x80000000 != 0
}

// Discards the leading bit and shifts in an idle 0 at the trailing
// position
func (frame *Frame) Shift() {
	frame.Bits <<= 1
}
