package dac

import "testing"

type frameTest struct {
	Desc     string      // Test description
	Tx       Transaction // Input transaction
	Expected uint32      // Expected frame bits, MSB first
}

var frameTests = []frameTest{
	{
		Desc:     "set internal reference, channel 0, value 0",
		Tx:       Transaction{Command: CMD_INTERNAL_REF},
		Expected: 0x08000000,
	},
	{
		Desc:     "broadcast write+update, channel 2, value 0x123",
		Tx:       Transaction{Command: CMD_WRITE_UPDATE_BROADCAST, Address: ADDR_CHANNEL_C, Value: 0x123},
		Expected: 0x0f212300,
	},
	{
		Desc:     "write+update, channel 7, full scale",
		Tx:       Transaction{Command: CMD_WRITE_UPDATE, Address: ADDR_CHANNEL_H, Value: 0xfff},
		Expected: 0x037fff00,
	},
	{
		Desc:     "value is masked to 12 bits",
		Tx:       Transaction{Command: CMD_WRITE_INPUT, Address: ADDR_CHANNEL_A, Value: 0xf123},
		Expected: 0x00012300,
	},
	{
		Desc:     "config rides in the trailing byte for internal reference setup",
		Tx:       Transaction{Command: CMD_INTERNAL_REF, Value: 1, Config: 0xa5},
		Expected: 0x080001a5,
	},
	{
		Desc:     "config is ignored for other op-codes",
		Tx:       Transaction{Command: CMD_WRITE_UPDATE, Address: ADDR_CHANNEL_B, Config: 0xff},
		Expected: 0x03100000,
	},
}

func TestAssembleFrame(t *testing.T) {
	for idx, test := range frameTests {
		t.Logf("running test %d: %s", idx+1, test.Desc)

		frame := AssembleFrame(test.Tx)
		if frame.Bits != test.Expected {
			t.Errorf("expected frame 0x%08x, got 0x%08x", test.Expected, frame.Bits)
		}
	}
}

func TestFrameShift(t *testing.T) {
	assert := func(v bool) {
		if !v {
			t.Error("assert failed")
		}
	}

	frame := Frame{Bits: 0x80000001}
	assert(frame.Msb())

	// walk the trailing 1 up to the leading position
	for i := 0; i < FRAME_BITS-1; i++ {
		frame.Shift()
	}
	assert(frame.Msb())

	// after 32 shifts every emitted bit has been replaced by idle 0
	frame.Shift()
	assert(frame.Bits == 0)
	assert(!frame.Msb())
}

func TestFrameShiftOutOrder(t *testing.T) {
	tx := Transaction{Command: CMD_WRITE_UPDATE_BROADCAST, Address: ADDR_CHANNEL_C, Value: 0x123}
	frame := AssembleFrame(tx)

	var bits uint32
	for i := 0; i < FRAME_BITS; i++ {
		bits <<= 1
		if frame.Msb() {
			bits |= 1
		}
		frame.Shift()
	}

	if bits != 0x0f212300 {
		t.Errorf("MSB-first shift-out produced 0x%08x, expected 0x0f212300", bits)
	}
}
