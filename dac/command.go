package dac

// DAC op-code, bits [27:24] of the frame
type Command uint8

const (
	CMD_WRITE_INPUT      Command = 0x0 // Write to input register n
	CMD_UPDATE_DAC       Command = 0x1 // Update DAC register n
	CMD_WRITE_UPDATE_ALL Command = 0x2 // Write to input register n, update all (software LDAC)
	CMD_WRITE_UPDATE     Command = 0x3 // Write to input register n and update it
	CMD_POWER            Command = 0x4 // Power down/power up DAC
	CMD_CLEAR_CODE       Command = 0x5 // Load clear code register
	CMD_LOAD_LDAC        Command = 0x6 // Load LDAC register
	CMD_RESET            Command = 0x7 // Software reset (power-on reset)
	CMD_INTERNAL_REF     Command = 0x8 // Internal reference setup
	// 0x9..0xe are reserved by the device. The master transmits them
	// verbatim, op-code validation is the caller's responsibility
	CMD_WRITE_UPDATE_BROADCAST Command = 0xf // Write and update, all-channels variant of 0x3
)

// DAC channel selector, bits [23:20] of the frame
type Address uint8

const (
	ADDR_CHANNEL_A Address = 0x0
	ADDR_CHANNEL_B Address = 0x1
	ADDR_CHANNEL_C Address = 0x2
	ADDR_CHANNEL_D Address = 0x3
	ADDR_CHANNEL_E Address = 0x4
	ADDR_CHANNEL_F Address = 0x5
	ADDR_CHANNEL_G Address = 0x6
	ADDR_CHANNEL_H Address = 0x7
	// Addresses 0x8..0xe are reserved by the device
	ADDR_ALL_CHANNELS Address = 0xf
)

// Layout of the 32-bit frame, MSB first:
// 4 don't-care bits, 4 command bits, 4 address bits, 12 value bits,
// 8 don't-care bits (the trailing byte carries the configuration
// payload for CMD_INTERNAL_REF)
const (
	FRAME_BITS = 32 // Bits on the wire per transaction

	CMD_SHIFT   = 24
	ADDR_SHIFT  = 20
	VALUE_SHIFT = 8

	CMD_MASK    = 0xf
	ADDR_MASK   = 0xf
	VALUE_MASK  = 0xfff
	CONFIG_MASK = 0xff
)
