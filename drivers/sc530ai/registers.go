package sc530ai

const (
	// 7-bit I2C address (0x60 in 8-bit form). SID strap high selects AddressAlt.
	AddressDefault = 0x30
	AddressAlt     = 0x32

	// ChipID is the value of CHIP_ID_H:CHIP_ID_L.
	ChipID = 0x9E39

	// MCLKHz is the external clock programmed at power-up.
	MCLKHz = 27_000_000

	// HDRRatio is the fixed long/short exposure ratio in DOL-HDR modes.
	HDRRatio = 32

	// --- Register sub-addresses (16-bit address, 8-bit data) ---

	regStream  = 0x0100 // bit0: 1 = streaming, 0 = software standby
	regChipIDH = 0x3107
	regChipIDL = 0x3108

	// Long (or only) exposure: [19:16] in 0x3E00[3:0], [15:8] in 0x3E01, [7:4] in 0x3E02[7:4].
	regExpHigh = 0x3E00
	regExpMid  = 0x3E01
	regExpLow  = 0x3E02

	// Short exposure (DOL-HDR only).
	regShortExpMid = 0x3E04
	regShortExpLow = 0x3E05

	// Long (or only) gain.
	regDigGainHigh = 0x3E06
	regDigGainLow  = 0x3E07
	regAnaGain     = 0x3E09

	// Short gain (DOL-HDR only).
	regShortDigGainHigh = 0x3E10
	regShortDigGainLow  = 0x3E11
	regShortAnaGain     = 0x3E13

	streamOn = 0x01
)
