package sc530ai

// ---------------- Gain ----------------

// GainCode is the register image of one gain setting.
type GainCode struct {
	Analog      uint8 // 0x3E09 / 0x3E13 coarse analog step
	DigitalHigh uint8 // 0x3E06 / 0x3E10, extra x2 digital stage
	DigitalLow  uint8 // 0x3E07 / 0x3E11, fine digital gain (x/128)
}

// gainStep is one rung of the analog ladder. Inputs below limit use this
// analog code and scale the remainder digitally against ref.
type gainStep struct {
	limit  int
	analog uint8
	ref    int
}

// Scaled gain is gain<<3, i.e. 1x == 128. Limits and references are the
// analog ladder multiplied by 128 (2.55x -> 326, 5.1x -> 653, ...).
var gainLadder = [...]gainStep{
	{limit: 256, analog: 0x00, ref: 0}, // passthrough
	{limit: 326, analog: 0x01, ref: 512},
	{limit: 653, analog: 0x40, ref: 653},
	{limit: 1306, analog: 0x48, ref: 1306},
	{limit: 2611, analog: 0x49, ref: 2661}, // 2661 as calibrated; see DESIGN.md
	{limit: 5222, analog: 0x4B, ref: 5222},
	{limit: 10445, analog: 0x4F, ref: 10445},
	{limit: 20890, analog: 0x5F, ref: 20890},
}

const (
	gainScaleShift = 3
	gainTopRef     = 20890
	gainTopAnalog  = 0x5F
)

// EncodeGain converts a linear gain (1x == 16) into register fields. It does
// not clamp; callers saturate to the mode's gain range first.
func EncodeGain(gain int) GainCode {
	g := gain << gainScaleShift
	for _, s := range gainLadder {
		if g >= s.limit {
			continue
		}
		if s.ref == 0 {
			return GainCode{Analog: s.analog, DigitalLow: uint8(g)}
		}
		return GainCode{Analog: s.analog, DigitalLow: uint8(g * 256 / s.ref)}
	}
	return GainCode{
		Analog:      gainTopAnalog,
		DigitalHigh: 0x01,
		DigitalLow:  uint8(g * 256 / gainTopRef / 2),
	}
}

// analogX100 is the analog multiplier of each ladder code, x100.
func analogX100(code uint8) int {
	switch code {
	case 0x01:
		return 200
	case 0x40:
		return 255
	case 0x48:
		return 510
	case 0x49:
		return 1020
	case 0x4B:
		return 2040
	case 0x4F:
		return 4080
	case 0x5F:
		return 8160
	default:
		return 100
	}
}

// MilliX returns the total gain the sensor applies for c, 1000 == 1x.
// DigitalLow is a x/128 fine stage; DigitalHigh doubles it.
func (c GainCode) MilliX() int {
	eff := analogX100(c.Analog) * 10 * int(c.DigitalLow) / 128
	if c.DigitalHigh != 0 {
		eff *= 2
	}
	return eff
}

// StepMilliX is one DigitalLow LSB at c's analog step, 1000 == 1x.
func (c GainCode) StepMilliX() int {
	step := analogX100(c.Analog) * 10 / 128
	if c.DigitalHigh != 0 {
		step *= 2
	}
	return step
}

// ---------------- Exposure ----------------

// Exposure packing. The register LSB is half a line, so the line count is
// shifted left by one before it is split:
//
//	0x3E00[3:0] = lines[18:15]
//	0x3E01[7:0] = lines[14:7]
//	0x3E02[7:4] = lines[6:3]   (bits [3:0] are fractional and written as 0)

func expHigh(lines int) uint8 { return uint8((lines >> 15) & 0x0F) }
func expMid(lines int) uint8  { return uint8((lines >> 7) & 0xFF) }
func expLow(lines int) uint8  { return uint8((lines << 1) & 0xF0) }

const (
	minExposureLines = 16
	maxExposureLines = 0xFFFFF
)

// MinExposure returns the smallest programmable exposure in lines.
func MinExposure(hdr bool) int {
	if hdr {
		return minExposureLines * HDRRatio
	}
	return minExposureLines
}

// ExposureCode is the register image of one exposure setting.
type ExposureCode struct {
	Lines int // clamped long (or only) exposure
	High  uint8
	Mid   uint8
	Low   uint8

	// DOL-HDR only.
	HDR        bool
	ShortLines int
	ShortMid   uint8
	ShortLow   uint8
}

// EncodeExposure packs an exposure in lines. Values below MinExposure(hdr)
// are raised to it; the upper bound is the caller's.
func EncodeExposure(lines int, hdr bool) ExposureCode {
	if min := MinExposure(hdr); lines < min {
		lines = min
	}
	c := ExposureCode{
		Lines: lines,
		High:  expHigh(lines),
		Mid:   expMid(lines),
		Low:   expLow(lines),
		HDR:   hdr,
	}
	if hdr {
		short := lines / HDRRatio
		c.ShortLines = short
		c.ShortMid = expMid(short)
		c.ShortLow = expLow(short)
	}
	return c
}

// Register write sequences for encoded values, in the order the sensor expects.

func (c ExposureCode) regs() []RegVal {
	out := []RegVal{
		{regExpLow, c.Low},
		{regExpMid, c.Mid},
		{regExpHigh, c.High},
	}
	if c.HDR {
		out = append(out,
			RegVal{regShortExpLow, c.ShortLow},
			RegVal{regShortExpMid, c.ShortMid},
		)
	}
	return out
}

func (c GainCode) regs(hdr bool) []RegVal {
	out := make([]RegVal, 0, 6)
	if hdr {
		out = append(out,
			RegVal{regShortAnaGain, c.Analog},
			RegVal{regShortDigGainLow, c.DigitalLow},
			RegVal{regShortDigGainHigh, c.DigitalHigh},
		)
	}
	return append(out,
		RegVal{regAnaGain, c.Analog},
		RegVal{regDigGainLow, c.DigitalLow},
		RegVal{regDigGainHigh, c.DigitalHigh},
	)
}
