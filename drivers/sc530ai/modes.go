package sc530ai

import "cameracode-go/x/mathx"

// ModeID indexes the static mode list.
type ModeID uint8

const (
	Mode2880x1620At30 ModeID = iota
	Mode2880x1620At20
	Mode2880x1620At60
	Mode2880x1620At30HDR
	Mode2880x1620At20HDR
	Mode2880x1620At15HDR
	numModes
)

// Mode describes one sensor operating point.
type Mode struct {
	ID        ModeID
	Width     uint32
	Height    uint32
	HTS       uint32 // pixel clocks per line
	VTS       uint32 // lines per frame; changed by SetFrameRate
	PixelClk  uint32 // Hz
	MIPIBps   uint32 // per-lane bit rate
	FPS       uint32 // compiled-in frame rate
	BinFactor uint8
	HDR       bool // DOL-HDR, long+short exposures on two virtual channels

	IntgMin uint32 // 1/16 line
	IntgMax uint32 // 1/16 line
	GainMin uint32 // 1/16 x
	GainMax uint32 // 1/16 x

	regs []RegVal
}

// Regs returns the mode's initialisation table.
func (m Mode) Regs() []RegVal { return m.regs }

// ModeRequest selects a mode by geometry, frame rate and HDR.
type ModeRequest struct {
	Width  uint32
	Height uint32
	FPS    uint32
	HDR    bool
}

const (
	pclkLow  = 158_400_000
	pclkHigh = 316_800_000
	mipiLow  = 396_000_000
	mipiHigh = 792_000_000
)

func intgMax(vts uint32) uint32 { return (2*vts - 8) << 4 }

// Intg max follows the 3300-line HDR frame for every mode except 20fps HDR.
var modes = [numModes]Mode{
	{
		ID: Mode2880x1620At30, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 1650, PixelClk: pclkLow, MIPIBps: mipiLow, FPS: 30, BinFactor: 1,
		IntgMin: 1 << 4, IntgMax: intgMax(3300), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At30,
	},
	{
		ID: Mode2880x1620At20, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 2475, PixelClk: pclkLow, MIPIBps: mipiLow, FPS: 20, BinFactor: 1,
		IntgMin: 1 << 4, IntgMax: intgMax(3300), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At20,
	},
	{
		// Vertical blank is 30 lines.
		ID: Mode2880x1620At60, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 1650, PixelClk: pclkHigh, MIPIBps: mipiHigh, FPS: 60, BinFactor: 1,
		IntgMin: 1 << 4, IntgMax: intgMax(3300), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At60,
	},
	{
		ID: Mode2880x1620At30HDR, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 3300, PixelClk: pclkHigh, MIPIBps: mipiHigh, FPS: 30, BinFactor: 1, HDR: true,
		IntgMin: 1 << 4, IntgMax: intgMax(3300), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At30HDR,
	},
	{
		ID: Mode2880x1620At20HDR, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 4950, PixelClk: pclkHigh, MIPIBps: mipiHigh, FPS: 20, BinFactor: 1, HDR: true,
		IntgMin: 1 << 4, IntgMax: intgMax(4950), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At20HDR,
	},
	{
		ID: Mode2880x1620At15HDR, Width: 2880, Height: 1620,
		HTS: 3200, VTS: 3300, PixelClk: pclkLow, MIPIBps: mipiLow, FPS: 15, BinFactor: 1, HDR: true,
		IntgMin: 1 << 4, IntgMax: intgMax(3300), GainMin: 1 << 4, GainMax: 326 << 4,
		regs: regs2880x1620At15HDR,
	},
}

// Modes returns a copy of the supported modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes[:])
	return out
}

// LookupMode returns the mode for id.
func LookupMode(id ModeID) (Mode, error) {
	if id >= numModes {
		return Mode{}, ErrInvalidMode
	}
	return modes[id], nil
}

// FindMode returns the unique mode matching req.
func FindMode(req ModeRequest) (Mode, error) {
	for _, m := range modes {
		if m.Width == req.Width && m.Height == req.Height && m.FPS == req.FPS && m.HDR == req.HDR {
			return m, nil
		}
	}
	return Mode{}, ErrInvalidMode
}

// MinVTS is the shortest frame that still fits the minimum exposure,
// from the integration bound lines <= 2*VTS - 8.
func MinVTS(hdr bool) uint32 {
	return uint32(MinExposure(hdr)+8+1) / 2
}

// vtsFor computes the frame length for fps on m, floored at MinVTS.
func vtsFor(m Mode, fps uint32) uint32 {
	vts := mathx.DivFloor(mathx.DivFloor(m.PixelClk, fps), m.HTS)
	return mathx.Max(vts, MinVTS(m.HDR))
}
