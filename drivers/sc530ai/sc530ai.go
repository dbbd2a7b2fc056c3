// Package sc530ai provides a driver for the SmartSens SC530AI 5MP CMOS image
// sensor (2880x1620, MIPI CSI-2 4-lane, RAW10).
//
// Design notes:
//   - Control bus is I2C with 16-bit register addresses and 8-bit data.
//   - Power sequencing and the MCLK are delegated to a Board; the driver only
//     orders the calls and enforces the settle delays.
//   - Exposure is in lines, gain in 1/16 x. Both are saturated, never rejected.
//   - Mode changes take effect on the next StartStream; exposure and gain
//     updates are written straight to their registers.
//   - One mutex per Device serialises every bus sequence, including the
//     standby read-modify-write and its settle delay.
package sc530ai

import (
	"errors"
	"sync"
	"time"

	"cameracode-go/x/mathx"
	"cameracode-go/x/timex"

	"tinygo.org/x/drivers"
)

var (
	ErrNotDetected  = errors.New("sc530ai: chip id mismatch")
	ErrInvalidParam = errors.New("sc530ai: invalid parameter")
	ErrInvalidMode  = errors.New("sc530ai: unsupported mode")
	ErrNotPowered   = errors.New("sc530ai: not powered")
	ErrPowered      = errors.New("sc530ai: still powered")
)

// PowerState is the sequencer state.
type PowerState uint8

const (
	PowerOff     PowerState = iota
	PowerOn                 // rails up, clock running, registers reachable
	PowerStandby            // software standby (0x0100 bit0 clear)
	PowerStreaming
)

func (s PowerState) String() string {
	switch s {
	case PowerOff:
		return "off"
	case PowerOn:
		return "on"
	case PowerStandby:
		return "standby"
	case PowerStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to AddressDefault if zero.
	Address uint16
	// Mode is the mode selected at probe. Defaults to Mode2880x1620At30.
	Mode ModeID
	// Sleep is used for every settle delay. Defaults to time.Sleep.
	Sleep timex.Sleeper
	// Logf receives debug traces. Nil disables them.
	Logf func(format string, args ...any)
}

// Device is one SC530AI on an I2C bus.
type Device struct {
	mu sync.Mutex

	i2c   drivers.I2C
	board Board
	addr  uint16
	sleep timex.Sleeper
	logf  func(format string, args ...any)

	state   PowerState
	current Mode // live descriptor; VTS may differ from the table
	pending Mode // applied by the next StartStream

	exposure int // lines
	gain     int // 1/16 x

	// Fixed buffers to avoid per-call heap allocations.
	w [3]byte
	r [1]byte
}

// New creates a Device in the powered-off state. It does not touch the bus.
func New(i2c drivers.I2C, board Board, cfg Config) (*Device, error) {
	m, err := LookupMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	d := &Device{
		i2c:     i2c,
		board:   board,
		addr:    cfg.Address,
		sleep:   cfg.Sleep,
		logf:    cfg.Logf,
		current: m,
		pending: m,
	}
	if d.addr == 0 {
		d.addr = AddressDefault
	}
	if d.sleep == nil {
		d.sleep = time.Sleep
	}
	return d, nil
}

// Probe powers the sensor, checks its identity and initialises state. The
// returned Device is left powered (PowerOn). On a detection or bus failure
// the sensor is powered off and no Device is returned.
func Probe(i2c drivers.I2C, board Board, cfg Config) (*Device, error) {
	d, err := New(i2c, board, cfg)
	if err != nil {
		return nil, err
	}
	d.PowerOn()
	if err := d.Init(); err != nil {
		d.PowerOff()
		return nil, err
	}
	return d, nil
}

// Init verifies the chip id and clears exposure and gain.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	if err := d.detect(); err != nil {
		return err
	}
	d.exposure = 0
	d.gain = 0
	return nil
}

// Detect reads CHIP_ID_H/L and compares them against ChipID.
func (d *Device) Detect() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detect()
}

func (d *Device) detect() error {
	hi, err := d.readReg(regChipIDH)
	if err != nil {
		return err
	}
	if hi != ChipID>>8 {
		return ErrNotDetected
	}
	lo, err := d.readReg(regChipIDL)
	if err != nil {
		return err
	}
	if lo != ChipID&0xFF {
		return ErrNotDetected
	}
	d.debug("sc530ai: chip id 0x%02x%02x", hi, lo)
	return nil
}

// Close releases the Device. The sensor must already be powered off.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PowerOff {
		return ErrPowered
	}
	return nil
}

// ---------------- Exposure and gain ----------------

// SetExposure programs the exposure in lines, saturated to
// [MinExposure, 0xFFFFF]. It returns ErrNotPowered while the sensor is off.
func (d *Device) SetExposure(lines int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	return d.setExposure(mathx.Min(lines, maxExposureLines))
}

// SetGain programs the gain (1/16 x), saturated to the current mode's range.
func (d *Device) SetGain(gain int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	return d.setGain(d.clampGain(gain))
}

// SetExposureAndGain updates both under one lock hold, exposure first.
func (d *Device) SetExposureAndGain(lines, gain int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	lines = mathx.Min(lines, maxExposureLines)
	gain = d.clampGain(gain)
	if err := d.setExposure(lines); err != nil {
		return err
	}
	if err := d.setGain(gain); err != nil {
		return err
	}
	d.debug("sc530ai: exp %d gain %d", d.exposure, d.gain)
	return nil
}

func (d *Device) clampGain(gain int) int {
	return mathx.Clamp(gain, int(d.current.GainMin), int(d.current.GainMax))
}

func (d *Device) setExposure(lines int) error {
	c := EncodeExposure(lines, d.current.HDR)
	if err := d.writeArray(c.regs()); err != nil {
		return err
	}
	d.exposure = c.Lines
	return nil
}

func (d *Device) setGain(gain int) error {
	c := EncodeGain(gain)
	if err := d.writeArray(c.regs(d.current.HDR)); err != nil {
		return err
	}
	d.gain = gain
	return nil
}

// ---------------- Accessors ----------------

// Exposure returns the last programmed exposure in lines.
func (d *Device) Exposure() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exposure
}

// Gain returns the last programmed gain in 1/16 x.
func (d *Device) Gain() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gain
}

// State returns the sequencer state.
func (d *Device) State() PowerState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// CurrentMode returns a copy of the live mode descriptor.
func (d *Device) CurrentMode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// PendingMode returns the mode the next StartStream will program.
func (d *Device) PendingMode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Address returns the 7-bit bus address.
func (d *Device) Address() uint16 { return d.addr }

// BusConfig describes the CSI-2 link of the current mode.
type BusConfig struct {
	Lanes    uint8
	Channels []uint8 // virtual channels carrying image data
}

// BusConfig returns the CSI-2 link layout: 4 lanes, and VC1 for the short
// frame in DOL-HDR.
func (d *Device) BusConfig() BusConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current.HDR {
		return BusConfig{Lanes: 4, Channels: []uint8{0, 1}}
	}
	return BusConfig{Lanes: 4, Channels: []uint8{0}}
}

func (d *Device) debug(format string, args ...any) {
	if d.logf != nil {
		d.logf(format, args...)
	}
}
