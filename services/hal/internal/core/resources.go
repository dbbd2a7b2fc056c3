package core

import (
	"tinygo.org/x/drivers"
)

type ResourceID string // e.g. "i2c0", "mclk0"

// ---- GPIO handles ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOHandle interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
	Toggle()
}

// ---- Clock outputs ----

// ClockHandle drives one reference clock output (e.g. a sensor MCLK).
type ClockHandle interface {
	Enable(on bool) error
	SetFrequency(hz uint32) error
}

// ---- Device → HAL telemetry (single shape) ----
// By default, an Event represents a "value-like" update for a capability that
// is published to .../value (retained). If IsEvent is true it goes to
// .../event (non-retained). Err, when non-empty, causes only
// .../status=degraded (retained) to be published.

type Event struct {
	Addr     CapAddr
	Payload  any    // typed value payload (e.g. types.CameraValue)
	TSms     int64  // ms timestamp
	Err      string // "io_error","not_detected","unavailable",...
	IsEvent  bool   // true => publish to .../event (non-retained)
	EventTag string // optional subtopic tag for events
}

// EventEmitter is provided to devices for value/event publication.
type EventEmitter interface {
	// Emit tries to enqueue an Event for publication.
	// It must be non-blocking; false indicates a drop under pressure.
	Emit(ev Event) bool
}

// ---- Injected resources ----

type Resources struct {
	Reg ResourceRegistry
	Pub EventEmitter
}

// ---- Unified registry interface ----

type ResourceRegistry interface {
	// Transactional buses. The returned bus serialises its own transactions.
	ClaimI2C(devID string, id ResourceID) (drivers.I2C, error)
	ReleaseI2C(devID string, id ResourceID)

	// GPIO
	ClaimGPIO(devID string, pin int) (GPIOHandle, error)
	ReleaseGPIO(devID string, pin int)

	// Clocks
	ClaimClock(devID string, id ResourceID) (ClockHandle, error)
	ReleaseClock(devID string, id ResourceID)
}
