package errcode

import (
	"errors"

	"cameracode-go/drivers/sc530ai"
)

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                Code = "ok"
	Busy              Code = "busy"
	Unsupported       Code = "unsupported"
	Unavailable       Code = "unavailable"
	InvalidParams     Code = "invalid_params"
	InvalidPayload    Code = "invalid_payload"
	UnknownDevice     Code = "unknown_device"
	UnknownCapability Code = "unknown_capability"
	HALNotReady       Code = "hal_not_ready"

	UnknownBus Code = "unknown_bus"
	BusInUse   Code = "bus_in_use"
	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"
	Timeout    Code = "timeout"

	IOError     Code = "io_error"
	NotDetected Code = "not_detected"
	NotPowered  Code = "not_powered"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		return s + ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches op and a mapped code to a driver error.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: MapDriverErr(err), Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	return MapDriverErr(err)
}

// MapDriverErr maps low-level driver errors to a Code.
func MapDriverErr(err error) Code {
	var be *sc530ai.BusError
	switch {
	case err == nil:
		return OK
	case errors.As(err, &be):
		return IOError
	case errors.Is(err, sc530ai.ErrNotDetected):
		return NotDetected
	case errors.Is(err, sc530ai.ErrNotPowered):
		return NotPowered
	case errors.Is(err, sc530ai.ErrPowered):
		return Busy
	case errors.Is(err, sc530ai.ErrInvalidParam), errors.Is(err, sc530ai.ErrInvalidMode):
		return InvalidParams
	}
	return Error
}
