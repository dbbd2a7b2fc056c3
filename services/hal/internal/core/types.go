package core

import (
	"context"

	"cameracode-go/errcode"
	"cameracode-go/types"
)

// ---- Capability & device model ----

// CapAddr is the public identity of one capability.
type CapAddr struct {
	Domain string
	Kind   string
	Name   string
}

type CapabilitySpec struct {
	Domain string
	Kind   types.Kind
	Name   string
	Info   types.Info
}

// EnqueueResult reports whether a control was accepted.
// Error carries the short code when OK is false.
type EnqueueResult struct {
	OK    bool
	Error errcode.Code
}

type Device interface {
	ID() string
	Capabilities() []CapabilitySpec
	Init(ctx context.Context) error
	Control(addr CapAddr, verb string, payload any) (EnqueueResult, error)
	Close() error // release claimed resources
}

// Builder input
type BuilderInput struct {
	ID, Type string
	Params   any
	Res      Resources
}

type Builder interface {
	Build(ctx context.Context, in BuilderInput) (Device, error)
}
