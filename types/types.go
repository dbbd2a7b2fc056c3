package types

// ------------------------
// Common HAL state (retained)
// ------------------------

// Link is the link/state reported for a capability.
type Link string

const (
	LinkUp       Link = "up"
	LinkDown     Link = "down"
	LinkDegraded Link = "degraded"
)

type CapabilityStatus struct {
	Link  Link   `json:"link"`
	TS    int64  `json:"ts_ms"`
	Error string `json:"error,omitempty"` // machine-readable short code
}

// ------------------------
// Capability kinds & info
// ------------------------

type Kind string

const (
	KindCamera Kind = "camera"
)

// CapabilityAddress identifies a public capability.
type CapabilityAddress struct {
	Domain string `json:"domain"` // e.g. "camera"
	Kind   Kind   `json:"kind"`
	Name   string `json:"name"`
}

// Info envelope each capability exposes (retained).
type Info struct {
	SchemaVersion int         `json:"schema_version"`
	Driver        string      `json:"driver"`
	Detail        interface{} `json:"detail,omitempty"`
}

// ------------------------
// HAL configuration
// ------------------------

type HALConfig struct {
	Devices []HALDevice `json:"devices" mapstructure:"devices"`
}

type HALDevice struct {
	ID     string      `json:"id" mapstructure:"id"`         // logical device id, e.g. "cam0"
	Type   string      `json:"type" mapstructure:"type"`     // e.g. "sc530ai"
	Params interface{} `json:"params" mapstructure:"params"` // device-specific params
}

// ------------------------
// Generic replies
// ------------------------

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
