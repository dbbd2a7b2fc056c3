package core

import (
	"errors"
	"sort"
	"sync"

	"cameracode-go/types"
)

// ---- Sensor capability groups ----

type PowerControl interface {
	PowerOn()
	PowerOff()
	Standby(on bool) error
	Reset(assert bool)
}

type StreamControl interface {
	StartStream() error
	StopStream() error
}

// FormatControl selects the operating point. A selection takes effect on
// the next stream start.
type FormatControl interface {
	SelectFormat(req types.CameraMode) (types.CameraMode, error)
	SetFrameRate(fps uint32) (uint32, error)
}

type ExposureControl interface {
	SetExposure(lines int) error
	SetGain(gain int) error
	SetExposureAndGain(lines, gain int) error
}

// Sensor is the full capability set of an image sensor instance.
type Sensor interface {
	PowerControl
	StreamControl
	FormatControl
	ExposureControl
	Snapshot() types.CameraValue
}

// SensorProvider is implemented by devices that front an image sensor.
type SensorProvider interface {
	Sensor() Sensor
}

var ErrSensorExists = errors.New("sensor already registered")

// SensorRegistry indexes live sensors by device id. Each instance keeps its
// own state; nothing is shared between entries.
type SensorRegistry struct {
	mu sync.RWMutex
	m  map[string]Sensor
}

func NewSensorRegistry() *SensorRegistry {
	return &SensorRegistry{m: map[string]Sensor{}}
}

func (r *SensorRegistry) Add(id string, s Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[id]; ok {
		return ErrSensorExists
	}
	r.m[id] = s
	return nil
}

func (r *SensorRegistry) Get(id string) (Sensor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.m[id]
	return s, ok
}

func (r *SensorRegistry) Remove(id string) {
	r.mu.Lock()
	delete(r.m, id)
	r.mu.Unlock()
}

// IDs returns the registered ids in sorted order.
func (r *SensorRegistry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.m))
	for id := range r.m {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}
