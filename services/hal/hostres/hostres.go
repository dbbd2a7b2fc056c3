// Package hostres provides a HAL resource registry for host builds, where
// the sensor's bus, control lines and clock are reached through an external
// backend such as a USB serial bridge.
package hostres

import (
	"sync"

	"tinygo.org/x/drivers"

	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/x/logx"
)

// Pin is one backend GPIO.
type Pin interface {
	SetOutput(initial bool) error
	SetInput() error // high impedance
	Write(high bool) error
	Read() (bool, error)
}

// Clock is one backend clock output.
type Clock interface {
	Enable(on bool) error
	SetFrequency(hz uint32) error
}

// Backend resolves resource ids to hardware.
type Backend interface {
	I2C(id string) (drivers.I2C, bool)
	Pin(n int) (Pin, bool)
	Clock(id string) (Clock, bool)
}

// Registry tracks ownership of backend resources. I2C buses may be shared;
// pins and clocks have a single owner.
type Registry struct {
	mu      sync.Mutex
	be      Backend
	i2cRefs map[core.ResourceID]map[string]bool
	pins    map[int]string
	clocks  map[core.ResourceID]string
}

var _ core.ResourceRegistry = (*Registry)(nil)

func New(be Backend) *Registry {
	return &Registry{
		be:      be,
		i2cRefs: map[core.ResourceID]map[string]bool{},
		pins:    map[int]string{},
		clocks:  map[core.ResourceID]string{},
	}
}

// Resources returns the registry together with an event sink for devices.
func (r *Registry) Resources(pub core.EventEmitter) core.Resources {
	return core.Resources{Reg: r, Pub: pub}
}

func (r *Registry) ClaimI2C(devID string, id core.ResourceID) (drivers.I2C, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bus, ok := r.be.I2C(string(id))
	if !ok {
		return nil, errcode.UnknownBus
	}
	refs := r.i2cRefs[id]
	if refs == nil {
		refs = map[string]bool{}
		r.i2cRefs[id] = refs
	}
	refs[devID] = true
	return bus, nil
}

func (r *Registry) ReleaseI2C(devID string, id core.ResourceID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if refs := r.i2cRefs[id]; refs != nil {
		delete(refs, devID)
		if len(refs) == 0 {
			delete(r.i2cRefs, id)
		}
	}
}

func (r *Registry) ClaimGPIO(devID string, n int) (core.GPIOHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, inUse := r.pins[n]; inUse && owner != "" {
		return nil, errcode.PinInUse
	}
	p, ok := r.be.Pin(n)
	if !ok {
		return nil, errcode.UnknownPin
	}
	r.pins[n] = devID
	return &gpio{n: n, p: p}, nil
}

func (r *Registry) ReleaseGPIO(devID string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pins[n] == devID {
		delete(r.pins, n)
	}
}

func (r *Registry) ClaimClock(devID string, id core.ResourceID) (core.ClockHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, inUse := r.clocks[id]; inUse && owner != "" {
		return nil, errcode.Busy
	}
	c, ok := r.be.Clock(string(id))
	if !ok {
		return nil, errcode.Unsupported
	}
	r.clocks[id] = devID
	return c, nil
}

func (r *Registry) ReleaseClock(devID string, id core.ResourceID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clocks[id] == devID {
		delete(r.clocks, id)
	}
}

// gpio adapts a backend Pin to core.GPIOHandle. The last written level is
// cached so Get and Toggle work on outputs whose readback fails.
type gpio struct {
	mu    sync.Mutex
	n     int
	p     Pin
	level bool
}

func (g *gpio) Number() int { return g.n }

func (g *gpio) ConfigureInput(pull core.Pull) error {
	if pull != core.PullNone {
		return errcode.Unsupported
	}
	return g.p.SetInput()
}

func (g *gpio) ConfigureOutput(initial bool) error {
	if err := g.p.SetOutput(initial); err != nil {
		return err
	}
	g.mu.Lock()
	g.level = initial
	g.mu.Unlock()
	return nil
}

func (g *gpio) Set(high bool) {
	if err := g.p.Write(high); err != nil {
		logx.Warnf("[hostres] gpio%d write: %v", g.n, err)
		return
	}
	g.mu.Lock()
	g.level = high
	g.mu.Unlock()
}

func (g *gpio) Get() bool {
	if v, err := g.p.Read(); err == nil {
		return v
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level
}

func (g *gpio) Toggle() { g.Set(!g.Get()) }
