// Package hal builds devices from configuration, indexes their capabilities
// and routes controls to them. Device telemetry goes straight to the
// injected EventEmitter.
package hal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
	"cameracode-go/x/logx"

	// Device builders register themselves.
	_ "cameracode-go/services/hal/devices/sc530ai"
)

// Announcer is optionally implemented by the EventEmitter to publish
// retained capability info when a capability comes up.
type Announcer interface {
	Announce(addr core.CapAddr, info types.Info)
}

type Service struct {
	mu  sync.Mutex
	res core.Resources

	// Device registry
	dev map[string]core.Device // devID -> device

	// Capability index: (domain,kind,name) -> devID
	capIndex map[core.CapAddr]string

	sensors *core.SensorRegistry
	ready   bool
}

func New(reg core.ResourceRegistry, pub core.EventEmitter) *Service {
	return &Service{
		res:      core.Resources{Reg: reg, Pub: pub},
		dev:      map[string]core.Device{},
		capIndex: map[core.CapAddr]string{},
		sensors:  core.NewSensorRegistry(),
	}
}

// Apply builds and starts every device in cfg that is not already running.
// It is additive: devices missing from cfg are left alone. Failures are
// logged and returned together; the remaining devices still come up.
func (s *Service) Apply(ctx context.Context, cfg types.HALConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for i := range cfg.Devices {
		dc := cfg.Devices[i]
		if _, exists := s.dev[dc.ID]; exists {
			continue
		}
		if err := s.addDevice(ctx, dc); err != nil {
			logx.Errorf("[hal] %s (%s): %v", dc.ID, dc.Type, err)
			errs = append(errs, fmt.Errorf("%s: %w", dc.ID, err))
		}
	}
	s.ready = true
	return errors.Join(errs...)
}

func (s *Service) addDevice(ctx context.Context, dc types.HALDevice) error {
	b, ok := core.LookupBuilder(dc.Type)
	if !ok {
		return &errcode.E{C: errcode.Unsupported, Op: "build", Msg: "no builder for type " + dc.Type}
	}
	dev, err := b.Build(ctx, core.BuilderInput{
		ID:     dc.ID,
		Type:   dc.Type,
		Params: dc.Params,
		Res:    s.res,
	})
	if err != nil {
		return err
	}
	if sp, ok := dev.(core.SensorProvider); ok {
		if err := s.sensors.Add(dev.ID(), sp.Sensor()); err != nil {
			_ = dev.Close()
			return err
		}
	}
	// Announce before Init so retained info precedes the first value.
	ann, _ := s.res.Pub.(Announcer)
	for _, cs := range dev.Capabilities() {
		addr := core.CapAddr{Domain: cs.Domain, Kind: string(cs.Kind), Name: cs.Name}
		if addr.Name == "" {
			addr.Name = dev.ID()
		}
		s.capIndex[addr] = dev.ID()
		if ann != nil {
			ann.Announce(addr, cs.Info)
		}
	}
	if err := dev.Init(ctx); err != nil {
		s.dropLocked(dev.ID(), dev)
		return err
	}
	s.dev[dev.ID()] = dev
	logx.Infof("[hal] %s (%s) up", dc.ID, dc.Type)
	return nil
}

// Control routes verb to the first capability of device devID.
func (s *Service) Control(devID, verb string, payload any) (core.EnqueueResult, error) {
	s.mu.Lock()
	dev, ok := s.dev[devID]
	ready := s.ready
	s.mu.Unlock()
	if !ready {
		return core.EnqueueResult{OK: false, Error: errcode.HALNotReady}, nil
	}
	if !ok {
		return core.EnqueueResult{OK: false, Error: errcode.UnknownDevice}, nil
	}
	caps := dev.Capabilities()
	if len(caps) == 0 {
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
	addr := core.CapAddr{Domain: caps[0].Domain, Kind: string(caps[0].Kind), Name: caps[0].Name}
	return dev.Control(addr, verb, payload)
}

// ControlCap routes verb to the device owning addr.
func (s *Service) ControlCap(addr core.CapAddr, verb string, payload any) (core.EnqueueResult, error) {
	s.mu.Lock()
	ready := s.ready
	ownerID, ok := s.capIndex[addr]
	dev := s.dev[ownerID]
	s.mu.Unlock()
	if !ready {
		return core.EnqueueResult{OK: false, Error: errcode.HALNotReady}, nil
	}
	if !ok || dev == nil {
		return core.EnqueueResult{OK: false, Error: errcode.UnknownCapability}, nil
	}
	return dev.Control(addr, verb, payload)
}

// Sensor returns the sensor fronted by device devID.
func (s *Service) Sensor(devID string) (core.Sensor, bool) { return s.sensors.Get(devID) }

// SensorIDs lists devices that front a sensor.
func (s *Service) SensorIDs() []string { return s.sensors.IDs() }

// Close stops every device and releases its resources.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for id, dev := range s.dev {
		if err := s.dropLocked(id, dev); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}
	s.ready = false
	return errors.Join(errs...)
}

func (s *Service) dropLocked(id string, dev core.Device) error {
	for a, owner := range s.capIndex {
		if owner == id {
			delete(s.capIndex, a)
		}
	}
	s.sensors.Remove(id)
	delete(s.dev, id)
	return dev.Close()
}
