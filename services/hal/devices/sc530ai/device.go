package sc530aidev

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"cameracode-go/drivers/sc530ai"
	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
	"cameracode-go/x/logx"
	"cameracode-go/x/timex"
)

// Device is a single-worker HAL device for one SC530AI. Controls are
// enqueued and executed in order; each outcome is published as a retained
// value or a degraded status.
type Device struct {
	id   string
	addr core.CapAddr // camera/camera/<name>

	res    core.Resources
	params Params
	claims claims
	drv    *sc530ai.Device

	alive     atomic.Bool
	reqCh     chan request
	done      chan struct{}
	cancel    context.CancelFunc
	cleanOnce sync.Once
}

type opCode uint8

const (
	opProbe opCode = iota
	opPower
	opStandby
	opReset
	opSelectMode
	opStream
	opExposure
	opGain
	opExposureGain
	opFrameRate
	opRead
	opStop
)

type request struct {
	op  opCode
	arg any
}

const reqQueueLen = 8

// ---- core.Device interface ----

func (d *Device) ID() string { return d.id }

func (d *Device) Capabilities() []core.CapabilitySpec {
	modes := sc530ai.Modes()
	cm := make([]types.CameraMode, 0, len(modes))
	for _, m := range modes {
		cm = append(cm, cameraMode(m))
	}
	return []core.CapabilitySpec{{
		Domain: d.addr.Domain,
		Kind:   types.KindCamera,
		Name:   d.addr.Name,
		Info: types.Info{
			SchemaVersion: 1,
			Driver:        "sc530ai",
			Detail: types.CameraInfo{
				Sensor:  "sc530ai",
				Bus:     d.params.Bus,
				Addr:    d.drv.Address(),
				Format:  "SBGGR10_1X10",
				Lanes:   d.drv.BusConfig().Lanes,
				Modes:   cm,
				ChipID:  sc530ai.ChipID,
				MCLK_Hz: sc530ai.MCLKHz,
			},
		},
	}}
}

// Init probes the sensor, publishes the outcome and starts the worker. A
// failed probe leaves the sensor off but the device running, so a later
// "power" control can retry it.
func (d *Device) Init(ctx context.Context) error {
	d.publish(d.handle(request{op: opProbe}))

	wctx, cancel := context.WithCancel(ctx)
	d.reqCh = make(chan request, reqQueueLen)
	d.done = make(chan struct{})
	d.cancel = cancel
	d.alive.Store(true)
	go d.worker(wctx)
	return nil
}

// Close stops the worker, powers the sensor down and releases all claims.
// Queued controls run first unless the queue is full, in which case they
// are dropped. New controls are refused as soon as Close is called.
func (d *Device) Close() error {
	if !d.alive.Swap(false) {
		return nil
	}
	defer d.cancel()
	select {
	case d.reqCh <- request{op: opStop}:
	default:
		d.cancel()
	}
	t := time.NewTimer(300 * time.Millisecond)
	defer t.Stop()
	select {
	case <-d.done:
	case <-t.C:
		d.cancel()
		d.cleanup()
	}
	return nil
}

// Sensor gives synchronous access to the sensor's capability groups.
func (d *Device) Sensor() core.Sensor { return sensor{d.drv} }

func (d *Device) Control(_ core.CapAddr, verb string, payload any) (core.EnqueueResult, error) {
	send := func(op opCode, arg any) (core.EnqueueResult, error) {
		if !d.alive.Load() {
			return core.EnqueueResult{OK: false, Error: errcode.Unavailable}, nil
		}
		select {
		case d.reqCh <- request{op: op, arg: arg}:
			return core.EnqueueResult{OK: true}, nil
		default:
			return core.EnqueueResult{OK: false, Error: errcode.Busy}, nil
		}
	}
	bad := core.EnqueueResult{OK: false, Error: errcode.InvalidPayload}

	switch verb {
	case "read":
		return send(opRead, nil)
	case "power":
		v, code := core.As[types.CameraPower](payload)
		if code != "" {
			return bad, nil
		}
		return send(opPower, v)
	case "standby":
		v, code := core.As[types.CameraStandby](payload)
		if code != "" {
			return bad, nil
		}
		return send(opStandby, v)
	case "reset":
		v, code := core.As[types.CameraReset](payload)
		if code != "" {
			return bad, nil
		}
		return send(opReset, v)
	case "select_mode":
		v, code := core.As[types.CameraMode](payload)
		if code != "" {
			return bad, nil
		}
		return send(opSelectMode, v)
	case "stream":
		v, code := core.As[types.CameraStream](payload)
		if code != "" {
			return bad, nil
		}
		return send(opStream, v)
	case "set_exposure":
		v, code := core.As[types.CameraExposure](payload)
		if code != "" {
			return bad, nil
		}
		return send(opExposure, v)
	case "set_gain":
		v, code := core.As[types.CameraGain](payload)
		if code != "" {
			return bad, nil
		}
		return send(opGain, v)
	case "set_exposure_gain":
		v, code := core.As[types.CameraExposureGain](payload)
		if code != "" {
			return bad, nil
		}
		return send(opExposureGain, v)
	case "set_fps":
		v, code := core.As[types.CameraFrameRate](payload)
		if code != "" {
			return bad, nil
		}
		if v.FPS == 0 {
			return core.EnqueueResult{OK: false, Error: errcode.InvalidParams}, nil
		}
		return send(opFrameRate, v)
	default:
		return core.EnqueueResult{OK: false, Error: errcode.Unsupported}, nil
	}
}

// ---- Worker ----

func (d *Device) worker(ctx context.Context) {
	defer close(d.done)
	defer d.alive.Store(false)

	for {
		select {
		case <-ctx.Done():
			d.cleanup()
			return
		case req := <-d.reqCh:
			if req.op == opStop {
				d.cleanup()
				return
			}
			d.publish(d.handle(req))
		}
	}
}

func (d *Device) handle(req request) error {
	s := sensor{d.drv}
	switch req.op {
	case opProbe:
		s.PowerOn()
		if err := s.Init(); err != nil {
			s.PowerOff()
			logx.Warnf("[sc530ai] %s: probe failed: %v", d.id, err)
			return err
		}
		logx.Infof("[sc530ai] %s: detected at 0x%02x", d.id, s.Address())
		return nil
	case opPower:
		if req.arg.(types.CameraPower).On {
			s.PowerOn()
			return s.Detect()
		}
		s.PowerOff()
		return nil
	case opStandby:
		return s.Standby(req.arg.(types.CameraStandby).On)
	case opReset:
		s.Reset(req.arg.(types.CameraReset).Assert)
		return nil
	case opSelectMode:
		_, err := s.SelectFormat(req.arg.(types.CameraMode))
		return err
	case opStream:
		if req.arg.(types.CameraStream).On {
			return s.StartStream()
		}
		return s.StopStream()
	case opExposure:
		return s.SetExposure(req.arg.(types.CameraExposure).Lines)
	case opGain:
		return s.SetGain(req.arg.(types.CameraGain).Gain)
	case opExposureGain:
		v := req.arg.(types.CameraExposureGain)
		return s.SetExposureAndGain(v.Lines, v.Gain)
	case opFrameRate:
		_, err := s.SetFrameRate(req.arg.(types.CameraFrameRate).FPS)
		return err
	}
	return nil
}

// publish emits the sensor snapshot, or a degraded status carrying the
// mapped error code.
func (d *Device) publish(err error) {
	ev := core.Event{Addr: d.addr, TSms: timex.NowMs()}
	if err != nil {
		ev.Err = string(errcode.MapDriverErr(err))
	} else {
		ev.Payload = sensor{d.drv}.Snapshot()
	}
	if !d.res.Pub.Emit(ev) {
		logx.Debugf("[sc530ai] %s: event dropped", d.id)
	}
}

// cleanup runs at most once, whether from the worker or from a Close that
// gave up waiting for it.
func (d *Device) cleanup() {
	d.cleanOnce.Do(func() {
		if d.drv.State() != sc530ai.PowerOff {
			d.drv.PowerOff()
		}
		d.claims.release()
	})
}
