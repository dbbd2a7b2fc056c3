// Package telemetry publishes HAL capability state to an MQTT broker and
// feeds control requests from the broker back into the HAL.
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
	"cameracode-go/x/logx"
	"cameracode-go/x/timex"
)

// Client is the subset of mqtt.Client used here.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Controller accepts controls addressed to a capability.
type Controller interface {
	ControlCap(addr core.CapAddr, verb string, payload any) (core.EnqueueResult, error)
}

type Config struct {
	Prefix   string        // topic root; default "hal"
	QoS      byte          // default 0
	QueueLen int           // default 32
	Timeout  time.Duration // per-publish wait; default 2s
}

// Publisher implements core.EventEmitter. Emit never blocks; a single
// worker started by Run serialises all broker traffic. With a nil Client
// messages are only logged at debug level.
type Publisher struct {
	c       Client
	prefix  string
	qos     byte
	timeout time.Duration

	q       chan job
	dropped atomic.Uint32
}

var errNoClient = errors.New("telemetry: no broker client")

type job struct {
	ev   core.Event
	info *types.Info
}

var _ core.EventEmitter = (*Publisher)(nil)

func New(c Client, cfg Config) *Publisher {
	if cfg.Prefix == "" {
		cfg.Prefix = "hal"
	}
	if cfg.QueueLen <= 0 {
		cfg.QueueLen = 32
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &Publisher{
		c:       c,
		prefix:  cfg.Prefix,
		qos:     cfg.QoS,
		timeout: cfg.Timeout,
		q:       make(chan job, cfg.QueueLen),
	}
}

// Dial connects to broker in the same way for every host tool.
func Dial(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID(clientID)
	opts.SetKeepAlive(2 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetAutoReconnect(true)

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return c, nil
}

// Emit enqueues ev for publication; false means the queue was full.
func (p *Publisher) Emit(ev core.Event) bool {
	select {
	case p.q <- job{ev: ev}:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Announce queues retained info and an initial status:down for addr.
func (p *Publisher) Announce(addr core.CapAddr, info types.Info) {
	select {
	case p.q <- job{ev: core.Event{Addr: addr, TSms: timex.NowMs()}, info: &info}:
	default:
		p.dropped.Add(1)
		logx.Warnf("[telemetry] queue full, info for %s/%s/%s dropped", addr.Domain, addr.Kind, addr.Name)
	}
}

// Dropped counts events lost to a full queue.
func (p *Publisher) Dropped() uint32 { return p.dropped.Load() }

// Run publishes queued events until ctx is done, then drains what is left.
func (p *Publisher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case j := <-p.q:
					p.handle(j)
				default:
					return
				}
			}
		case j := <-p.q:
			p.handle(j)
		}
	}
}

func (p *Publisher) handle(j job) {
	d, k, n := j.ev.Addr.Domain, j.ev.Addr.Kind, j.ev.Addr.Name

	if j.info != nil {
		p.publish(capInfo(p.prefix, d, k, n), j.info, true)
		p.publish(capStatus(p.prefix, d, k, n), types.CapabilityStatus{Link: types.LinkDown, TS: j.ev.TSms}, true)
		return
	}

	// 1) Error → retained status:degraded; no value/event published.
	if j.ev.Err != "" {
		p.publish(capStatus(p.prefix, d, k, n),
			types.CapabilityStatus{Link: types.LinkDegraded, TS: j.ev.TSms, Error: j.ev.Err}, true)
		return
	}

	// 2) Success: event vs value
	switch {
	case j.ev.IsEvent && j.ev.EventTag != "":
		p.publish(capEventTagged(p.prefix, d, k, n, j.ev.EventTag), j.ev.Payload, false)
	case j.ev.IsEvent:
		p.publish(capEvent(p.prefix, d, k, n), j.ev.Payload, false)
	default:
		p.publish(capValue(p.prefix, d, k, n), j.ev.Payload, true)
	}
	p.publish(capStatus(p.prefix, d, k, n), types.CapabilityStatus{Link: types.LinkUp, TS: j.ev.TSms}, true)
}

func (p *Publisher) publish(topic string, v any, retained bool) {
	b, err := json.Marshal(v)
	if err != nil {
		logx.Errorf("[telemetry] %s: encode: %v", topic, err)
		return
	}
	if p.c == nil {
		logx.Debugf("[telemetry] %s %s", topic, b)
		return
	}
	t := p.c.Publish(topic, p.qos, retained, b)
	if !t.WaitTimeout(p.timeout) {
		logx.Warnf("[telemetry] %s: publish timed out", topic)
		return
	}
	if err := t.Error(); err != nil {
		logx.Warnf("[telemetry] %s: %v", topic, err)
	}
}

// ServeControls subscribes to capability control topics and routes each
// request to ctl. Payloads are JSON objects; an empty payload means no
// arguments. The outcome is published to .../control/<verb>/reply.
func (p *Publisher) ServeControls(ctl Controller) error {
	if p.c == nil {
		return errNoClient
	}
	t := p.c.Subscribe(ctrlWildcard(p.prefix), p.qos, func(_ mqtt.Client, m mqtt.Message) {
		p.handleControl(ctl, m.Topic(), m.Payload())
	})
	if !t.WaitTimeout(p.timeout) {
		return errcode.Timeout
	}
	return t.Error()
}

func (p *Publisher) handleControl(ctl Controller, topic string, body []byte) {
	reply := topic + "/reply"
	d, k, n, verb, ok := parseCtrl(p.prefix, topic)
	if !ok {
		return
	}
	var payload any
	if len(body) > 0 {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err != nil {
			p.publish(reply, types.ErrorReply{OK: false, Error: string(errcode.InvalidPayload)}, false)
			return
		}
		payload = m
	}
	res, err := ctl.ControlCap(core.CapAddr{Domain: d, Kind: k, Name: n}, verb, payload)
	switch {
	case err != nil:
		p.publish(reply, types.ErrorReply{OK: false, Error: string(errcode.Of(err))}, false)
	case res.OK:
		p.publish(reply, types.OKReply{OK: true}, false)
	default:
		code := res.Error
		if code == "" {
			code = errcode.Busy
		}
		p.publish(reply, types.ErrorReply{OK: false, Error: string(code)}, false)
	}
}
