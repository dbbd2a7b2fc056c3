package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t doneToken) Error() error { return t.err }

type pubRec struct {
	topic    string
	retained bool
	body     string
}

type fakeClient struct {
	mu      sync.Mutex
	pubs    []pubRec
	handler mqtt.MessageHandler
	subErr  error
	pubErr  error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pubs = append(c.pubs, pubRec{topic: topic, retained: retained, body: string(payload.([]byte))})
	return doneToken{err: c.pubErr}
}

func (c *fakeClient) Subscribe(topic string, qos byte, cb mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = cb
	return doneToken{err: c.subErr}
}

func (c *fakeClient) published() []pubRec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]pubRec(nil), c.pubs...)
}

type fakeMsg struct {
	topic   string
	payload []byte
}

func (m fakeMsg) Duplicate() bool   { return false }
func (m fakeMsg) Qos() byte         { return 0 }
func (m fakeMsg) Retained() bool    { return false }
func (m fakeMsg) Topic() string     { return m.topic }
func (m fakeMsg) MessageID() uint16 { return 0 }
func (m fakeMsg) Payload() []byte   { return m.payload }
func (m fakeMsg) Ack()              {}

var cam = core.CapAddr{Domain: "camera", Kind: "camera", Name: "cam0"}

// drain runs the worker over everything queued so far.
func drain(p *Publisher) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Run(ctx)
}

func TestValuePublishesRetainedValueAndStatus(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{})
	require.True(t, p.Emit(core.Event{Addr: cam, TSms: 42, Payload: types.CameraValue{State: "on", Gain: 16}}))
	drain(p)

	pubs := c.published()
	require.Len(t, pubs, 2)
	assert.Equal(t, "hal/camera/camera/cam0/value", pubs[0].topic)
	assert.True(t, pubs[0].retained)
	var v types.CameraValue
	require.NoError(t, json.Unmarshal([]byte(pubs[0].body), &v))
	assert.Equal(t, "on", v.State)
	assert.Equal(t, 16, v.Gain)

	assert.Equal(t, "hal/camera/camera/cam0/status", pubs[1].topic)
	assert.JSONEq(t, `{"link":"up","ts_ms":42}`, pubs[1].body)
}

func TestErrorPublishesDegradedOnly(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{Prefix: "site1"})
	p.Emit(core.Event{Addr: cam, TSms: 7, Err: "io_error"})
	drain(p)

	pubs := c.published()
	require.Len(t, pubs, 1)
	assert.Equal(t, "site1/camera/camera/cam0/status", pubs[0].topic)
	assert.JSONEq(t, `{"link":"degraded","ts_ms":7,"error":"io_error"}`, pubs[0].body)
}

func TestEventsAreNotRetained(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{})
	p.Emit(core.Event{Addr: cam, IsEvent: true, EventTag: "probe", Payload: map[string]int{"id": 0x9E39}})
	p.Emit(core.Event{Addr: cam, IsEvent: true, Payload: "x"})
	drain(p)

	pubs := c.published()
	require.Len(t, pubs, 4)
	assert.Equal(t, "hal/camera/camera/cam0/event/probe", pubs[0].topic)
	assert.False(t, pubs[0].retained)
	assert.Equal(t, "hal/camera/camera/cam0/event", pubs[2].topic)
}

func TestAnnounce(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{})
	p.Announce(cam, types.Info{SchemaVersion: 1, Driver: "sc530ai"})
	drain(p)

	pubs := c.published()
	require.Len(t, pubs, 2)
	assert.Equal(t, "hal/camera/camera/cam0/info", pubs[0].topic)
	assert.JSONEq(t, `{"schema_version":1,"driver":"sc530ai"}`, pubs[0].body)
	assert.Contains(t, pubs[1].body, `"link":"down"`)
}

func TestEmitDropsWhenFull(t *testing.T) {
	p := New(&fakeClient{}, Config{QueueLen: 1})
	assert.True(t, p.Emit(core.Event{Addr: cam}))
	assert.False(t, p.Emit(core.Event{Addr: cam}))
	assert.Equal(t, uint32(1), p.Dropped())
}

func TestNilClientOnlyLogs(t *testing.T) {
	p := New(nil, Config{})
	p.Emit(core.Event{Addr: cam, Payload: types.CameraValue{}})
	drain(p)
	assert.Error(t, p.ServeControls(nil))
}

type recCtl struct {
	addr    core.CapAddr
	verb    string
	payload any
	res     core.EnqueueResult
	err     error
}

func (r *recCtl) ControlCap(addr core.CapAddr, verb string, payload any) (core.EnqueueResult, error) {
	r.addr, r.verb, r.payload = addr, verb, payload
	return r.res, r.err
}

func TestServeControlsRoutesAndReplies(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{})
	ctl := &recCtl{res: core.EnqueueResult{OK: true}}
	require.NoError(t, p.ServeControls(ctl))
	require.NotNil(t, c.handler)

	c.handler(nil, fakeMsg{topic: "hal/camera/camera/cam0/control/set_gain", payload: []byte(`{"gain":64}`)})
	assert.Equal(t, cam, ctl.addr)
	assert.Equal(t, "set_gain", ctl.verb)
	assert.Equal(t, map[string]any{"gain": 64.0}, ctl.payload)

	pubs := c.published()
	require.Len(t, pubs, 1)
	assert.Equal(t, "hal/camera/camera/cam0/control/set_gain/reply", pubs[0].topic)
	assert.JSONEq(t, `{"ok":true}`, pubs[0].body)
}

func TestServeControlsErrors(t *testing.T) {
	c := &fakeClient{}
	p := New(c, Config{})
	ctl := &recCtl{res: core.EnqueueResult{OK: false, Error: errcode.Busy}}
	require.NoError(t, p.ServeControls(ctl))

	c.handler(nil, fakeMsg{topic: "hal/camera/camera/cam0/control/stream", payload: []byte(`not json`)})
	c.handler(nil, fakeMsg{topic: "hal/camera/camera/cam0/control/stream"})
	assert.Nil(t, ctl.payload)
	ctl.err = errcode.UnknownCapability
	c.handler(nil, fakeMsg{topic: "hal/camera/camera/cam9/control/stream"})
	// Malformed control topics are ignored.
	c.handler(nil, fakeMsg{topic: "hal/camera/camera/control/stream"})

	pubs := c.published()
	require.Len(t, pubs, 3)
	assert.JSONEq(t, `{"ok":false,"error":"invalid_payload"}`, pubs[0].body)
	assert.JSONEq(t, `{"ok":false,"error":"busy"}`, pubs[1].body)
	assert.JSONEq(t, `{"ok":false,"error":"unknown_capability"}`, pubs[2].body)
}

func TestServeControlsSubscribeError(t *testing.T) {
	c := &fakeClient{subErr: errors.New("not authorised")}
	p := New(c, Config{})
	assert.EqualError(t, p.ServeControls(&recCtl{}), "not authorised")
}

func TestParseCtrl(t *testing.T) {
	d, k, n, v, ok := parseCtrl("hal", "hal/camera/camera/cam0/control/read")
	require.True(t, ok)
	assert.Equal(t, []string{"camera", "camera", "cam0", "read"}, []string{d, k, n, v})

	for _, topic := range []string{
		"other/camera/camera/cam0/control/read",
		"hal/camera/camera/cam0/value",
		"hal/camera//cam0/control/read",
		"hal/camera/camera/cam0/control/read/reply",
	} {
		_, _, _, _, ok := parseCtrl("hal", topic)
		assert.False(t, ok, topic)
	}
}
