package serialbridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameracode-go/errcode"
)

// fakePort answers each written request frame with reply().
type fakePort struct {
	reqs  [][]byte
	rx    bytes.Buffer
	reply func(op byte, payload []byte) []byte
}

func (f *fakePort) Write(p []byte) (int, error) {
	f.reqs = append(f.reqs, append([]byte(nil), p...))
	if f.reply != nil {
		f.rx.Write(f.reply(p[1], p[3:]))
	}
	return len(p), nil
}

// Read returns 0, nil when empty, like a serial port timing out.
func (f *fakePort) Read(p []byte) (int, error) {
	if f.rx.Len() == 0 {
		return 0, nil
	}
	return f.rx.Read(p)
}

func ok(data ...byte) []byte {
	return append([]byte{replyMagic, statusOK, byte(len(data))}, data...)
}

func TestI2CWriteThenRead(t *testing.T) {
	port := &fakePort{reply: func(op byte, p []byte) []byte {
		if op == opI2C && p[2] == 1 {
			return ok(0x9E)
		}
		return ok()
	}}
	bus := New(port).I2C()

	r := []byte{0}
	require.NoError(t, bus.Tx(0x30, []byte{0x31, 0x07}, r))
	assert.Equal(t, byte(0x9E), r[0])
	assert.Equal(t, []byte{0xA5, opI2C, 5, 0x30, 2, 1, 0x31, 0x07}, port.reqs[0])

	require.NoError(t, bus.Tx(0x30, []byte{0x01, 0x00, 0x01}, nil))
	assert.Equal(t, []byte{0xA5, opI2C, 6, 0x30, 3, 0, 0x01, 0x00, 0x01}, port.reqs[1])
}

func TestStatusErrors(t *testing.T) {
	cases := []struct {
		status byte
		want   error
	}{
		{statusNACK, ErrNACK},
		{statusBadRequest, ErrBadRequest},
		{statusUnsupported, ErrUnsupported},
	}
	for _, c := range cases {
		port := &fakePort{reply: func(byte, []byte) []byte { return []byte{replyMagic, c.status, 0} }}
		err := New(port).I2C().Tx(0x30, []byte{0x31, 0x07}, []byte{0})
		assert.ErrorIs(t, err, c.want)
	}
}

func TestTimeoutWhenNoReply(t *testing.T) {
	err := New(&fakePort{}).Pin(3).Write(true)
	assert.ErrorIs(t, err, errcode.Timeout)
}

func TestSkipsNoiseBeforeReply(t *testing.T) {
	port := &fakePort{reply: func(byte, []byte) []byte {
		return append([]byte{0x00, 0xFF, 0x13}, ok(1)...)
	}}
	high, err := New(port).Pin(5).Read()
	require.NoError(t, err)
	assert.True(t, high)
}

func TestShortReplyIsError(t *testing.T) {
	port := &fakePort{reply: func(byte, []byte) []byte { return ok() }}
	_, err := New(port).Pin(5).Read()
	assert.Error(t, err)
}

func TestGPIOAndClockFrames(t *testing.T) {
	port := &fakePort{reply: func(byte, []byte) []byte { return ok() }}
	b := New(port)

	require.NoError(t, b.Pin(4).SetOutput(false))
	require.NoError(t, b.Pin(4).SetOutput(true))
	require.NoError(t, b.Pin(4).SetInput())
	require.NoError(t, b.Pin(4).Write(true))
	require.NoError(t, b.Clock(0).SetFrequency(27_000_000))
	require.NoError(t, b.Clock(0).Enable(true))

	assert.Equal(t, [][]byte{
		{0xA5, opGPIODir, 2, 4, dirOutLow},
		{0xA5, opGPIODir, 2, 4, dirOutHigh},
		{0xA5, opGPIODir, 2, 4, dirInput},
		{0xA5, opGPIOWrite, 2, 4, 1},
		{0xA5, opClkFreq, 5, 0, 0x01, 0x9B, 0xFC, 0xC0},
		{0xA5, opClkEnable, 2, 0, 1},
	}, port.reqs)
}

func TestPayloadTooLong(t *testing.T) {
	err := New(&fakePort{}).I2C().Tx(0x30, make([]byte, 253), nil)
	assert.ErrorIs(t, err, ErrTooLong)
}
