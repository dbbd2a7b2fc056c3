package hostres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
)

func TestI2CIsShared(t *testing.T) {
	lb := NewLoopback()
	lb.AttachI2C("i2c0", NewRegs16(0x30, nil))
	r := New(lb)

	a, err := r.ClaimI2C("cam0", "i2c0")
	require.NoError(t, err)
	b, err := r.ClaimI2C("cam1", "i2c0")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = r.ClaimI2C("cam0", "i2c9")
	assert.ErrorIs(t, err, errcode.UnknownBus)
}

func TestPinOwnership(t *testing.T) {
	r := New(NewLoopback())
	_, err := r.ClaimGPIO("cam0", 4)
	require.NoError(t, err)
	_, err = r.ClaimGPIO("cam1", 4)
	assert.ErrorIs(t, err, errcode.PinInUse)

	// Only the owner can release.
	r.ReleaseGPIO("cam1", 4)
	_, err = r.ClaimGPIO("cam1", 4)
	assert.ErrorIs(t, err, errcode.PinInUse)

	r.ReleaseGPIO("cam0", 4)
	_, err = r.ClaimGPIO("cam1", 4)
	assert.NoError(t, err)
}

func TestClockOwnership(t *testing.T) {
	r := New(NewLoopback())
	c, err := r.ClaimClock("cam0", "mclk0")
	require.NoError(t, err)
	_, err = r.ClaimClock("cam1", "mclk0")
	assert.ErrorIs(t, err, errcode.Busy)

	require.NoError(t, c.SetFrequency(27_000_000))
	require.NoError(t, c.Enable(true))
	r.ReleaseClock("cam0", "mclk0")
	_, err = r.ClaimClock("cam1", "mclk0")
	assert.NoError(t, err)
}

func TestGPIOHandle(t *testing.T) {
	lb := NewLoopback()
	r := New(lb)
	h, err := r.ClaimGPIO("cam0", 7)
	require.NoError(t, err)

	assert.Equal(t, 7, h.Number())
	require.NoError(t, h.ConfigureOutput(false))
	h.Set(true)
	assert.True(t, h.Get())
	h.Toggle()
	assert.False(t, h.Get())
	assert.ErrorIs(t, h.ConfigureInput(core.PullUp), errcode.Unsupported)
	require.NoError(t, h.ConfigureInput(core.PullNone))

	out, _ := lb.LoopPin(7).State()
	assert.False(t, out)
	assert.Equal(t, []string{"gpio7 out=false", "gpio7=true", "gpio7=false", "gpio7 in"}, lb.Log())
}

func TestRegs16(t *testing.T) {
	d := NewRegs16(0x30, map[uint16]uint8{0x3107: 0x9E})
	r := []byte{0}
	require.NoError(t, d.Tx(0x30, []byte{0x31, 0x07}, r))
	assert.Equal(t, uint8(0x9E), r[0])

	require.NoError(t, d.Tx(0x30, []byte{0x01, 0x00, 0x01}, nil))
	assert.Equal(t, uint8(0x01), d.Reg(0x0100))
	assert.Equal(t, 1, d.Writes())

	assert.Error(t, d.Tx(0x32, []byte{0x01, 0x00}, r))
}
