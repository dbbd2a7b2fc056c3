package sc530ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStreamWritesTableThenEnable(t *testing.T) {
	i2c := newFakeSensor()
	d := newTestDevice(i2c, &fakeBoard{})
	d.PowerOn()

	m, err := d.SelectMode(ModeRequest{Width: 2880, Height: 1620, FPS: 30})
	require.NoError(t, err)
	assert.Equal(t, uint32(3200), m.HTS)
	assert.Equal(t, uint32(1650), m.VTS)
	assert.Equal(t, uint32(158_400_000), m.PixelClk)

	require.NoError(t, d.StartStream())

	want := append(append([]RegVal(nil), regs2880x1620At30...), RegVal{regStream, streamOn})
	assert.Equal(t, want, i2c.takeWrites())
	assert.Equal(t, PowerStreaming, d.State())
	assert.Equal(t, Mode2880x1620At30, d.CurrentMode().ID)
}

func TestStartStreamRequiresPower(t *testing.T) {
	i2c := newFakeSensor()
	d := newTestDevice(i2c, &fakeBoard{})
	assert.ErrorIs(t, d.StartStream(), ErrNotPowered)
	assert.Empty(t, i2c.takeWrites())
}

func TestStartStreamStopsAtFirstBusError(t *testing.T) {
	i2c := newFakeSensor()
	d := newTestDevice(i2c, &fakeBoard{})
	d.PowerOn()
	i2c.failWrite[0x36e9] = true

	require.Error(t, d.StartStream())
	assert.Equal(t, []RegVal{{0x0103, 0x01}, {0x0100, 0x00}}, i2c.takeWrites())
	assert.Equal(t, PowerOn, d.State())
}

func TestSelectModeDefersUntilStartStream(t *testing.T) {
	i2c := newFakeSensor()
	d := newTestDevice(i2c, &fakeBoard{})
	d.PowerOn()
	require.NoError(t, d.StartStream())
	i2c.takeWrites()

	_, err := d.SelectModeID(Mode2880x1620At30HDR)
	require.NoError(t, err)
	assert.Empty(t, i2c.takeWrites(), "selection must not touch the running stream")
	assert.False(t, d.CurrentMode().HDR)
	assert.Equal(t, Mode2880x1620At30HDR, d.PendingMode().ID)

	require.NoError(t, d.StopStream())
	assert.Empty(t, i2c.takeWrites(), "stop is register-silent")
	assert.Equal(t, PowerOn, d.State())

	require.NoError(t, d.StartStream())
	writes := i2c.takeWrites()
	assert.Equal(t, regs2880x1620At30HDR, writes[:len(writes)-1])
	assert.True(t, d.CurrentMode().HDR)
}

func TestSelectModeInvalid(t *testing.T) {
	d := newTestDevice(newFakeSensor(), &fakeBoard{})
	_, err := d.SelectMode(ModeRequest{Width: 2880, Height: 1620, FPS: 25})
	assert.ErrorIs(t, err, ErrInvalidMode)
	_, err = d.SelectModeID(ModeID(42))
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, Mode2880x1620At30, d.PendingMode().ID)
}

func TestSetFrameRate(t *testing.T) {
	i2c := newFakeSensor()
	d := newTestDevice(i2c, &fakeBoard{})
	d.PowerOn()
	require.NoError(t, d.StartStream())
	i2c.takeWrites()

	vts, err := d.SetFrameRate(25)
	require.NoError(t, err)
	assert.Equal(t, uint32(1980), vts)
	assert.Equal(t, uint32(1980), d.CurrentMode().VTS)
	assert.Empty(t, i2c.takeWrites(), "fps override must not rewrite registers")

	// Static table is untouched.
	m, _ := LookupMode(Mode2880x1620At30)
	assert.Equal(t, uint32(1650), m.VTS)

	vts, err = d.SetFrameRate(100_000)
	require.NoError(t, err)
	assert.Equal(t, MinVTS(false), vts)

	_, err = d.SetFrameRate(0)
	assert.ErrorIs(t, err, ErrInvalidParam)
	assert.Equal(t, MinVTS(false), d.CurrentMode().VTS)
}

func TestSetFrameRateHDRFloor(t *testing.T) {
	d := newTestDevice(newFakeSensor(), &fakeBoard{})
	d.PowerOn()
	_, err := d.SelectModeID(Mode2880x1620At30HDR)
	require.NoError(t, err)
	require.NoError(t, d.StartStream())

	vts, err := d.SetFrameRate(1000)
	require.NoError(t, err)
	// 316.8M / 1000 / 3200 = 99, below the HDR floor.
	assert.Equal(t, MinVTS(true), vts)
}
