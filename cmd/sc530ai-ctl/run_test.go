package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameracode-go/errcode"
	"cameracode-go/types"
)

func dryRunConfig(addr int) Config {
	return Config{
		Bridge: BridgeConfig{DryRun: true, Bus: "i2c0"},
		MQTT:   MQTTConfig{Prefix: "hal"},
		HAL: types.HALConfig{Devices: []types.HALDevice{{
			ID: "cam0", Type: "sc530ai",
			Params: map[string]any{"bus": "i2c0", "clock": "mclk0", "addr": addr, "reset_pin": 2, "pwdn_pin": 3},
		}}},
	}
}

func TestRunDetect(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), dryRunConfig(0x32), "detect", &out))
	assert.Equal(t, "cam0: sc530ai detected\n", out.String())
}

func TestRunDetectMissing(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), dryRunConfig(0x36), "detect", &out)
	assert.ErrorIs(t, err, errcode.NotDetected)
	assert.Equal(t, "cam0: not detected\n", out.String())
}

func TestRunOff(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), dryRunConfig(0x30), "off", &out))
	var st map[string]types.CameraValue
	require.NoError(t, json.Unmarshal(out.Bytes(), &st))
	assert.Equal(t, "off", st["cam0"].State)
}

func TestRunStream(t *testing.T) {
	cfg := dryRunConfig(0x30)
	cfg.Run = RunConfig{
		Mode:     types.CameraMode{Width: 2880, Height: 1620, FPS: 30, HDR: true},
		Exposure: 10000,
		Gain:     4000,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, "stream", &out))
	var st map[string]types.CameraValue
	require.NoError(t, json.Unmarshal(out.Bytes(), &st))
	v := st["cam0"]
	assert.Equal(t, "streaming", v.State)
	assert.True(t, v.Mode.HDR)
	assert.Equal(t, 10000, v.Exposure)
	assert.Equal(t, 4000, v.Gain)
	assert.Equal(t, []uint8{0, 1}, v.Channels)
}

func TestRunRejects(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), dryRunConfig(0x30), "focus", &out), errUnknownCommand)

	cfg := dryRunConfig(0x30)
	cfg.HAL.Devices = nil
	assert.ErrorIs(t, run(context.Background(), cfg, "status", &out), errcode.UnknownDevice)

	assert.Error(t, run(context.Background(), dryRunConfig(0x30), "serve", &out))
}
