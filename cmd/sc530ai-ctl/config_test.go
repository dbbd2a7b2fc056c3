package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cameracode-go/types"
)

const sampleConfig = `
log:
  level: debug
bridge:
  port: /dev/ttyACM0
  timeout: 250ms
  clocks:
    mclk0: 1
mqtt:
  broker: tcp://localhost:1883
hal:
  devices:
    - id: cam0
      type: sc530ai
      params:
        bus: i2c0
        clock: mclk0
        reset_pin: 2
        pwdn_pin: 3
        rail_pins:
          dvdd: 11
run:
  mode:
    width: 2880
    height: 1620
    fps: 30
    hdr: true
  exposure: 10000
  gain: 4000
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, "/dev/ttyACM0", cfg.Bridge.Port)
	assert.Equal(t, 115200, cfg.Bridge.Baud)
	assert.Equal(t, 250*time.Millisecond, cfg.Bridge.Timeout)
	assert.Equal(t, uint8(1), cfg.Bridge.Clocks["mclk0"])
	assert.Equal(t, "i2c0", cfg.Bridge.Bus)
	assert.Equal(t, "tcp://localhost:1883", cfg.MQTT.Broker)
	assert.Equal(t, "hal", cfg.MQTT.Prefix)

	require.Len(t, cfg.HAL.Devices, 1)
	d := cfg.HAL.Devices[0]
	assert.Equal(t, "cam0", d.ID)
	assert.Equal(t, "sc530ai", d.Type)
	params, ok := d.Params.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mclk0", params["clock"])

	assert.Equal(t, types.CameraMode{Width: 2880, Height: 1620, FPS: 30, HDR: true}, cfg.Run.Mode)
	assert.Equal(t, 10000, cfg.Run.Exposure)
	assert.Equal(t, 4000, cfg.Run.Gain)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
