package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"cameracode-go/types"
)

// Config is the tool's configuration file.
type Config struct {
	Log    LogConfig       `mapstructure:"log"`
	Bridge BridgeConfig    `mapstructure:"bridge"`
	MQTT   MQTTConfig      `mapstructure:"mqtt"`
	HAL    types.HALConfig `mapstructure:"hal"`
	Run    RunConfig       `mapstructure:"run"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty => stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type BridgeConfig struct {
	Port    string           `mapstructure:"port"` // empty => find by vid/pid
	Baud    int              `mapstructure:"baud"`
	Timeout time.Duration    `mapstructure:"timeout"`
	VID     string           `mapstructure:"vid"`
	PID     string           `mapstructure:"pid"`
	Bus     string           `mapstructure:"bus"`    // resource id of the bridge's I2C bus
	Clocks  map[string]uint8 `mapstructure:"clocks"` // resource id -> bridge clock output
	DryRun  bool             `mapstructure:"dry_run"`
}

type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`    // empty => log only
	ClientID string `mapstructure:"client_id"` // empty => random per run
	Prefix   string `mapstructure:"prefix"`
	QoS      byte   `mapstructure:"qos"`
}

// RunConfig holds the operating point applied by "stream". Zero values
// leave the sensor's setting alone.
type RunConfig struct {
	Mode     types.CameraMode `mapstructure:"mode"`
	Exposure int              `mapstructure:"exposure"`
	Gain     int              `mapstructure:"gain"`
	FPS      uint32           `mapstructure:"fps"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 4)
	v.SetDefault("bridge.baud", 115200)
	v.SetDefault("bridge.timeout", 500*time.Millisecond)
	v.SetDefault("bridge.vid", "2E8A")
	v.SetDefault("bridge.pid", "000A")
	v.SetDefault("bridge.bus", "i2c0")
	v.SetDefault("bridge.clocks", map[string]uint8{"mclk0": 0})
	v.SetDefault("mqtt.prefix", "hal")
}

// loadConfig reads file, or config.yaml from the usual places when file
// is empty. SC530AI_* environment variables override file values.
func loadConfig(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("sc530ai")
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.FromSlash("/etc/sc530ai"))
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".sc530ai"))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config file %s: %w", v.ConfigFileUsed(), err)
	}
	return cfg, nil
}
