package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"cameracode-go/errcode"
	"cameracode-go/services/hal"
	"cameracode-go/services/hal/hostres"
	"cameracode-go/services/hal/telemetry"
	"cameracode-go/transport/serialbridge"
	"cameracode-go/types"
	"cameracode-go/x/logx"
)

var errUnknownCommand = errors.New("unknown command")

// run brings up the HAL from cfg and executes cmd. Sensors are powered
// down on return unless cmd is "serve" or "stream", which hold them until
// ctx is done.
func run(ctx context.Context, cfg Config, cmd string, out io.Writer) error {
	switch cmd {
	case "detect", "stream", "off", "status", "serve":
	default:
		return fmt.Errorf("%w %q", errUnknownCommand, cmd)
	}

	var backend hostres.Backend
	if cfg.Bridge.DryRun {
		logx.Infof("[ctl] dry run: simulated sensor on %s", cfg.Bridge.Bus)
		backend = dryRunBackend(cfg.Bridge.Bus)
	} else {
		b, err := serialbridge.Open(cfg.Bridge.Port, cfg.Bridge.Baud, cfg.Bridge.Timeout, cfg.Bridge.VID, cfg.Bridge.PID)
		if err != nil {
			return err
		}
		defer b.Close()
		backend = bridgeBackend{b: b, bus: cfg.Bridge.Bus, clocks: cfg.Bridge.Clocks}
	}

	var client telemetry.Client
	if cfg.MQTT.Broker != "" {
		id := cfg.MQTT.ClientID
		if id == "" {
			id = "sc530ai-ctl-" + uuid.NewString()
		}
		c, err := telemetry.Dial(cfg.MQTT.Broker, id)
		if err != nil {
			return fmt.Errorf("mqtt %s: %w", cfg.MQTT.Broker, err)
		}
		defer c.Disconnect(250)
		client = c
	}
	pub := telemetry.New(client, telemetry.Config{Prefix: cfg.MQTT.Prefix, QoS: cfg.MQTT.QoS})
	pubCtx, stopPub := context.WithCancel(context.Background())
	pubDone := make(chan struct{})
	go func() {
		pub.Run(pubCtx)
		close(pubDone)
	}()
	// Let the publisher drain after the HAL has shut down.
	defer func() {
		stopPub()
		<-pubDone
	}()

	svc := hal.New(hostres.New(backend), pub)
	defer svc.Close()
	if err := svc.Apply(ctx, cfg.HAL); err != nil {
		logx.Warnf("[ctl] %v", err)
	}
	ids := svc.SensorIDs()
	if len(ids) == 0 {
		return errcode.UnknownDevice
	}

	switch cmd {
	case "detect":
		var missing []string
		for _, id := range ids {
			s, _ := svc.Sensor(id)
			st := s.Snapshot().State
			fmt.Fprintf(out, "%s: %s\n", id, detectLabel(st))
			if st == "off" {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %v", errcode.NotDetected, missing)
		}
		return nil

	case "status":
		return printStatus(svc, ids, out)

	case "off":
		for _, id := range ids {
			s, _ := svc.Sensor(id)
			s.PowerOff()
		}
		return printStatus(svc, ids, out)

	case "stream":
		for _, id := range ids {
			if err := startStream(svc, id, cfg.Run); err != nil {
				return fmt.Errorf("%s: %w", id, errcode.Wrap("stream", err))
			}
		}
		if err := printStatus(svc, ids, out); err != nil {
			return err
		}
		serveControls(pub, svc, client != nil)
		<-ctx.Done()
		for _, id := range ids {
			s, _ := svc.Sensor(id)
			_ = s.StopStream()
		}
		return nil

	case "serve":
		if client == nil {
			return fmt.Errorf("serve needs mqtt.broker")
		}
		serveControls(pub, svc, true)
		<-ctx.Done()
		return nil
	}
	return nil
}

func detectLabel(state string) string {
	if state == "off" {
		return "not detected"
	}
	return "sc530ai detected"
}

func serveControls(pub *telemetry.Publisher, svc *hal.Service, enabled bool) {
	if !enabled {
		return
	}
	if err := pub.ServeControls(svc); err != nil {
		logx.Warnf("[ctl] control subscription: %v", err)
	}
}

func startStream(svc *hal.Service, id string, rc RunConfig) error {
	s, _ := svc.Sensor(id)
	if rc.Mode != (types.CameraMode{}) {
		if _, err := s.SelectFormat(rc.Mode); err != nil {
			return err
		}
	}
	if err := s.StartStream(); err != nil {
		return err
	}
	if rc.FPS != 0 {
		if _, err := s.SetFrameRate(rc.FPS); err != nil {
			return err
		}
	}
	switch {
	case rc.Exposure != 0 && rc.Gain != 0:
		return s.SetExposureAndGain(rc.Exposure, rc.Gain)
	case rc.Exposure != 0:
		return s.SetExposure(rc.Exposure)
	case rc.Gain != 0:
		return s.SetGain(rc.Gain)
	}
	return nil
}

func printStatus(svc *hal.Service, ids []string, out io.Writer) error {
	status := make(map[string]types.CameraValue, len(ids))
	for _, id := range ids {
		s, _ := svc.Sensor(id)
		status[id] = s.Snapshot()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(status)
}
