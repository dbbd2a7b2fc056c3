package sc530aidev

import (
	"cameracode-go/drivers/sc530ai"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
)

// sensor exposes the driver through the core.Sensor capability groups.
type sensor struct {
	*sc530ai.Device
}

var _ core.Sensor = sensor{}

func (s sensor) SelectFormat(req types.CameraMode) (types.CameraMode, error) {
	m, err := s.SelectMode(modeRequest(req))
	if err != nil {
		return types.CameraMode{}, err
	}
	return cameraMode(m), nil
}

func (s sensor) Snapshot() types.CameraValue {
	cur := s.CurrentMode()
	return types.CameraValue{
		State:    s.State().String(),
		Mode:     cameraMode(cur),
		Pending:  cameraMode(s.PendingMode()),
		HTS:      cur.HTS,
		VTS:      cur.VTS,
		PixelClk: cur.PixelClk,
		Exposure: s.Exposure(),
		Gain:     s.Gain(),
		Channels: s.BusConfig().Channels,
	}
}

func modeRequest(m types.CameraMode) sc530ai.ModeRequest {
	return sc530ai.ModeRequest{Width: m.Width, Height: m.Height, FPS: m.FPS, HDR: m.HDR}
}

// cameraMode reports the live frame rate, which follows VTS.
func cameraMode(m sc530ai.Mode) types.CameraMode {
	fps := m.FPS
	if m.HTS != 0 && m.VTS != 0 {
		fps = m.PixelClk / (m.HTS * m.VTS)
	}
	return types.CameraMode{Width: m.Width, Height: m.Height, FPS: fps, HDR: m.HDR}
}
