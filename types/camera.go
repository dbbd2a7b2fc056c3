package types

// ------------------------
// Camera sensor (sc530ai)
// ------------------------

// CameraInfo is the static Info.Detail for a camera capability.
type CameraInfo struct {
	Sensor  string       `json:"sensor"`
	Bus     string       `json:"bus"`
	Addr    uint16       `json:"addr"`
	Format  string       `json:"format"` // e.g. "SBGGR10_1X10"
	Lanes   uint8        `json:"lanes"`
	Modes   []CameraMode `json:"modes"`
	ChipID  uint16       `json:"chip_id"`
	MCLK_Hz uint32       `json:"mclk_hz"`
}

// CameraMode identifies one operating point. Also the "select_mode" payload.
type CameraMode struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	FPS    uint32 `json:"fps"`
	HDR    bool   `json:"hdr"`
}

// Retained value: hal/cap/camera/camera/<name>/value
type CameraValue struct {
	State    string     `json:"state"` // "off" | "on" | "standby" | "streaming"
	Mode     CameraMode `json:"mode"`
	Pending  CameraMode `json:"pending"`
	HTS      uint32     `json:"hts"`
	VTS      uint32     `json:"vts"`
	PixelClk uint32     `json:"pclk"`
	Exposure int        `json:"exposure_lines"`
	Gain     int        `json:"gain"` // 1/16 x
	Channels []uint8    `json:"channels"`
}

// Controls
type CameraPower struct{ On bool }                // verb: "power"
type CameraStandby struct{ On bool }              // verb: "standby"
type CameraReset struct{ Assert bool }            // verb: "reset"
type CameraStream struct{ On bool }               // verb: "stream"
type CameraExposure struct{ Lines int }           // verb: "set_exposure"
type CameraGain struct{ Gain int }                // verb: "set_gain"
type CameraFrameRate struct{ FPS uint32 }         // verb: "set_fps"
type CameraExposureGain struct{ Lines, Gain int } // verb: "set_exposure_gain"
