package sc530aidev

import (
	"context"

	"cameracode-go/drivers/sc530ai"
	"cameracode-go/errcode"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/types"
	"cameracode-go/x/logx"
)

// Params defines wiring and behaviour for one SC530AI instance.
type Params struct {
	Bus   string `mapstructure:"bus"`   // e.g. "i2c0" (required)
	Addr  uint16 `mapstructure:"addr"`  // optional; default sc530ai.AddressDefault
	Clock string `mapstructure:"clock"` // MCLK output, e.g. "mclk0" (required)

	ResetPin     int `mapstructure:"reset_pin"` // RESETB, required
	PowerDownPin int `mapstructure:"pwdn_pin"`  // PWDN, required
	// Optional LDO enable; nil when the supply is always on.
	PowerEnablePin *int `mapstructure:"power_en_pin"`
	// Optional rail enables keyed "iovdd", "dvdd", "avdd", "afvdd".
	RailPins map[string]int `mapstructure:"rail_pins"`

	Name   string           `mapstructure:"name"`   // default: device id
	Domain string           `mapstructure:"domain"` // default: "camera"
	Mode   types.CameraMode `mapstructure:"mode"`   // zero => 2880x1620@30 linear
}

// Builder registration.
func init() { core.RegisterBuilder("sc530ai", builder{}) }

type builder struct{}

func (builder) Build(ctx context.Context, in core.BuilderInput) (core.Device, error) {
	p, err := parseParams(in.Params)
	if err != nil {
		return nil, err
	}
	if p.Bus == "" || p.Clock == "" || p.ResetPin < 0 || p.PowerDownPin < 0 {
		return nil, errcode.InvalidParams
	}
	rails := map[sc530ai.Rail]int{}
	for k, pin := range p.RailPins {
		r, ok := railByName(k)
		if !ok || pin < 0 {
			return nil, errcode.InvalidParams
		}
		rails[r] = pin
	}
	modeID := sc530ai.Mode2880x1620At30
	if p.Mode != (types.CameraMode{}) {
		m, err := sc530ai.FindMode(modeRequest(p.Mode))
		if err != nil {
			return nil, errcode.InvalidParams
		}
		modeID = m.ID
	}
	if p.Name == "" {
		p.Name = in.ID
	}
	if p.Domain == "" {
		p.Domain = "camera"
	}

	c := claims{reg: in.Res.Reg, devID: in.ID}
	i2c, err := in.Res.Reg.ClaimI2C(in.ID, core.ResourceID(p.Bus))
	if err != nil {
		return nil, err
	}
	c.bus = core.ResourceID(p.Bus)

	b := &board{lines: map[sc530ai.Line]core.GPIOHandle{}, rails: map[sc530ai.Rail]core.GPIOHandle{}}
	lines := map[sc530ai.Line]int{sc530ai.LineReset: p.ResetPin, sc530ai.LinePowerDown: p.PowerDownPin}
	if p.PowerEnablePin != nil {
		lines[sc530ai.LinePowerEnable] = *p.PowerEnablePin
	}
	for l, pin := range lines {
		h, err := c.gpio(pin)
		if err != nil {
			c.release()
			return nil, err
		}
		b.lines[l] = h
	}
	for r, pin := range rails {
		h, err := c.gpio(pin)
		if err != nil {
			c.release()
			return nil, err
		}
		// Rails start off; the sequencer switches them.
		if err := h.ConfigureOutput(false); err != nil {
			c.release()
			return nil, err
		}
		b.rails[r] = h
	}
	clk, err := in.Res.Reg.ClaimClock(in.ID, core.ResourceID(p.Clock))
	if err != nil {
		c.release()
		return nil, err
	}
	c.clk = core.ResourceID(p.Clock)
	b.clk = clk

	drv, err := sc530ai.New(i2c, b, sc530ai.Config{
		Address: p.Addr,
		Mode:    modeID,
		Logf:    logx.Debugf,
	})
	if err != nil {
		c.release()
		return nil, errcode.InvalidParams
	}

	return &Device{
		id:     in.ID,
		addr:   core.CapAddr{Domain: p.Domain, Kind: string(types.KindCamera), Name: p.Name},
		res:    in.Res,
		params: p,
		claims: c,
		drv:    drv,
	}, nil
}

func parseParams(v any) (Params, error) {
	switch p := v.(type) {
	case Params:
		return p, nil
	case *Params:
		if p == nil {
			return Params{}, errcode.InvalidParams
		}
		return *p, nil
	case map[string]any:
		var out Params
		if err := core.Decode(p, &out); err != nil {
			return Params{}, errcode.InvalidParams
		}
		return out, nil
	default:
		return Params{}, errcode.InvalidParams
	}
}

func railByName(s string) (sc530ai.Rail, bool) {
	for _, r := range []sc530ai.Rail{sc530ai.RailIO, sc530ai.RailDigital, sc530ai.RailAnalog, sc530ai.RailAux} {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}

// claims tracks what Build took from the registry so it can be undone.
type claims struct {
	reg   core.ResourceRegistry
	devID string
	bus   core.ResourceID
	clk   core.ResourceID
	pins  []int
}

func (c *claims) gpio(pin int) (core.GPIOHandle, error) {
	h, err := c.reg.ClaimGPIO(c.devID, pin)
	if err != nil {
		return nil, err
	}
	c.pins = append(c.pins, pin)
	return h, nil
}

func (c *claims) release() {
	for _, pin := range c.pins {
		c.reg.ReleaseGPIO(c.devID, pin)
	}
	c.pins = nil
	if c.clk != "" {
		c.reg.ReleaseClock(c.devID, c.clk)
		c.clk = ""
	}
	if c.bus != "" {
		c.reg.ReleaseI2C(c.devID, c.bus)
		c.bus = ""
	}
}
