package sc530aidev

import (
	"cameracode-go/drivers/sc530ai"
	"cameracode-go/services/hal/internal/core"
	"cameracode-go/x/logx"
)

// board maps the driver's sequencing lines onto claimed HAL resources.
// Lines and rails that are not wired are skipped.
type board struct {
	lines map[sc530ai.Line]core.GPIOHandle
	rails map[sc530ai.Rail]core.GPIOHandle
	clk   core.ClockHandle
}

func (b *board) SetLineEnabled(l sc530ai.Line, on bool) {
	h := b.lines[l]
	if h == nil {
		return
	}
	var err error
	if on {
		err = h.ConfigureOutput(false)
	} else {
		err = h.ConfigureInput(core.PullNone)
	}
	if err != nil {
		logx.Warnf("[sc530ai] %s: configure: %v", l, err)
	}
}

func (b *board) SetLine(l sc530ai.Line, high bool) {
	if h := b.lines[l]; h != nil {
		h.Set(high)
	}
}

func (b *board) SetRail(r sc530ai.Rail, on bool) {
	if h := b.rails[r]; h != nil {
		h.Set(on)
	}
}

func (b *board) EnableClock(on bool) {
	if err := b.clk.Enable(on); err != nil {
		logx.Warnf("[sc530ai] mclk enable=%v: %v", on, err)
	}
}

func (b *board) SetClockFrequency(hz uint32) {
	if err := b.clk.SetFrequency(hz); err != nil {
		logx.Warnf("[sc530ai] mclk %d Hz: %v", hz, err)
	}
}
