package sc530ai

import "time"

// Settle delays mandated by the power-up timing diagram.
const (
	tRailsToReset  = 100 * time.Microsecond // rails stable -> RESETB/PWDN release
	tResetToMCLK   = 5 * time.Millisecond   // RESETB high -> MCLK on
	tMCLKSettle    = 5 * time.Millisecond   // after MCLK on and after retune
	tStandbySettle = 10 * time.Millisecond  // around the 0x0100 toggle
	tResetPulse    = 1 * time.Millisecond
)

// PowerOn runs the power-up sequence. It is a no-op if already powered.
//
//	PWDN, RESET low; POWER_EN high
//	IOVDD -> DVDD -> AVDD
//	100µs; RESET, PWDN high
//	5ms; MCLK on; 5ms; MCLK 27MHz; 5ms
func (d *Device) PowerOn() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PowerOff {
		return
	}
	b := d.board
	b.SetLineEnabled(LinePowerDown, true)
	b.SetLineEnabled(LineReset, true)
	b.SetLineEnabled(LinePowerEnable, true)
	b.SetLine(LineReset, false)
	b.SetLine(LinePowerDown, false)
	b.SetLine(LinePowerEnable, true)
	b.SetRail(RailIO, true)
	b.SetRail(RailDigital, true)
	b.SetRail(RailAnalog, true)
	d.sleep(tRailsToReset)
	b.SetLine(LineReset, true)
	b.SetLine(LinePowerDown, true)
	d.sleep(tResetToMCLK)
	b.EnableClock(true)
	d.sleep(tMCLKSettle)
	b.SetClockFrequency(MCLKHz)
	d.sleep(tMCLKSettle)
	d.state = PowerOn
	d.debug("sc530ai: power on")
}

// PowerOff runs the power-down sequence, the reverse of PowerOn, and
// releases the control lines. It is safe from any state.
func (d *Device) PowerOff() {
	d.mu.Lock()
	defer d.mu.Unlock()
	b := d.board
	b.SetLineEnabled(LinePowerDown, true)
	b.SetLineEnabled(LineReset, true)
	b.SetLine(LineReset, false)
	b.SetLine(LinePowerDown, false)
	b.EnableClock(false)
	b.SetRail(RailAux, false)
	b.SetRail(RailAnalog, false)
	b.SetRail(RailDigital, false)
	b.SetRail(RailIO, false)
	b.SetLine(LinePowerEnable, false)
	b.SetLineEnabled(LineReset, false)
	b.SetLineEnabled(LinePowerDown, false)
	b.SetLineEnabled(LinePowerEnable, false)
	d.state = PowerOff
	d.debug("sc530ai: power off")
}

// Standby enters (on) or leaves software standby with a read-modify-write of
// the stream register. The lock covers the read, the write and the settle
// delay. On a bus error the state is unchanged.
//
// Leaving standby sets the stream enable bit, so the sensor streams
// afterwards and the state is PowerStreaming.
func (d *Device) Standby(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	if on {
		if err := d.modifyReg(regStream, 0, streamOn); err != nil {
			return err
		}
		d.sleep(tStandbySettle)
		d.state = PowerStandby
		return nil
	}
	d.sleep(tStandbySettle)
	if err := d.modifyReg(regStream, streamOn, 0); err != nil {
		return err
	}
	d.state = PowerStreaming
	return nil
}

// Reset drives RESETB: assert pulls it low, release drives it high.
func (d *Device) Reset(assert bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.board.SetLine(LineReset, !assert)
	d.sleep(tResetPulse)
}
