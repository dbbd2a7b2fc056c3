package sc530ai

// Line is a sensor control GPIO.
type Line uint8

const (
	LineReset       Line = iota // RESETB, active-low
	LinePowerDown               // PWDN, held low while rails come up
	LinePowerEnable             // external LDO enable
)

func (l Line) String() string {
	switch l {
	case LineReset:
		return "reset"
	case LinePowerDown:
		return "pwdn"
	case LinePowerEnable:
		return "power_en"
	default:
		return "line?"
	}
}

// Rail is a supply domain.
type Rail uint8

const (
	RailIO      Rail = iota // IOVDD 1.8V
	RailDigital             // DVDD 1.2V
	RailAnalog              // AVDD 2.8V
	RailAux                 // AFVDD, unused by this sensor but switched off on teardown
)

func (r Rail) String() string {
	switch r {
	case RailIO:
		return "iovdd"
	case RailDigital:
		return "dvdd"
	case RailAnalog:
		return "avdd"
	case RailAux:
		return "afvdd"
	default:
		return "rail?"
	}
}

// Board is the platform side of power sequencing. Calls have no error
// return: a failed GPIO or regulator operation is not visible to the driver.
type Board interface {
	// SetLineEnabled claims (true) or releases (false) a line as an output.
	SetLineEnabled(l Line, on bool)
	SetLine(l Line, high bool)
	SetRail(r Rail, on bool)
	EnableClock(on bool)
	SetClockFrequency(hz uint32)
}
