package sc530ai

import "strconv"

// RegVal is one (register, value) pair of an initialisation table.
type RegVal struct {
	Reg uint16
	Val uint8
}

// BusError reports a failed register transaction.
type BusError struct {
	Op  string // "read" | "write"
	Reg uint16
	Err error
}

func (e *BusError) Error() string {
	return "sc530ai: " + e.Op + " 0x" + strconv.FormatUint(uint64(e.Reg), 16) + ": " + e.Err.Error()
}

func (e *BusError) Unwrap() error { return e.Err }

// I2C 16-bit sub-address operations (address high byte first). Callers hold d.mu.

func (d *Device) readReg(reg uint16) (uint8, error) {
	d.w[0] = byte(reg >> 8)
	d.w[1] = byte(reg)
	if err := d.i2c.Tx(d.addr, d.w[:2], d.r[:1]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return d.r[0], nil
}

func (d *Device) writeReg(reg uint16, val uint8) error {
	d.w[0] = byte(reg >> 8)
	d.w[1] = byte(reg)
	d.w[2] = val
	if err := d.i2c.Tx(d.addr, d.w[:3], nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// writeArray writes regs in order and stops at the first failure.
func (d *Device) writeArray(regs []RegVal) error {
	for _, rv := range regs {
		if err := d.writeReg(rv.Reg, rv.Val); err != nil {
			return err
		}
	}
	return nil
}

// modifyReg is the read-modify-write helper for single-bit controls.
func (d *Device) modifyReg(reg uint16, set, clear uint8) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, (cur|set)&^clear)
}
