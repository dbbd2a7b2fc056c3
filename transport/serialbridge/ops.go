package serialbridge

import (
	"encoding/binary"

	"tinygo.org/x/drivers"
)

// I2C is one bus on the bridge.
type I2C struct {
	b *Bridge
}

var _ drivers.I2C = (*I2C)(nil)

// I2C returns the bridge's I2C bus.
func (b *Bridge) I2C() *I2C { return &I2C{b: b} }

// Tx performs a write-then-read transaction with a 7-bit address.
func (c *I2C) Tx(addr uint16, w, r []byte) error {
	if 3+len(w) > maxPayload || len(r) > maxPayload {
		return ErrTooLong
	}
	p := make([]byte, 3+len(w))
	p[0], p[1], p[2] = byte(addr), byte(len(w)), byte(len(r))
	copy(p[3:], w)
	return c.b.do(opI2C, p, r)
}

// Pin is one bridge GPIO.
type Pin struct {
	b *Bridge
	n uint8
}

func (b *Bridge) Pin(n uint8) *Pin { return &Pin{b: b, n: n} }

func (p *Pin) SetOutput(initial bool) error {
	dir := dirOutLow
	if initial {
		dir = dirOutHigh
	}
	return p.b.do(opGPIODir, []byte{p.n, dir}, nil)
}

func (p *Pin) SetInput() error { return p.b.do(opGPIODir, []byte{p.n, dirInput}, nil) }

func (p *Pin) Write(high bool) error {
	return p.b.do(opGPIOWrite, []byte{p.n, boolByte(high)}, nil)
}

func (p *Pin) Read() (bool, error) {
	var r [1]byte
	if err := p.b.do(opGPIORead, []byte{p.n}, r[:]); err != nil {
		return false, err
	}
	return r[0] != 0, nil
}

// Clock is one bridge clock output.
type Clock struct {
	b  *Bridge
	id uint8
}

func (b *Bridge) Clock(id uint8) *Clock { return &Clock{b: b, id: id} }

func (c *Clock) Enable(on bool) error {
	return c.b.do(opClkEnable, []byte{c.id, boolByte(on)}, nil)
}

func (c *Clock) SetFrequency(hz uint32) error {
	var p [5]byte
	p[0] = c.id
	binary.BigEndian.PutUint32(p[1:], hz)
	return c.b.do(opClkFreq, p[:], nil)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
