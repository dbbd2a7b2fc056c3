package hostres

import (
	"errors"
	"fmt"
	"sync"

	"tinygo.org/x/drivers"
)

var errNoDevice = errors.New("hostres: no device at address")

// Loopback is an in-memory Backend for host tests and dry runs. Every pin
// and clock id resolves; I2C buses must be attached first.
type Loopback struct {
	mu     sync.Mutex
	buses  map[string]drivers.I2C
	pins   map[int]*LoopPin
	clocks map[string]*LoopClock
	log    []string
}

func NewLoopback() *Loopback {
	return &Loopback{
		buses:  map[string]drivers.I2C{},
		pins:   map[int]*LoopPin{},
		clocks: map[string]*LoopClock{},
	}
}

// AttachI2C makes bus available as id.
func (l *Loopback) AttachI2C(id string, bus drivers.I2C) {
	l.mu.Lock()
	l.buses[id] = bus
	l.mu.Unlock()
}

func (l *Loopback) I2C(id string) (drivers.I2C, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buses[id]
	return b, ok
}

func (l *Loopback) Pin(n int) (Pin, bool) { return l.LoopPin(n), true }

// LoopPin returns the pin model for n, creating it on first use.
func (l *Loopback) LoopPin(n int) *LoopPin {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.pins[n]
	if !ok {
		p = &LoopPin{n: n, l: l}
		l.pins[n] = p
	}
	return p
}

func (l *Loopback) Clock(id string) (Clock, bool) { return l.LoopClock(id), true }

// LoopClock returns the clock model for id, creating it on first use.
func (l *Loopback) LoopClock(id string) *LoopClock {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.clocks[id]
	if !ok {
		c = &LoopClock{id: id, l: l}
		l.clocks[id] = c
	}
	return c
}

// Log returns the pin and clock operations seen so far, in order.
func (l *Loopback) Log() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.log...)
}

func (l *Loopback) record(format string, args ...any) {
	l.mu.Lock()
	l.log = append(l.log, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

type LoopPin struct {
	mu     sync.Mutex
	n      int
	l      *Loopback
	output bool
	level  bool
}

func (p *LoopPin) SetOutput(initial bool) error {
	p.mu.Lock()
	p.output, p.level = true, initial
	p.mu.Unlock()
	p.l.record("gpio%d out=%v", p.n, initial)
	return nil
}

func (p *LoopPin) SetInput() error {
	p.mu.Lock()
	p.output = false
	p.mu.Unlock()
	p.l.record("gpio%d in", p.n)
	return nil
}

func (p *LoopPin) Write(high bool) error {
	p.mu.Lock()
	p.level = high
	p.mu.Unlock()
	p.l.record("gpio%d=%v", p.n, high)
	return nil
}

func (p *LoopPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

// State reports direction and level.
func (p *LoopPin) State() (output, high bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.output, p.level
}

type LoopClock struct {
	mu sync.Mutex
	id string
	l  *Loopback
	on bool
	hz uint32
}

func (c *LoopClock) Enable(on bool) error {
	c.mu.Lock()
	c.on = on
	c.mu.Unlock()
	c.l.record("%s on=%v", c.id, on)
	return nil
}

func (c *LoopClock) SetFrequency(hz uint32) error {
	c.mu.Lock()
	c.hz = hz
	c.mu.Unlock()
	c.l.record("%s hz=%d", c.id, hz)
	return nil
}

func (c *LoopClock) State() (on bool, hz uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.on, c.hz
}

// Regs16 models an I2C target with 16-bit register addresses and 8-bit
// data, such as a CMOS sensor.
type Regs16 struct {
	mu     sync.Mutex
	addr   uint16
	regs   map[uint16]uint8
	writes int
}

func NewRegs16(addr uint16, init map[uint16]uint8) *Regs16 {
	regs := make(map[uint16]uint8, len(init))
	for k, v := range init {
		regs[k] = v
	}
	return &Regs16{addr: addr, regs: regs}
}

func (d *Regs16) Tx(addr uint16, w, r []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if addr != d.addr || len(w) < 2 {
		return errNoDevice
	}
	reg := uint16(w[0])<<8 | uint16(w[1])
	for i, b := range w[2:] {
		d.regs[reg+uint16(i)] = b
		d.writes++
	}
	for i := range r {
		r[i] = d.regs[reg+uint16(i)]
	}
	return nil
}

// Reg returns the current value of reg.
func (d *Regs16) Reg(reg uint16) uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regs[reg]
}

// Writes counts register bytes written since creation.
func (d *Regs16) Writes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes
}
