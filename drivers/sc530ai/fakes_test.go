package sc530ai

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

var errNACK = errors.New("nack")

// fakeI2C models the 16-bit register file of an SC530AI.
type fakeI2C struct {
	mu     sync.Mutex
	addr   uint16
	regs   map[uint16]uint8
	writes []RegVal
	reads  []uint16
	ops    []string // "r:0x0100" / "w:0x0100=0x01", in bus order

	failRead  map[uint16]bool
	failWrite map[uint16]bool
}

func newFakeSensor() *fakeI2C {
	return &fakeI2C{
		addr: AddressDefault,
		regs: map[uint16]uint8{
			regChipIDH: 0x9E,
			regChipIDL: 0x39,
			regStream:  0x00,
		},
		failRead:  map[uint16]bool{},
		failWrite: map[uint16]bool{},
	}
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if addr != f.addr || len(w) < 2 {
		return errNACK
	}
	reg := uint16(w[0])<<8 | uint16(w[1])
	switch {
	case len(w) == 2 && len(r) == 1:
		if f.failRead[reg] {
			return errNACK
		}
		f.reads = append(f.reads, reg)
		f.ops = append(f.ops, "r:"+hex16(reg))
		r[0] = f.regs[reg]
		return nil
	case len(w) == 3 && len(r) == 0:
		if f.failWrite[reg] {
			return errNACK
		}
		f.writes = append(f.writes, RegVal{reg, w[2]})
		f.ops = append(f.ops, "w:"+hex16(reg)+"="+strconv.FormatUint(uint64(w[2]), 16))
		f.regs[reg] = w[2]
		return nil
	}
	return errNACK
}

func (f *fakeI2C) takeWrites() []RegVal {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.writes
	f.writes = nil
	f.ops = nil
	f.reads = nil
	return out
}

func (f *fakeI2C) opsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ops...)
}

func hex16(v uint16) string { return "0x" + strconv.FormatUint(uint64(v), 16) }

// fakeBoard records board calls and settle delays on one timeline.
type fakeBoard struct {
	mu     sync.Mutex
	events []string
}

func (b *fakeBoard) add(s string) {
	b.mu.Lock()
	b.events = append(b.events, s)
	b.mu.Unlock()
}

func onOff(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

func (b *fakeBoard) SetLineEnabled(l Line, on bool) { b.add("claim " + l.String() + "=" + onOff(on)) }
func (b *fakeBoard) SetLine(l Line, high bool)      { b.add("set " + l.String() + "=" + onOff(high)) }
func (b *fakeBoard) SetRail(r Rail, on bool)        { b.add("rail " + r.String() + "=" + onOff(on)) }
func (b *fakeBoard) EnableClock(on bool)            { b.add("mclk=" + onOff(on)) }
func (b *fakeBoard) SetClockFrequency(hz uint32) {
	b.add("mclk_hz=" + strconv.FormatUint(uint64(hz), 10))
}
func (b *fakeBoard) Sleep(d time.Duration) { b.add("sleep " + d.String()) }

func (b *fakeBoard) take() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}

func newTestDevice(i2c *fakeI2C, b *fakeBoard) *Device {
	d, err := New(i2c, b, Config{Sleep: b.Sleep})
	if err != nil {
		panic(err)
	}
	return d
}
