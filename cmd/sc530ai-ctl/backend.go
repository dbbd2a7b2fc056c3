package main

import (
	"tinygo.org/x/drivers"

	"cameracode-go/drivers/sc530ai"
	"cameracode-go/services/hal/hostres"
	"cameracode-go/transport/serialbridge"
)

// bridgeBackend resolves HAL resource ids to bridge hardware. Pin numbers
// are the bridge's own GPIO numbers.
type bridgeBackend struct {
	b      *serialbridge.Bridge
	bus    string
	clocks map[string]uint8
}

func (x bridgeBackend) I2C(id string) (drivers.I2C, bool) {
	if id != x.bus {
		return nil, false
	}
	return x.b.I2C(), true
}

func (x bridgeBackend) Pin(n int) (hostres.Pin, bool) {
	if n < 0 || n > 255 {
		return nil, false
	}
	return x.b.Pin(uint8(n)), true
}

func (x bridgeBackend) Clock(id string) (hostres.Clock, bool) {
	c, ok := x.clocks[id]
	if !ok {
		return nil, false
	}
	return x.b.Clock(c), true
}

// dryRunBackend simulates an SC530AI at both addresses on bus.
func dryRunBackend(bus string) *hostres.Loopback {
	lb := hostres.NewLoopback()
	ids := map[uint16]uint8{0x3107: sc530ai.ChipID >> 8, 0x3108: sc530ai.ChipID & 0xFF}
	lb.AttachI2C(bus, multiTarget{
		sc530ai.AddressDefault: hostres.NewRegs16(sc530ai.AddressDefault, ids),
		sc530ai.AddressAlt:     hostres.NewRegs16(sc530ai.AddressAlt, ids),
	})
	return lb
}

// multiTarget routes transactions by address.
type multiTarget map[uint16]*hostres.Regs16

func (m multiTarget) Tx(addr uint16, w, r []byte) error {
	t, ok := m[addr]
	if !ok {
		return serialbridge.ErrNACK
	}
	return t.Tx(addr, w, r)
}
