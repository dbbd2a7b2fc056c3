// Package serialbridge drives a sensor's I2C bus, control GPIOs and
// reference clock through a USB-CDC bridge microcontroller.
//
// Every exchange is one request frame and one reply frame:
//
//	request: 0xA5 op len payload[len]
//	reply:   0x5A status len data[len]
package serialbridge

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"cameracode-go/errcode"
	"cameracode-go/x/logx"
)

const (
	reqMagic   = 0xA5
	replyMagic = 0x5A
	maxPayload = 255
)

// Ops.
const (
	opI2C       byte = 0x01 // addr wlen rlen w[wlen] -> r[rlen]
	opGPIOWrite byte = 0x02 // pin level
	opGPIODir   byte = 0x03 // pin dir
	opGPIORead  byte = 0x04 // pin -> level
	opClkEnable byte = 0x05 // clk on
	opClkFreq   byte = 0x06 // clk hz[4] big-endian
)

// GPIO directions.
const (
	dirInput   byte = 0
	dirOutLow  byte = 1
	dirOutHigh byte = 2
)

// Reply status.
const (
	statusOK          byte = 0
	statusNACK        byte = 1
	statusBadRequest  byte = 2
	statusUnsupported byte = 3
)

var (
	ErrNACK        = errors.New("serialbridge: nack")
	ErrBadRequest  = errors.New("serialbridge: bad request")
	ErrUnsupported = errors.New("serialbridge: unsupported")
	ErrTooLong     = errors.New("serialbridge: payload too long")
)

// Bridge serialises request/reply exchanges over one port.
type Bridge struct {
	mu   sync.Mutex
	port io.ReadWriter
	buf  [3 + maxPayload]byte
}

func New(port io.ReadWriter) *Bridge { return &Bridge{port: port} }

// Open opens a bridge on portName. An empty name selects the first port
// matching vid/pid. Reads give up after timeout.
func Open(portName string, baud int, timeout time.Duration, vid, pid string) (*Bridge, error) {
	if portName == "" {
		var err error
		if portName, err = FindPort(vid, pid); err != nil {
			return nil, err
		}
	}
	p, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("failed to open bridge on %s: %w", portName, err)
	}
	if err := p.SetReadTimeout(timeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}
	logx.Infof("[bridge] opened %s at %d baud", portName, baud)
	return New(p), nil
}

// FindPort returns the first USB serial port with the given ids.
func FindPort(vid, pid string) (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("failed to list serial ports: %w", err)
	}
	for _, p := range ports {
		if p.IsUSB && strings.EqualFold(p.VID, vid) && strings.EqualFold(p.PID, pid) {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("no bridge with vid:pid %s:%s", vid, pid)
}

// Close closes the underlying port when it supports closing.
func (b *Bridge) Close() error {
	if c, ok := b.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// do sends one request and copies the reply data into resp.
func (b *Bridge) do(op byte, payload, resp []byte) error {
	if len(payload) > maxPayload {
		return ErrTooLong
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	f := b.buf[:3+len(payload)]
	f[0], f[1], f[2] = reqMagic, op, byte(len(payload))
	copy(f[3:], payload)
	if _, err := b.port.Write(f); err != nil {
		return err
	}

	// Skip noise until the reply magic.
	hdr := b.buf[:1]
	for {
		if err := b.readFull(hdr); err != nil {
			return err
		}
		if hdr[0] == replyMagic {
			break
		}
	}
	hdr = b.buf[:2]
	if err := b.readFull(hdr); err != nil {
		return err
	}
	status, n := hdr[0], int(hdr[1])
	data := b.buf[:n]
	if err := b.readFull(data); err != nil {
		return err
	}

	switch status {
	case statusOK:
	case statusNACK:
		return ErrNACK
	case statusBadRequest:
		return ErrBadRequest
	case statusUnsupported:
		return ErrUnsupported
	default:
		return fmt.Errorf("serialbridge: status 0x%02x", status)
	}
	if n != len(resp) {
		return fmt.Errorf("serialbridge: op 0x%02x: got %d bytes, want %d", op, n, len(resp))
	}
	copy(resp, data)
	return nil
}

// readFull reads len(p) bytes. A read returning no data is a timeout.
func (b *Bridge) readFull(p []byte) error {
	for got := 0; got < len(p); {
		n, err := b.port.Read(p[got:])
		if err != nil {
			return err
		}
		if n == 0 {
			return errcode.Timeout
		}
		got += n
	}
	return nil
}
