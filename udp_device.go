package rips

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/faern/rips/internal/errors"
)

// A UDPFrameDevice is a FrameDevice created by carrying whole ethernet
// frames in UDP datagrams. UDPFrameDevices are point-to-point - there
// is always exactly one other link-local device - but the frames still
// carry full ethernet addressing, so a receive path on top of one
// behaves exactly as it would on a real segment.
//
// The zero UDPFrameDevice is not a valid UDPFrameDevice. UDPFrameDevices
// are safe for concurrent access.
type UDPFrameDevice struct {
	laddr, raddr *net.UDPAddr
	mtu          int
	conn         *net.UDPConn // nil if down

	mu sync.RWMutex
}

var _ FrameDevice = &UDPFrameDevice{}

// NewUDPFrameDevice creates a new UDPFrameDevice exchanging frames
// between the local UDP address laddr and the remote address raddr.
// The device is down by default.
func NewUDPFrameDevice(laddr, raddr *net.UDPAddr) (*UDPFrameDevice, error) {
	return &UDPFrameDevice{laddr: laddr, raddr: raddr}, nil
}

// BringUp brings dev up. If it is already up, BringUp is a no-op.
func (dev *UDPFrameDevice) BringUp() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.isUp() {
		return nil
	}

	conn, err := net.DialUDP("udp", dev.laddr, dev.raddr)
	if err != nil {
		return errors.Annotate(err, "bring device up")
	}
	dev.conn = conn
	return nil
}

// BringDown brings dev down. If it is already down, BringDown is a no-op.
func (dev *UDPFrameDevice) BringDown() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if !dev.isUp() {
		return nil
	}

	err := dev.conn.Close()
	dev.conn = nil
	return errors.Annotate(err, "bring device down")
}

// IsUp returns true if dev is up.
func (dev *UDPFrameDevice) IsUp() bool {
	dev.mu.RLock()
	up := dev.isUp()
	dev.mu.RUnlock()
	return up
}

func (dev *UDPFrameDevice) isUp() bool {
	return dev.conn != nil
}

// MTU returns dev's maximum payload size, or 0 if no MTU is set.
func (dev *UDPFrameDevice) MTU() int {
	dev.mu.RLock()
	mtu := dev.mtu
	dev.mu.RUnlock()
	return mtu
}

// SetMTU sets dev's maximum payload size. An mtu of 0 unsets it.
func (dev *UDPFrameDevice) SetMTU(mtu int) error {
	dev.mu.Lock()
	dev.mtu = mtu
	dev.mu.Unlock()
	return nil
}

// ReadFrame reads a whole frame into b. Each UDP datagram carries
// exactly one frame; if the frame was larger than len(b), n == len(b)
// and err == io.EOF.
func (dev *UDPFrameDevice) ReadFrame(b []byte) (n int, err error) {
	dev.mu.RLock()
	defer dev.mu.RUnlock()
	if !dev.isUp() {
		return 0, errors.New("read from down device")
	}

	buf := getByteSlice(len(b) + 1)
	defer putByteSlice(buf)
	nn, err := dev.conn.Read(buf)
	if err != nil {
		return 0, errors.Annotate(err, "read from device")
	}
	n = copy(b, buf[:nn])
	if nn > len(b) {
		return n, io.EOF
	}
	return n, nil
}

// WriteFrame writes the whole frame b as one UDP datagram. If an MTU is
// set and the frame's payload exceeds it, the frame is not written and
// an MTU error is returned (see IsMTU).
func (dev *UDPFrameDevice) WriteFrame(b []byte) (n int, err error) {
	dev.mu.RLock()
	defer dev.mu.RUnlock()
	if !dev.isUp() {
		return 0, errors.New("write to down device")
	}
	if dev.mtu != 0 && len(b) > dev.mtu+EthernetMinLen {
		return 0, errors.MTUf("frame payload of %d bytes exceeds device MTU %d", len(b)-EthernetMinLen, dev.mtu)
	}

	n, err = dev.conn.Write(b)
	return n, errors.Annotate(err, "write to device")
}

// SetReadDeadline sets the deadline for future ReadFrame calls.
func (dev *UDPFrameDevice) SetReadDeadline(t time.Time) error {
	dev.mu.RLock()
	defer dev.mu.RUnlock()
	if !dev.isUp() {
		return errors.New("set read deadline on down device")
	}
	return dev.conn.SetReadDeadline(t)
}

// SetWriteDeadline sets the deadline for future WriteFrame calls.
func (dev *UDPFrameDevice) SetWriteDeadline(t time.Time) error {
	dev.mu.RLock()
	defer dev.mu.RUnlock()
	if !dev.isUp() {
		return errors.New("set write deadline on down device")
	}
	return dev.conn.SetWriteDeadline(t)
}

// SetDeadline calls SetReadDeadline and SetWriteDeadline.
func (dev *UDPFrameDevice) SetDeadline(t time.Time) error {
	dev.mu.RLock()
	defer dev.mu.RUnlock()
	if !dev.isUp() {
		return errors.New("set deadline on down device")
	}
	return dev.conn.SetDeadline(t)
}
