package rips

import "time"

// A FrameDevice is a handle on a physical or virtual link-layer device
// capable of reading and writing whole ethernet frames, header
// included.
//
// FrameDevices are safe for concurrent access.
type FrameDevice interface {
	// BringUp brings the device up. If it is already up, BringUp is
	// a no-op.
	BringUp() error
	// BringDown brings the device down. If it is already down,
	// BringDown is a no-op.
	BringDown() error
	// IsUp returns true if the device is up.
	IsUp() bool

	// MTU returns the device's maximum payload size in bytes, not
	// counting the ethernet header, or 0 if no MTU is set.
	MTU() int

	// ReadFrame reads a whole frame into b, returning the number of
	// bytes read. If the frame was larger than len(b), n == len(b)
	// and err == io.EOF.
	ReadFrame(b []byte) (n int, err error)
	// WriteFrame writes the whole frame b. If the device has an MTU
	// set and the frame's payload exceeds it, the frame is not
	// written and WriteFrame returns an MTU error (see IsMTU).
	WriteFrame(b []byte) (n int, err error)

	// SetReadDeadline sets the deadline for future ReadFrame calls.
	// If the deadline is reached, ReadFrame fails with a timeout
	// (see IsTimeout) instead of blocking. A zero value for t means
	// reads will not time out.
	SetReadDeadline(t time.Time) error
	// SetWriteDeadline is the write counterpart of SetReadDeadline.
	SetWriteDeadline(t time.Time) error
	// SetDeadline calls SetReadDeadline and SetWriteDeadline.
	SetDeadline(t time.Time) error
}
