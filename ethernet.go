package rips

import (
	"fmt"

	"github.com/faern/rips/internal/field"
)

// EtherType is the 16 bit field of an ethernet frame header indicating
// the protocol encapsulated in the frame's payload. It is an open set;
// values not named here are valid and round-trip unchanged.
type EtherType uint16

const (
	EtherTypeIPv4 EtherType = 0x0800
	EtherTypeARP  EtherType = 0x0806
	EtherTypeIPv6 EtherType = 0x86DD
)

func (et EtherType) String() string {
	switch et {
	case EtherTypeIPv4:
		return "IPv4"
	case EtherTypeARP:
		return "ARP"
	case EtherTypeIPv6:
		return "IPv6"
	default:
		return fmt.Sprintf("EtherType(%#04x)", uint16(et))
	}
}

// EthernetMinLen is the length in bytes of an ethernet frame header.
// The payload starts at this offset.
const EthernetMinLen = 14

// byte offsets of the ethernet header fields
const (
	ethDst  = 0
	ethSrc  = 6
	ethType = 12
)

// An EthernetPacket is a read-only view of an ethernet frame.
type EthernetPacket struct {
	view
}

// NewEthernetPacket creates a view over b. It fails if b is shorter
// than EthernetMinLen.
func NewEthernetPacket(b []byte) (EthernetPacket, error) {
	v, err := newView(b, EthernetMinLen, "ethernet")
	if err != nil {
		return EthernetPacket{}, err
	}
	return EthernetPacket{v}, nil
}

// NewEthernetPacketUnchecked creates a view over b without validating
// its length. It is reserved for hot paths where the length has already
// been validated upstream; field accessors on a too-short buffer panic.
func NewEthernetPacketUnchecked(b []byte) EthernetPacket {
	return EthernetPacket{view{data: b, minLen: EthernetMinLen}}
}

// Destination returns the destination MAC address of the frame.
func (p EthernetPacket) Destination() MAC {
	return MACFromSlice(field.Bytes(p.data, ethDst, 6))
}

// Source returns the source MAC address of the frame.
func (p EthernetPacket) Source() MAC {
	return MACFromSlice(field.Bytes(p.data, ethSrc, 6))
}

// EtherType returns the protocol type of the encapsulated payload.
func (p EthernetPacket) EtherType() EtherType {
	return EtherType(field.Uint16(p.data, ethType))
}

// A MutableEthernetPacket is a read-write view of an ethernet frame.
// Setters mutate the backing buffer in place.
type MutableEthernetPacket struct {
	view
}

// NewMutableEthernetPacket creates a mutable view over b. It fails if b
// is shorter than EthernetMinLen.
func NewMutableEthernetPacket(b []byte) (MutableEthernetPacket, error) {
	v, err := newView(b, EthernetMinLen, "ethernet")
	if err != nil {
		return MutableEthernetPacket{}, err
	}
	return MutableEthernetPacket{v}, nil
}

// NewMutableEthernetPacketUnchecked creates a mutable view over b
// without validating its length. Trusted input only; see
// NewEthernetPacketUnchecked.
func NewMutableEthernetPacketUnchecked(b []byte) MutableEthernetPacket {
	return MutableEthernetPacket{view{data: b, minLen: EthernetMinLen}}
}

// Immutable returns a read-only view over the same bytes, without
// copying. The caller must not write through p while reading through
// the returned view.
func (p MutableEthernetPacket) Immutable() EthernetPacket {
	return EthernetPacket{p.view}
}

// SetDestination sets the destination MAC address of the frame.
func (p MutableEthernetPacket) SetDestination(mac MAC) {
	field.PutBytes(p.data, ethDst, mac[:])
}

// SetSource sets the source MAC address of the frame.
func (p MutableEthernetPacket) SetSource(mac MAC) {
	field.PutBytes(p.data, ethSrc, mac[:])
}

// SetEtherType sets the protocol type of the encapsulated payload.
func (p MutableEthernetPacket) SetEtherType(et EtherType) {
	field.PutUint16(p.data, ethType, uint16(et))
}
