package rips

import "github.com/faern/rips/internal/field"

// IPv6MinLen is the length in bytes of an IPv6 header.
const IPv6MinLen = 40

// byte offsets of the IPv6 header fields
const (
	ipv6VerTCFlow  = 0
	ipv6PayloadLen = 4
	ipv6NextHeader = 6
	ipv6HopLimit   = 7
	ipv6SourceAddr = 8
	ipv6DestAddr   = 24
)

// An IPv6Packet is a read-only view of an IPv6 packet.
type IPv6Packet struct {
	view
}

// NewIPv6Packet creates a view over b. It fails if b is shorter than
// IPv6MinLen.
func NewIPv6Packet(b []byte) (IPv6Packet, error) {
	v, err := newView(b, IPv6MinLen, "IPv6")
	if err != nil {
		return IPv6Packet{}, err
	}
	return IPv6Packet{v}, nil
}

// NewIPv6PacketUnchecked creates a view over b without validating its
// length. Trusted input only; see NewEthernetPacketUnchecked.
func NewIPv6PacketUnchecked(b []byte) IPv6Packet {
	return IPv6Packet{view{data: b, minLen: IPv6MinLen}}
}

// Version returns the IP version field, the high nibble of the first
// header byte.
func (p IPv6Packet) Version() uint8 {
	return field.Bits(p.data, ipv6VerTCFlow, 4, 0x0f)
}

// TrafficClass returns the eight bit traffic class field, which spans
// the low nibble of byte 0 and the high nibble of byte 1.
func (p IPv6Packet) TrafficClass() uint8 {
	return uint8(field.Uint16(p.data, ipv6VerTCFlow) >> 4)
}

// FlowLabel returns the 20 bit flow label field.
func (p IPv6Packet) FlowLabel() uint32 {
	return field.Uint32(p.data, ipv6VerTCFlow) & 0x000fffff
}

// PayloadLength returns the length in bytes of everything following the
// header.
func (p IPv6Packet) PayloadLength() uint16 {
	return field.Uint16(p.data, ipv6PayloadLen)
}

// NextHeader returns the protocol of the encapsulated payload. It is
// encoded the same way as the IPv4 protocol field.
func (p IPv6Packet) NextHeader() IPProtocol {
	return IPProtocol(field.Uint8(p.data, ipv6NextHeader))
}

// HopLimit returns the hop limit field.
func (p IPv6Packet) HopLimit() uint8 {
	return field.Uint8(p.data, ipv6HopLimit)
}

// Source returns the source address of the packet.
func (p IPv6Packet) Source() IPv6 {
	return IPv6FromSlice(field.Bytes(p.data, ipv6SourceAddr, 16))
}

// Destination returns the destination address of the packet.
func (p IPv6Packet) Destination() IPv6 {
	return IPv6FromSlice(field.Bytes(p.data, ipv6DestAddr, 16))
}

// A MutableIPv6Packet is a read-write view of an IPv6 packet. Setters
// mutate the backing buffer in place; setters for sub-byte fields
// preserve the bits of neighboring fields sharing the byte.
type MutableIPv6Packet struct {
	view
}

// NewMutableIPv6Packet creates a mutable view over b. It fails if b is
// shorter than IPv6MinLen.
func NewMutableIPv6Packet(b []byte) (MutableIPv6Packet, error) {
	v, err := newView(b, IPv6MinLen, "IPv6")
	if err != nil {
		return MutableIPv6Packet{}, err
	}
	return MutableIPv6Packet{v}, nil
}

// NewMutableIPv6PacketUnchecked creates a mutable view over b without
// validating its length. Trusted input only; see
// NewEthernetPacketUnchecked.
func NewMutableIPv6PacketUnchecked(b []byte) MutableIPv6Packet {
	return MutableIPv6Packet{view{data: b, minLen: IPv6MinLen}}
}

// Immutable returns a read-only view over the same bytes, without
// copying. The caller must not write through p while reading through
// the returned view.
func (p MutableIPv6Packet) Immutable() IPv6Packet {
	return IPv6Packet{p.view}
}

// SetVersion sets the IP version field, leaving the traffic class bits
// sharing the byte untouched.
func (p MutableIPv6Packet) SetVersion(version uint8) {
	field.PutBits(p.data, ipv6VerTCFlow, 4, 0x0f, version)
}

// SetTrafficClass sets the traffic class field, leaving the version and
// flow label bits untouched.
func (p MutableIPv6Packet) SetTrafficClass(tc uint8) {
	field.PutBits(p.data, ipv6VerTCFlow, 0, 0x0f, tc>>4)
	field.PutBits(p.data, ipv6VerTCFlow+1, 4, 0x0f, tc)
}

// SetFlowLabel sets the 20 bit flow label field, leaving the version
// and traffic class untouched.
func (p MutableIPv6Packet) SetFlowLabel(label uint32) {
	old := field.Uint32(p.data, ipv6VerTCFlow)
	field.PutUint32(p.data, ipv6VerTCFlow, old&0xfff00000|label&0x000fffff)
}

// SetPayloadLength sets the payload length field.
func (p MutableIPv6Packet) SetPayloadLength(n uint16) {
	field.PutUint16(p.data, ipv6PayloadLen, n)
}

// SetNextHeader sets the protocol of the encapsulated payload.
func (p MutableIPv6Packet) SetNextHeader(proto IPProtocol) {
	field.PutUint8(p.data, ipv6NextHeader, uint8(proto))
}

// SetHopLimit sets the hop limit field.
func (p MutableIPv6Packet) SetHopLimit(limit uint8) {
	field.PutUint8(p.data, ipv6HopLimit, limit)
}

// SetSource sets the source address of the packet.
func (p MutableIPv6Packet) SetSource(ip IPv6) {
	field.PutBytes(p.data, ipv6SourceAddr, ip[:])
}

// SetDestination sets the destination address of the packet.
func (p MutableIPv6Packet) SetDestination(ip IPv6) {
	field.PutBytes(p.data, ipv6DestAddr, ip[:])
}
