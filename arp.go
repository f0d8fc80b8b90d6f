package rips

import (
	"fmt"

	"github.com/faern/rips/internal/field"
)

// HardwareType is the hardware (link layer) type field of an ARP
// packet. It is an open set; values not named here are valid and
// round-trip unchanged.
type HardwareType uint16

// HardwareTypeEthernet is the hardware type of ethernet networks.
const HardwareTypeEthernet HardwareType = 1

// ARPOp is the operation field of an ARP packet. Unrecognized codes are
// valid and round-trip unchanged.
type ARPOp uint16

const (
	ARPOpRequest ARPOp = 1
	ARPOpReply   ARPOp = 2
)

func (op ARPOp) String() string {
	switch op {
	case ARPOpRequest:
		return "request"
	case ARPOpReply:
		return "reply"
	default:
		return fmt.Sprintf("ARPOp(%d)", uint16(op))
	}
}

// ARPMinLen is the length in bytes of an ARP packet carrying ethernet
// and IPv4 addresses.
const ARPMinLen = 28

// byte offsets of the ARP header fields
const (
	arpHardwareType = 0
	arpProtocolType = 2
	arpHardwareLen  = 4
	arpProtocolLen  = 5
	arpOperation    = 6
	arpSenderHW     = 8
	arpSenderProto  = 14
	arpTargetHW     = 18
	arpTargetProto  = 24
)

// An ARPPacket is a read-only view of an ARP packet with ethernet
// hardware addresses and IPv4 protocol addresses.
type ARPPacket struct {
	view
}

// NewARPPacket creates a view over b. It fails if b is shorter than
// ARPMinLen.
func NewARPPacket(b []byte) (ARPPacket, error) {
	v, err := newView(b, ARPMinLen, "ARP")
	if err != nil {
		return ARPPacket{}, err
	}
	return ARPPacket{v}, nil
}

// NewARPPacketUnchecked creates a view over b without validating its
// length. Trusted input only; see NewEthernetPacketUnchecked.
func NewARPPacketUnchecked(b []byte) ARPPacket {
	return ARPPacket{view{data: b, minLen: ARPMinLen}}
}

// HardwareType returns the hardware type of the packet.
func (p ARPPacket) HardwareType() HardwareType {
	return HardwareType(field.Uint16(p.data, arpHardwareType))
}

// ProtocolType returns the protocol type of the packet, encoded the
// same way as an EtherType.
func (p ARPPacket) ProtocolType() EtherType {
	return EtherType(field.Uint16(p.data, arpProtocolType))
}

// HardwareLen returns the length in bytes of a hardware address.
func (p ARPPacket) HardwareLen() uint8 {
	return field.Uint8(p.data, arpHardwareLen)
}

// ProtocolLen returns the length in bytes of a protocol address.
func (p ARPPacket) ProtocolLen() uint8 {
	return field.Uint8(p.data, arpProtocolLen)
}

// Operation returns the ARP operation of the packet.
func (p ARPPacket) Operation() ARPOp {
	return ARPOp(field.Uint16(p.data, arpOperation))
}

// SenderHardwareAddr returns the sender hardware address.
func (p ARPPacket) SenderHardwareAddr() MAC {
	return MACFromSlice(field.Bytes(p.data, arpSenderHW, 6))
}

// SenderProtocolAddr returns the sender protocol address.
func (p ARPPacket) SenderProtocolAddr() IPv4 {
	return IPv4FromSlice(field.Bytes(p.data, arpSenderProto, 4))
}

// TargetHardwareAddr returns the target hardware address.
func (p ARPPacket) TargetHardwareAddr() MAC {
	return MACFromSlice(field.Bytes(p.data, arpTargetHW, 6))
}

// TargetProtocolAddr returns the target protocol address.
func (p ARPPacket) TargetProtocolAddr() IPv4 {
	return IPv4FromSlice(field.Bytes(p.data, arpTargetProto, 4))
}

// A MutableARPPacket is a read-write view of an ARP packet. Setters
// mutate the backing buffer in place.
type MutableARPPacket struct {
	view
}

// NewMutableARPPacket creates a mutable view over b. It fails if b is
// shorter than ARPMinLen.
func NewMutableARPPacket(b []byte) (MutableARPPacket, error) {
	v, err := newView(b, ARPMinLen, "ARP")
	if err != nil {
		return MutableARPPacket{}, err
	}
	return MutableARPPacket{v}, nil
}

// NewMutableARPPacketUnchecked creates a mutable view over b without
// validating its length. Trusted input only; see
// NewEthernetPacketUnchecked.
func NewMutableARPPacketUnchecked(b []byte) MutableARPPacket {
	return MutableARPPacket{view{data: b, minLen: ARPMinLen}}
}

// Immutable returns a read-only view over the same bytes, without
// copying. The caller must not write through p while reading through
// the returned view.
func (p MutableARPPacket) Immutable() ARPPacket {
	return ARPPacket{p.view}
}

// SetIPv4OverEthernet sets the hardware type, protocol type, hardware
// length and protocol length fields to the values of an IPv4 over
// ethernet packet.
func (p MutableARPPacket) SetIPv4OverEthernet() {
	p.SetHardwareType(HardwareTypeEthernet)
	p.SetProtocolType(EtherTypeIPv4)
	p.SetHardwareLen(6)
	p.SetProtocolLen(4)
}

// SetHardwareType sets the hardware type of the packet.
func (p MutableARPPacket) SetHardwareType(ht HardwareType) {
	field.PutUint16(p.data, arpHardwareType, uint16(ht))
}

// SetProtocolType sets the protocol type of the packet.
func (p MutableARPPacket) SetProtocolType(et EtherType) {
	field.PutUint16(p.data, arpProtocolType, uint16(et))
}

// SetHardwareLen sets the length in bytes of a hardware address.
func (p MutableARPPacket) SetHardwareLen(n uint8) {
	field.PutUint8(p.data, arpHardwareLen, n)
}

// SetProtocolLen sets the length in bytes of a protocol address.
func (p MutableARPPacket) SetProtocolLen(n uint8) {
	field.PutUint8(p.data, arpProtocolLen, n)
}

// SetOperation sets the ARP operation of the packet.
func (p MutableARPPacket) SetOperation(op ARPOp) {
	field.PutUint16(p.data, arpOperation, uint16(op))
}

// SetSenderHardwareAddr sets the sender hardware address.
func (p MutableARPPacket) SetSenderHardwareAddr(mac MAC) {
	field.PutBytes(p.data, arpSenderHW, mac[:])
}

// SetSenderProtocolAddr sets the sender protocol address.
func (p MutableARPPacket) SetSenderProtocolAddr(ip IPv4) {
	field.PutBytes(p.data, arpSenderProto, ip[:])
}

// SetTargetHardwareAddr sets the target hardware address.
func (p MutableARPPacket) SetTargetHardwareAddr(mac MAC) {
	field.PutBytes(p.data, arpTargetHW, mac[:])
}

// SetTargetProtocolAddr sets the target protocol address.
func (p MutableARPPacket) SetTargetProtocolAddr(ip IPv4) {
	field.PutBytes(p.data, arpTargetProto, ip[:])
}
