package rips

import "github.com/faern/rips/internal/field"

// IPv4MinLen is the length in bytes of an IPv4 header without options.
const IPv4MinLen = 20

// Bitmasks for the three bit flags field of an IPv4 header.
const (
	IPv4FlagReserved      uint8 = 0b100
	IPv4FlagDontFragment  uint8 = 0b010
	IPv4FlagMoreFragments uint8 = 0b001
)

// byte offsets of the IPv4 header fields
const (
	ipv4VerIHL     = 0
	ipv4DSCPECN    = 1
	ipv4TotalLen   = 2
	ipv4ID         = 4
	ipv4FlagsFrag  = 6
	ipv4TTL        = 8
	ipv4Protocol   = 9
	ipv4Checksum   = 10
	ipv4SourceAddr = 12
	ipv4DestAddr   = 16
)

// An IPv4Packet is a read-only view of an IPv4 packet.
type IPv4Packet struct {
	view
}

// NewIPv4Packet creates a view over b. It fails if b is shorter than
// IPv4MinLen.
func NewIPv4Packet(b []byte) (IPv4Packet, error) {
	v, err := newView(b, IPv4MinLen, "IPv4")
	if err != nil {
		return IPv4Packet{}, err
	}
	return IPv4Packet{v}, nil
}

// NewIPv4PacketUnchecked creates a view over b without validating its
// length. Trusted input only; see NewEthernetPacketUnchecked.
func NewIPv4PacketUnchecked(b []byte) IPv4Packet {
	return IPv4Packet{view{data: b, minLen: IPv4MinLen}}
}

// Version returns the IP version field, the high nibble of the first
// header byte.
func (p IPv4Packet) Version() uint8 {
	return field.Bits(p.data, ipv4VerIHL, 4, 0x0f)
}

// HeaderLength returns the IHL field: the header length in 32 bit
// words, the low nibble of the first header byte.
func (p IPv4Packet) HeaderLength() uint8 {
	return field.Bits(p.data, ipv4VerIHL, 0, 0x0f)
}

// DSCP returns the six bit differentiated services code point.
func (p IPv4Packet) DSCP() uint8 {
	return field.Bits(p.data, ipv4DSCPECN, 2, 0x3f)
}

// ECN returns the two bit explicit congestion notification field.
func (p IPv4Packet) ECN() uint8 {
	return field.Bits(p.data, ipv4DSCPECN, 0, 0x03)
}

// TotalLength returns the length of the packet in bytes, header and
// payload both.
func (p IPv4Packet) TotalLength() uint16 {
	return field.Uint16(p.data, ipv4TotalLen)
}

// Identification returns the fragment identification field.
func (p IPv4Packet) Identification() uint16 {
	return field.Uint16(p.data, ipv4ID)
}

// Flags returns the three bit flags field. See the IPv4Flag bitmasks.
func (p IPv4Packet) Flags() uint8 {
	return field.Bits(p.data, ipv4FlagsFrag, 5, 0x07)
}

// DontFragment returns true if the "don't fragment" flag is set.
func (p IPv4Packet) DontFragment() bool {
	return p.Flags()&IPv4FlagDontFragment != 0
}

// MoreFragments returns true if the "more fragments" flag is set.
func (p IPv4Packet) MoreFragments() bool {
	return p.Flags()&IPv4FlagMoreFragments != 0
}

// FragmentOffset returns the 13 bit fragment offset field.
func (p IPv4Packet) FragmentOffset() uint16 {
	return field.Uint16(p.data, ipv4FlagsFrag) & 0x1fff
}

// TTL returns the time to live field.
func (p IPv4Packet) TTL() uint8 {
	return field.Uint8(p.data, ipv4TTL)
}

// Protocol returns the protocol of the encapsulated payload.
func (p IPv4Packet) Protocol() IPProtocol {
	return IPProtocol(field.Uint8(p.data, ipv4Protocol))
}

// HeaderChecksum returns the header checksum field. This package only
// gives access to the field; it never computes or verifies checksums.
func (p IPv4Packet) HeaderChecksum() uint16 {
	return field.Uint16(p.data, ipv4Checksum)
}

// Source returns the source address of the packet.
func (p IPv4Packet) Source() IPv4 {
	return IPv4FromSlice(field.Bytes(p.data, ipv4SourceAddr, 4))
}

// Destination returns the destination address of the packet.
func (p IPv4Packet) Destination() IPv4 {
	return IPv4FromSlice(field.Bytes(p.data, ipv4DestAddr, 4))
}

// A MutableIPv4Packet is a read-write view of an IPv4 packet. Setters
// mutate the backing buffer in place; setters for sub-byte fields
// preserve the bits of neighboring fields sharing the byte.
type MutableIPv4Packet struct {
	view
}

// NewMutableIPv4Packet creates a mutable view over b. It fails if b is
// shorter than IPv4MinLen.
func NewMutableIPv4Packet(b []byte) (MutableIPv4Packet, error) {
	v, err := newView(b, IPv4MinLen, "IPv4")
	if err != nil {
		return MutableIPv4Packet{}, err
	}
	return MutableIPv4Packet{v}, nil
}

// NewMutableIPv4PacketUnchecked creates a mutable view over b without
// validating its length. Trusted input only; see
// NewEthernetPacketUnchecked.
func NewMutableIPv4PacketUnchecked(b []byte) MutableIPv4Packet {
	return MutableIPv4Packet{view{data: b, minLen: IPv4MinLen}}
}

// Immutable returns a read-only view over the same bytes, without
// copying. The caller must not write through p while reading through
// the returned view.
func (p MutableIPv4Packet) Immutable() IPv4Packet {
	return IPv4Packet{p.view}
}

// SetVersion sets the IP version field, leaving the IHL nibble
// untouched.
func (p MutableIPv4Packet) SetVersion(version uint8) {
	field.PutBits(p.data, ipv4VerIHL, 4, 0x0f, version)
}

// SetHeaderLength sets the IHL field, leaving the version nibble
// untouched.
func (p MutableIPv4Packet) SetHeaderLength(words uint8) {
	field.PutBits(p.data, ipv4VerIHL, 0, 0x0f, words)
}

// SetDSCP sets the differentiated services code point.
func (p MutableIPv4Packet) SetDSCP(dscp uint8) {
	field.PutBits(p.data, ipv4DSCPECN, 2, 0x3f, dscp)
}

// SetECN sets the explicit congestion notification field.
func (p MutableIPv4Packet) SetECN(ecn uint8) {
	field.PutBits(p.data, ipv4DSCPECN, 0, 0x03, ecn)
}

// SetTotalLength sets the total length field.
func (p MutableIPv4Packet) SetTotalLength(n uint16) {
	field.PutUint16(p.data, ipv4TotalLen, n)
}

// SetIdentification sets the fragment identification field.
func (p MutableIPv4Packet) SetIdentification(id uint16) {
	field.PutUint16(p.data, ipv4ID, id)
}

// SetFlags sets the three bit flags field, leaving the fragment offset
// untouched.
func (p MutableIPv4Packet) SetFlags(flags uint8) {
	field.PutBits(p.data, ipv4FlagsFrag, 5, 0x07, flags)
}

// SetFragmentOffset sets the 13 bit fragment offset field, leaving the
// flags untouched.
func (p MutableIPv4Packet) SetFragmentOffset(off uint16) {
	old := field.Uint16(p.data, ipv4FlagsFrag)
	field.PutUint16(p.data, ipv4FlagsFrag, old&0xe000|off&0x1fff)
}

// SetTTL sets the time to live field.
func (p MutableIPv4Packet) SetTTL(ttl uint8) {
	field.PutUint8(p.data, ipv4TTL, ttl)
}

// SetProtocol sets the protocol of the encapsulated payload.
func (p MutableIPv4Packet) SetProtocol(proto IPProtocol) {
	field.PutUint8(p.data, ipv4Protocol, uint8(proto))
}

// SetHeaderChecksum sets the header checksum field.
func (p MutableIPv4Packet) SetHeaderChecksum(sum uint16) {
	field.PutUint16(p.data, ipv4Checksum, sum)
}

// SetSource sets the source address of the packet.
func (p MutableIPv4Packet) SetSource(ip IPv4) {
	field.PutBytes(p.data, ipv4SourceAddr, ip[:])
}

// SetDestination sets the destination address of the packet.
func (p MutableIPv4Packet) SetDestination(ip IPv4) {
	field.PutBytes(p.data, ipv4DestAddr, ip[:])
}
