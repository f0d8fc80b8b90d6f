// Package field implements offset-based access to the fields of
// fixed-layout protocol headers. Multi-byte integers are big-endian
// on the wire. All accessors index the slice directly, so an offset
// past the end of the buffer panics rather than corrupting memory;
// callers are expected to have validated the buffer length up front.
package field

import "encoding/binary"

// Uint8 returns b[off].
func Uint8(b []byte, off int) uint8 {
	return b[off]
}

// Uint16 decodes the two bytes at off using big endian encoding.
func Uint16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// Uint32 decodes the four bytes at off using big endian encoding.
func Uint32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off:])
}

// PutUint8 sets b[off] = v.
func PutUint8(b []byte, off int, v uint8) {
	b[off] = v
}

// PutUint16 encodes v into the two bytes at off using big endian encoding.
func PutUint16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

// PutUint32 encodes v into the four bytes at off using big endian encoding.
func PutUint32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

// Bytes returns b[off : off+n].
func Bytes(b []byte, off, n int) []byte {
	return b[off : off+n]
}

// PutBytes copies p into b starting at off.
func PutBytes(b []byte, off int, p []byte) {
	copy(b[off:off+len(p)], p)
}

// Bits reads a sub-byte field from b[off]: the field occupies the bits
// selected by mask after shifting right by shift.
func Bits(b []byte, off int, shift, mask uint8) uint8 {
	return (b[off] >> shift) & mask
}

// PutBits writes a sub-byte field into b[off] with a masked
// read-modify-write, preserving the bits outside the field.
func PutBits(b []byte, off int, shift, mask, v uint8) {
	b[off] = (v&mask)<<shift | b[off]&^(mask<<shift)
}
