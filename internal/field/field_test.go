package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintBigEndian(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	assert.EqualValues(t, 0x02, Uint8(b, 1))
	assert.EqualValues(t, 0x0203, Uint16(b, 1))
	assert.EqualValues(t, 0x02030405, Uint32(b, 1))
}

func TestPutUintBigEndian(t *testing.T) {
	b := make([]byte, 8)

	PutUint8(b, 0, 0xab)
	assert.Equal(t, []byte{0xab, 0, 0, 0, 0, 0, 0, 0}, b)

	PutUint16(b, 2, 0xbeef)
	assert.Equal(t, []byte{0xab, 0, 0xbe, 0xef, 0, 0, 0, 0}, b)

	PutUint32(b, 4, 0xdeadbeef)
	assert.Equal(t, []byte{0xab, 0, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef}, b)
}

func TestBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}

	got := Bytes(b, 1, 3)
	assert.Equal(t, []byte{2, 3, 4}, got)

	// Bytes aliases the backing buffer
	got[0] = 0xff
	assert.EqualValues(t, 0xff, b[1])

	PutBytes(b, 2, []byte{9, 8})
	assert.Equal(t, []byte{1, 0xff, 9, 8, 5}, b)
}

func TestBits(t *testing.T) {
	b := []byte{0b1011_0110}

	assert.EqualValues(t, 0b1011, Bits(b, 0, 4, 0x0f))
	assert.EqualValues(t, 0b0110, Bits(b, 0, 0, 0x0f))
	assert.EqualValues(t, 0b101, Bits(b, 0, 5, 0b111))
	assert.EqualValues(t, 0b1, Bits(b, 0, 2, 0b1))
}

func TestPutBitsPreservesNeighbours(t *testing.T) {
	b := []byte{0xff}

	PutBits(b, 0, 4, 0x0f, 0b1010)
	assert.EqualValues(t, 0b1010_1111, b[0])

	PutBits(b, 0, 0, 0b11, 0)
	assert.EqualValues(t, 0b1010_1100, b[0])

	// bits of v outside the mask are discarded
	PutBits(b, 0, 2, 0b11, 0xff)
	assert.EqualValues(t, 0b1010_1100, b[0])
}

func TestOutOfRangePanics(t *testing.T) {
	b := make([]byte, 2)

	assert.Panics(t, func() { Uint8(b, 2) })
	assert.Panics(t, func() { Uint16(b, 1) })
	assert.Panics(t, func() { Uint32(b, 0) })
	assert.Panics(t, func() { PutUint16(b, 1, 0) })
	assert.Panics(t, func() { Bytes(b, 1, 2) })
	assert.Panics(t, func() { PutBits(b, 2, 0, 0xff, 0) })
}
