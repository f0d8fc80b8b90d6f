package rips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPv6ConstructorLengths(t *testing.T) {
	testConstructorLengths(t, IPv6MinLen, func(b []byte) error {
		_, err := NewIPv6Packet(b)
		return err
	})
	testConstructorLengths(t, IPv6MinLen, func(b []byte) error {
		_, err := NewMutableIPv6Packet(b)
		return err
	})
}

func TestIPv6SetGet(t *testing.T) {
	src := IPv6{0x20, 0x01, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0xab, 0xcd}
	dst := IPv6{0x20, 0x01, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0x12, 0x34}

	tests := []struct {
		name     string
		set      func(p MutableIPv6Packet)
		get      func(p IPv6Packet) interface{}
		want     interface{}
		offset   int
		expected []byte
	}{
		{
			"version",
			func(p MutableIPv6Packet) { p.SetVersion(0xf) },
			func(p IPv6Packet) interface{} { return p.Version() },
			uint8(0xf), 0, []byte{0xf0},
		},
		{
			"traffic class",
			func(p MutableIPv6Packet) { p.SetTrafficClass(0xff) },
			func(p IPv6Packet) interface{} { return p.TrafficClass() },
			uint8(0xff), 0, []byte{0x0f, 0xf0},
		},
		{
			"flow label",
			func(p MutableIPv6Packet) { p.SetFlowLabel(0x000fffff) },
			func(p IPv6Packet) interface{} { return p.FlowLabel() },
			uint32(0x000fffff), 1, []byte{0x0f, 0xff, 0xff},
		},
		{
			"payload length",
			func(p MutableIPv6Packet) { p.SetPayloadLength(0xabcd) },
			func(p IPv6Packet) interface{} { return p.PayloadLength() },
			uint16(0xabcd), 4, []byte{0xab, 0xcd},
		},
		{
			"next header",
			func(p MutableIPv6Packet) { p.SetNextHeader(IPProtocol(123)) },
			func(p IPv6Packet) interface{} { return p.NextHeader() },
			IPProtocol(123), 6, []byte{123},
		},
		{
			"hop limit",
			func(p MutableIPv6Packet) { p.SetHopLimit(0x65) },
			func(p IPv6Packet) interface{} { return p.HopLimit() },
			uint8(0x65), 7, []byte{0x65},
		},
		{
			"source",
			func(p MutableIPv6Packet) { p.SetSource(src) },
			func(p IPv6Packet) interface{} { return p.Source() },
			src, 8, src[:],
		},
		{
			"destination",
			func(p MutableIPv6Packet) { p.SetDestination(dst) },
			func(p IPv6Packet) interface{} { return p.Destination() },
			dst, 24, dst[:],
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			backing := make([]byte, 1024)
			packet, err := NewMutableIPv6Packet(backing)
			require.NoError(t, err)

			test.set(packet)
			assert.Equal(t, test.want, test.get(packet.Immutable()))
			assertOnlyBytes(t, backing, test.offset, test.expected)
		})
	}
}

func TestIPv6VersionAndTrafficClassShareByte(t *testing.T) {
	backing := make([]byte, IPv6MinLen)
	packet, err := NewMutableIPv6Packet(backing)
	require.NoError(t, err)

	packet.SetVersion(6)
	packet.SetTrafficClass(0xa5)
	packet.SetFlowLabel(0xbeef)

	immutable := packet.Immutable()
	assert.EqualValues(t, 6, immutable.Version())
	assert.EqualValues(t, 0xa5, immutable.TrafficClass())
	assert.EqualValues(t, 0xbeef, immutable.FlowLabel())

	// rewriting the flow label must not disturb version or class
	packet.SetFlowLabel(0)
	assert.EqualValues(t, 6, immutable.Version())
	assert.EqualValues(t, 0xa5, immutable.TrafficClass())
	assert.Zero(t, immutable.FlowLabel())
}

func TestIPv6GettersAlternatingBits(t *testing.T) {
	backing := make([]byte, IPv6MinLen)
	for i := range backing {
		backing[i] = 0b1010_1010
	}
	packet, err := NewIPv6Packet(backing)
	require.NoError(t, err)

	assert.EqualValues(t, 0b1010, packet.Version())
	assert.EqualValues(t, 0b1010_1010, packet.TrafficClass())
	assert.EqualValues(t, 0b1010_1010_1010_1010_1010, packet.FlowLabel())
	assert.EqualValues(t, 0b1010_1010_1010_1010, packet.PayloadLength())
	assert.EqualValues(t, 0b1010_1010, packet.NextHeader())
	assert.EqualValues(t, 0b1010_1010, packet.HopLimit())
}
