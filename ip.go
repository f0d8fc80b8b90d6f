package rips

import (
	"fmt"
	"net"

	"github.com/faern/rips/internal/errors"
)

// IPv4 is an IPv4 address.
type IPv4 [4]byte

// IPv6 is an IPv6 address.
type IPv6 [16]byte

// IPv4FromSlice constructs an IPv4 address from a slice of bytes.
// It panics if the slice is not 4 bytes long.
func IPv4FromSlice(b []byte) IPv4 {
	if len(b) != len(IPv4{}) {
		panic(fmt.Sprintf("rips: IPv4 from %d-byte slice", len(b)))
	}
	var ip IPv4
	copy(ip[:], b)
	return ip
}

// IPv6FromSlice constructs an IPv6 address from a slice of bytes.
// It panics if the slice is not 16 bytes long.
func IPv6FromSlice(b []byte) IPv6 {
	if len(b) != len(IPv6{}) {
		panic(fmt.Sprintf("rips: IPv6 from %d-byte slice", len(b)))
	}
	var ip IPv6
	copy(ip[:], b)
	return ip
}

// ParseIPv4 parses s as an IPv4 address in dotted decimal form.
func ParseIPv4(s string) (IPv4, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil {
		return IPv4{}, errors.Errorf("invalid IPv4 address: %q", s)
	}
	return IPv4FromSlice(ip.To4()), nil
}

// ParseIPv6 parses s as an IPv6 address.
func ParseIPv6(s string) (IPv6, error) {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() != nil {
		return IPv6{}, errors.Errorf("invalid IPv6 address: %q", s)
	}
	return IPv6FromSlice(ip.To16()), nil
}

func (ip IPv4) String() string {
	return net.IP(ip[:]).String()
}

func (ip IPv6) String() string {
	return net.IP(ip[:]).String()
}

// IPProtocol represents the protocol field of an IPv4 packet and the
// next header field of an IPv6 packet. It is an open set; values not
// named here are valid and round-trip unchanged.
type IPProtocol uint8

const (
	IPProtocolICMP IPProtocol = 1
	IPProtocolTCP  IPProtocol = 6
	IPProtocolUDP  IPProtocol = 17
)
