package rips

import "fmt"

// MAC is an ethernet media access control address.
type MAC [6]byte

// BroadcastMAC is the broadcast MAC address, addressing every device on
// the local network segment.
var BroadcastMAC = MAC{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// MACFromSlice constructs a MAC from a slice of bytes. It panics if the
// slice is not 6 bytes long.
func MACFromSlice(b []byte) MAC {
	if len(b) != len(MAC{}) {
		panic(fmt.Sprintf("rips: MAC from %d-byte slice", len(b)))
	}
	var mac MAC
	copy(mac[:], b)
	return mac
}

// String formats the address with each byte in hexadecimal form,
// separated by colons.
func (m MAC) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
