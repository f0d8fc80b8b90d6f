// Package rips provides zero-copy views over byte buffers holding
// fixed-layout network protocol headers, and a frame receive path that
// routes link-layer payloads to per-protocol listeners.
//
// Every protocol header is represented by a pair of types, one used to
// read fields (for example EthernetPacket) and one used to write them
// (MutableEthernetPacket). Both wrap the caller's byte slice directly;
// no construction, getter, or setter ever copies or reallocates the
// buffer. Constructing a view validates that the buffer is at least as
// long as the protocol's minimum header length, after which every field
// accessor is guaranteed to stay in bounds. Getters and setters only
// index, shift, and mask, with big endian conversion for multi-byte
// integers, so they are cheap enough for per-packet hot paths.
//
// Because a mutable view and an immutable view obtained from it share
// the same bytes, callers must not write through the mutable view while
// reading through the immutable one. The package enforces the length
// invariant; the aliasing discipline is the caller's.
package rips
