package rips

import "github.com/faern/rips/internal/errors"

// A PayloadListener consumes the payload of admitted frames carrying
// one particular EtherType. The payload slice borrows from the frame
// buffer and is only valid for the duration of the call.
//
// An EthernetRx never invokes a listener concurrently with itself from
// a single Recv call, but concurrent Recv calls invoke listeners
// concurrently; a listener shared between goroutines must synchronize
// its own state.
type PayloadListener interface {
	Recv(payload []byte) error
}

// PayloadListenerFunc adapts a function to the PayloadListener
// interface.
type PayloadListenerFunc func(payload []byte) error

func (f PayloadListenerFunc) Recv(payload []byte) error {
	return f(payload)
}

// A Route binds an EtherType to the listener receiving the payloads of
// frames carrying it.
type Route struct {
	EtherType EtherType
	Listener  PayloadListener
}

// An EthernetRx validates and routes inbound ethernet frames: frames
// addressed to its MAC (or broadcast) have their payload delivered to
// the listener registered for the frame's EtherType.
//
// The configuration is fixed at construction and never mutated, so an
// EthernetRx is safe for concurrent use as long as the frame buffers of
// concurrent Recv calls are distinct.
type EthernetRx struct {
	mac    MAC
	routes []Route
}

// NewEthernetRx creates an EthernetRx receiving frames for mac. Routes
// are matched in the order given. Configuring two routes with the same
// EtherType or a route with a nil listener is an error. Zero routes is
// legal; every admitted frame then reports an unmatched EtherType.
func NewEthernetRx(mac MAC, routes ...Route) (*EthernetRx, error) {
	seen := make(map[EtherType]bool, len(routes))
	for _, route := range routes {
		if route.Listener == nil {
			return nil, errors.Errorf("nil listener for %s", route.EtherType)
		}
		if seen[route.EtherType] {
			return nil, errors.Errorf("duplicate route for %s", route.EtherType)
		}
		seen[route.EtherType] = true
	}
	rx := &EthernetRx{
		mac:    mac,
		routes: make([]Route, len(routes)),
	}
	copy(rx.routes, routes)
	return rx, nil
}

// MAC returns the address frames must be destined for to be admitted.
func (rx *EthernetRx) MAC() MAC {
	return rx.mac
}

// Recv validates and routes one frame. The error reports why a frame
// was not delivered: IsTooShort for buffers shorter than an ethernet
// header, IsInvalidDestination for frames addressed elsewhere,
// IsUnmatchedEtherType for admitted frames nobody listens to, and a
// RouteError wrapping the listener's own failure. The first two are
// expected on shared media and non-fatal; no error affects subsequent
// Recv calls.
func (rx *EthernetRx) Recv(frame []byte) error {
	packet, err := NewEthernetPacket(frame)
	if err != nil {
		return err
	}
	destination := packet.Destination()
	if destination != rx.mac && destination != BroadcastMAC {
		return invalidDestinationf(destination)
	}
	etherType := packet.EtherType()
	for _, route := range rx.routes {
		if route.EtherType == etherType {
			if err := route.Listener.Recv(packet.Payload()); err != nil {
				return &RouteError{EtherType: etherType, Err: err}
			}
			return nil
		}
	}
	return unmatchedEtherTypef(etherType)
}
