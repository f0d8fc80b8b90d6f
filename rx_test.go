package rips

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rxMAC    = MAC{0xff, 0x01, 0x02, 0x03, 0x04, 0x05}
	otherMAC = MAC{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
)

// recordingListener remembers every payload it was handed.
type recordingListener struct {
	payloads [][]byte
}

func (l *recordingListener) Recv(payload []byte) error {
	l.payloads = append(l.payloads, append([]byte(nil), payload...))
	return nil
}

// failingListener always fails with err.
type failingListener struct {
	err error
}

func (l failingListener) Recv([]byte) error {
	return l.err
}

// frameFor builds a minimal frame addressed to dst carrying et and payload.
func frameFor(t *testing.T, dst MAC, et EtherType, payload []byte) []byte {
	t.Helper()
	frame := make([]byte, EthernetMinLen+len(payload))
	packet, err := NewMutableEthernetPacket(frame)
	require.NoError(t, err)
	packet.SetDestination(dst)
	packet.SetEtherType(et)
	copy(packet.Payload(), payload)
	return frame
}

func TestEthernetRxRejectsDuplicateRoutes(t *testing.T) {
	listener := &recordingListener{}
	_, err := NewEthernetRx(rxMAC,
		Route{EtherType: EtherTypeIPv4, Listener: listener},
		Route{EtherType: EtherTypeIPv4, Listener: listener},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate route")
}

func TestEthernetRxRejectsNilListener(t *testing.T) {
	_, err := NewEthernetRx(rxMAC, Route{EtherType: EtherTypeARP})
	require.Error(t, err)
}

func TestEthernetRxTooShort(t *testing.T) {
	rx, err := NewEthernetRx(rxMAC)
	require.NoError(t, err)

	// any buffer shorter than 14 bytes, regardless of content
	for n := 0; n < EthernetMinLen; n++ {
		frame := make([]byte, n)
		for i := range frame {
			frame[i] = 0xff
		}
		err := rx.Recv(frame)
		require.Error(t, err)
		assert.True(t, IsTooShort(err), "length %d", n)
		assert.False(t, IsInvalidDestination(err))
	}
}

func TestEthernetRxZeroRoutes(t *testing.T) {
	rx, err := NewEthernetRx(rxMAC)
	require.NoError(t, err)

	// admitted but nobody listens
	err = rx.Recv(frameFor(t, rxMAC, EtherType(0), nil))
	require.Error(t, err)
	assert.True(t, IsUnmatchedEtherType(err))
	et, ok := UnmatchedEtherTypeValue(err)
	require.True(t, ok)
	assert.Equal(t, EtherType(0), et)
}

func TestEthernetRxAdmission(t *testing.T) {
	rx, err := NewEthernetRx(rxMAC)
	require.NoError(t, err)

	// exact destination match admits
	assert.True(t, IsUnmatchedEtherType(rx.Recv(frameFor(t, rxMAC, EtherType(7), nil))))

	// broadcast admits regardless of the configured address
	assert.True(t, IsUnmatchedEtherType(rx.Recv(frameFor(t, BroadcastMAC, EtherType(7), nil))))

	// anything else is filtered out, and the actual address is reported
	err = rx.Recv(frameFor(t, otherMAC, EtherType(7), nil))
	require.Error(t, err)
	assert.True(t, IsInvalidDestination(err))
	mac, ok := InvalidDestinationMAC(err)
	require.True(t, ok)
	assert.Equal(t, otherMAC, mac)
}

func TestEthernetRxRoutesToMatchingListenerOnly(t *testing.T) {
	ipv4 := &recordingListener{}
	arp := &recordingListener{}
	rx, err := NewEthernetRx(rxMAC,
		Route{EtherType: EtherTypeIPv4, Listener: ipv4},
		Route{EtherType: EtherTypeARP, Listener: arp},
	)
	require.NoError(t, err)

	payload := []byte{1, 2, 3, 4}
	require.NoError(t, rx.Recv(frameFor(t, rxMAC, EtherTypeARP, payload)))

	assert.Empty(t, ipv4.payloads)
	require.Len(t, arp.payloads, 1)
	assert.Equal(t, payload, arp.payloads[0])

	require.NoError(t, rx.Recv(frameFor(t, rxMAC, EtherTypeIPv4, payload)))
	require.Len(t, ipv4.payloads, 1)
	assert.Len(t, arp.payloads, 1)
}

func TestEthernetRxWrapsListenerError(t *testing.T) {
	cause := errors.New("resolver table full")
	rx, err := NewEthernetRx(rxMAC,
		Route{EtherType: EtherTypeARP, Listener: failingListener{err: cause}},
	)
	require.NoError(t, err)

	err = rx.Recv(frameFor(t, rxMAC, EtherTypeARP, nil))
	require.Error(t, err)
	require.True(t, IsRouteError(err))

	// the listener's own error stays recoverable by inspection
	routeErr := err.(*RouteError)
	assert.Equal(t, EtherTypeARP, routeErr.EtherType)
	assert.Same(t, cause, routeErr.Err)
	assert.ErrorIs(t, err, cause)
}

func TestEthernetRxErrorsDoNotStick(t *testing.T) {
	listener := &recordingListener{}
	rx, err := NewEthernetRx(rxMAC,
		Route{EtherType: EtherTypeIPv6, Listener: listener},
	)
	require.NoError(t, err)

	// a run of failures must not affect a subsequent good frame
	require.Error(t, rx.Recv(make([]byte, 3)))
	require.Error(t, rx.Recv(frameFor(t, otherMAC, EtherTypeIPv6, nil)))
	require.Error(t, rx.Recv(frameFor(t, rxMAC, EtherType(0x4242), nil)))
	require.NoError(t, rx.Recv(frameFor(t, rxMAC, EtherTypeIPv6, []byte{9})))
	assert.Len(t, listener.payloads, 1)
}

func TestPayloadListenerFunc(t *testing.T) {
	var got []byte
	rx, err := NewEthernetRx(rxMAC, Route{
		EtherType: EtherTypeIPv4,
		Listener: PayloadListenerFunc(func(payload []byte) error {
			got = payload
			return nil
		}),
	})
	require.NoError(t, err)

	require.NoError(t, rx.Recv(frameFor(t, rxMAC, EtherTypeIPv4, []byte{42})))
	assert.Equal(t, []byte{42}, got)
}
