package rips

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	// assumed when the device reports no MTU
	defaultMTU = 1500

	// how often the read loop wakes up to check for a stop request
	readPollInterval = 100 * time.Millisecond
)

// A Receiver drives an EthernetRx from a FrameDevice: a daemon
// goroutine reads frames off the device and hands each one to the
// dispatcher, counting and logging the outcome. The dispatcher itself
// never logs or counts anything; this is the layer that owns
// scheduling and observability.
//
// Receivers are safe for concurrent access.
type Receiver struct {
	dev     FrameDevice
	rx      *EthernetRx
	log     zerolog.Logger
	metrics *receiverMetrics

	running bool
	syncer
}

// A ReceiverOption configures a Receiver.
type ReceiverOption func(*receiverConfig)

type receiverConfig struct {
	log      zerolog.Logger
	registry prometheus.Registerer
}

// WithLogger sets the logger frame outcomes are reported to. The
// default logger discards everything.
func WithLogger(log zerolog.Logger) ReceiverOption {
	return func(c *receiverConfig) {
		c.log = log
	}
}

// WithRegistry sets the prometheus registry the receiver's counters are
// registered with. The default is prometheus.DefaultRegisterer.
func WithRegistry(reg prometheus.Registerer) ReceiverOption {
	return func(c *receiverConfig) {
		c.registry = reg
	}
}

// NewReceiver creates a Receiver reading frames from dev into rx. The
// device must be brought up by the caller; the receiver does not start
// reading until Start is called.
func NewReceiver(dev FrameDevice, rx *EthernetRx, opts ...ReceiverOption) *Receiver {
	cfg := receiverConfig{
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Receiver{
		dev:     dev,
		rx:      rx,
		log:     cfg.log.With().Str("component", "rips-receiver").Logger(),
		metrics: newReceiverMetrics(cfg.registry),
	}
}

// Start spawns the read loop. If the receiver is already started,
// Start is a no-op.
func (r *Receiver) Start() {
	r.Lock()
	defer r.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.SpawnDaemon(r.readLoop)
}

// Stop stops the read loop and waits for it to return. If the receiver
// is not started, Stop is a no-op.
func (r *Receiver) Stop() {
	r.Lock()
	defer r.Unlock()
	if !r.running {
		return
	}
	r.StopDaemons()
	r.running = false
}

func (r *Receiver) readLoop() {
	// keep the buffer between loops so that timeouts don't reallocate
	var buf []byte
	defer func() {
		if buf != nil {
			putByteSlice(buf)
		}
	}()
	for {
		select {
		case <-r.StopChan():
			return
		default:
		}

		mtu := r.dev.MTU()
		if mtu == 0 {
			mtu = defaultMTU
		}
		bufsize := mtu + EthernetMinLen
		if len(buf) < bufsize {
			buf = getByteSlice(bufsize)
		}

		r.dev.SetReadDeadline(time.Now().Add(readPollInterval))
		n, err := r.dev.ReadFrame(buf)
		switch {
		case IsTimeout(err):
			continue
		case err == io.EOF:
			// truncated frame; dispatch what we got
		case err != nil:
			r.metrics.readErrors.Inc()
			r.log.Warn().Err(err).Msg("read frame")
			continue
		}

		r.dispatch(buf[:n])
	}
}

// dispatch hands one frame to the EthernetRx and classifies the result.
func (r *Receiver) dispatch(frame []byte) {
	err := r.rx.Recv(frame)
	switch {
	case err == nil:
		r.metrics.delivered.Inc()
	case IsTooShort(err):
		// not ordinary traffic: the transport handed us a partial frame
		r.metrics.tooShort.Inc()
		r.log.Warn().Int("len", len(frame)).Msg("frame shorter than ethernet header")
	case IsInvalidDestination(err):
		r.metrics.wrongDestination.Inc()
		if mac, ok := InvalidDestinationMAC(err); ok {
			r.log.Debug().Stringer("destination", mac).Msg("frame filtered out")
		}
	case IsUnmatchedEtherType(err):
		r.metrics.unmatchedEtherType.Inc()
		if et, ok := UnmatchedEtherTypeValue(err); ok {
			r.log.Debug().Stringer("ether_type", et).Msg("no route for frame")
		}
	case IsRouteError(err):
		routeErr := err.(*RouteError)
		r.metrics.listenerErrors.WithLabelValues(routeErr.EtherType.String()).Inc()
		r.log.Error().Err(routeErr.Err).Stringer("ether_type", routeErr.EtherType).Msg("listener failed")
	}
}
