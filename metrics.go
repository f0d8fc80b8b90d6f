package rips

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "rips"

// receiverMetrics counts how every frame read by a Receiver was
// classified. Frames filtered out on shared media (wrong destination,
// unmatched EtherType) are counted apart from delivered frames, and
// too-short frames - which indicate a transport bug rather than normal
// traffic - apart from both.
type receiverMetrics struct {
	delivered          prometheus.Counter
	tooShort           prometheus.Counter
	wrongDestination   prometheus.Counter
	unmatchedEtherType prometheus.Counter
	listenerErrors     *prometheus.CounterVec
	readErrors         prometheus.Counter
}

func newReceiverMetrics(reg prometheus.Registerer) *receiverMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &receiverMetrics{
		delivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "frames_delivered_total",
			Help:      "Frames admitted, routed and accepted by a listener.",
		}),
		tooShort: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "frames_too_short_total",
			Help:      "Buffers shorter than an ethernet header.",
		}),
		wrongDestination: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "frames_wrong_destination_total",
			Help:      "Frames addressed to neither this receiver nor broadcast.",
		}),
		unmatchedEtherType: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "frames_unmatched_ether_type_total",
			Help:      "Admitted frames whose EtherType has no configured route.",
		}),
		listenerErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "listener_errors_total",
			Help:      "Listener failures by EtherType.",
		}, []string{"ether_type"}),
		readErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "rx",
			Name:      "device_read_errors_total",
			Help:      "Non-timeout errors reading frames from the device.",
		}),
	}
}
