package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connected_events_created_total",
		Help: "Total number of events appended to the store.",
	})

	EventsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connected_events_rejected_total",
		Help: "Total number of event submissions rejected by validation.",
	})

	ViewRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connected_view_renders_total",
		Help: "Total number of view snapshot rebuilds, labelled by view.",
	}, []string{"view"})

	FilterOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connected_filter_ops_total",
		Help: "Total number of filter state changes, labelled by operation.",
	}, []string{"op"})

	Gestures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connected_map_gestures_total",
		Help: "Total number of map gestures handled, labelled by type.",
	}, []string{"type"})

	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "connected_ws_clients",
		Help: "Currently connected WebSocket view subscribers.",
	})
)
