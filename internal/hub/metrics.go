package hub

import "github.com/prometheus/client_golang/prometheus"

var (
	connectionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "helixd",
			Subsystem: "hub",
			Name:      "connections",
			Help:      "Currently registered viewer connections",
		},
	)

	broadcastsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "helixd",
			Subsystem: "hub",
			Name:      "broadcasts_total",
			Help:      "Total broadcast fan-out passes",
		},
	)

	sendFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "helixd",
			Subsystem: "hub",
			Name:      "send_failures_total",
			Help:      "Viewer sends that failed and led to pruning",
		},
	)
)

func init() {
	prometheus.MustRegister(connectionsGauge, broadcastsTotal, sendFailuresTotal)
}
