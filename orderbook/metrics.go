package orderbook

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a Prometheus collector scoped to a single Engine, trimmed
// down from the teacher's chain-wide metrics.Collector
// (metrics/prometheus.go) to the subsystems a standalone matching core
// actually produces: orders, matching latency, trades, and book depth/
// spread. The liquidation/funding/oracle/websocket/API families in the
// teacher belong to collaborators this spec explicitly keeps external
// (clearinghouse, networking) and have no home here — see DESIGN.md.
type Metrics struct {
	registry *prometheus.Registry

	OrdersTotal     *prometheus.CounterVec
	MatchingLatency prometheus.Histogram
	TradesTotal     prometheus.Counter
	TradeVolume     prometheus.Counter
	OrderbookDepth  *prometheus.GaugeVec
	SpreadTicks     prometheus.Gauge
}

// NewMetrics builds a Metrics bound to its own registry (never the global
// default registry), so an embedding application can run many Engines —
// e.g. one per instrument — without collector name collisions.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.OrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lobcore",
			Subsystem: "orders",
			Name:      "total",
			Help:      "Total number of commands submitted, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	m.MatchingLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lobcore",
		Subsystem: "matching",
		Name:      "latency_seconds",
		Help:      "Wall-clock time to execute one command.",
		Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), // 100ns .. ~420ms
	})

	m.TradesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lobcore",
		Subsystem: "trades",
		Name:      "total",
		Help:      "Total number of fills executed.",
	})

	m.TradeVolume = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lobcore",
		Subsystem: "trades",
		Name:      "volume",
		Help:      "Total traded quantity.",
	})

	m.OrderbookDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "lobcore",
			Subsystem: "orderbook",
			Name:      "depth_levels",
			Help:      "Number of distinct resting price levels.",
		},
		[]string{"side"},
	)

	m.SpreadTicks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "lobcore",
		Subsystem: "orderbook",
		Name:      "spread_ticks",
		Help:      "Best-ask minus best-bid, in price ticks.",
	})

	m.registry.MustRegister(
		m.OrdersTotal, m.MatchingLatency, m.TradesTotal, m.TradeVolume,
		m.OrderbookDepth, m.SpreadTicks,
	)
	return m
}

// Handler exposes this Metrics instance's registry over HTTP, grounded in
// metrics/prometheus.go's Handler() (promhttp.Handler()), scoped to a
// private registry instead of the global default one.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe updates the metrics after one Engine.Execute call: cmd is what
// was submitted, evt is what came back, and elapsed is how long Execute
// took.
func (m *Metrics) Observe(cmd Command, evt Event, elapsed time.Duration) {
	m.MatchingLatency.Observe(elapsed.Seconds())

	var outcome string
	switch e := evt.(type) {
	case Filled:
		outcome = "filled"
		m.recordFills(e.Fills)
	case PartiallyFilled:
		outcome = "partially_filled"
		m.recordFills(e.Fills)
	case Placed:
		outcome = "placed"
	case Canceled:
		outcome = "canceled"
	case Rejected:
		outcome = "rejected_" + string(e.Reason)
	}
	m.OrdersTotal.WithLabelValues(cmd.Kind().String(), outcome).Inc()
}

func (m *Metrics) recordFills(fills []Fill) {
	for _, f := range fills {
		m.TradesTotal.Inc()
		m.TradeVolume.Add(float64(f.Qty))
	}
}

// ObserveDepth refreshes the depth/spread gauges from the current book
// state. Callers typically invoke this on a timer rather than after every
// command, since it is not on the matching hot path.
func (m *Metrics) ObserveDepth(e *Engine) {
	m.OrderbookDepth.WithLabelValues("bid").Set(float64(e.NumBidLevels()))
	m.OrderbookDepth.WithLabelValues("ask").Set(float64(e.NumAskLevels()))
	if spread, ok := e.Spread(); ok {
		m.SpreadTicks.Set(float64(spread))
	}
}
