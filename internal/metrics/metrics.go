package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics owns a Prometheus registry and the collectors the store and the
// HTTP layer write to. Each Metrics is independent.
type Metrics struct {
	registry *prometheus.Registry

	intents             *prometheus.CounterVec
	ordersPlaced        prometheus.Counter
	orderRevenue        prometheus.Counter
	notifications       *prometheus.CounterVec
	notificationsActive prometheus.Gauge
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.intents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatsy",
			Subsystem: "store",
			Name:      "intents_total",
			Help:      "Store intents by name and outcome.",
		},
		[]string{"intent", "outcome"},
	)

	m.ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eatsy",
			Subsystem: "store",
			Name:      "orders_placed_total",
			Help:      "Orders created at checkout.",
		},
	)

	m.orderRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eatsy",
			Subsystem: "store",
			Name:      "order_revenue_total",
			Help:      "Sum of totals of orders created at checkout.",
		},
	)

	m.notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatsy",
			Subsystem: "store",
			Name:      "notifications_total",
			Help:      "Notifications emitted by type.",
		},
		[]string{"type"},
	)

	m.notificationsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "eatsy",
			Subsystem: "store",
			Name:      "notifications_active",
			Help:      "Notifications currently visible.",
		},
	)

	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatsy",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eatsy",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
		},
		[]string{"method", "path"},
	)

	m.registry.MustRegister(
		m.intents,
		m.ordersPlaced,
		m.orderRevenue,
		m.notifications,
		m.notificationsActive,
		m.httpRequests,
		m.httpDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ObserveIntent(intent, outcome string) {
	m.intents.WithLabelValues(intent, outcome).Inc()
}

func (m *Metrics) ObserveOrder(total decimal.Decimal) {
	m.ordersPlaced.Inc()
	m.orderRevenue.Add(total.InexactFloat64())
}

func (m *Metrics) ObserveNotification(typ string) {
	m.notifications.WithLabelValues(typ).Inc()
}

func (m *Metrics) SetActiveNotifications(n int) {
	m.notificationsActive.Set(float64(n))
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
