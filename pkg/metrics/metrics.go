package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	UsersRegistered     prometheus.Counter
	LoginAttempts       *prometheus.CounterVec
	AttributionsTotal   *prometheus.CounterVec
	CommissionsCreated  *prometheus.CounterVec
	CommissionAmount    *prometheus.CounterVec
	PayoutsTotal        *prometheus.CounterVec
	PayoutBatchDuration prometheus.Histogram

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		AttributionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_attributions_total",
				Help: "Total number of referral attributions by account source",
			},
			[]string{"source"}, // organic, referral, ...
		),
		CommissionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commissions_created_total",
				Help: "Total number of commissions created",
			},
			[]string{"tier"}, // 1, 2
		),
		CommissionAmount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_amount_total",
				Help: "Total commission amount created, by tier",
			},
			[]string{"tier"},
		),
		PayoutsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_total",
				Help: "Payout outcomes per batch record",
			},
			[]string{"status"}, // processed, failed
		),
		PayoutBatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payout_batch_duration_seconds",
			Help:    "Payout batch run duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		}),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the actual path

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordUserRegistered increments users registered counter
func (m *Metrics) RecordUserRegistered() {
	m.UsersRegistered.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordAttribution increments attributions counter per account source
func (m *Metrics) RecordAttribution(source string) {
	m.AttributionsTotal.WithLabelValues(source).Inc()
}

// RecordCommission records one created commission
func (m *Metrics) RecordCommission(tier int, amount float64) {
	label := strconv.Itoa(tier)
	m.CommissionsCreated.WithLabelValues(label).Inc()
	m.CommissionAmount.WithLabelValues(label).Add(amount)
}

// RecordPayouts records the outcome counts of one payout batch
func (m *Metrics) RecordPayouts(processed, failed int, duration time.Duration) {
	m.PayoutsTotal.WithLabelValues("processed").Add(float64(processed))
	m.PayoutsTotal.WithLabelValues("failed").Add(float64(failed))
	m.PayoutBatchDuration.Observe(duration.Seconds())
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
