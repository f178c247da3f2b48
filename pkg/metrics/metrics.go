// Package metrics provides prometheus collectors of the service and the scrape handler.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// cache events
const (
	CacheHit          = "hit"
	CacheStale        = "stale"
	CacheMiss         = "miss"
	CacheRefresh      = "refresh"
	CacheRefreshError = "refresh_error"
)

// Collector records service metrics
type Collector struct {
	cacheEvents    *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpLatency    prometheus.Histogram
	overdueNotices prometheus.Counter
	schedulerRuns  *prometheus.CounterVec
}

// NewCollector makes a collector and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confdesk_cache_events_total",
			Help: "cache lookups and refreshes by cache and event",
		}, []string{"cache", "event"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confdesk_http_requests_total",
			Help: "http requests by method and status code",
		}, []string{"method", "status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "confdesk_http_request_duration_seconds",
			Help:    "http request latency",
			Buckets: prometheus.DefBuckets,
		}),
		overdueNotices: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "confdesk_overdue_notifications_total",
			Help: "overdue review notifications sent to reviewers",
		}),
		schedulerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confdesk_scheduler_runs_total",
			Help: "background job runs by job and result",
		}, []string{"job", "result"}),
	}
	reg.MustRegister(c.cacheEvents, c.httpRequests, c.httpLatency, c.overdueNotices, c.schedulerRuns)
	return c
}

// CacheEvent counts a cache event
func (c *Collector) CacheEvent(cache, event string) {
	if c == nil {
		return
	}
	c.cacheEvents.WithLabelValues(cache, event).Inc()
}

// RecordOverdueNotices counts sent overdue notifications
func (c *Collector) RecordOverdueNotices(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.overdueNotices.Add(float64(n))
}

// RecordJobRun counts a background job run, failed runs are labeled "error"
func (c *Collector) RecordJobRun(job string, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.schedulerRuns.WithLabelValues(job, result).Inc()
}

// Middleware counts requests and observes their latency
func (c *Collector) Middleware(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		c.httpRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		c.httpLatency.Observe(time.Since(st).Seconds())
	})
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer, event streams need Flush
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
