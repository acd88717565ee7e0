package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bucket_manager"

var (
	StorageOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_operations_total",
		Help:      "Object storage calls by operation and outcome.",
	}, []string{"op", "outcome"})
	Renditions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renditions_total",
		Help:      "Device renditions written, by device profile.",
	}, []string{"device"})
	ConversionFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversion_failures_total",
		Help:      "Conversion runs that stopped on an error, by entry point.",
	}, []string{"mode"})
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "API requests by method, route template and status.",
	}, []string{"method", "route", "status"})
)

var once sync.Once

// Init registers collectors; safe to call more than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(StorageOperations, Renditions, ConversionFailures, HTTPRequests)
	})
}

// RegisterSessionGauge reports count as the number of live API sessions.
func RegisterSessionGauge(count func() int) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Sessions held in the registry, expired ones included until swept.",
	}, func() float64 { return float64(count()) }))
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveStorage(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StorageOperations.WithLabelValues(op, outcome).Inc()
}
