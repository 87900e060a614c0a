package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-коллекторы сервиса
type Metrics struct {
	// Входящие HTTP запросы гейтвея
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Исходящие запросы к ParkingCore
	OutboundRequestsTotal   *prometheus.CounterVec
	OutboundRequestDuration *prometheus.HistogramVec

	// Фоновое обновление бронирований
	SyncRunsTotal       prometheus.Counter
	SyncBookingsUpdated prometheus.Counter
}

// New создает коллекторы и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWith(prometheus.DefaultRegisterer, serviceName)
}

// NewWith создает коллекторы и регистрирует их в переданном реестре
func NewWith(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		OutboundRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "parkingcore_requests_total",
			Help:        "Total number of requests sent to ParkingCore",
			ConstLabels: labels,
		}, []string{"operation", "status"}),

		OutboundRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "parkingcore_request_duration_seconds",
			Help:        "ParkingCore request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		SyncRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_sync_runs_total",
			Help:        "Total number of background booking refresh runs",
			ConstLabels: labels,
		}),

		SyncBookingsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_sync_updates_total",
			Help:        "Total number of cached bookings replaced by the refresh job",
			ConstLabels: labels,
		}),
	}
}
