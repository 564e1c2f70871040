// Package metrics содержит Prometheus коллекторы сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты бронирования
const (
	BookingCreated  = "created"
	BookingConflict = "conflict"
	BookingFailed   = "failed"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal       *prometheus.CounterVec
	HTTPRequestDuration     *prometheus.HistogramVec
	CalendarRequestsTotal   *prometheus.CounterVec
	CalendarRequestDuration *prometheus.HistogramVec
	SlotsOffered            *prometheus.CounterVec
	BookingsTotal           *prometheus.CounterVec
}

// New регистрирует метрики в переданном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		CalendarRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_requests_total",
			Help:        "Calls to the calendar backend by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		CalendarRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "calendar_request_duration_seconds",
			Help:        "Calendar backend latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"operation"}),

		SlotsOffered: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slots_offered_total",
			Help:        "Free slots returned to callers",
			ConstLabels: constLabels,
		}, []string{"endpoint"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// ObserveHTTP учитывает завершенный HTTP запрос
// Все методы безопасны для nil *Metrics (метрики выключены).
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCalendar учитывает вызов календаря
func (m *Metrics) ObserveCalendar(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.CalendarRequestsTotal.WithLabelValues(operation, result).Inc()
	m.CalendarRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SlotsServed считает выданные эндпоинтом слоты
func (m *Metrics) SlotsServed(endpoint string, n int) {
	if m == nil {
		return
	}
	m.SlotsOffered.WithLabelValues(endpoint).Add(float64(n))
}

// Booking считает результат попытки бронирования
func (m *Metrics) Booking(result string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(result).Inc()
}
