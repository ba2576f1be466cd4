package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "commonhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingAdmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_booking_admissions_total",
			Help: "Accepted bookings by initial status and payment status",
		},
		[]string{"status", "payment_status"},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_booking_admission_failures_total",
			Help: "Booking attempts refused at admission, by reason",
		},
		[]string{"reason"},
	)

	BookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_booking_transitions_total",
			Help: "Booking lifecycle changes after admission",
		},
		[]string{"to"},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_booking_events_published_total",
			Help: "Booking events handed to the publisher",
		},
		[]string{"type", "status"},
	)

	EventsLostTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commonhub_booking_events_lost_total",
			Help: "Booking events that could not be written back to redis",
		},
		[]string{"type"},
	)

	EventQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "commonhub_booking_event_queue_length",
			Help: "Current length of the booking event queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAdmission(status, paymentStatus string) {
	BookingAdmissionsTotal.WithLabelValues(status, paymentStatus).Inc()
}

func RecordAdmissionFailure(reason string) {
	BookingRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordTransition(to string) {
	BookingTransitionsTotal.WithLabelValues(to).Inc()
}

func RecordEventPublished(eventType string, ok bool) {
	status := "success"
	if !ok {
		status = "failed"
	}
	EventsPublishedTotal.WithLabelValues(eventType, status).Inc()
}

func RecordEventLost(eventType string) {
	EventsLostTotal.WithLabelValues(eventType).Inc()
}

func SetEventQueueLength(n int64) {
	EventQueueLength.Set(float64(n))
}
