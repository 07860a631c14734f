package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hivehook_events_total",
			Help: "TheHive events received, by object type.",
		},
		[]string{"kind"},
	)
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hivehook_notifications_total",
			Help: "Slack delivery attempts by status.",
		},
		[]string{"status"},
	)
	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hivehook_notification_duration_seconds",
			Help:    "Duration of Slack webhook requests.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
	ProcessingFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hivehook_processing_failures_total",
			Help: "Events whose formatting or delivery failed and produced an error notification.",
		},
	)
)
