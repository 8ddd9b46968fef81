// Package metrics exposes the process counters served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProgressSaves counts completed document upserts.
	ProgressSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amalan_progress_saves_total",
		Help: "Completed user_progress document upserts.",
	})

	// ProgressSaveFailures counts upserts that were logged and dropped.
	ProgressSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amalan_progress_save_failures_total",
		Help: "Failed user_progress upserts (no retry is attempted).",
	})

	// MessagesSent counts partner messages accepted for delivery.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amalan_messages_sent_total",
		Help: "Partner messages stored.",
	})

	// EventStreams tracks currently open SSE connections.
	EventStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "amalan_event_streams",
		Help: "Open server-sent-event subscriptions.",
	})
)
