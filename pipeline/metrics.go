package pipeline

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// trackLabel formats a track id for use as a Prometheus label value.
func trackLabel(id int) string { return strconv.Itoa(id) }

// Package-level vectors labeled by stream give the periodic decoded-frame
// diagnostic and queue-depth observability a durable, scrapeable home.
var (
	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "transcode",
			Name:      "queue_depth",
			Help:      "Current element count of a pipeline hand-off queue.",
		},
		[]string{"stream", "stage"},
	)

	framesDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transcode",
			Name:      "frames_decoded_total",
			Help:      "Frames produced by a track's Decoder.",
		},
		[]string{"stream", "track"},
	)

	formatChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transcode",
			Name:      "format_changes_total",
			Help:      "FormatChanged events observed per track.",
		},
		[]string{"stream", "track"},
	)

	framesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transcode",
			Name:      "frames_dropped_total",
			Help:      "Frames or packets dropped by a stage.",
		},
		[]string{"stream", "track", "reason"},
	)

	packetsEncoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transcode",
			Name:      "packets_encoded_total",
			Help:      "Packets published to the router per track.",
		},
		[]string{"stream", "track"},
	)
)
