// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus collectors for document conversions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settle_convert_conversions_total",
			Help: "Total number of documents converted, by conversion type",
		},
		[]string{"type"},
	)

	ConversionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settle_convert_conversion_failures_total",
			Help: "Conversions that returned a failure report instead of a conversion",
		},
		[]string{"type"},
	)

	UnknownTypeRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settle_convert_unknown_type_total",
			Help: "Conversion requests rejected for an unknown conversion type",
		},
	)

	ConversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "settle_convert_conversion_duration_seconds",
			Help:    "Time spent converting one document",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"type"},
	)

	RecordsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settle_convert_records_detected_total",
			Help: "Course records or medical quantities detected, by conversion type",
		},
		[]string{"type"},
	)
)

// ObserveConversion records one finished conversion.
func ObserveConversion(convType string, records int, failed bool, elapsed time.Duration) {
	ConversionsTotal.WithLabelValues(convType).Inc()
	ConversionDuration.WithLabelValues(convType).Observe(elapsed.Seconds())
	RecordsDetected.WithLabelValues(convType).Add(float64(records))
	if failed {
		ConversionFailures.WithLabelValues(convType).Inc()
	}
}
