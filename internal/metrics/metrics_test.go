// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveConversion(t *testing.T) {
	const label = "metrics-test"

	ObserveConversion(label, 3, false, time.Millisecond)
	ObserveConversion(label, 0, true, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(ConversionsTotal.WithLabelValues(label)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ConversionFailures.WithLabelValues(label)))
	assert.Equal(t, 3.0, testutil.ToFloat64(RecordsDetected.WithLabelValues(label)))
	assert.Equal(t, 1, testutil.CollectAndCount(ConversionDuration))
}
