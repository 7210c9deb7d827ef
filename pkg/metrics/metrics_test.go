package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

func TestCollectorCounts(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	collector.RunStarted()
	collector.FaultFired(types.FaultLatency)
	collector.FaultFired(types.FaultError)
	collector.FaultErrored(types.FaultError)
	collector.RunEnded()

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.faultsFired.WithLabelValues("latency")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.faultsFired.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.faultErrors.WithLabelValues("error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.experimentsRunning))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var collector *Collector
	collector.RunStarted()
	collector.FaultFired(types.FaultTimeout)
	collector.FaultErrored(types.FaultTimeout)
	collector.RunEnded()
}
