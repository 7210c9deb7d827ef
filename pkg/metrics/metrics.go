package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/invincible-jha/aumai-chaos/pkg/types"
)

// Collector exposes the scheduler's fault counters to a Prometheus
// registry. All methods are nil-safe so the scheduler can run without one.
type Collector struct {
	faultsFired        *prometheus.CounterVec
	faultErrors        *prometheus.CounterVec
	experimentsRunning prometheus.Gauge
}

// NewCollector builds the chaos metric set and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		faultsFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aumai_chaos",
			Name:      "faults_fired_total",
			Help:      "Number of faults whose probability gate fired, by fault kind.",
		}, []string{"kind"}),
		faultErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aumai_chaos",
			Name:      "fault_errors_total",
			Help:      "Number of fired faults that raised a simulated failure, by fault kind.",
		}, []string{"kind"}),
		experimentsRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aumai_chaos",
			Name:      "experiments_running",
			Help:      "Number of experiment runs currently in flight.",
		}),
	}
	reg.MustRegister(c.faultsFired, c.faultErrors, c.experimentsRunning)
	return c
}

// FaultFired counts one gate firing for the given kind
func (c *Collector) FaultFired(kind types.FaultKind) {
	if c == nil {
		return
	}
	c.faultsFired.WithLabelValues(string(kind)).Inc()
}

// FaultErrored counts one simulated failure for the given kind
func (c *Collector) FaultErrored(kind types.FaultKind) {
	if c == nil {
		return
	}
	c.faultErrors.WithLabelValues(string(kind)).Inc()
}

// RunStarted marks one more experiment run in flight
func (c *Collector) RunStarted() {
	if c == nil {
		return
	}
	c.experimentsRunning.Inc()
}

// RunEnded marks one experiment run finished
func (c *Collector) RunEnded() {
	if c == nil {
		return
	}
	c.experimentsRunning.Dec()
}
