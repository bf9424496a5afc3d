package metrics

import (
	"time"

	"github.com/chronos-tachyon/grin/internal/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Values of the status label on Operations.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the codec counters of one process.
type Metrics struct {
	Registry *prometheus.Registry

	Operations  *prometheus.CounterVec
	InputBytes  *prometheus.CounterVec
	OutputBytes *prometheus.CounterVec
	Durations   *prometheus.HistogramVec

	textfile string
}

// New registers the codec metrics, named with the metrics.prefix setting, on
// a fresh registry.
func New(conf *config.Conf) *Metrics {
	prefix := conf.String("metrics.prefix", "grin_")

	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "operations_total",
				Help: "Total number of encode/decode operations",
			},
			[]string{"op", "status"},
		),
		InputBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "input_bytes_total",
				Help: "Total number of bytes read by finished operations",
			},
			[]string{"op"},
		),
		OutputBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "output_bytes_total",
				Help: "Total number of bytes written by finished operations",
			},
			[]string{"op"},
		),
		Durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "operation_duration_seconds",
				Help:    "Seconds spent per operation",
				Buckets: []float64{0.001, 0.005, 0.02, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"op"},
		),
		textfile: conf.String("metrics.textfile", ""),
	}

	m.Registry.MustRegister(m.Operations, m.InputBytes, m.OutputBytes, m.Durations)
	return m
}

// Observe records one finished operation.
func (m *Metrics) Observe(op string, in, out int64, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.Operations.WithLabelValues(op, status).Inc()
	m.Durations.WithLabelValues(op).Observe(elapsed.Seconds())
	if err == nil {
		m.InputBytes.WithLabelValues(op).Add(float64(in))
		m.OutputBytes.WithLabelValues(op).Add(float64(out))
	}
}

// WriteTextfile writes every metric to the file named by metrics.textfile, in
// the format read by the node exporter's textfile collector.  It does nothing
// when no file is configured.
func (m *Metrics) WriteTextfile() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.Registry)
}
