package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Instruction outcome labels.
const (
	StatusOK        = "ok"
	StatusTransport = "transport_error"
	StatusResponse  = "response_error"
	StatusEncode    = "encode_error"
)

var (
	registerOnce sync.Once

	instructions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inovo",
			Subsystem: "robot",
			Name:      "instructions_total",
			Help:      "Total instructions sent to the runtime.",
		},
		[]string{"robot", "op", "status"},
	)
	instructionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "inovo",
			Subsystem: "robot",
			Name:      "instruction_duration_seconds",
			Help:      "Round-trip time from instruction write to reply line.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"robot", "op", "status"},
	)
	contextDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "inovo",
			Subsystem: "robot",
			Name:      "context_depth",
			Help:      "Currently entered reversible contexts.",
		},
		[]string{"robot"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(instructions, instructionDuration, contextDepth)
	})
}

func RecordInstruction(robot, op, status string, duration time.Duration) {
	RegisterMetrics()
	instructions.WithLabelValues(robot, op, status).Inc()
	instructionDuration.WithLabelValues(robot, op, status).Observe(duration.Seconds())
}

func SetContextDepth(robot string, depth int) {
	RegisterMetrics()
	contextDepth.WithLabelValues(robot).Set(float64(depth))
}
