package database

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"meow-notes/query"
)

var (
	metricsOnce sync.Once

	statementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meownotes",
		Subsystem: "db",
		Name:      "statements_total",
		Help:      "Count of executed statements by shape, table and outcome",
	}, []string{"shape", "table", "outcome"})

	statementDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "meownotes",
		Subsystem: "db",
		Name:      "statement_duration_seconds",
		Help:      "Latency distribution of executed statements",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	}, []string{"shape", "table"})
)

func registerMetrics() {
	metricsOnce.Do(func() {
		for _, c := range []prometheus.Collector{statementsTotal, statementDuration} {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}

func observeStatement(stmt query.Statement, err error, took time.Duration) {
	statementsTotal.WithLabelValues(stmt.Shape.String(), stmt.Table, outcome(err)).Inc()
	statementDuration.WithLabelValues(stmt.Shape.String(), stmt.Table).Observe(took.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConstraintViolation):
		return "constraint"
	default:
		return "error"
	}
}
