// Package metrics holds the Prometheus collectors for the persistence layer.
// Collectors are package level so the GORM logger can observe them without
// an import back into the repositories.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

var (
	QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "catalog",
		Name:      "sql_query_duration_seconds",
		Help:      "Latency of SQL statements issued by the repositories",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"operation", "outcome"})

	SlowQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "sql_slow_queries_total",
		Help:      "SQL statements slower than the configured threshold",
	}, []string{"operation"})
)

// Register registers the collectors on reg (or the default registerer if nil).
// Registering twice is not an error.
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{QueryDuration, SlowQueries} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// ObserveQuery records one statement.
func ObserveQuery(sql string, elapsed time.Duration, outcome string) {
	QueryDuration.WithLabelValues(Operation(sql), outcome).Observe(elapsed.Seconds())
}

// ObserveSlowQuery counts one statement over the slow threshold.
func ObserveSlowQuery(sql string) {
	SlowQueries.WithLabelValues(Operation(sql)).Inc()
}

// Operation is the lower-cased leading keyword of sql: select, insert,
// update, delete, or "other".
func Operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other"
	}
	switch op := strings.ToLower(fields[0]); op {
	case "select", "insert", "update", "delete":
		return op
	default:
		return "other"
	}
}
