package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT * FROM `categories`":           "select",
		"  insert INTO `categories` VALUES (?)": "insert",
		"UPDATE `categories` SET name = ?":      "update",
		"DELETE FROM `categories`":              "delete",
		"BEGIN":                                 "other",
		"":                                      "other",
	}
	for sql, want := range tests {
		assert.Equal(t, want, Operation(sql), sql)
	}
}

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestObserveQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))

	ObserveQuery("DELETE FROM `categories` WHERE category_id = ?", 3*time.Millisecond, OutcomeError)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(QueryDuration, "catalog_sql_query_duration_seconds"), 1)

	start := testutil.ToFloat64(SlowQueries.WithLabelValues("update"))
	ObserveSlowQuery("UPDATE `categories` SET name = ?")
	assert.Equal(t, start+1, testutil.ToFloat64(SlowQueries.WithLabelValues("update")))
}
