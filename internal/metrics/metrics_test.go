package metrics_test

import (
	"testing"

	"github.com/Houeta/staff-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	mtr := metrics.NewMetrics(reg)

	mtr.EmployeesCreated.Inc()
	assert.InDelta(t, 1, testutil.ToFloat64(mtr.EmployeesCreated), 0)

	mtr.DBReady.Set(1)
	assert.InDelta(t, 1, testutil.ToFloat64(mtr.DBReady), 0)
}
