package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/metrics"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.RunStarted("sorting", "bubble")
	r.RunStarted("sorting", "bubble")
	r.RunCompleted("sorting", "bubble", 1500*time.Millisecond)
	r.Checkpoint("sorting", "bubble")
	r.Fault(metrics.FaultAlgorithm)
	r.Fault(metrics.FaultConfiguration)
	r.Fault(metrics.FaultConfiguration)

	want := `
# HELP algostep_runs_started_total Number of runs started, by topic and algorithm.
# TYPE algostep_runs_started_total counter
algostep_runs_started_total{algorithm="bubble",topic="sorting"} 2
# HELP algostep_faults_total Number of faults that forced a reset, by kind.
# TYPE algostep_faults_total counter
algostep_faults_total{kind="algorithm"} 1
algostep_faults_total{kind="configuration"} 2
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(want),
		"algostep_runs_started_total", "algostep_faults_total")
	assert.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "algostep_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
	assert.Panics(t, func() { metrics.MustNewRecorder(reg) })
}

func TestNewRecorder_Unregistered(t *testing.T) {
	r, err := metrics.NewRecorder(nil)
	require.NoError(t, err)
	r.CommandDropped()
}
