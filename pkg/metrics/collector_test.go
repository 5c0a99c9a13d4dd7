package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hydroini/pkg/catalog"
	"github.com/dmitrymomot/hydroini/pkg/metrics"
	"github.com/dmitrymomot/hydroini/pkg/schema"
)

var _ schema.Observer = (*metrics.Collector)(nil)

func TestCollector_ObserveValidation(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	c := metrics.NewCollector(metrics.WithRegistry(registry))
	assert.Same(t, registry, c.Registry())

	c.ObserveValidation("Weir", 0, time.Millisecond)
	c.ObserveValidation("Weir", 2, time.Millisecond)
	c.ObserveValidation("Pump", 1, time.Millisecond)

	records, err := registry.Gather()
	require.NoError(t, err)
	assert.Len(t, records, 3, "files_total has no series yet")

	expected := `
# HELP hydroini_validation_violations_total Total number of structural violations
# TYPE hydroini_validation_violations_total counter
hydroini_validation_violations_total{record_type="Pump"} 1
hydroini_validation_violations_total{record_type="Weir"} 2
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "hydroini_validation_violations_total"))
	assert.Equal(t, 3, testutil.CollectAndCount(c.Registry(), "hydroini_validation_records_total"))
}

func TestCollector_ObserveFile(t *testing.T) {
	t.Parallel()

	c := metrics.NewCollector(metrics.WithNamespace("test"), metrics.WithSubsystem("ini"))
	c.ObserveFile(metrics.OutcomeValid)
	c.ObserveFile(metrics.OutcomeValid)
	c.ObserveFile(metrics.OutcomeError)

	assert.Equal(t, 2, testutil.CollectAndCount(c.Registry(), "test_ini_files_total"))
}

func TestCollector_AsObserver(t *testing.T) {
	t.Parallel()

	c := metrics.NewCollector()
	reg, err := catalog.NewRegistry(schema.WithObserver(c))
	require.NoError(t, err)

	_, err = reg.Validate(catalog.TypeStorageNode, map[string]any{"id": "sn"})
	require.Error(t, err)
	_, err = reg.Validate(catalog.TypeTime, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, 2, testutil.CollectAndCount(c.Registry(), "hydroini_validation_records_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(c.Registry(), "hydroini_validation_duration_seconds"))
}

func TestCollector_WriteTextfile(t *testing.T) {
	t.Parallel()

	c := metrics.NewCollector()
	c.ObserveValidation("Lateral", 0, 2*time.Microsecond)

	path := filepath.Join(t.TempDir(), "hydroini.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hydroini_validation_records_total{outcome="valid",record_type="Lateral"} 1`)

	err = c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "hydroini.prom"))
	require.Error(t, err)
}
