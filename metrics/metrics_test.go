package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilRegisterer(t *testing.T) {
	pm, err := New(nil, "brmask", "")
	require.Error(t, err)
	require.Nil(t, pm)
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm, err := New(reg, "brmask", "engine")
	require.NoError(t, err)

	pm.IncPass("cpf", "written")
	pm.IncPass("cpf", "written")
	pm.IncPass("cep", "unchanged")
	pm.IncClassified("cpf_cnpj")
	pm.IncPasteRecheck()

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.passes.WithLabelValues("cpf", "written")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.passes.WithLabelValues("cep", "unchanged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.classifications.WithLabelValues("cpf_cnpj")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.pasteRechecks))

	n, err := testutil.GatherAndCount(reg, "brmask_engine_passes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNew_RegisterTwiceOnSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := New(reg, "brmask", "engine")
	require.NoError(t, err)

	second, err := New(reg, "brmask", "engine")
	require.NoError(t, err)

	first.IncPasteRecheck()
	second.IncPasteRecheck()
	assert.Equal(t, 2.0, testutil.ToFloat64(first.pasteRechecks))
}
