package validate

import (
	"testing"

	"github.com/amp-labs/amp-varcheck/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probeCheck struct{}

func (probeCheck) Name() string { return "probeCheck" }

func (probeCheck) Check(_ string, v NamedValue) Outcome {
	switch v.Name {
	case "bad":
		return Violated("is bad.")
	case "odd":
		return Inapplicable("is odd.")
	default:
		return Pass()
	}
}

func TestMetrics(t *testing.T) { //nolint:paralleltest
	ctx := logger.WithMuted(t.Context(), true)

	before := testutil.ToFloat64(validationsTotal.WithLabelValues("false"))
	beforeErr := testutil.ToFloat64(validationsTotal.WithLabelValues("error"))

	ok := ValidateAll(ctx, "Player", Set{probeCheck{}},
		Named(1, "good"), Named(1, "bad"), Named(1, "odd"), Named(1, "good"))
	require.False(t, ok)

	assert.InDelta(t, 2, testutil.ToFloat64(checkOutcomesTotal.WithLabelValues("probeCheck", "pass")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(checkOutcomesTotal.WithLabelValues("probeCheck", "violation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(checkOutcomesTotal.WithLabelValues("probeCheck", "inapplicable")), 0)
	assert.InDelta(t, before+1, testutil.ToFloat64(validationsTotal.WithLabelValues("false")), 0)

	_, err := Validate(ctx, "Player", Set{nil})
	require.Error(t, err)
	assert.InDelta(t, beforeErr+1, testutil.ToFloat64(validationsTotal.WithLabelValues("error")), 0)
}

func TestMetrics_Preinitialized(t *testing.T) { //nolint:paralleltest
	for _, name := range []string{"NullCheck", "UnderZeroCheck", "EqualZeroCheck", "SelfValidateCheck"} {
		for _, kind := range []string{"pass", "violation", "inapplicable"} {
			_, err := checkOutcomesTotal.GetMetricWithLabelValues(name, kind)
			require.NoError(t, err)
		}
	}

	assert.GreaterOrEqual(t, testutil.CollectAndCount(validationsTotal), 3)
}
