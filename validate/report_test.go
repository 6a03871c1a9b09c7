package validate

import (
	"testing"

	"github.com/amp-labs/amp-varcheck/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	t.Parallel()

	_, v := newRecorder()

	report, err := v.Validate(t.Context(), "Player", DefaultSet().With(UnderZeroCheck{}),
		Named(nil, "health"),
		Named("sword", "weapon"),
		Named(-1, "armor"),
	)
	require.NoError(t, err)

	assert.Equal(t, "Player", report.Owner)
	assert.False(t, report.Valid())

	violations := report.Violations()
	require.Len(t, violations, 2)
	assert.Equal(t, "health", violations[0].Variable)
	assert.Equal(t, "NullCheck", violations[0].Check)
	assert.Equal(t, "armor", violations[1].Variable)
	assert.Equal(t, "UnderZeroCheck", violations[1].Check)
	assert.Equal(t, "is under zero.", violations[1].Detail)

	warnings := report.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "health", warnings[0].Variable)
	assert.Equal(t, "weapon", warnings[1].Variable)

	err = report.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrViolation)
	assert.Contains(t, err.Error(), "variable 'health' in 'Player' is null")
	assert.Contains(t, err.Error(), "variable 'armor' in 'Player' is under zero.")
}

func TestReport_WarningsOnlyIsValid(t *testing.T) {
	t.Parallel()

	report := &Report{
		Owner: "Player",
		Diagnostics: []Diagnostic{
			{Owner: "Player", Variable: "name", Severity: SeverityWarning},
		},
	}

	assert.True(t, report.Valid())
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Violations())
	assert.Len(t, report.Warnings(), 1)
}
