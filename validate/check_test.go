package validate

import (
	"testing"

	"github.com/amp-labs/amp-varcheck/errors"
	"github.com/amp-labs/amp-varcheck/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Outcome{Kind: OutcomePass}, Pass())
	assert.Equal(t, Outcome{Kind: OutcomeViolation, Detail: "d"}, Violated("d"))
	assert.Equal(t, Outcome{Kind: OutcomeInapplicable, Detail: "d"}, Inapplicable("d"))

	assert.Equal(t, "pass", OutcomePass.String())
	assert.Equal(t, "violation", OutcomeViolation.String())
	assert.Equal(t, "inapplicable", OutcomeInapplicable.String())
	assert.Equal(t, "OutcomeKind(9)", OutcomeKind(9).String())
}

func TestDefaultSet(t *testing.T) {
	t.Parallel()

	set := DefaultSet()
	require.Len(t, set, 1)
	assert.IsType(t, NullCheck{}, set[0])

	set[0] = UnderZeroCheck{}

	assert.IsType(t, NullCheck{}, DefaultSet()[0], "callers can't mutate the default")
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	set, err := NewSet(NullCheck{}, UnderZeroCheck{})
	require.NoError(t, err)
	assert.Len(t, set, 2)

	empty, err := NewSet()
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = NewSet(NullCheck{}, nil)
	require.ErrorIs(t, err, errors.ErrInvalidCheckSet)
	require.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "index 1")

	attrs := logger.ErrorAttrs(err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "check_index", attrs[0].Key)

	_, err = NewSet(CheckFunc(nil))
	require.ErrorIs(t, err, errors.ErrInvalidCheckSet)
}

func TestSet_With(t *testing.T) {
	t.Parallel()

	base := make(Set, 1, 4)
	base[0] = NullCheck{}

	a := base.With(UnderZeroCheck{})
	b := base.With(EqualZeroCheck{})

	assert.Len(t, base, 1)
	assert.IsType(t, UnderZeroCheck{}, a[1])
	assert.IsType(t, EqualZeroCheck{}, b[1])
}

func TestCheckName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NullCheck", checkName(NullCheck{}))
	assert.Equal(t, "UnderZeroCheck", checkName(UnderZeroCheck{}))
	assert.Equal(t, "EqualZeroCheck", checkName(EqualZeroCheck{}))
	assert.Equal(t, "validate.CheckFunc", checkName(CheckFunc(func(string, NamedValue) Outcome { return Pass() })))
}
