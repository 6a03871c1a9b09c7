package validate

import (
	"fmt"

	"github.com/amp-labs/amp-varcheck/errors"
	"github.com/amp-labs/amp-varcheck/logger"
)

// NamedValue pairs a value with the label used in diagnostics.
type NamedValue struct {
	Value Value
	Name  string
}

// Named builds a NamedValue, converting v with Of.
func Named(v any, name string) NamedValue {
	return NamedValue{Value: Of(v), Name: name}
}

// OutcomeKind is the verdict of a single check on a single value.
type OutcomeKind int

const (
	// OutcomePass means the value satisfies the check.
	OutcomePass OutcomeKind = iota
	// OutcomeViolation means the value breaks the rule. It makes the whole validation fail.
	OutcomeViolation
	// OutcomeInapplicable means the check can't judge this kind of value. It is logged as a
	// warning and does not fail the validation.
	OutcomeInapplicable
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePass:
		return "pass"
	case OutcomeViolation:
		return "violation"
	case OutcomeInapplicable:
		return "inapplicable"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is what a Check returns. Detail is the text appended to the
// standard "The variable '...' in '...'" prefix when the outcome is logged.
type Outcome struct {
	Kind   OutcomeKind
	Detail string
}

// Pass returns a passing outcome.
func Pass() Outcome {
	return Outcome{Kind: OutcomePass}
}

// Violated returns a violation with the given detail, e.g. "is under zero.".
func Violated(detail string) Outcome {
	return Outcome{Kind: OutcomeViolation, Detail: detail}
}

// Inapplicable returns an outcome for a check that declined to judge the value.
func Inapplicable(detail string) Outcome {
	return Outcome{Kind: OutcomeInapplicable, Detail: detail}
}

// NotNumeric is the standard Inapplicable outcome for numeric checks given a non-numeric value.
func NotNumeric(checkName string) Outcome {
	return Inapplicable(fmt.Sprintf(
		"is not a number, so we can't test it through the %s check.\nTHE CHECK HAS BEEN IGNORED", checkName))
}

// Check judges one named value. Implementations must be stateless; they
// report through the returned Outcome and never log themselves.
type Check interface {
	Check(owner string, v NamedValue) Outcome
}

// CheckFunc adapts a plain function to the Check interface.
type CheckFunc func(owner string, v NamedValue) Outcome

var _ Check = CheckFunc(nil)

func (f CheckFunc) Check(owner string, v NamedValue) Outcome {
	return f(owner, v)
}

// checkName labels a check in diagnostics and metrics. Checks may provide
// their own label through a Name method.
func checkName(c Check) string {
	if named, ok := c.(interface{ Name() string }); ok {
		return named.Name()
	}

	return fmt.Sprintf("%T", c)
}

// Set is an ordered list of checks. Order only affects the order in which
// diagnostics are emitted.
type Set []Check

// DefaultSet returns the checks used when a caller passes a nil Set:
// just NullCheck. A fresh slice is returned on every call.
func DefaultSet() Set {
	return Set{NullCheck{}}
}

// NewSet builds a Set, rejecting nil checks.
func NewSet(checks ...Check) (Set, error) {
	set := Set(checks)

	if err := set.validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// With returns a new Set holding s followed by checks. s is not modified.
func (s Set) With(checks ...Check) Set {
	out := make(Set, 0, len(s)+len(checks))
	out = append(out, s...)

	return append(out, checks...)
}

func (s Set) validate() error {
	for i, c := range s {
		if isNilish(c) {
			return logger.AnnotateError(
				fmt.Errorf("%w: check at index %d is nil", errors.ErrInvalidCheckSet, i),
				"check_index", i)
		}
	}

	return nil
}
