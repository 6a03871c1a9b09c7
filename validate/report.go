package validate

import (
	"fmt"

	"github.com/amp-labs/amp-varcheck/errors"
)

// Diagnostic is one emitted message.
type Diagnostic struct {
	Owner    string
	Variable string
	Check    string
	Severity Severity
	Detail   string
	Message  string
}

// Report is the result of one validation run. Diagnostics are in emission
// order: value by value, and check by check within a value.
type Report struct {
	Owner       string
	Diagnostics []Diagnostic
}

// Valid reports whether no check found a violation. Warnings don't count.
func (r *Report) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}

	return true
}

// Violations returns the error diagnostics.
func (r *Report) Violations() []Diagnostic {
	return r.filter(SeverityError)
}

// Warnings returns the diagnostics of checks that did not apply.
func (r *Report) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []Diagnostic {
	var out []Diagnostic

	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}

	return out
}

// Err returns nil for a valid report. Otherwise it returns one error per
// violation, each wrapping errors.ErrViolation, joined together.
func (r *Report) Err() error {
	var errs errors.Collection

	for _, d := range r.Violations() {
		errs.Add(fmt.Errorf("%w: variable '%s' in '%s' %s", errors.ErrViolation, d.Variable, d.Owner, d.Detail))
	}

	return errs.Err()
}
