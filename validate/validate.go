package validate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/amp-labs/amp-varcheck/config"
	"github.com/amp-labs/amp-varcheck/errors"
	"github.com/amp-labs/amp-varcheck/logger"
)

// Validator runs check sets over named values. It holds only configuration
// and is safe for concurrent use as long as its Sink is.
type Validator struct {
	sink     Sink
	format   Formatter
	defaults Set
}

// Option configures a Validator.
type Option func(*Validator)

// WithSink sends diagnostics to sink instead of the slog logger.
func WithSink(sink Sink) Option {
	return func(v *Validator) {
		v.sink = sink
	}
}

// WithMarkup sets how severity tags are decorated.
func WithMarkup(m Markup) Option {
	return func(v *Validator) {
		v.format.Markup = m
	}
}

// WithOwnerKind sets the noun printed after the owner name ("object" by default).
func WithOwnerKind(kind string) Option {
	return func(v *Validator) {
		v.format.OwnerKind = kind
	}
}

// WithDefaultChecks replaces the set used when a caller passes a nil Set.
func WithDefaultChecks(set Set) Option {
	return func(v *Validator) {
		v.defaults = set
	}
}

// New returns a Validator. Without options it logs through LogSink with plain
// markup and uses DefaultSet for nil sets.
func New(opts ...Option) *Validator {
	v := &Validator{
		sink:     LogSink{},
		format:   Formatter{Markup: MarkupPlain, OwnerKind: DefaultOwnerKind},
		defaults: DefaultSet(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.sink == nil {
		v.sink = LogSink{}
	}

	return v
}

// FromConfig builds a Validator from configuration. Extra options are applied
// after the configured ones.
func FromConfig(cfg config.Validation, opts ...Option) (*Validator, error) {
	markup, err := ParseMarkup(cfg.Markup)
	if err != nil {
		return nil, err
	}

	all := append([]Option{WithMarkup(markup), WithOwnerKind(cfg.OwnerKind)}, opts...)

	return New(all...), nil
}

// Formatter returns the formatter used for messages.
func (v *Validator) Formatter() Formatter {
	return v.format
}

// Validate runs every check in checks against every value, in order, without
// stopping at the first failure. A nil checks means the validator's default set.
//
// Violations and inapplicable checks are sent to the Sink and collected in the
// returned Report; they are never returned as an error. The only error is a
// broken check set, which wraps errors.ErrInvalidCheckSet and is returned
// before any check runs.
func (v *Validator) Validate(ctx context.Context, owner string, checks Set, values ...NamedValue) (*Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()

	if checks == nil {
		checks = v.defaults
	}

	if err := checks.validate(); err != nil {
		recordRun(start, "error")

		return nil, logger.AnnotateError(err, "owner", owner)
	}

	report := &Report{Owner: owner}
	ownerCtx := logger.With(ctx, "owner", owner)

	for _, value := range values {
		valueCtx := logger.With(ownerCtx, "variable", value.Name)

		for _, check := range checks {
			name := checkName(check)
			outcome := check.Check(owner, value)

			checkOutcomesTotal.WithLabelValues(name, outcome.Kind.String()).Inc()

			switch outcome.Kind {
			case OutcomePass:
				continue
			case OutcomeViolation:
				d := v.diagnostic(owner, value.Name, name, SeverityError, outcome.Detail)
				v.sink.Error(valueCtx, d.Message)
				report.Diagnostics = append(report.Diagnostics, d)
			case OutcomeInapplicable:
				d := v.diagnostic(owner, value.Name, name, SeverityWarning, outcome.Detail)
				v.sink.Warn(valueCtx, d.Message)
				report.Diagnostics = append(report.Diagnostics, d)
			default:
				recordRun(start, "error")

				return nil, logger.AnnotateError(
					fmt.Errorf("%w: check %s returned unknown outcome %s", errors.ErrInvalidCheckSet, name, outcome.Kind),
					"owner", owner, "variable", value.Name)
			}
		}
	}

	recordRun(start, strconv.FormatBool(report.Valid()))

	return report, nil
}

func (v *Validator) diagnostic(owner, variable, check string, sev Severity, detail string) Diagnostic {
	return Diagnostic{
		Owner:    owner,
		Variable: variable,
		Check:    check,
		Severity: sev,
		Detail:   detail,
		Message:  v.format.Message(sev, owner, variable, detail),
	}
}

// ValidateAll is Validate for callers that only need the verdict: it returns
// true iff no check reported a violation. An empty values list is always valid.
// A broken check set is a programming error and panics with the
// errors.ErrInvalidCheckSet error.
func (v *Validator) ValidateAll(ctx context.Context, owner string, checks Set, values ...NamedValue) bool {
	report, err := v.Validate(ctx, owner, checks, values...)
	if err != nil {
		panic(err)
	}

	return report.Valid()
}

var defaultValidator = New() //nolint:gochecknoglobals

// Validate runs Validator.Validate on a validator with default settings.
func Validate(ctx context.Context, owner string, checks Set, values ...NamedValue) (*Report, error) {
	return defaultValidator.Validate(ctx, owner, checks, values...)
}

// ValidateAll runs Validator.ValidateAll on a validator with default settings.
//
// Example:
//
//	if !validate.ValidateAll(ctx, "Player", nil,
//	    validate.Named(p.weapon, "weapon"),
//	    validate.Named(p.shield, "shield"),
//	) {
//	    return
//	}
func ValidateAll(ctx context.Context, owner string, checks Set, values ...NamedValue) bool {
	return defaultValidator.ValidateAll(ctx, owner, checks, values...)
}

// ValidateOne validates a single value against a required check set.
//
// Deprecated: call ValidateAll with a single value. ValidateOne only exists to
// ease migration and panics when checks is nil instead of using the default set.
func ValidateOne(ctx context.Context, owner string, checks Set, value NamedValue) bool {
	if checks == nil {
		panic(logger.AnnotateError(
			fmt.Errorf("%w: ValidateOne requires an explicit check set", errors.ErrInvalidCheckSet),
			"owner", owner, "variable", value.Name))
	}

	return ValidateAll(ctx, owner, checks, value)
}
