package validate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate by result.
	//
	// Labels:
	//   - valid: "true" if no check reported a violation, "false" otherwise.
	//     Misused calls (a broken check set) are counted under "error".
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "varcheck_validations_total",
		Help: "The total number of validation runs",
	}, []string{"valid"})

	// checkOutcomesTotal counts every (value, check) evaluation.
	//
	// Labels:
	//   - check: the check's Name(), or its Go type when it has none.
	//   - outcome: "pass", "violation" or "inapplicable".
	//
	// A steady stream of "inapplicable" for one check usually means a numeric
	// check was added to a set that also covers non-numeric fields.
	checkOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "varcheck_check_outcomes_total",
		Help: "The total number of check evaluations, by check and outcome",
	}, []string{"check", "outcome"})

	// validationTime is the wall time of a validation run in milliseconds.
	// Runs are in-memory, so the buckets sit well below a millisecond.
	validationTime = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "varcheck_validation_time_millis",
		Help:    "The time it takes to run a validation, in milliseconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	})
)

// init creates the result series up front so dashboards see zeros instead of gaps.
func init() {
	validationsTotal.WithLabelValues("true").Add(0)
	validationsTotal.WithLabelValues("false").Add(0)
	validationsTotal.WithLabelValues("error").Add(0)

	for _, name := range []string{"NullCheck", "UnderZeroCheck", "EqualZeroCheck", "SelfValidateCheck"} {
		for _, kind := range []OutcomeKind{OutcomePass, OutcomeViolation, OutcomeInapplicable} {
			checkOutcomesTotal.WithLabelValues(name, kind.String()).Add(0)
		}
	}
}

func recordRun(start time.Time, result string) {
	validationsTotal.WithLabelValues(result).Inc()
	validationTime.Observe(float64(time.Since(start).Microseconds()) / 1000) //nolint:mnd
}
