package validate

import (
	"fmt"
)

// NullCheck flags values that are unset: nil, Null, or a Ref whose object
// has been destroyed. It applies to every value.
type NullCheck struct{}

func (NullCheck) Name() string { return "NullCheck" }

func (NullCheck) Check(_ string, v NamedValue) Outcome {
	if IsAbsent(v.Value) {
		return Violated("is null, please set it through the inspector, or directly at the variable initialization.")
	}

	return Pass()
}

// UnderZeroCheck flags numbers below zero. Non-numeric values, null
// included, are reported as inapplicable.
type UnderZeroCheck struct{}

func (UnderZeroCheck) Name() string { return "UnderZeroCheck" }

func (c UnderZeroCheck) Check(_ string, v NamedValue) Outcome {
	n, ok := AsNumber(v.Value)
	if !ok {
		return NotNumeric(c.Name())
	}

	if n.Negative() {
		return Violated("is under zero.")
	}

	return Pass()
}

// EqualZeroCheck flags numbers equal to zero. Non-numeric values, null
// included, are reported as inapplicable.
type EqualZeroCheck struct{}

func (EqualZeroCheck) Name() string { return "EqualZeroCheck" }

func (c EqualZeroCheck) Check(_ string, v NamedValue) Outcome {
	n, ok := AsNumber(v.Value)
	if !ok {
		return NotNumeric(c.Name())
	}

	if n.IsZero() {
		return Violated("equals zero.")
	}

	return Pass()
}

// HasValidate is implemented by payloads that know how to validate themselves.
type HasValidate interface {
	Validate() error
}

// SelfValidateCheck runs the Validate method of payloads that implement
// HasValidate, whether passed directly or behind a Ref. Absent values and
// payloads without a Validate method pass; pair it with NullCheck to catch
// missing values.
type SelfValidateCheck struct{}

func (SelfValidateCheck) Name() string { return "SelfValidateCheck" }

func (SelfValidateCheck) Check(_ string, v NamedValue) Outcome {
	if IsAbsent(v.Value) {
		return Pass()
	}

	var payload any

	switch t := v.Value.(type) {
	case Opaque:
		payload = t.V
	case Ref:
		payload = t.Handle
	default:
		payload = t
	}

	hv, ok := payload.(HasValidate)
	if !ok {
		return Pass()
	}

	if err := hv.Validate(); err != nil {
		return Violated(fmt.Sprintf("is invalid: %v.", err))
	}

	return Pass()
}
