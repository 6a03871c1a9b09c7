package validate

import (
	"cmp"
	"math"
)

// Number is the comparison form of a numeric Value. Integers and float32 widen
// to float64; decimals keep their exact sign so that a tiny decimal is never
// mistaken for zero. NaN is neither negative nor zero.
type Number struct {
	f    float64
	sign int
	nan  bool
}

// AsNumber converts v into a Number. It returns false for anything that is
// not one of the numeric variants, including Null.
func AsNumber(v Value) (Number, bool) {
	switch t := v.(type) {
	case Int:
		return Number{f: float64(t), sign: cmp.Compare(int64(t), 0)}, true
	case Uint:
		return Number{f: float64(t), sign: cmp.Compare(uint64(t), 0)}, true
	case Float32:
		return fromFloat(float64(t)), true
	case Float64:
		return fromFloat(float64(t)), true
	case Decimal:
		return Number{f: t.InexactFloat64(), sign: t.Sign()}, true
	default:
		return Number{}, false
	}
}

func fromFloat(f float64) Number {
	if math.IsNaN(f) {
		return Number{f: f, nan: true}
	}

	return Number{f: f, sign: cmp.Compare(f, 0)}
}

// Negative reports whether the number is below zero.
func (n Number) Negative() bool {
	return !n.nan && n.sign < 0
}

// IsZero reports whether the number equals zero. Negative zero counts.
func (n Number) IsZero() bool {
	return !n.nan && n.sign == 0
}

// Float64 returns the widened value. Decimals may lose precision here.
func (n Number) Float64() float64 {
	return n.f
}
