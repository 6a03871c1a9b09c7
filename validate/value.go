package validate

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// Value is the closed set of payloads the pipeline knows how to judge.
// Use Of to build one from an arbitrary Go value.
type Value interface {
	isValue()
}

// Handle is an opaque reference to an object whose lifetime is managed elsewhere.
// A handle can be non-nil while the object behind it has already been destroyed.
type Handle interface {
	IsLive() bool
}

type (
	// Null is an absent value.
	Null struct{}

	// Int holds any signed integer.
	Int int64

	// Uint holds any unsigned integer, bytes included.
	Uint uint64

	Float32 float32

	Float64 float64

	// Decimal holds a fixed-point decimal.
	Decimal struct {
		decimal.Decimal
	}

	// Ref wraps a Handle.
	Ref struct {
		Handle Handle
	}

	// Opaque is any other non-null payload (strings, bools, structs, ...).
	Opaque struct {
		V any
	}
)

func (Null) isValue()    {}
func (Int) isValue()     {}
func (Uint) isValue()    {}
func (Float32) isValue() {}
func (Float64) isValue() {}
func (Decimal) isValue() {}
func (Ref) isValue()     {}
func (Opaque) isValue()  {}

// Live reports whether the handle is set and its object still exists.
func (r Ref) Live() bool {
	return !isNilish(r.Handle) && r.Handle.IsLive()
}

// Of converts v into a Value. Only the kinds listed below are numeric;
// pointers to numbers, strings, bools and everything else become Opaque.
//
//   - nil and nil pointers, maps, slices, channels, funcs and interfaces: Null
//   - a Value: itself
//   - a Handle: Ref
//   - int, int8, int16, int32, int64: Int
//   - uint, uint8, uint16, uint32, uint64: Uint
//   - float32, float64: Float32, Float64
//   - decimal.Decimal and *decimal.Decimal: Decimal
func Of(v any) Value { //nolint:cyclop,ireturn
	if isNilish(v) {
		return Null{}
	}

	switch t := v.(type) {
	case Value:
		return t
	case Handle:
		return Ref{Handle: t}
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint:
		return Uint(t)
	case uint8:
		return Uint(t)
	case uint16:
		return Uint(t)
	case uint32:
		return Uint(t)
	case uint64:
		return Uint(t)
	case float32:
		return Float32(t)
	case float64:
		return Float64(t)
	case decimal.Decimal:
		return Decimal{t}
	case *decimal.Decimal:
		return Decimal{*t}
	default:
		return Opaque{V: v}
	}
}

// IsAbsent reports whether v counts as unset: nil, Null, or a Ref whose
// object is gone.
func IsAbsent(v Value) bool {
	switch t := v.(type) {
	case nil, Null:
		return true
	case Ref:
		return !t.Live()
	default:
		return false
	}
}

func isNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
