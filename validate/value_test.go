package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeHandle struct {
	live bool
}

func (f *fakeHandle) IsLive() bool { return f.live }

func TestOf(t *testing.T) {
	t.Parallel()

	var (
		nilPtr     *int
		nilMap     map[string]int
		nilSlice   []int
		nilHandle  *fakeHandle
		nilDecimal *decimal.Decimal
		seven      = 7
	)

	live := &fakeHandle{live: true}
	d := decimal.RequireFromString("1.25")

	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"nil pointer", nilPtr, Null{}},
		{"nil map", nilMap, Null{}},
		{"nil slice", nilSlice, Null{}},
		{"nil handle", nilHandle, Null{}},
		{"nil decimal pointer", nilDecimal, Null{}},
		{"value passes through", Float64(2), Float64(2)},
		{"handle", live, Ref{Handle: live}},
		{"int", -3, Int(-3)},
		{"int8", int8(-8), Int(-8)},
		{"int16", int16(16), Int(16)},
		{"int32", int32(-32), Int(-32)},
		{"int64", int64(64), Int(64)},
		{"uint", uint(1), Uint(1)},
		{"byte", byte(255), Uint(255)},
		{"uint16", uint16(16), Uint(16)},
		{"uint32", uint32(32), Uint(32)},
		{"uint64", uint64(64), Uint(64)},
		{"float32", float32(1.5), Float32(1.5)},
		{"float64", -2.5, Float64(-2.5)},
		{"decimal", d, Decimal{d}},
		{"decimal pointer", &d, Decimal{d}},
		{"string", "hello", Opaque{V: "hello"}},
		{"bool", true, Opaque{V: true}},
		{"pointer to int is not numeric", &seven, Opaque{V: &seven}},
		{"empty slice is set", []int{}, Opaque{V: []int{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Of(tt.in))
		})
	}
}

func TestIsAbsent(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent(Null{}))
	assert.True(t, IsAbsent(Ref{}))
	assert.True(t, IsAbsent(Ref{Handle: &fakeHandle{live: false}}), "destroyed handle")
	assert.True(t, IsAbsent(Of((*fakeHandle)(nil))))

	assert.False(t, IsAbsent(Ref{Handle: &fakeHandle{live: true}}))
	assert.False(t, IsAbsent(Int(0)))
	assert.False(t, IsAbsent(Opaque{V: ""}))
}
