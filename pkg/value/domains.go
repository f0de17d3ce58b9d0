package value

import (
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/iotaledger/hive.go/constraints"
)

type integers[T constraints.Integer] struct {
	min T
	max T
}

func (d integers[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d integers[T]) Next(v T) (T, bool) {
	if v == d.max {
		return v, false
	}
	return v + 1, true
}

func (d integers[T]) Prev(v T) (T, bool) {
	if v == d.min {
		return v, false
	}
	return v - 1, true
}

func (d integers[T]) MinValue() T { return d.min }
func (d integers[T]) MaxValue() T { return d.max }

func (d integers[T]) Distance(a, b T) (uint64, bool) {
	if a > b {
		return 0, false
	}
	// Two's complement subtraction is exact for any integer type of up
	// to 64 bits, signed or not.
	return uint64(b) - uint64(a), true
}

// Int returns the discrete domain of the host int type.
func Int() Comparer[int] { return integers[int]{min: math.MinInt, max: math.MaxInt} }

func Int8() Comparer[int8]   { return integers[int8]{min: math.MinInt8, max: math.MaxInt8} }
func Int16() Comparer[int16] { return integers[int16]{min: math.MinInt16, max: math.MaxInt16} }
func Int32() Comparer[int32] { return integers[int32]{min: math.MinInt32, max: math.MaxInt32} }
func Int64() Comparer[int64] { return integers[int64]{min: math.MinInt64, max: math.MaxInt64} }

func Uint8() Comparer[uint8]   { return integers[uint8]{max: math.MaxUint8} }
func Uint16() Comparer[uint16] { return integers[uint16]{max: math.MaxUint16} }
func Uint32() Comparer[uint32] { return integers[uint32]{max: math.MaxUint32} }
func Uint64() Comparer[uint64] { return integers[uint64]{max: math.MaxUint64} }

// Rune returns the discrete domain of Unicode code points in naive
// code-point order, 0 through unicode.MaxRune.
func Rune() Comparer[rune] { return integers[rune]{max: unicode.MaxRune} }

type floats[T constraints.Float] struct{}

func (floats[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Float32 returns the dense domain of float32 values. NaN is outside the
// domain's contract.
func Float32() Comparer[float32] { return floats[float32]{} }

// Float64 returns the dense domain of float64 values. NaN is outside the
// domain's contract.
func Float64() Comparer[float64] { return floats[float64]{} }

type stringDomain struct{}

func (stringDomain) Compare(a, b string) int { return strings.Compare(a, b) }

// String returns the dense domain of strings in lexical byte order. It is
// dense because between any two distinct strings another one exists.
func String() Comparer[string] { return stringDomain{} }

type timeDomain struct{}

func (timeDomain) Compare(a, b time.Time) int { return a.Compare(b) }

// Time returns the domain of time.Time values. Instants are treated as a
// continuum: nanosecond granularity is an encoding artifact, not a
// meaningful adjacency rule.
func Time() Comparer[time.Time] { return timeDomain{} }
