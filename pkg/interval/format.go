package interval

import (
	"fmt"
	"strings"

	"github.com/henderiw/interval/pkg/value"
)

// String renders the interval in range notation: "[1,5)", "(,10]" for an
// unbounded side, "empty" for the empty interval.
func (iv Interval[T]) String() string {
	if iv.IsEmpty() {
		return "empty"
	}
	var sb strings.Builder
	if iv.lo.kind == beforeValue {
		sb.WriteByte('[')
		fmt.Fprintf(&sb, "%v", iv.lo.value)
	} else if iv.lo.kind == afterValue {
		sb.WriteByte('(')
		fmt.Fprintf(&sb, "%v", iv.lo.value)
	} else {
		sb.WriteByte('(')
	}
	sb.WriteByte(',')
	if iv.hi.kind == afterValue {
		fmt.Fprintf(&sb, "%v", iv.hi.value)
		sb.WriteByte(']')
	} else if iv.hi.kind == beforeValue {
		fmt.Fprintf(&sb, "%v", iv.hi.value)
		sb.WriteByte(')')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

// Parse is the inverse of String. Values are decoded with parseValue; a
// missing value next to a bracket means that side is unbounded, the literal
// "empty" yields the empty interval.
func Parse[T any](d value.Comparer[T], s string, parseValue func(string) (T, error)) (Interval[T], error) {
	s = strings.TrimSpace(s)
	if s == "empty" {
		return Empty(d), nil
	}
	if len(s) < 3 {
		return Interval[T]{}, fmt.Errorf("cannot parse interval %q, invalid format", s)
	}
	open, close := s[0], s[len(s)-1]
	if (open != '[' && open != '(') || (close != ']' && close != ')') {
		return Interval[T]{}, fmt.Errorf("cannot parse interval %q, invalid brackets", s)
	}
	body := s[1 : len(s)-1]
	loStr, hiStr, ok := strings.Cut(body, ",")
	if !ok {
		return Interval[T]{}, fmt.Errorf("cannot parse interval %q, missing separator", s)
	}
	loStr = strings.TrimSpace(loStr)
	hiStr = strings.TrimSpace(hiStr)

	lo := Unbounded[T]()
	if loStr != "" {
		v, err := parseValue(loStr)
		if err != nil {
			return Interval[T]{}, fmt.Errorf("cannot parse lower bound of %q, err: %w", s, err)
		}
		if open == '[' {
			lo = Included(v)
		} else {
			lo = Excluded(v)
		}
	} else if open == '[' {
		return Interval[T]{}, fmt.Errorf("cannot parse interval %q, inclusive bound without value", s)
	}

	hi := Unbounded[T]()
	if hiStr != "" {
		v, err := parseValue(hiStr)
		if err != nil {
			return Interval[T]{}, fmt.Errorf("cannot parse upper bound of %q, err: %w", s, err)
		}
		if close == ']' {
			hi = Included(v)
		} else {
			hi = Excluded(v)
		}
	} else if close == ']' {
		return Interval[T]{}, fmt.Errorf("cannot parse interval %q, inclusive bound without value", s)
	}
	return FromBounds(d, lo, hi)
}
