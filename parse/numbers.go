package parse

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Uint parses an unsigned decimal number into any unsigned integer type.
// A value that does not fit T is a parse failure, never a silent wrap.
func Uint[T constraints.Unsigned]() Parser[T] {
	return func(in Input) (T, Input, error) {
		s, rest, err := Digits()(in)
		if err != nil {
			return 0, in, err
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, in, errf(in, "unsigned number in range: %q", s)
		}
		t := T(v)
		if uint64(t) != v {
			return 0, in, errf(in, "unsigned number fitting the target type: %q", s)
		}
		return t, rest, nil
	}
}

// Int parses an optionally signed decimal number into any signed integer
// type. A value that does not fit T is a parse failure.
func Int[T constraints.Signed]() Parser[T] {
	sign := Default(Alt(Rune('-'), Rune('+')), '+')
	return func(in Input) (T, Input, error) {
		s, rest, err := Map2(sign, Digits(), func(sg rune, ds string) string {
			if sg == '-' {
				return "-" + ds
			}
			return ds
		})(in)
		if err != nil {
			return 0, in, err
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, in, errf(in, "signed number in range: %q", s)
		}
		t := T(v)
		if int64(t) != v {
			return 0, in, errf(in, "signed number fitting the target type: %q", s)
		}
		return t, rest, nil
	}
}

// Decimal parses an optionally signed decimal number with an optional
// fractional part into a floating-point type.
func Decimal[T constraints.Float]() Parser[T] {
	sign := Default(Alt(Rune('-'), Rune('+')), '+')
	frac := Default(Map2(Rune('.'), Digits(), func(_ rune, ds string) string {
		return "." + ds
	}), "")
	return func(in Input) (T, Input, error) {
		s, rest, err := Map3(sign, Digits(), frac, func(sg rune, whole, fr string) string {
			if sg == '-' {
				return "-" + whole + fr
			}
			return whole + fr
		})(in)
		if err != nil {
			return 0, in, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, in, errf(in, "decimal number: %q", s)
		}
		return T(v), rest, nil
	}
}
