package solve

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// AnswerKind discriminates the closed set of Answer variants.
type AnswerKind uint8

const (
	// KindSigned holds a signed integer answer.
	KindSigned AnswerKind = iota
	// KindUnsigned holds an unsigned integer answer.
	KindUnsigned
	// KindText holds a text answer.
	KindText
	// KindDecimal holds a decimal answer.
	KindDecimal
)

// String names the kind for diagnostics.
func (k AnswerKind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindText:
		return "text"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Answer is the closed result union every part produces. It carries no
// identity beyond its value; construct one with Signed, Unsigned, String
// or Decimal. Each constructor widens its argument into the variant's full
// range, so no producer type is ever silently truncated.
type Answer struct {
	kind AnswerKind
	sig  int64
	uns  uint64
	txt  string
	dec  float64
}

// Signed builds a signed integer Answer from any signed integer type.
func Signed[T constraints.Signed](v T) Answer {
	return Answer{kind: KindSigned, sig: int64(v)}
}

// Unsigned builds an unsigned integer Answer from any unsigned integer type.
func Unsigned[T constraints.Unsigned](v T) Answer {
	return Answer{kind: KindUnsigned, uns: uint64(v)}
}

// String builds a text Answer.
func String(s string) Answer {
	return Answer{kind: KindText, txt: s}
}

// Decimal builds a decimal Answer from any floating-point type.
func Decimal[T constraints.Float](v T) Answer {
	return Answer{kind: KindDecimal, dec: float64(v)}
}

// Kind reports the variant held by the Answer.
func (a Answer) Kind() AnswerKind { return a.kind }

// Display renders the answer value per-variant, the form shown to users
// and compared in golden test tables.
func (a Answer) Display() string {
	switch a.kind {
	case KindSigned:
		return strconv.FormatInt(a.sig, 10)
	case KindUnsigned:
		return strconv.FormatUint(a.uns, 10)
	case KindText:
		return a.txt
	default:
		return strconv.FormatFloat(a.dec, 'g', -1, 64)
	}
}

// Equal reports whether two answers hold the same variant and value.
func (a Answer) Equal(b Answer) bool { return a == b }
