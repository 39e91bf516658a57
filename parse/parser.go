package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input is a position inside the text being parsed: the unconsumed
// remainder plus the absolute byte offset of that remainder within the
// original input. Input values are plain values; parsers never mutate them.
type Input struct {
	// Text is the unconsumed remainder.
	Text string

	// Off is the absolute byte offset of Text within the original input.
	Off int
}

// NewInput wraps a whole string as the starting position.
func NewInput(s string) Input { return Input{Text: s} }

// advance consumes n bytes from the front of the input.
func (in Input) advance(n int) Input {
	return Input{Text: in.Text[n:], Off: in.Off + n}
}

// Parser parses a prefix of its input into a T, returning the value and the
// unconsumed remainder, or a positioned failure (see Error).
type Parser[T any] func(Input) (T, Input, error)

// Run applies p to the start of text and returns the parsed value,
// discarding any unconsumed remainder. Wrap p with All to additionally
// require that the whole text is consumed.
func Run[T any](p Parser[T], text string) (T, error) {
	v, _, err := p(NewInput(text))
	return v, err
}

// AnyRune consumes exactly one rune.
func AnyRune() Parser[rune] {
	return func(in Input) (rune, Input, error) {
		r, size := utf8.DecodeRuneInString(in.Text)
		if size == 0 {
			return 0, in, errf(in, "any character")
		}
		if r == utf8.RuneError && size == 1 {
			return 0, in, errf(in, "valid UTF-8")
		}
		return r, in.advance(size), nil
	}
}

// Rune consumes exactly the rune want.
func Rune(want rune) Parser[rune] {
	return RuneWhere("'"+string(want)+"'", func(r rune) bool { return r == want })
}

// RuneWhere consumes one rune satisfying pred; desc names the expectation
// used in failure messages.
func RuneWhere(desc string, pred func(rune) bool) Parser[rune] {
	return func(in Input) (rune, Input, error) {
		r, size := utf8.DecodeRuneInString(in.Text)
		if size == 0 || (r == utf8.RuneError && size == 1) || !pred(r) {
			return 0, in, errf(in, "%s", desc)
		}
		return r, in.advance(size), nil
	}
}

// Literal consumes exactly the string want.
func Literal(want string) Parser[string] {
	return func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Text, want) {
			return "", in, errf(in, "%q", want)
		}
		return want, in.advance(len(want)), nil
	}
}

// Digits consumes one or more decimal digit characters.
func Digits() Parser[string] {
	return func(in Input) (string, Input, error) {
		n := 0
		for n < len(in.Text) && in.Text[n] >= '0' && in.Text[n] <= '9' {
			n++
		}
		if n == 0 {
			return "", in, errf(in, "digits")
		}
		return in.Text[:n], in.advance(n), nil
	}
}

// Spaces consumes zero or more whitespace characters. Newlines count as
// whitespace only when withNewlines is true.
func Spaces(withNewlines bool) Parser[string] {
	return func(in Input) (string, Input, error) {
		n := 0
		for n < len(in.Text) {
			r, size := utf8.DecodeRuneInString(in.Text[n:])
			if !unicode.IsSpace(r) || (!withNewlines && (r == '\n' || r == '\r')) {
				break
			}
			n += size
		}
		return in.Text[:n], in.advance(n), nil
	}
}

// EOF succeeds only at the end of the input, consuming nothing.
func EOF() Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if len(in.Text) != 0 {
			return struct{}{}, in, errf(in, "end of input")
		}
		return struct{}{}, in, nil
	}
}

// All requires p to consume the entire input.
func All[T any](p Parser[T]) Parser[T] {
	return ThenSkip(p, EOF())
}
