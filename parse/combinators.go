package parse

// Map applies f to the value produced by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) (U, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero U
			return zero, in, err
		}
		return f(v), rest, nil
	}
}

// MapRes applies a fallible projection to the value produced by p. A
// projection failure is reported as a parse failure at the position where
// p started, carrying the projection error's message as the expectation.
func MapRes[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return func(in Input) (U, Input, error) {
		var zero U
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		u, err := f(v)
		if err != nil {
			return zero, in, errf(in, "%v", err)
		}
		return u, rest, nil
	}
}

// Map2 runs pa then pb in sequence and combines their values with f.
func Map2[A, B, C any](pa Parser[A], pb Parser[B], f func(A, B) C) Parser[C] {
	return func(in Input) (C, Input, error) {
		var zero C
		a, rest, err := pa(in)
		if err != nil {
			return zero, in, err
		}
		b, rest, err := pb(rest)
		if err != nil {
			return zero, in, err
		}
		return f(a, b), rest, nil
	}
}

// Map3 runs pa, pb, then pc in sequence and combines their values with f.
func Map3[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) D) Parser[D] {
	return Map2(Map2(pa, pb, func(a A, b B) func(C) D {
		return func(c C) D { return f(a, b, c) }
	}), pc, func(g func(C) D, c C) D { return g(c) })
}

// SkipThen runs skip, discards its value, then runs p.
func SkipThen[S, T any](skip Parser[S], p Parser[T]) Parser[T] {
	return Map2(skip, p, func(_ S, v T) T { return v })
}

// ThenSkip runs p, then runs skip and discards its value.
func ThenSkip[T, S any](p Parser[T], skip Parser[S]) Parser[T] {
	return Map2(p, skip, func(v T, _ S) T { return v })
}

// Delimited runs open, p, close in sequence and keeps only p's value.
func Delimited[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return SkipThen(open, ThenSkip(p, close))
}

// Alt tries each alternative in order and commits to the first success.
// When every alternative fails, the failure that progressed farthest into
// the input is reported.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		var best error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			best = farther(best, err)
		}
		if best == nil {
			best = errf(in, "one of the alternatives")
		}
		return zero, in, best
	}
}

// Default tries p and yields def without consuming anything when p fails.
func Default[T any](p Parser[T], def T) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return def, in, nil
		}
		return v, rest, nil
	}
}

// Many0 applies p repeatedly until it fails, yielding the collected values.
// Zero matches is a success with an empty slice.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		var out []T
		cur := in
		for {
			v, rest, err := p(cur)
			if err != nil {
				return out, cur, nil
			}
			if rest.Off == cur.Off {
				// p matched without consuming; stop rather than loop forever
				return out, cur, nil
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// Many1 applies p repeatedly and requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Map2(p, Many0(p), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// Count applies p exactly n times.
func Count[T any](p Parser[T], n int) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		out := make([]T, 0, n)
		cur := in
		for i := 0; i < n; i++ {
			v, rest, err := p(cur)
			if err != nil {
				return nil, in, err
			}
			out = append(out, v)
			cur = rest
		}
		return out, cur, nil
	}
}

// SepBy1 parses one or more occurrences of p separated by sep, keeping only
// the p values.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map2(p, Many0(SkipThen(sep, p)), func(first T, rest []T) []T {
		return append([]T{first}, rest...)
	})
}

// Trim allows and discards whitespace around p. Newlines are included in
// the trimmed whitespace only when withNewlines is true.
func Trim[T any](p Parser[T], withNewlines bool) Parser[T] {
	return Delimited(Spaces(withNewlines), p, Spaces(withNewlines))
}
