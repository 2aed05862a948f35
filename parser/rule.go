package parser

import (
	"github.com/xiam/schemexp/lexer"
)

// Rule parses a value of type T at the start of in. On success it returns
// the value and the input that follows it; on failure it returns the
// original input unchanged and a non-nil error.
type Rule[T any] func(in lexer.Input) (T, lexer.Input, *Error)

// Tuple holds the results of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Map transforms the value produced by r.
func Map[A, B any](r Rule[A], f func(A) B) Rule[B] {
	return func(in lexer.Input) (B, lexer.Input, *Error) {
		a, rest, err := r(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// TryMap transforms the value produced by r with a conversion that can
// fail. The conversion receives the positions before and after the match.
func TryMap[A, B any](r Rule[A], f func(a A, start, end lexer.Input) (B, *Error)) Rule[B] {
	return func(in lexer.Input) (B, lexer.Input, *Error) {
		var zero B
		a, rest, err := r(in)
		if err != nil {
			return zero, in, err
		}
		b, err := f(a, in, rest)
		if err != nil {
			return zero, in, err
		}
		return b, rest, nil
	}
}

// ZeroOrMore applies r until it fails and returns every success. It never
// fails. It also stops if r succeeds without consuming anything.
func ZeroOrMore[T any](r Rule[T]) Rule[[]T] {
	return func(in lexer.Input) ([]T, lexer.Input, *Error) {
		values := []T{}
		for {
			v, rest, err := r(in)
			if err != nil || rest.Offset() <= in.Offset() {
				break
			}
			values = append(values, v)
			in = rest
		}
		return values, in, nil
	}
}

// OneOrMore is like ZeroOrMore but fails if the first application fails.
func OneOrMore[T any](r Rule[T]) Rule[[]T] {
	many := ZeroOrMore(r)
	return func(in lexer.Input) ([]T, lexer.Input, *Error) {
		first, rest, err := r(in)
		if err != nil {
			return nil, in, err
		}
		more, rest, _ := many(rest)
		return append([]T{first}, more...), rest, nil
	}
}

// Sequence applies rules in order. If any of them fails the whole sequence
// fails at its starting input and partial results are discarded.
func Sequence[T any](rules ...Rule[T]) Rule[[]T] {
	return func(in lexer.Input) ([]T, lexer.Input, *Error) {
		values := make([]T, 0, len(rules))
		cur := in
		for _, r := range rules {
			v, rest, err := r(cur)
			if err != nil {
				return nil, in, err
			}
			values = append(values, v)
			cur = rest
		}
		return values, cur, nil
	}
}

// Pair applies a and then b.
func Pair[A, B any](a Rule[A], b Rule[B]) Rule[Tuple[A, B]] {
	return func(in lexer.Input) (Tuple[A, B], lexer.Input, *Error) {
		va, rest, err := a(in)
		if err != nil {
			return Tuple[A, B]{}, in, err
		}
		vb, rest, err := b(rest)
		if err != nil {
			return Tuple[A, B]{}, in, err
		}
		return Tuple[A, B]{First: va, Second: vb}, rest, nil
	}
}

// Preceded applies prefix and then r, keeping the value of r.
func Preceded[P, T any](prefix Rule[P], r Rule[T]) Rule[T] {
	return Map(Pair(prefix, r), func(t Tuple[P, T]) T {
		return t.Second
	})
}

// Terminated applies r and then suffix, keeping the value of r.
func Terminated[T, S any](r Rule[T], suffix Rule[S]) Rule[T] {
	return Map(Pair(r, suffix), func(t Tuple[T, S]) T {
		return t.First
	})
}

// Delimited applies open, r and closing, keeping the value of r.
func Delimited[O, T, C any](open Rule[O], r Rule[T], closing Rule[C]) Rule[T] {
	return Preceded(open, Terminated(r, closing))
}

// Optional applies r and returns fallback if it fails.
func Optional[T any](r Rule[T], fallback T) Rule[T] {
	return func(in lexer.Input) (T, lexer.Input, *Error) {
		v, rest, err := r(in)
		if err != nil {
			return fallback, in, nil
		}
		return v, rest, nil
	}
}

// Alt tries each rule against the same input and returns the first
// success. If every rule fails, the error reports the failure that got
// furthest into the input as its cause.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(in lexer.Input) (T, lexer.Input, *Error) {
		var deepest *Error
		for _, r := range rules {
			v, rest, err := r(in)
			if err == nil {
				return v, rest, nil
			}
			if err.deeper(deepest) {
				deepest = err
			}
		}

		var zero T
		err := newError(ErrAllAlternativesFailed, in, "")
		if deepest != nil {
			err.Cause = deepest
			err.reach = deepest.reach
		}
		return zero, in, err
	}
}
