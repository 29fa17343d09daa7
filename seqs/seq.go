package seqs

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/optional"

	"arrayblocks/sliceutil"
)

func nilArgument(op string) error {
	return sliceutil.NilArgumentError("seqs", op)
}

// Each calls visitor once for every element of seq, in order.
func Each[T any](seq iter.Seq[T], visitor sliceutil.Visitor[T]) {
	if seq == nil || visitor == nil {
		panic(nilArgument("Each"))
	}
	for v := range seq {
		visitor(v)
	}
}

// Match returns the first element of seq that satisfies the predicate and stops pulling from seq.
func Match[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T]) (T, bool) {
	if seq == nil || predicate == nil {
		panic(nilArgument("Match"))
	}
	for v := range seq {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// MatchIndex returns the position of the first element that satisfies the predicate, or -1.
func MatchIndex[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T]) int {
	if seq == nil || predicate == nil {
		panic(nilArgument("MatchIndex"))
	}
	index := 0
	for v := range seq {
		if predicate(v) {
			return index
		}
		index++
	}
	return -1
}

// MatchOptional is Match with the result wrapped in an optional.Value.
func MatchOptional[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T]) optional.Value[T] {
	if seq == nil || predicate == nil {
		panic(nilArgument("MatchOptional"))
	}
	if v, ok := Match(seq, predicate); ok {
		return optional.Some(v)
	}
	return optional.Empty[T]()
}

// Select yields only the elements of seq that satisfy the predicate.
// The predicate is evaluated lazily, as the result is consumed.
func Select[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T]) iter.Seq[T] {
	if seq == nil || predicate == nil {
		panic(nilArgument("Select"))
	}
	return filter(seq, predicate, true)
}

// Reject yields only the elements of seq that do not satisfy the predicate.
func Reject[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T]) iter.Seq[T] {
	if seq == nil || predicate == nil {
		panic(nilArgument("Reject"))
	}
	return filter(seq, predicate, false)
}

func filter[T any](seq iter.Seq[T], predicate sliceutil.Predicate[T], want bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) == want {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform sliceutil.Transform[T, R]) iter.Seq[R] {
	if seq == nil || transform == nil {
		panic(nilArgument("Map"))
	}
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// MapStrict is Map for transforms whose result type can hold nil.
// A nil result is yielded with an error wrapping sliceutil.ErrInvalidTransformResult,
// after which the sequence ends.
func MapStrict[T, R any](seq iter.Seq[T], transform sliceutil.Transform[T, R]) iter.Seq2[R, error] {
	if seq == nil || transform == nil {
		return failed[R](nilArgument("MapStrict"))
	}
	return func(yield func(R, error) bool) {
		index := 0
		for v := range seq {
			res := transform(v)
			if is.Nil(res) {
				var zero R
				yield(zero, sliceutil.InvalidTransformResultError("seqs", "MapStrict", index))
				return
			}
			if !yield(res, nil) {
				return
			}
			index++
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer sliceutil.Accumulator[R, T]) R {
	if seq == nil || reducer == nil {
		panic(nilArgument("Reduce"))
	}
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// failed returns a sequence that yields err once.
func failed[R any](err error) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		yield(zero, err)
	}
}
