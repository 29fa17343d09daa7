package seqs

import (
	"iter"

	"arrayblocks/sliceutil"
)

// TryEach calls visitor for every element of seq and returns the first error.
func TryEach[T any](seq iter.Seq[T], visitor sliceutil.VisitorE[T]) error {
	if seq == nil || visitor == nil {
		return nilArgument("TryEach")
	}
	for v := range seq {
		if err := visitor(v); err != nil {
			return err
		}
	}
	return nil
}

// TryMatch is Match with a predicate that may fail. A predicate error ends the search.
func TryMatch[T any](seq iter.Seq[T], predicate sliceutil.PredicateE[T]) (T, bool, error) {
	var zero T
	if seq == nil || predicate == nil {
		return zero, false, nilArgument("TryMatch")
	}
	for v := range seq {
		ok, err := predicate(v)
		if err != nil {
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return zero, false, nil
}

// TrySelect returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TrySelect[T any](seq iter.Seq[T], predicate sliceutil.PredicateE[T]) iter.Seq2[T, error] {
	if seq == nil || predicate == nil {
		return failed[T](nilArgument("TrySelect"))
	}
	return tryFilter(seq, predicate, true)
}

// TryReject is the complement of TrySelect and reports predicate errors the same way.
func TryReject[T any](seq iter.Seq[T], predicate sliceutil.PredicateE[T]) iter.Seq2[T, error] {
	if seq == nil || predicate == nil {
		return failed[T](nilArgument("TryReject"))
	}
	return tryFilter(seq, predicate, false)
}

func tryFilter[T any](seq iter.Seq[T], predicate sliceutil.PredicateE[T], want bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep == want {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// The transform function can return an error.
// The resulting sequence yields pairs of (transformed element, error).
// If transform returns an error:
//   - The error is yielded to the consumer along with a zero-value of type R.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryMap[T, R any](seq iter.Seq[T], transform sliceutil.TransformE[T, R]) iter.Seq2[R, error] {
	if seq == nil || transform == nil {
		return failed[R](nilArgument("TryMap"))
	}
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if err != nil {
				var zero R
				res = zero
			}
			if !yield(res, err) {
				return
			}
		}
	}
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, it is returned immediately with the value accumulated so far.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer sliceutil.AccumulatorE[R, T]) (R, error) {
	if seq == nil || reducer == nil {
		return initial, nilArgument("TryReduce")
	}
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
